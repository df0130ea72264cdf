package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "userID"
	PlayerIDKey = "playerID"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		result := models.ApiResponse[any]{
			Success: false,
			Status:  models.StatusUnauthorized,
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			result.Message = "authorization header is required"
			c.JSON(http.StatusUnauthorized, result)
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			result.Message = "invalid authorization header format"
			c.JSON(http.StatusUnauthorized, result)
			c.Abort()
			return
		}

		token := tokenParts[1]
		claims, err := utils.ValidateJwTTokenWithClaims(token)
		if err != nil {
			result.Message = err.Error()
			c.JSON(http.StatusUnauthorized, result)
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(PlayerIDKey, claims.PlayerID)
		c.Next()
	}
}

// AdminAuthMiddleware guards the out-of-band catalog endpoints with a shared
// token from ADMIN_TOKEN.
func AdminAuthMiddleware() gin.HandlerFunc {
	adminToken := os.Getenv("ADMIN_TOKEN")

	return func(c *gin.Context) {
		result := models.ApiResponse[any]{
			Success: false,
			Status:  models.StatusUnauthorized,
		}

		if adminToken == "" {
			result.Message = "admin endpoints are disabled"
			c.JSON(http.StatusUnauthorized, result)
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] != adminToken {
			result.Message = "invalid token"
			c.JSON(http.StatusUnauthorized, result)
			c.Abort()
			return
		}

		c.Next()
	}
}
