package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError carries an HTTP status alongside the message so handlers can
// push errors through gin's error list instead of writing responses inline.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// ErrorMiddleware renders the last collected error after the handler chain
// runs. Unknown errors become a 500.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, gin.H{
				"error": appErr.Message,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	}
}

var (
	ErrUnauthorized = NewAppError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound     = NewAppError(http.StatusNotFound, "resource not found")
	ErrBadRequest   = NewAppError(http.StatusBadRequest, "bad request")
)
