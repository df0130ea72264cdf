package handlers

import (
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error string `json:"error" example:"Error message describing what went wrong"`
}

// BindModel binds the JSON body into T, writing a 400 and returning nil on
// failure.
func BindModel[T any](ctx *gin.Context) *T {
	var model T
	if err := ctx.ShouldBindJSON(&model); err != nil {
		BadRequest(ctx, err.Error())
		return nil
	}

	return &model
}

// PlayerID returns the authenticated player id set by the auth middleware.
func PlayerID(ctx *gin.Context) string {
	return ctx.GetString("playerID")
}

// Return Types for Controllers
func Ok(ctx *gin.Context, data any) {
	ctx.JSON(200, models.ApiResponse[any]{
		Success: true,
		Status:  200,
		Data:    data,
	})
}

func NotFound(ctx *gin.Context, message string) {
	ctx.JSON(404, ErrorResponse{Error: message})
}

func BadRequest(ctx *gin.Context, message string) {
	ctx.JSON(400, ErrorResponse{Error: message})
}

func InternalServerError(ctx *gin.Context, message string) {
	ctx.JSON(500, ErrorResponse{Error: message})
}

func Unauthorized(ctx *gin.Context, message string) {
	ctx.JSON(401, ErrorResponse{Error: message})
}

func Conflict(ctx *gin.Context, message string) {
	ctx.JSON(409, ErrorResponse{Error: message})
}
