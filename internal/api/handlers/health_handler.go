package handlers

import (
	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {string} string "ok"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	Ok(c, "ok")
}
