package handlers

import (
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
)

type BadgeHandler struct {
	badgeService *services.BadgeService
}

func NewBadgeHandler(badgeService *services.BadgeService) *BadgeHandler {
	return &BadgeHandler{
		badgeService: badgeService,
	}
}

func (h *BadgeHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc, adminMiddleware gin.HandlerFunc) {
	badges := router.Group("/badges")
	{
		badges.GET("", authMiddleware, h.ListCatalog)
	}

	router.POST("/admin/badges", adminMiddleware, h.CreateBadge)
}

// @Summary List the badge catalog
// @Tags badges
// @Produce json
// @Security Bearer
// @Success 200 {array} models.Badge
// @Router /badges [get]
func (h *BadgeHandler) ListCatalog(c *gin.Context) {
	badges, err := h.badgeService.ListCatalog(c.Request.Context())
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, badges)
}

func (h *BadgeHandler) CreateBadge(c *gin.Context) {
	badge := BindModel[models.Badge](c)
	if badge == nil {
		return
	}

	if err := h.badgeService.CreateBadge(c.Request.Context(), badge); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, badge)
}
