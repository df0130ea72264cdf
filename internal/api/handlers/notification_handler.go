package handlers

import (
	"strconv"

	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	notifications := router.Group("/notifications", authMiddleware)
	{
		notifications.GET("", h.List)
		notifications.POST("/read", h.MarkRead)
	}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param unread query bool false "Only unread"
// @Param limit query int false "Number of entries (max 100)"
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	notifications, err := h.notificationService.List(c.Request.Context(), PlayerID(c), unreadOnly, limit)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, notifications)
}

// @Summary Mark notifications read
// @Description Marks the given ids read, or everything unread when the list is empty.
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body MarkReadRequest true "Notification ids"
// @Success 200 {string} string "ok"
// @Router /notifications/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	req := BindModel[MarkReadRequest](c)
	if req == nil {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), PlayerID(c), req.IDs); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, "ok")
}

type MarkReadRequest struct {
	IDs []string `json:"ids"`
}
