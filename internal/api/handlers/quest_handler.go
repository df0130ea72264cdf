package handlers

import (
	"errors"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
)

type QuestHandler struct {
	questService *services.QuestService
}

func NewQuestHandler(questService *services.QuestService) *QuestHandler {
	return &QuestHandler{
		questService: questService,
	}
}

func (h *QuestHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc, adminMiddleware gin.HandlerFunc) {
	quests := router.Group("/quests", authMiddleware)
	{
		quests.POST("", h.CreateQuest)
		quests.GET("", h.ListQuests)
		quests.GET("/today", h.TodayStatus)
		quests.POST("/:id/progress", h.LogProgress)
		quests.DELETE("/:id", h.DeactivateQuest)
	}

	// Global quests apply to every player and are managed out of band.
	router.POST("/admin/quests", adminMiddleware, h.CreateGlobalQuest)
}

// @Summary Create a personal daily quest
// @Tags quests
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body models.DailyQuest true "Quest"
// @Success 200 {object} models.DailyQuest
// @Router /quests [post]
func (h *QuestHandler) CreateQuest(c *gin.Context) {
	quest := BindModel[models.DailyQuest](c)
	if quest == nil {
		return
	}

	quest.PlayerID = utils.PtrTo(PlayerID(c))
	if err := h.questService.CreateQuest(c.Request.Context(), quest); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, quest)
}

func (h *QuestHandler) CreateGlobalQuest(c *gin.Context) {
	quest := BindModel[models.DailyQuest](c)
	if quest == nil {
		return
	}

	quest.PlayerID = nil
	if err := h.questService.CreateQuest(c.Request.Context(), quest); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, quest)
}

// @Summary List active quests
// @Tags quests
// @Produce json
// @Security Bearer
// @Success 200 {array} models.DailyQuest
// @Router /quests [get]
func (h *QuestHandler) ListQuests(c *gin.Context) {
	quests, err := h.questService.ListQuests(c.Request.Context(), PlayerID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, quests)
}

// @Summary Today's quest status
// @Tags quests
// @Produce json
// @Security Bearer
// @Success 200 {object} models.QuestDayStatus
// @Router /quests/today [get]
func (h *QuestHandler) TodayStatus(c *gin.Context) {
	status, err := h.questService.TodayStatus(c.Request.Context(), PlayerID(c), time.Now().UTC())
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, status)
}

// @Summary Log quest progress
// @Description Sets today's absolute count for the quest. Throttled per quest with a short cooldown.
// @Tags quests
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Quest ID"
// @Param request body QuestProgressRequest true "Progress"
// @Success 200 {object} models.DailyQuestLog
// @Failure 404 {object} ErrorResponse "Quest not found"
// @Failure 429 {object} ErrorResponse "Cooldown active"
// @Router /quests/{id}/progress [post]
func (h *QuestHandler) LogProgress(c *gin.Context) {
	req := BindModel[QuestProgressRequest](c)
	if req == nil {
		return
	}
	if req.Count < 0 {
		BadRequest(c, "count cannot be negative")
		return
	}

	log, err := h.questService.LogProgress(c.Request.Context(), PlayerID(c), c.Param("id"), req.Count, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuestNotFound):
			NotFound(c, "quest not found")
		case errors.Is(err, services.ErrQuestCooldown):
			c.JSON(429, ErrorResponse{Error: err.Error()})
		default:
			BadRequest(c, err.Error())
		}
		return
	}

	Ok(c, log)
}

// @Summary Deactivate a personal quest
// @Tags quests
// @Produce json
// @Security Bearer
// @Param id path string true "Quest ID"
// @Success 200 {string} string "deactivated"
// @Router /quests/{id} [delete]
func (h *QuestHandler) DeactivateQuest(c *gin.Context) {
	if err := h.questService.DeactivateQuest(c.Request.Context(), PlayerID(c), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrQuestNotFound) {
			NotFound(c, "quest not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Ok(c, "deactivated")
}

// QuestProgressRequest sets the absolute progress count for today.
type QuestProgressRequest struct {
	Count int `json:"count" example:"3"`
}
