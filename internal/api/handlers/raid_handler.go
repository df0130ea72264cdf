package handlers

import (
	"errors"

	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
)

type RaidHandler struct {
	raidService   *services.RaidService
	playerService *services.PlayerService
}

func NewRaidHandler(raidService *services.RaidService, playerService *services.PlayerService) *RaidHandler {
	return &RaidHandler{
		raidService:   raidService,
		playerService: playerService,
	}
}

func (h *RaidHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	raids := router.Group("/raids", authMiddleware)
	{
		raids.POST("", h.CreateRaid)
		raids.GET("", h.ListGuildRaids)
		raids.GET("/:id", h.GetRaid)
		raids.POST("/:id/tasks/:taskId", h.AttachTask)
	}
}

// requireGuild resolves the caller's guild, failing the request when the
// player is not in one.
func (h *RaidHandler) requireGuild(c *gin.Context) (string, bool) {
	player, err := h.playerService.GetPlayerByID(c.Request.Context(), PlayerID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return "", false
	}
	if player == nil || player.GuildID == nil {
		BadRequest(c, "player is not in a guild")
		return "", false
	}

	return *player.GuildID, true
}

// @Summary Create a raid
// @Description Opens a raid for the caller's guild.
// @Tags raids
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body models.Raid true "Raid"
// @Success 200 {object} models.Raid
// @Router /raids [post]
func (h *RaidHandler) CreateRaid(c *gin.Context) {
	raid := BindModel[models.Raid](c)
	if raid == nil {
		return
	}

	guildID, ok := h.requireGuild(c)
	if !ok {
		return
	}

	raid.GuildID = guildID
	if err := h.raidService.CreateRaid(c.Request.Context(), raid); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, raid)
}

// @Summary List the caller's guild raids
// @Tags raids
// @Produce json
// @Security Bearer
// @Success 200 {array} models.Raid
// @Router /raids [get]
func (h *RaidHandler) ListGuildRaids(c *gin.Context) {
	guildID, ok := h.requireGuild(c)
	if !ok {
		return
	}

	raids, err := h.raidService.ListGuildRaids(c.Request.Context(), guildID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, raids)
}

// @Summary Get a raid with its tasks
// @Tags raids
// @Produce json
// @Security Bearer
// @Param id path string true "Raid ID"
// @Success 200 {object} models.Raid
// @Failure 404 {object} ErrorResponse "Raid not found"
// @Router /raids/{id} [get]
func (h *RaidHandler) GetRaid(c *gin.Context) {
	raid, err := h.raidService.GetRaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	} else if raid == nil {
		NotFound(c, "raid not found")
		return
	}

	Ok(c, raid)
}

// @Summary Attach a pending task to a raid
// @Tags raids
// @Produce json
// @Security Bearer
// @Param id path string true "Raid ID"
// @Param taskId path string true "Task ID"
// @Success 200 {string} string "attached"
// @Failure 404 {object} ErrorResponse "Raid or task not found"
// @Failure 409 {object} ErrorResponse "Raid is not open"
// @Router /raids/{id}/tasks/{taskId} [post]
func (h *RaidHandler) AttachTask(c *gin.Context) {
	err := h.raidService.AttachTask(c.Request.Context(), PlayerID(c), c.Param("id"), c.Param("taskId"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRaidNotFound), errors.Is(err, services.ErrTaskNotFound):
			NotFound(c, err.Error())
		case errors.Is(err, services.ErrRaidClosed):
			Conflict(c, err.Error())
		default:
			BadRequest(c, err.Error())
		}
		return
	}

	Ok(c, "attached")
}
