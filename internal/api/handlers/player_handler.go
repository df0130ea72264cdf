package handlers

import (
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/game"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	badgeService  *services.BadgeService
}

func NewPlayerHandler(playerService *services.PlayerService, badgeService *services.BadgeService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		badgeService:  badgeService,
	}
}

func (h *PlayerHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	player := router.Group("/players", authMiddleware)
	{
		player.GET("/me", h.GetMyPlayer)
		player.GET("/me/progress", h.GetMyProgress)
		player.GET("/me/calendar", h.GetMyCalendar)
		player.GET("/me/badges", h.GetMyBadges)
	}
}

// @Summary Get current player
// @Tags players
// @Produce json
// @Security Bearer
// @Success 200 {object} models.Player
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /players/me [get]
func (h *PlayerHandler) GetMyPlayer(c *gin.Context) {
	playerID := PlayerID(c)
	if playerID == "" {
		Unauthorized(c, "playerID is required")
		return
	}

	player, err := h.playerService.GetPlayerByID(c.Request.Context(), playerID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	} else if player == nil {
		NotFound(c, "player not found")
		return
	}

	Ok(c, player)
}

// @Summary Get progress snapshot
// @Description Level, cumulative XP, next-level threshold, streak and coins.
// @Tags players
// @Produce json
// @Security Bearer
// @Success 200 {object} models.PlayerProgress
// @Router /players/me/progress [get]
func (h *PlayerHandler) GetMyProgress(c *gin.Context) {
	progress, err := h.playerService.GetProgress(c.Request.Context(), PlayerID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, progress)
}

// @Summary Get completion calendar
// @Description Dense per-day completion counts between from and to (YYYY-MM-DD, UTC). Defaults to the last 30 days.
// @Tags players
// @Produce json
// @Security Bearer
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {array} models.HeatmapEntry
// @Router /players/me/calendar [get]
func (h *PlayerHandler) GetMyCalendar(c *gin.Context) {
	now := time.Now().UTC()
	from := game.DateOf(now.AddDate(0, 0, -29))
	to := game.DateOf(now)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			BadRequest(c, "invalid from date")
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			BadRequest(c, "invalid to date")
			return
		}
		to = parsed
	}

	entries, err := h.playerService.GetCalendar(c.Request.Context(), PlayerID(c), from, to)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, entries)
}

// @Summary List unlocked badges
// @Tags players
// @Produce json
// @Security Bearer
// @Success 200 {array} models.PlayerBadge
// @Router /players/me/badges [get]
func (h *PlayerHandler) GetMyBadges(c *gin.Context) {
	badges, err := h.badgeService.ListPlayerBadges(c.Request.Context(), PlayerID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, badges)
}
