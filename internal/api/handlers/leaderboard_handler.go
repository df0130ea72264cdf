package handlers

import (
	"strconv"

	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

func (h *LeaderboardHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	leaderboard := router.Group("/leaderboard", authMiddleware)
	{
		leaderboard.GET("", h.Top)
		leaderboard.GET("/me", h.MyRank)
	}
}

// @Summary Top ranked players
// @Tags leaderboard
// @Produce json
// @Security Bearer
// @Param limit query int false "Number of entries (max 100)"
// @Success 200 {array} models.LeaderboardEntry
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.leaderboardService.Top(c.Request.Context(), limit)
	if err != nil {
		InternalServerError(c, err.Error())
		return
	}

	Ok(c, entries)
}

// @Summary The caller's rank
// @Tags leaderboard
// @Produce json
// @Security Bearer
// @Success 200 {object} models.LeaderboardEntry
// @Failure 404 {object} ErrorResponse "Unranked"
// @Router /leaderboard/me [get]
func (h *LeaderboardHandler) MyRank(c *gin.Context) {
	entry, err := h.leaderboardService.Rank(c.Request.Context(), PlayerID(c))
	if err != nil {
		InternalServerError(c, err.Error())
		return
	} else if entry == nil {
		NotFound(c, "player is not ranked yet")
		return
	}

	Ok(c, entry)
}
