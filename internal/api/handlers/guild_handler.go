package handlers

import (
	"errors"
	"strconv"

	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
)

type GuildHandler struct {
	guildService *services.GuildService
}

func NewGuildHandler(guildService *services.GuildService) *GuildHandler {
	return &GuildHandler{
		guildService: guildService,
	}
}

func (h *GuildHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	guilds := router.Group("/guilds", authMiddleware)
	{
		guilds.POST("", h.CreateGuild)
		guilds.GET("", h.ListGuilds)
		guilds.GET("/:id", h.GetGuild)
		guilds.GET("/:id/members", h.GetMembers)
		guilds.POST("/:id/join", h.JoinGuild)
		guilds.POST("/:id/leave", h.LeaveGuild)
	}
}

// @Summary Create a guild
// @Description The creator becomes the guild leader.
// @Tags guilds
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body models.Guild true "Guild"
// @Success 200 {object} models.Guild
// @Failure 409 {object} ErrorResponse "Already in a guild"
// @Router /guilds [post]
func (h *GuildHandler) CreateGuild(c *gin.Context) {
	guild := BindModel[models.Guild](c)
	if guild == nil {
		return
	}

	if err := h.guildService.CreateGuild(c.Request.Context(), PlayerID(c), guild); err != nil {
		if errors.Is(err, services.ErrAlreadyInGuild) {
			Conflict(c, err.Error())
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Ok(c, guild)
}

// @Summary List guilds
// @Tags guilds
// @Produce json
// @Security Bearer
// @Param page query int false "Page number"
// @Param take query int false "Page size"
// @Success 200 {object} data.PagingModel[models.Guild]
// @Router /guilds [get]
func (h *GuildHandler) ListGuilds(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	take, _ := strconv.Atoi(c.DefaultQuery("take", "20"))

	guilds, err := h.guildService.ListGuilds(c.Request.Context(), page, take)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, guilds)
}

// @Summary Get a guild
// @Tags guilds
// @Produce json
// @Security Bearer
// @Param id path string true "Guild ID"
// @Success 200 {object} models.Guild
// @Failure 404 {object} ErrorResponse "Guild not found"
// @Router /guilds/{id} [get]
func (h *GuildHandler) GetGuild(c *gin.Context) {
	guild, err := h.guildService.GetGuild(c.Request.Context(), c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	} else if guild == nil {
		NotFound(c, "guild not found")
		return
	}

	Ok(c, guild)
}

// @Summary List guild members
// @Tags guilds
// @Produce json
// @Security Bearer
// @Param id path string true "Guild ID"
// @Success 200 {array} models.GuildMember
// @Router /guilds/{id}/members [get]
func (h *GuildHandler) GetMembers(c *gin.Context) {
	members, err := h.guildService.GetMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, members)
}

// @Summary Join a guild
// @Tags guilds
// @Produce json
// @Security Bearer
// @Param id path string true "Guild ID"
// @Success 200 {string} string "joined"
// @Failure 409 {object} ErrorResponse "Already in a guild"
// @Router /guilds/{id}/join [post]
func (h *GuildHandler) JoinGuild(c *gin.Context) {
	err := h.guildService.JoinGuild(c.Request.Context(), PlayerID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGuildNotFound):
			NotFound(c, "guild not found")
		case errors.Is(err, services.ErrAlreadyInGuild):
			Conflict(c, err.Error())
		default:
			BadRequest(c, err.Error())
		}
		return
	}

	Ok(c, "joined")
}

// @Summary Leave a guild
// @Tags guilds
// @Produce json
// @Security Bearer
// @Param id path string true "Guild ID"
// @Success 200 {string} string "left"
// @Router /guilds/{id}/leave [post]
func (h *GuildHandler) LeaveGuild(c *gin.Context) {
	err := h.guildService.LeaveGuild(c.Request.Context(), PlayerID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotInGuild):
			NotFound(c, err.Error())
		case errors.Is(err, services.ErrLeaderCannotLeave):
			Conflict(c, err.Error())
		default:
			BadRequest(c, err.Error())
		}
		return
	}

	Ok(c, "left")
}
