package handlers

import (
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers all routes for authentication
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/guest", h.GuestLogin)
	}
}

// @Summary Register a new user
// @Description Creates an email user with its player and signs in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req := BindModel[models.RegisterRequest](c)
	if req == nil {
		return
	}

	client, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, client)
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := BindModel[models.LoginRequest](c)
	if req == nil {
		return
	}

	client, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, client)
}

// @Summary Guest login
// @Description Creates the guest user on first sight of the device identifier.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.GuestLoginRequest true "Guest login request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /auth/guest [post]
func (h *AuthHandler) GuestLogin(c *gin.Context) {
	req := BindModel[models.GuestLoginRequest](c)
	if req == nil {
		return
	}

	client, err := h.authService.GuestLogin(c.Request.Context(), req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, client)
}
