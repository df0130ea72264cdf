package handlers

import (
	"errors"

	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shopService *services.ShopService
}

func NewShopHandler(shopService *services.ShopService) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

func (h *ShopHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	shop := router.Group("/shop", authMiddleware)
	{
		shop.GET("/items", h.ListItems)
		shop.POST("/items/:id/purchase", h.Purchase)
		shop.GET("/inventory", h.Inventory)
	}
}

// @Summary List shop items
// @Tags shop
// @Produce json
// @Security Bearer
// @Success 200 {array} models.ShopItem
// @Router /shop/items [get]
func (h *ShopHandler) ListItems(c *gin.Context) {
	items, err := h.shopService.ListItems(c.Request.Context())
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, items)
}

// @Summary Purchase an item
// @Description Debits coins and grants the cosmetic. XP is never affected.
// @Tags shop
// @Produce json
// @Security Bearer
// @Param id path string true "Item ID"
// @Success 200 {object} models.PlayerItem
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Already owned or insufficient coins"
// @Router /shop/items/{id}/purchase [post]
func (h *ShopHandler) Purchase(c *gin.Context) {
	purchase, err := h.shopService.Purchase(c.Request.Context(), PlayerID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			NotFound(c, err.Error())
		case errors.Is(err, services.ErrItemAlreadyOwned), errors.Is(err, services.ErrInsufficientCoins):
			Conflict(c, err.Error())
		default:
			BadRequest(c, err.Error())
		}
		return
	}

	Ok(c, purchase)
}

// @Summary List owned items
// @Tags shop
// @Produce json
// @Security Bearer
// @Success 200 {array} models.PlayerItem
// @Router /shop/inventory [get]
func (h *ShopHandler) Inventory(c *gin.Context) {
	items, err := h.shopService.Inventory(c.Request.Context(), PlayerID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, items)
}
