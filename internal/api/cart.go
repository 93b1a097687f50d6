package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/models"
	"github.com/pageza/ecocart/backend/internal/service"
	"github.com/pageza/ecocart/backend/internal/types"
)

type CartHandler struct {
	cart service.ICartService
	errs *errorResponder
}

func NewCartHandler(cart service.ICartService, errs *errorResponder) *CartHandler {
	return &CartHandler{cart: cart, errs: errs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	cart := router.Group("/cart", authRequired)
	{
		cart.GET("", middleware.WithUser(h.GetCart))
		cart.POST("", middleware.WithUser(h.AddToCart))
		cart.GET("/comparison", middleware.WithUser(h.GetComparison))
		cart.PUT("/:id", middleware.WithUser(h.UpdateCartItem))
		cart.DELETE("/:id", middleware.WithUser(h.RemoveFromCart))
	}
}

func (h *CartHandler) GetCart(c *gin.Context, user *models.User) {
	items, err := h.cart.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewCartItemResponses(items))
}

// AddToCart treats an empty or absent body like a missing product_id.
func (h *CartHandler) AddToCart(c *gin.Context, user *models.User) {
	var req types.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request body")
		return
	}

	item, err := h.cart.AddToCart(c.Request.Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		h.errs.respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.CartItemMessage{
		Message:  "Item added to cart successfully",
		CartItem: types.NewCartItemResponse(item),
	})
}

func (h *CartHandler) UpdateCartItem(c *gin.Context, user *models.User) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	item, err := h.cart.UpdateCartItem(c.Request.Context(), user.ID, id, req.Quantity)
	if err != nil {
		h.errs.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, types.CartItemMessage{
		Message:  "Cart item updated successfully",
		CartItem: types.NewCartItemResponse(item),
	})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context, user *models.User) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.cart.RemoveFromCart(c.Request.Context(), user.ID, id)
	if err != nil {
		h.errs.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, types.RemoveCartItemResponse{
		Message:     "Item removed from cart successfully",
		RemovedItem: types.NewRemovedItem(item),
	})
}

func (h *CartHandler) GetComparison(c *gin.Context, user *models.User) {
	items, err := h.cart.GetCartComparison(c.Request.Context(), user.ID)
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewComparison(items))
}
