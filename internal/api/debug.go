package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/models"
	"github.com/pageza/ecocart/backend/internal/service"
	"github.com/pageza/ecocart/backend/internal/types"
)

// DebugHandler dumps raw catalog and cart state. Only mounted when debug
// routes are enabled.
type DebugHandler struct {
	catalog service.ICatalogService
	cart    service.ICartService
	errs    *errorResponder
}

func NewDebugHandler(catalog service.ICatalogService, cart service.ICartService, errs *errorResponder) *DebugHandler {
	return &DebugHandler{catalog: catalog, cart: cart, errs: errs}
}

func (h *DebugHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	debug := router.Group("/debug")
	{
		debug.GET("/products", h.Products)
		debug.GET("/cart", authRequired, middleware.WithUser(h.Cart))
	}
}

func (h *DebugHandler) Products(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewProductResponses(products))
}

func (h *DebugHandler) Cart(c *gin.Context, user *models.User) {
	items, err := h.cart.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		// Always raw here; these routes exist to show what went wrong.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "user_id": user.ID})
		return
	}

	message := "Cart contents retrieved successfully"
	if len(items) == 0 {
		message = "Cart is empty"
	}
	c.JSON(http.StatusOK, types.DebugCartResponse{
		Message: message,
		UserID:  user.ID,
		Items:   types.NewDebugCartItems(items),
	})
}
