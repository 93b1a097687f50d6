package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ecocart/backend/internal/service"
	"github.com/pageza/ecocart/backend/internal/types"
)

type CatalogHandler struct {
	catalog service.ICatalogService
	errs    *errorResponder
}

func NewCatalogHandler(catalog service.ICatalogService, errs *errorResponder) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, errs: errs}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/search", authRequired, h.SearchProducts)
		products.GET("/barcode/:code", h.GetProductByBarcode)
		products.GET("/:id", h.GetProduct)
		products.GET("/:id/features", authRequired, h.ListFeatures)
	}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewProductResponses(products))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewProductResponse(product))
}

func (h *CatalogHandler) GetProductByBarcode(c *gin.Context) {
	product, err := h.catalog.GetProductByBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewProductResponse(product))
}

func (h *CatalogHandler) ListFeatures(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	features, err := h.catalog.ListFeatures(c.Request.Context(), id)
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewFeatureResponses(features))
}

// SearchProducts reads the query from ?q=.
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	products, err := h.catalog.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewProductResponses(products))
}
