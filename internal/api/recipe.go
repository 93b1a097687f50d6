package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/models"
	"github.com/pageza/ecocart/backend/internal/service"
	"github.com/pageza/ecocart/backend/internal/types"
)

type RecipeHandler struct {
	recipes service.IRecipeService
	errs    *errorResponder
}

func NewRecipeHandler(recipes service.IRecipeService, errs *errorResponder) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, errs: errs}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	recipes := router.Group("/recipes", authRequired)
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", middleware.WithUser(h.SearchRecipes))
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		h.errs.respondRecipe(c, err)
		return
	}
	c.JSON(http.StatusOK, types.RecipeListResponse{
		Status:  "success",
		Recipes: types.NewRecipeResponses(recipes),
	})
}

// SearchRecipes reads ?query= and ?matchCart=true.
func (h *RecipeHandler) SearchRecipes(c *gin.Context, user *models.User) {
	matchCart := strings.EqualFold(c.DefaultQuery("matchCart", "false"), "true")

	result, err := h.recipes.SearchRecipes(c.Request.Context(), user.ID, c.Query("query"), matchCart)
	if err != nil {
		h.errs.respondRecipe(c, err)
		return
	}
	c.JSON(http.StatusOK, types.RecipeListResponse{
		Status:  "success",
		Recipes: types.NewRecipeResponses(result.Recipes),
		Message: result.Message,
	})
}
