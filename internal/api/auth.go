package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/models"
	"github.com/pageza/ecocart/backend/internal/service"
	"github.com/pageza/ecocart/backend/internal/types"
)

type AuthHandler struct {
	authService service.IAuthService
	errs        *errorResponder
	limit       []gin.HandlerFunc
}

// NewAuthHandler creates an AuthHandler. limit runs in front of register and
// login and may be empty.
func NewAuthHandler(authService service.IAuthService, errs *errorResponder, limit ...gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		errs:        errs,
		limit:       limit,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.POST("/register", h.limited(h.Register)...)
	router.POST("/login", h.limited(h.Login)...)
	router.POST("/auth/logout", authRequired, middleware.WithUser(h.Logout))
	router.GET("/user/profile", authRequired, middleware.WithUser(h.GetProfile))
}

func (h *AuthHandler) limited(handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(h.limit)+1)
	chain = append(chain, h.limit...)
	return append(chain, handler)
}

// Register creates an account. It does not log the user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		h.errs.respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.MessageResponse{Message: "User registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, types.LoginResponse{Token: token, User: types.NewUserSummary(user)})
}

// Logout acknowledges the request. Tokens cannot be revoked; the client
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context, _ *models.User) {
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Successfully logged out"})
}

func (h *AuthHandler) GetProfile(c *gin.Context, user *models.User) {
	c.JSON(http.StatusOK, types.NewProfileResponse(user))
}
