package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/models"
	"github.com/pageza/ecocart/backend/internal/service"
	"github.com/pageza/ecocart/backend/internal/types"
)

type ActivityHandler struct {
	activities service.IActivityService
	errs       *errorResponder
}

func NewActivityHandler(activities service.IActivityService, errs *errorResponder) *ActivityHandler {
	return &ActivityHandler{activities: activities, errs: errs}
}

func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	activities := router.Group("/activities", authRequired)
	{
		activities.GET("", middleware.WithUser(h.ListActivities))
		activities.POST("", middleware.WithUser(h.AddActivity))
	}
}

func (h *ActivityHandler) ListActivities(c *gin.Context, user *models.User) {
	activities, err := h.activities.ListActivities(c.Request.Context(), user.ID)
	if err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewActivityResponses(activities))
}

func (h *ActivityHandler) AddActivity(c *gin.Context, user *models.User) {
	var req types.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if err := h.activities.AddActivity(c.Request.Context(), user.ID, req.ActivityType, req.Description); err != nil {
		h.errs.respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.MessageResponse{Message: "Activity recorded"})
}
