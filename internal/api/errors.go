package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/service"
	"github.com/pageza/ecocart/backend/internal/types"
)

const internalErrorMessage = "internal server error"

// errorResponder maps service errors to status codes. Internal failures echo
// the raw error text only when expose is set.
type errorResponder struct {
	log    *logrus.Logger
	expose bool
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// message picks the client-facing text for err and logs internal failures.
func (r *errorResponder) message(c *gin.Context, status int, err error) string {
	if status != http.StatusInternalServerError {
		return service.Message(err)
	}
	r.log.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.RequestID(c),
		"path":       c.Request.URL.Path,
	}).Error("Request failed")
	if r.expose {
		return err.Error()
	}
	return internalErrorMessage
}

func (r *errorResponder) respond(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, types.ErrorResponse{Error: r.message(c, status, err)})
}

// respondRecipe writes the recipe routes' {status, message} envelope.
func (r *errorResponder) respondRecipe(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, types.RecipeErrorResponse{Status: "error", Message: r.message(c, status, err)})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: message})
}

// pathID parses a numeric path parameter. Anything else is a 404, as if the
// route did not exist.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Not found"})
		return 0, false
	}
	return uint(id), true
}
