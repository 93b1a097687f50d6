package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/service"
)

// Services bundles the domain services the handlers call.
type Services struct {
	Auth     service.IAuthService
	Catalog  service.ICatalogService
	Cart     service.ICartService
	Activity service.IActivityService
	Recipe   service.IRecipeService
}

// Options holds the HTTP-level switches.
type Options struct {
	ExposeInternalErrors bool
	DebugRoutes          bool
	StaticDir            string
	// AuthLimiter throttles register and login per client IP; nil disables it.
	AuthLimiter  middleware.Limiter
	HealthChecks map[string]HealthChecker
}

// RegisterRoutes mounts the JSON API under /api and the static pages as the
// fallback.
func RegisterRoutes(router *gin.Engine, svc Services, opts Options, log *logrus.Logger) {
	errs := &errorResponder{log: log, expose: opts.ExposeInternalErrors}
	authRequired := middleware.AuthMiddleware(svc.Auth, log)

	var limit []gin.HandlerFunc
	if opts.AuthLimiter != nil {
		limit = append(limit, middleware.RateLimitMiddleware(opts.AuthLimiter, log))
	}

	api := router.Group("/api")
	NewHealthHandler(opts.HealthChecks, errs).RegisterRoutes(api)
	NewAuthHandler(svc.Auth, errs, limit...).RegisterRoutes(api, authRequired)
	NewCatalogHandler(svc.Catalog, errs).RegisterRoutes(api, authRequired)
	NewCartHandler(svc.Cart, errs).RegisterRoutes(api, authRequired)
	NewActivityHandler(svc.Activity, errs).RegisterRoutes(api, authRequired)
	NewRecipeHandler(svc.Recipe, errs).RegisterRoutes(api, authRequired)

	if opts.DebugRoutes {
		log.Warn("Debug routes are enabled")
		NewDebugHandler(svc.Catalog, svc.Cart, errs).RegisterRoutes(api, authRequired)
	}

	router.NoRoute(NewStaticHandler(opts.StaticDir).NoRoute)
}
