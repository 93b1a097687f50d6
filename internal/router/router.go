package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/ecocart/backend/internal/api"
	"github.com/pageza/ecocart/backend/internal/metrics"
	"github.com/pageza/ecocart/backend/internal/middleware"
)

// Config collects everything SetupRouter wires together.
type Config struct {
	Services           api.Services
	Options            api.Options
	CORSAllowedOrigins []string
	// Metrics is optional; when set, requests are instrumented and /metrics is served.
	Metrics *metrics.Metrics
	Log     *logrus.Logger
}

// SetupRouter configures the application routes
func SetupRouter(cfg Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(cfg.Log))
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api.RegisterRoutes(router, cfg.Services, cfg.Options, cfg.Log)
	return router
}
