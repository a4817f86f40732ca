package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/handler"
	"github.com/noah-isme/scholarship-match-api/internal/middleware"
	"github.com/noah-isme/scholarship-match-api/pkg/config"
	"github.com/noah-isme/scholarship-match-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/scholarship-match-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/scholarship-match-api/pkg/middleware/requestid"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Students     *handler.StudentHandler
	Scholarships *handler.ScholarshipHandler
	Metrics      *handler.MetricsHandler
}

// Handlers builds the HTTP handlers from the container's services.
func (c *Container) Handlers() Handlers {
	var pinger handler.Pinger
	if c.DB != nil {
		pinger = c.DB
	}
	return Handlers{
		Students:     handler.NewStudentHandler(c.Students, c.Matches, c.Exports),
		Scholarships: handler.NewScholarshipHandler(c.Scholarships),
		Metrics:      handler.NewMetricsHandler(c.Metrics, pinger, c.Explanations.Configured()),
	}
}

// NewRouter mounts middleware and routes. Business routes live under cfg.APIPrefix.
func NewRouter(cfg *config.Config, log *zap.Logger, observer middleware.RequestObserver, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(observer, "/metrics", "/health", "/ready"))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(normalizePrefix(cfg.APIPrefix))
	{
		students := api.Group("/students")
		students.POST("", h.Students.Create)
		students.GET("/:id/matches", h.Students.Matches)
		students.GET("/:id/matches/export", h.Students.ExportMatches)

		scholarships := api.Group("/scholarships")
		scholarships.GET("", h.Scholarships.List)
		scholarships.GET("/:id/requirements", h.Scholarships.Requirements)
	}

	return r
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return "/"
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
