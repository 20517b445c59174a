package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartresume/internal/resumes"
	"smartresume/internal/services/health"
	"smartresume/internal/shared/config"
	"smartresume/internal/shared/metrics"
	"smartresume/internal/shared/server/middleware"
	"smartresume/internal/shared/server/respond"
)

const generateGroup = "GENERATE"

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	Health        *health.Service
	Limiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/resumes" {
					return generateGroup
				}
				return ""
			},
			Limiter: deps.Limiter,
			Rules:   generateRules(deps.Config),
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	api.GET("/metrics", metrics.Handler())

	return r
}

func generateRules(cfg config.Config) map[string]middleware.RateLimitRule {
	if cfg.GenerateRatePerMinute <= 0 {
		return nil
	}
	burst := cfg.GenerateBurst
	if burst <= 0 {
		burst = 1
	}
	perSecond := float64(cfg.GenerateRatePerMinute) / time.Minute.Seconds()
	return map[string]middleware.RateLimitRule{
		generateGroup: {Rate: perSecond, Burst: burst},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
