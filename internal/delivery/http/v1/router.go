package v1

import (
	"net/http"
	"time"

	"skills-api/config"
	_ "skills-api/docs" // swagger docs
	"skills-api/internal/delivery/http/middleware"
	"skills-api/internal/delivery/http/response"
	"skills-api/internal/domain"
	"skills-api/pkg/monitoring"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ThemeUC domain.ThemeUsecase
	SkillUC domain.SkillUsecase
	Health  domain.HealthUsecase // optional
	Metrics *monitoring.Metrics // optional
	Redis   *goredis.Client     // optional, backs the rate limiter
	Config  *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", deps.Metrics.Handler())
	}

	limit := middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)
	limit.Redis = deps.Redis
	r.Use(middleware.RateLimitMiddleware(limit))
	r.Use(middleware.ErrorHandler())

	NewIndexHandler(r, deps.Health)
	NewThemeHandler(r, deps.ThemeUC)
	NewSkillHandler(r, deps.SkillUC)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	return r
}
