package handler

import (
	"dbprobe/internal/adapter/http/middleware"
	redisStore "dbprobe/internal/adapter/storage/redis"
	"dbprobe/internal/core/ports"
	"dbprobe/pkg/apperror"
	"dbprobe/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Prober         ports.Prober
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimit      middleware.RateLimitRule
	Mode           string // gin mode; empty keeps the current one
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with the probe route and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS())

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrRouteNotFound(c.Request.URL.Path))
	})

	probe := NewProbeHandler(deps.Prober, deps.Logger)
	handlers := []gin.HandlerFunc{probe.Check}
	if deps.RateLimitStore != nil {
		handlers = append([]gin.HandlerFunc{
			middleware.RateLimiter(deps.RateLimitStore, "probe", deps.RateLimit, deps.Logger),
		}, handlers...)
	}
	r.GET("/", handlers...)

	return r
}
