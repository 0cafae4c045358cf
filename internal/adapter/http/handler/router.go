package handler

import (
	"net/http"

	"wager-tracker/internal/adapter/http/middleware"
	redisStore "wager-tracker/internal/adapter/storage/redis"
	"wager-tracker/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WagerSvc       ports.WagerService
	StatsSvc       ports.StatisticsService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimit      middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Metrics        http.Handler // nil = no /metrics route
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	rules := middleware.RateLimitRules(deps.RateLimit)
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	wagerHandler := NewWagerHandler(deps.WagerSvc)
	wagers := v1.Group("/wagers")
	{
		wagers.POST("", rl(middleware.GroupWrite), wagerHandler.Create)
		wagers.GET("", rl(middleware.GroupRead), wagerHandler.List)
		wagers.GET("/:id", rl(middleware.GroupRead), wagerHandler.Get)
		wagers.GET("/:id/history", rl(middleware.GroupRead), wagerHandler.History)
		wagers.PUT("/:id/odds", rl(middleware.GroupWrite), wagerHandler.SetOdds)
		wagers.POST("/:id/publish", rl(middleware.GroupWrite), wagerHandler.Publish)
		wagers.PUT("/:id/terms", rl(middleware.GroupWrite), wagerHandler.EditTerms)
		wagers.POST("/:id/cancel", rl(middleware.GroupWrite), wagerHandler.Cancel)
		wagers.POST("/:id/accept", rl(middleware.GroupWrite), wagerHandler.Accept)
		wagers.POST("/:id/settle", rl(middleware.GroupWrite), wagerHandler.Settle)
		wagers.POST("/:id/resettle", rl(middleware.GroupWrite), wagerHandler.Resettle)
	}

	statsHandler := NewStatsHandler(deps.StatsSvc)
	stats := v1.Group("/stats")
	{
		stats.GET("", rl(middleware.GroupRead), statsHandler.Standings)
		stats.GET("/me", rl(middleware.GroupRead), statsHandler.Mine)
		stats.GET("/participants/:id", rl(middleware.GroupRead), statsHandler.Participant)
		stats.DELETE("", rl(middleware.GroupReset), statsHandler.Reset)
	}

	return r
}
