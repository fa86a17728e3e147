package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/prompt-optimizer/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger = logger.With("component", "http.router")

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.CORS.AllowedOrigins),
		errorHandlingMiddleware(logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)

	router.GET("/", handler.Root)
	router.GET("/healthz", handler.Healthz)
	router.POST("/optimize", handler.Optimize)
	router.POST("/energy", handler.Energy)

	spell := router.Group("/spell-check")
	{
		spell.POST("", handler.SpellCheck)
		spell.POST("/batch", handler.BatchSpellCheck)
		spell.GET("/suggestions", handler.Suggestions)
		spell.POST("/dictionary", handler.AddDictionaryWords)
	}

	ai := router.Group("/ai_prompt-optimizer")
	{
		ai.GET("/health", handler.AIHealth)
		ai.POST("/optimize", handler.AIOptimize)
		ai.POST("/summarize", handler.AISummarize)
		ai.POST("/keywords", handler.AIKeywords)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
