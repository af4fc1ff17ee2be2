package http

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/qa-service/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(handler.logger),
	)
	if cfg.HTTP.Metrics {
		router.Use(metricsMiddleware())
	}
	// Compression sits outside error rendering so error bodies are encoded too.
	if cfg.HTTP.Gzip {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(
		errorHandlingMiddleware(handler.logger, cfg.HTTP.LegacyStatusCodes),
		corsMiddleware(cfg.HTTP.CORS.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	if cfg.HTTP.Metrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group(cfg.HTTP.BasePath)
	{
		api.GET("/questions", handler.ListQuestions)
		api.POST("/questions", handler.AddQuestion)
		api.PUT("/questions/:id", handler.UpdateQuestion)
		api.DELETE("/questions/:id", handler.DeleteQuestion)
		api.GET("/answers", handler.ListAnswers)
		api.POST("/answers", handler.AddAnswer)
	}
	router.NoRoute(handler.RouteNotFound)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
