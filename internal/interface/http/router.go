package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/passage-analyzer/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.SetHTMLTemplate(pageTemplates)
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger, handler.renderPageError),
	)

	limited := rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger)

	router.GET("/", handler.Index)
	router.POST("/analyze", limited, handler.AnalyzePage)
	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/passage", handler.Passage)
		api.POST("/analyses", limited, handler.Analyze)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
