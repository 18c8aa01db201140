package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/curtsdirt/site/internal/config"
	"github.com/curtsdirt/site/internal/http/middleware"
)

func NewRouter(handler *Handler, cfg config.HTTPConfig, environment string, log zerolog.Logger) *gin.Engine {
	switch environment {
	case "development":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.SecurityHeaders(),
	)

	api := router.Group("/api")
	api.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	handler.Register(router, api)

	// Group middleware only runs on matched routes, so preflight needs one.
	api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
