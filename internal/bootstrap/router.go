package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/neighborswap/proposal-exchange/internal/api/http"
	"github.com/neighborswap/proposal-exchange/internal/api/http/middleware"
	"github.com/neighborswap/proposal-exchange/internal/platform/metrics"
	proposalshttp "github.com/neighborswap/proposal-exchange/internal/proposals/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Exchanger      proposalshttp.Exchanger
	APIKey         string
	DefaultToken   string
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Metrics)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	proposalsHandler := proposalshttp.New(dep.Exchanger, dep.APIKey, dep.DefaultToken)
	proposalsHandler.Register(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
