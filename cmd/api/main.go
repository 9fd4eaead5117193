package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/neighborswap/proposal-exchange/config"
	"github.com/neighborswap/proposal-exchange/internal/bootstrap"
	"github.com/neighborswap/proposal-exchange/internal/platform/metrics"
	"github.com/neighborswap/proposal-exchange/internal/platform/server"
	"github.com/neighborswap/proposal-exchange/internal/proposals/client"
)

const serviceName = "proposal-exchange"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	upstreamMetrics := metrics.New()
	proposalClient := client.New(cfg.Store.BaseURL,
		client.WithResourcePath(cfg.Store.ResourcePath),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Store.Timeout}),
		client.WithHook(client.ChainHooks(client.LogHook(), client.MetricsHook(upstreamMetrics))),
	)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Exchanger:      proposalClient,
		APIKey:         cfg.Store.APIKey,
		DefaultToken:   cfg.Store.BearerToken(),
		Metrics:        upstreamMetrics,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	httpServer := server.New(router, ":"+cfg.Server.Port)
	log.Printf("listening on :%s (env=%s)", cfg.Server.Port, cfg.App.Environment)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	log.Println("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
	log.Println("Successful shutdown")
}
