package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/skytrack/skytrack-mcp/pkg/config"
	"github.com/skytrack/skytrack-mcp/pkg/handlers"
	mcpserver "github.com/skytrack/skytrack-mcp/pkg/mcp"
	"github.com/skytrack/skytrack-mcp/pkg/mcp/tools"
	"github.com/skytrack/skytrack-mcp/pkg/metrics"
	"github.com/skytrack/skytrack-mcp/pkg/middleware"
	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("transport", cfg.Transport),
		zap.String("upstream", cfg.N2YO.BaseURL),
		zap.String("version", cfg.Version))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	upstream := metrics.NewUpstream(registry)

	client, err := n2yo.New(cfg.N2YO.APIKey, logger,
		n2yo.WithBaseURL(cfg.N2YO.BaseURL),
		n2yo.WithMetrics(upstream))
	if err != nil {
		logger.Fatal("Failed to construct N2YO client; set N2YO_API_KEY", zap.Error(err))
	}

	mcpServer := mcpserver.NewServer("skytrack-mcp", cfg.Version, logger)
	tools.RegisterSatelliteTools(mcpServer.MCP(), &tools.SatelliteToolDeps{
		Client:  client,
		Logger:  logger,
		Version: cfg.Version,
	})
	mcpserver.RegisterResources(mcpServer, client)

	switch cfg.Transport {
	case config.TransportStdio:
		logger.Info("Serving MCP over stdio")
		if err := mcpServer.ServeStdio(); err != nil {
			logger.Fatal("Stdio server failed", zap.Error(err))
		}

	case config.TransportHTTP:
		mux := http.NewServeMux()

		healthHandler := handlers.NewHealthHandler(cfg, logger)
		healthHandler.RegisterRoutes(mux)

		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		mcpHTTP := middleware.MCPRequestLogger(logger)(mcpServer.NewStreamableHTTPServer())
		mux.Handle("/mcp", mcpHTTP)

		addr := cfg.BindAddr + ":" + cfg.Port
		logger.Info("Serving MCP over HTTP", zap.String("addr", addr))
		handler := middleware.RequestLogger(logger)(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}
}

// buildLogger returns a production JSON logger, or a console logger for
// local development. Both write to stderr, keeping stdout free for the
// stdio MCP transport.
func buildLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
