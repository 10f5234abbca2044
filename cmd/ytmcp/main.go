// Package main provides the entry point for the ytmcp stdio MCP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raphaelgruber/ytmcp-go/internal/config"
	"github.com/raphaelgruber/ytmcp-go/internal/metrics"
	"github.com/raphaelgruber/ytmcp-go/internal/server"
	"github.com/raphaelgruber/ytmcp-go/internal/tools"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = cleanup() }()

	logger.Info("ytmcp starting",
		"version", version,
		"server_name", cfg.ServerName,
		"null_pair_compat", cfg.NullPairCompat,
		"thumbnail_quality", cfg.ThumbnailQuality,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	collector := metrics.NewCollector()
	reg := tools.NewRegistry(logger, collector)
	if err := tools.RegisterAll(reg, tools.DependenciesFromConfig(cfg, logger)); err != nil {
		logger.Error("failed to register tools", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg.ServerName, version, logger)
	srv.Setup()
	tools.Bind(srv.MCPServer(), reg)
	logger.Info("tools registered", "count", len(reg.Tools()))

	logger.Info("server ready, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	runErr := srv.Run(ctx)

	logger.Info("invocation stats", "stats", collector.Snapshot())

	if runErr != nil && ctx.Err() == nil {
		logger.Error("server error", "error", runErr)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
