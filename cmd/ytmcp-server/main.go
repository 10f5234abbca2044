// Package main provides the streamable HTTP MCP server for the YouTube URL tools.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raphaelgruber/ytmcp-go/internal/config"
	"github.com/raphaelgruber/ytmcp-go/internal/metrics"
	"github.com/raphaelgruber/ytmcp-go/internal/server"
	"github.com/raphaelgruber/ytmcp-go/internal/tools"
)

const version = "0.1.0"

func main() {
	addrFlag := flag.String("addr", "", "listen address (overrides YTMCP_HTTP_ADDR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.HTTPAddr = *addrFlag
	}

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = cleanup() }()
	slog.SetDefault(logger)

	slog.Info("starting ytmcp-server", "addr", cfg.HTTPAddr, "version", version)

	collector := metrics.NewCollector()
	reg := tools.NewRegistry(logger, collector)
	if err := tools.RegisterAll(reg, tools.DependenciesFromConfig(cfg, logger)); err != nil {
		slog.Error("failed to register tools", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg.ServerName, version, logger)
	srv.Setup()
	tools.Bind(srv.MCPServer(), reg)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      newMux(srv, collector),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 0, // MCP event streams stay open
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("MCP endpoint available", "url", fmt.Sprintf("http://%s/mcp", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped", "stats", collector.Snapshot())
}

func newMux(srv *server.Server, collector *metrics.Collector) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/mcp", srv.HTTPHandler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(collector.Snapshot()); err != nil {
			slog.Warn("failed to encode stats", "error", err)
		}
	})

	return mux
}
