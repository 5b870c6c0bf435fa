package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/bldgsim/osmodel-mcp/internal/config"
	"github.com/bldgsim/osmodel-mcp/internal/mcp"
	"github.com/bldgsim/osmodel-mcp/internal/results"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("OSModel MCP Server\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", results.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", results.DriverName)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Log to stderr (stdout reserved for MCP protocol)
	logger := initLogger(cfg.Server.LogLevel)
	logger.Info().
		Str("version", version).
		Str("workspace", cfg.Paths.WorkspaceRoot).
		Str("sqlite_driver", results.DriverName).
		Msg("OSModel MCP server starting")

	server, err := mcp.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create MCP server")
	}

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info().Msg("MCP server ready, listening on stdio")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	}

	logger.Info().Msg("server stopped")
}

func initLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
