package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/NVIDIA/path-follower/pkg/follower"
	"github.com/NVIDIA/path-follower/pkg/logging"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/pose"
	"github.com/NVIDIA/path-follower/pkg/server"
)

const (
	name           = "followerd"
	versionDefault = "dev"

	// EnvOptionsFile names the options file loaded at startup.
	EnvOptionsFile = "FOLLOWER_OPTIONS"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/path-follower/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the options named by FOLLOWER_OPTIONS, sets up
// routes, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	optsPath := os.Getenv(EnvOptionsFile)
	opts, err := options.Load(optsPath)
	if err != nil {
		slog.Error("failed to load options", "path", optsPath, "error", err)
		return err
	}

	cfg := server.NewConfig()
	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithReadinessCheck(follower.CheckReady),
		server.WithHandler(routes(NewHandler(opts, pose.NewBuffer(), cfg.MaxBodyBytes))),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func routes(h *Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/construct":  h.HandleConstruct,
		"/v1/components": h.HandleComponents,
	}
}
