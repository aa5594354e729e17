package serverrun

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	cfgpkg "github.com/mitchfriedman/siphon/internal/config"
	"github.com/mitchfriedman/siphon/internal/runtime"
	httpserver "github.com/mitchfriedman/siphon/internal/server/http"
	logpkg "github.com/mitchfriedman/siphon/pkg/log"
)

// Options for running the server.
type Options struct {
	Config cfgpkg.Config
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Layer a local signal context over the provided one so Run behaves for
	// callers that don't pass a signal-aware context.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logpkg.ApplyConfig(&opts.Config.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if opts.Config.DataDir == "" {
		opts.Config.DataDir = cfgpkg.DefaultDataDir()
	}

	rt, err := runtime.Open(runtime.Options{Config: opts.Config, Logger: logger})
	if err != nil {
		return err
	}
	defer rt.Close()

	logger.Info("starting siphon server",
		logpkg.F("http", opts.Config.HTTPAddr),
		logpkg.F("store", opts.Config.Store),
		logpkg.F("level", opts.Config.Log.Level),
		logpkg.F("format", opts.Config.Log.Format),
	)

	hsrv := httpserver.New(rt, logger)
	if err := hsrv.ListenAndServe(sctx, opts.Config.HTTPAddr); err != nil && sctx.Err() == nil {
		return err
	}

	logger.Info("siphon server stopped")
	return nil
}
