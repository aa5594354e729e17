package runtime

import (
	"context"
	"errors"
	"fmt"

	cfgpkg "github.com/mitchfriedman/siphon/internal/config"
	"github.com/mitchfriedman/siphon/internal/metrics"
	"github.com/mitchfriedman/siphon/internal/queue"
	"github.com/mitchfriedman/siphon/internal/store"
	pebblestore "github.com/mitchfriedman/siphon/internal/store/pebble"
	redisstore "github.com/mitchfriedman/siphon/internal/store/redis"
	logpkg "github.com/mitchfriedman/siphon/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	Logger logpkg.Logger
}

// Runtime wires the job store, queue registry, and config for a
// single-node instance.
type Runtime struct {
	config   cfgpkg.Config
	logger   logpkg.Logger
	store    store.Store
	registry *queue.Registry
}

// Open connects the configured job store backend and returns a Runtime.
func Open(opts Options) (*Runtime, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewNop()
	}

	st, err := openStore(opts.Config)
	if err != nil {
		return nil, err
	}
	logger.Info("job store open", logpkg.F("backend", opts.Config.Store))

	return &Runtime{
		config:   opts.Config,
		logger:   logger,
		store:    st,
		registry: queue.NewRegistry(st),
	}, nil
}

func openStore(cfg cfgpkg.Config) (store.Store, error) {
	switch cfg.Store {
	case cfgpkg.StoreRedis:
		return redisstore.Open(redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), nil
	case cfgpkg.StorePebble:
		mode, err := pebblestore.ParseFsyncMode(cfg.Fsync)
		if err != nil {
			return nil, err
		}
		db, err := pebblestore.Open(pebblestore.Options{
			DataDir: cfg.DataDir,
			Fsync:   mode,
			Metrics: metrics.StoreHook{},
		})
		if err != nil {
			return nil, err
		}
		return pebblestore.NewStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

// CheckHealth reports whether the job store is reachable.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.store == nil {
		return errors.New("store not open")
	}
	return r.store.Ping(ctx)
}

// Registry returns the queue registry. There is exactly one per Runtime.
func (r *Runtime) Registry() *queue.Registry { return r.registry }

// Store exposes the underlying job store (internal use only).
func (r *Runtime) Store() store.Store { return r.store }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Logger returns the runtime's base logger.
func (r *Runtime) Logger() logpkg.Logger { return r.logger }
