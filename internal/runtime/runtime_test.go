package runtime

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	cfgpkg "github.com/mitchfriedman/siphon/internal/config"
)

func pebbleConfig(t *testing.T) cfgpkg.Config {
	t.Helper()
	cfg := cfgpkg.Default()
	cfg.Store = cfgpkg.StorePebble
	cfg.DataDir = t.TempDir()
	cfg.Fsync = "always"
	return cfg
}

func TestOpenCloseHealth(t *testing.T) {
	rt, err := Open(Options{Config: pebbleConfig(t)})
	if err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.Close()
	if err := rt.CheckHealth(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestOpenRedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := cfgpkg.Default()
	cfg.Redis.Addr = mr.Addr()

	rt, err := Open(Options{Config: cfg})
	if err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.Close()
	if err := rt.CheckHealth(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := cfgpkg.Default()
	cfg.Store = "etcd"
	if _, err := Open(Options{Config: cfg}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestOpenBadFsyncMode(t *testing.T) {
	cfg := pebbleConfig(t)
	cfg.Fsync = "sometimes"
	if _, err := Open(Options{Config: cfg}); err == nil {
		t.Fatalf("expected error for bad fsync mode")
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	rt, err := Open(Options{Config: pebbleConfig(t)})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rt.Close()
	ctx := context.Background()

	rt.Registry().CreateQueue("jobs")
	if err := rt.Registry().Enqueue(ctx, "jobs", "k1", map[string]string{"a": "1"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	job, err := rt.Registry().Dequeue(ctx, "jobs")
	if err != nil || job.Key != "k1" {
		t.Fatalf("dequeue: key=%q err=%v", job.Key, err)
	}
}
