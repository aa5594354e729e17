package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	logpkg "github.com/mitchfriedman/siphon/pkg/log"
)

// Job store backends selectable via Config.Store.
const (
	StoreRedis  = "redis"
	StorePebble = "pebble"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	HTTPAddr string        `json:"httpAddr" yaml:"httpAddr"`
	Store    string        `json:"store" yaml:"store"`
	Redis    RedisConfig   `json:"redis" yaml:"redis"`
	DataDir  string        `json:"dataDir" yaml:"dataDir"`
	Fsync    string        `json:"fsync" yaml:"fsync"`
	Log      logpkg.Config `json:"log" yaml:"log"`
	HTTP     HTTPConfig    `json:"http" yaml:"http"`
}

// RedisConfig locates the Redis job store.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// HTTPConfig tunes the HTTP listener.
type HTTPConfig struct {
	RateLimitPerMinute int      `json:"rateLimitPerMinute" yaml:"rateLimitPerMinute"`
	CORSOrigins        []string `json:"corsOrigins" yaml:"corsOrigins"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		Store:    StoreRedis,
		Redis:    RedisConfig{Addr: "localhost:6379"},
		DataDir:  DefaultDataDir(),
		Fsync:    "interval",
		Log:      logpkg.Config{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
