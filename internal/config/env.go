package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays SIPHON_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("SIPHON_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("SIPHON_STORE_BACKEND"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("SIPHON_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SIPHON_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SIPHON_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = n
		}
	}
	if v := os.Getenv("SIPHON_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("SIPHON_FSYNC"); v != "" {
		cfg.Fsync = v
	}
	if v := os.Getenv("SIPHON_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SIPHON_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("SIPHON_HTTP_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("SIPHON_CORS_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		cfg.HTTP.CORSOrigins = nil
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.HTTP.CORSOrigins = append(cfg.HTTP.CORSOrigins, p)
			}
		}
	}
}
