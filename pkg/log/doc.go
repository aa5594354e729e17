// Package log provides siphon's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. It is backed by go.uber.org/zap; the
// facade keeps call sites decoupled from the backend and consistent across
// the codebase.
//
// Quick start
//
//	l := log.NewLogger(log.WithLevel(log.InfoLevel))
//	l = l.With(log.F("component", "server"))
//	l.Info("server started", log.F("addr", ":8080"))
//
// # Configuration
//
// Use ApplyConfig to build a logger from a declarative Config, supporting
// text or JSON encoding and a level name:
//
//	logger, err := log.ApplyConfig(&log.Config{Level: "debug", Format: "json"})
package log
