// Package serverrun boots a siphon server from a resolved configuration:
// logger, runtime, and HTTP listener, with graceful shutdown on SIGINT or
// SIGTERM. The CLI resolves flags/env/config-file precedence before
// calling Run.
package serverrun
