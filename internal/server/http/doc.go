// Package httpserver provides the JSON REST gateway for siphon: queue
// management, the enqueue/dequeue protocol, health, and Prometheus
// metrics.
//
// Example:
//
//	rt, _ := runtime.Open(runtime.Options{Config: config.Default()})
//	s := httpserver.New(rt, logger)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":8080")
package httpserver
