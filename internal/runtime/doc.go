// Package runtime wires the job store, queue registry, and config into a
// single-node siphon instance. It exposes Open/Close, a health check, and
// accessors used by higher-level services.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
//	_ = rt.CheckHealth(context.Background())
//	rt.Registry().CreateQueue("email")
package runtime
