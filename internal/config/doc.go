// Package config provides loading and environment overlay for siphon
// configuration. It exposes a Default() baseline, Load() for JSON/YAML
// files, and FromEnv() for SIPHON_* overrides. Precedence is defaults,
// then file, then environment, then command-line flags.
//
// Example:
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	config.FromEnv(&cfg)
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
package config
