package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	clientcmd "github.com/mitchfriedman/siphon/internal/cmd/client"
	serverrun "github.com/mitchfriedman/siphon/internal/cmd/server"
	cfgpkg "github.com/mitchfriedman/siphon/internal/config"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var apiFlag string

func main() {
	// Best effort; config comes from flags/env/file either way.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "siphon",
		Short: "Siphon work queue CLI",
		Long:  "Siphon is a minimal durable work queue service. This CLI manages the server and basic queue operations.",
	}
	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "HTTP API base URL (defaults to $SIPHON_API or http://127.0.0.1:8080)")

	rootCmd.AddCommand(newServerCommand())
	rootCmd.AddCommand(clientcmd.NewQueueCommand(apiURL))
	rootCmd.AddCommand(newVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServerCommand() *cobra.Command {
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the siphon server",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = cfgpkg.DefaultPath()
			}
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgpkg.FromEnv(&cfg)

			// Explicit flags override file and environment.
			if cmd.Flags().Changed("http-addr") {
				cfg.HTTPAddr, _ = cmd.Flags().GetString("http-addr")
			}
			if cmd.Flags().Changed("store") {
				cfg.Store, _ = cmd.Flags().GetString("store")
			}
			if cmd.Flags().Changed("redis-addr") {
				cfg.Redis.Addr, _ = cmd.Flags().GetString("redis-addr")
			}
			if cmd.Flags().Changed("redis-db") {
				cfg.Redis.DB, _ = cmd.Flags().GetInt("redis-db")
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
			}
			if cmd.Flags().Changed("fsync") {
				cfg.Fsync, _ = cmd.Flags().GetString("fsync")
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{Config: cfg}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serverStartCmd.Flags().String("config", "", "Config file path, JSON or YAML (default $SIPHON_CONFIG or ~/.siphon/config.yaml)")
	serverStartCmd.Flags().String("http-addr", ":8080", "HTTP listen address")
	serverStartCmd.Flags().String("store", "redis", "Job store backend: redis|pebble")
	serverStartCmd.Flags().String("redis-addr", "localhost:6379", "Redis address")
	serverStartCmd.Flags().Int("redis-db", 0, "Redis database number")
	serverStartCmd.Flags().String("data-dir", "", "Data directory for the pebble store (OS-specific default when empty)")
	serverStartCmd.Flags().String("fsync", "interval", "Pebble fsync mode: always|interval|never")
	serverStartCmd.Flags().String("log-level", "", "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", "", "Log format: text|json")
	serverCmd.AddCommand(serverStartCmd)
	return serverCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "siphon", version)
		},
	}
}

func apiURL() string {
	if apiFlag != "" {
		return apiFlag
	}
	if v := os.Getenv("SIPHON_API"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}
