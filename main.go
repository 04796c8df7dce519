package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"library-catalog/config"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     *config.Config
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "library-catalog",
		Short:         "In-memory library catalog manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			setupLogger(cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: ./catalog.yaml)")
	root.AddCommand(replCmd(), demoCmd(), hashPasswordCmd())
	return root
}

// setupLogger configures the default slog logger from the configured
// level. Only the front-end logs; the library package stays silent.
func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))

	if lvl == slog.LevelInfo && !isKnownLevel(level) {
		slog.Warn("invalid log level configured, using info", "configured_level", level)
	}
}

func isKnownLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
