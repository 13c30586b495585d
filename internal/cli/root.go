package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	skynet "gopkg.in/vansante/go-skynet.v1"
	"gopkg.in/vansante/go-skynet.v1/internal/config"
)

// app holds what the subcommands share after the root command has set up
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// Execute runs the skylink command and exits non-zero on failure
func Execute() {
	cmd := newRootCmd(skynet.NewEnvOrigin())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(env skynet.Environment) *cobra.Command {
	var (
		configPath string
		portal     string
		debug      bool
	)
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:          "skylink",
		Short:        "Extract skylinks and build Skynet portal URLs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), debug)

			cfg, err := config.Load(configPath)
			if err != nil {
				a.logger.Error("skylink.Command: Error loading config", "path", configPath, "error", err)
				return err
			}
			cfg = cfg.WithEnvironment(env)
			if portal != "" {
				cfg.Portal = portal
			}
			a.cfg = cfg

			a.logger.Debug("skylink.Command: Configured", "portal", cfg.Portal, "config", configPath,
				"apiKeySet", cfg.Options.APIKey != "", "customUserAgent", cfg.Options.CustomUserAgent)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (optional)")
	cmd.PersistentFlags().StringVarP(&portal, "portal", "p", "", "Portal URL (overrides config and "+skynet.EnvPortalURL+")")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(parseCmd(a), urlCmd(a), randCmd(a))
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
