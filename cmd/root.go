// Package cmd implements the efowizard CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/efocats/efowizard/internal/config"
	"github.com/efocats/efowizard/internal/logging"
	"github.com/efocats/efowizard/internal/wizard"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string
	logFile       string
	strict        bool
)

var rootCmd = &cobra.Command{
	Use:   "efowizard",
	Short: "efowizard — three-step sign-up form in the terminal",
	Long:  "efowizard collects a name, email, area and plan through a three-step wizard. Nothing is stored once it exits.",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "only accept areas and plans from the catalog")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(catalogCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("efowizard %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings merges the config file, the environment and any flags
// set on cmd, in that order of precedence (flags win).
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeOverride
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = logFile
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("strict") {
		cfg.StrictOptions = strict
	}

	for _, w := range cfg.Warnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return cfg, nil
}

// openLogger returns a session logger writing to cfg.LogFile, or to
// fallback when no file is configured. The returned closer is never nil.
func openLogger(cfg *config.Config, fallback io.Writer) (logging.Logger, func() error, error) {
	w, closer := fallback, func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
		}
		w, closer = f, f.Close
	}
	return logging.NewJSONLogger(w, cfg.Verbose).ForSession(), closer, nil
}

func validatorFor(cfg *config.Config) wizard.Validator {
	if cfg.StrictOptions {
		return wizard.Strict
	}
	return wizard.Permissive
}
