package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/efocats/efowizard/internal/config"
)

// settingsCmd builds a throwaway command carrying the root's persistent
// flags, bound to the same package variables, and parses args into it.
func settingsCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().StringVar(&cfgFile, "config", config.DefaultPath, "")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "")
	c.Flags().StringVar(&themeOverride, "theme", "", "")
	c.Flags().StringVar(&logFile, "log-file", "", "")
	c.Flags().BoolVar(&strict, "strict", false, "")
	t.Cleanup(func() {
		cfgFile, verbose, themeOverride, logFile, strict = config.DefaultPath, false, "", "", false
	})

	if err := c.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	var stderr bytes.Buffer
	c.SetErr(&stderr)
	return c, &stderr
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "efowizard.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings_LogFileWarnsWithoutVerbose(t *testing.T) {
	path := writeConfig(t, "log_file: w.log\n")
	c, stderr := settingsCmd(t, "--config", path)

	if _, err := loadSettings(c); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if !strings.Contains(stderr.String(), "warning: log_file is set") {
		t.Errorf("expected log_file warning, got %q", stderr.String())
	}
}

func TestLoadSettings_VerboseFlagSilencesLogFileWarning(t *testing.T) {
	path := writeConfig(t, "log_file: w.log\n")
	c, stderr := settingsCmd(t, "--config", path, "--verbose")

	cfg, err := loadSettings(c)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if !cfg.Verbose {
		t.Error("--verbose did not reach the config")
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no warning, got %q", stderr.String())
	}
}

func TestLoadSettings_LogFileFlagWarnsWithoutVerbose(t *testing.T) {
	path := writeConfig(t, "theme: dark\n")
	c, stderr := settingsCmd(t, "--config", path, "--log-file", filepath.Join(t.TempDir(), "w.log"))

	if _, err := loadSettings(c); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if !strings.Contains(stderr.String(), "warning: log_file is set") {
		t.Errorf("expected log_file warning for flag-supplied path, got %q", stderr.String())
	}
}
