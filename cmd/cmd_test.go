package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/sitestamp/internal/clock"
	"github.com/marcus/sitestamp/internal/config"
	"github.com/marcus/sitestamp/internal/output"
)

var fixedTime = time.Date(2024, 3, 7, 9, 5, 3, 0, time.Local)

const fixedRecord = "{\n    \"updated\": \"2024-03-07 09:05:03\"\n}"

// saveAndRestoreGlobals pins the clock and restores package state on cleanup.
func saveAndRestoreGlobals(t *testing.T) {
	t.Helper()
	origClk := clk
	origCfg := cfg
	origOut := output.Writer()
	origLogger := slog.Default()
	clk = clock.NewFixed(fixedTime)
	t.Cleanup(func() {
		clk = origClk
		cfg = origCfg
		output.SetWriter(origOut)
		slog.SetDefault(origLogger)
	})
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
}

// runCmd executes a fresh command tree and returns stdout and stderr.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// newSite lays out site/scripts and site/data and returns the site root.
func newSite(t *testing.T) string {
	t.Helper()
	site := t.TempDir()
	for _, d := range []string{"scripts", "data"} {
		if err := os.Mkdir(filepath.Join(site, d), 0755); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}
	return site
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
