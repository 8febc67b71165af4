package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/clueboard/internal/app"
)

type captured struct {
	mode string
	opts app.Options
}

func execute(t *testing.T, args ...string) (captured, error) {
	t.Helper()
	var got captured
	runTUI := func(_ context.Context, opts app.Options) error {
		got = captured{mode: "tui", opts: opts}
		return nil
	}
	runServe := func(_ context.Context, opts app.Options) error {
		got = captured{mode: "serve", opts: opts}
		return nil
	}
	cmd := newRootCmd(runTUI, runServe)
	cmd.SetArgs(args)
	cmd.SetOut(new(strings.Builder))
	err := cmd.ExecuteContext(context.Background())
	return got, err
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestRoot_DefaultsRunTerminal(t *testing.T) {
	home := isolate(t)

	got, err := execute(t)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got.mode != "tui" {
		t.Fatalf("mode = %q, want tui", got.mode)
	}
	cfg := got.opts.Config
	if cfg.CategoryCount != 6 || cfg.CluesPerCategory != 5 || cfg.PoolSize != 100 {
		t.Fatalf("counts = %d/%d/%d, want defaults", cfg.CategoryCount, cfg.CluesPerCategory, cfg.PoolSize)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if got.opts.Version != releaseVersion {
		t.Fatalf("Version = %q, want %q", got.opts.Version, releaseVersion)
	}
}

func TestRoot_FlagsOverrideConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("category_count = 4\nclues_per_category = 3\npool_size = 40\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := execute(t, "--config", path, "--clues", "2", "--load-timeout", "45s", "-v")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	cfg := got.opts.Config
	if cfg.CategoryCount != 4 {
		t.Fatalf("CategoryCount = %d, want 4 from file", cfg.CategoryCount)
	}
	if cfg.CluesPerCategory != 2 {
		t.Fatalf("CluesPerCategory = %d, want 2 from flag", cfg.CluesPerCategory)
	}
	if cfg.PoolSize != 40 {
		t.Fatalf("PoolSize = %d, want 40 from file", cfg.PoolSize)
	}
	if cfg.LoadTimeout != 45*time.Second {
		t.Fatalf("LoadTimeout = %s, want 45s", cfg.LoadTimeout)
	}
	if !got.opts.Verbose {
		t.Fatalf("Verbose = false, want true")
	}
}

func TestRoot_EnvironmentOverridesConfigFile(t *testing.T) {
	isolate(t)
	t.Setenv("CLUEBOARD_CATEGORIES", "3")
	t.Setenv("CLUEBOARD_API_BASE", "http://127.0.0.1:9999/api/")

	got, err := execute(t, "--categories", "5")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got.opts.Config.CategoryCount != 5 {
		t.Fatalf("CategoryCount = %d, want 5 (flag beats env)", got.opts.Config.CategoryCount)
	}
	if got.opts.Config.APIBase != "http://127.0.0.1:9999/api/" {
		t.Fatalf("APIBase = %q, want env value", got.opts.Config.APIBase)
	}
}

func TestServe_Listen(t *testing.T) {
	isolate(t)

	got, err := execute(t, "serve", "--listen", "0.0.0.0:9000", "--pool", "50")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got.mode != "serve" {
		t.Fatalf("mode = %q, want serve", got.mode)
	}
	if got.opts.Config.Listen != "0.0.0.0:9000" {
		t.Fatalf("Listen = %q, want %q", got.opts.Config.Listen, "0.0.0.0:9000")
	}
	if got.opts.Config.PoolSize != 50 {
		t.Fatalf("PoolSize = %d, want 50", got.opts.Config.PoolSize)
	}
}

func TestServe_ListenFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CLUEBOARD_LISTEN", "127.0.0.1:7000")

	got, err := execute(t, "serve")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got.opts.Config.Listen != "127.0.0.1:7000" {
		t.Fatalf("Listen = %q, want %q", got.opts.Config.Listen, "127.0.0.1:7000")
	}
}

func TestRoot_InvalidSettingsRejected(t *testing.T) {
	isolate(t)

	got, err := execute(t, "--categories", "6", "--pool", "2")
	if err == nil || !strings.Contains(err.Error(), "pool_size") {
		t.Fatalf("Execute error = %v, want pool_size validation error", err)
	}
	if got.mode != "" {
		t.Fatalf("runner called despite invalid settings")
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "extra"); err == nil {
		t.Fatalf("Execute with stray argument returned nil error")
	}
}

func TestLogs_PrintsFilteredTail(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "clueboard.log")
	content := `{"time":"2025-10-08T21:01:05Z","level":"DEBUG","msg":"click dropped"}
{"time":"2025-10-08T21:01:06Z","level":"INFO","msg":"game ready","clues":5}
{"time":"2025-10-08T21:01:07Z","level":"ERROR","msg":"game start failed"}
`
	if err := os.WriteFile(logPath, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := newRootCmd(nil, nil)
	out := new(strings.Builder)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"logs", "--log-file", logPath, "--level", "warn"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out.String(), "game start failed") {
		t.Fatalf("output = %q, want the error record", out.String())
	}
	if strings.Contains(out.String(), "game ready") || strings.Contains(out.String(), "click dropped") {
		t.Fatalf("output = %q, want records below warn dropped", out.String())
	}
}

func TestLogs_MissingFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "absent.log")

	cmd := newRootCmd(nil, nil)
	out := new(strings.Builder)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"logs", "--log-file", logPath})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out.String(), "no log records") {
		t.Fatalf("output = %q, want empty notice", out.String())
	}
}

func TestLogs_BadLevel(t *testing.T) {
	isolate(t)
	cmd := newRootCmd(nil, nil)
	cmd.SetOut(new(strings.Builder))
	cmd.SetArgs([]string{"logs", "--level", "loud"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("Execute with bad level returned nil error")
	}
}
