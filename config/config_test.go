package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/tradejournal/source"
	"github.com/google/go-cmp/cmp"
)

// clearEnv unsets every TJ_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, Prefix+"_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Config{
		TradesFile: "Trades.csv",
		Table:      "trades",
		JSONPath:   "$[*]",
		TopDays:    5,
		Currency:   "USD",
		LogLevel:   "info",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.Level(); got != slog.LevelInfo {
		t.Errorf("Level() = %v, want INFO", got)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	env := filepath.Join(t.TempDir(), ".env")
	content := "TJ_TRADES_FILE=journal.xlsx\nTJ_SHEET=2024\nTJ_TOP_DAYS=3\nTJ_LOG_LEVEL=debug\nTJ_TRACE=true\n"
	if err := os.WriteFile(env, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	// the environment wins over the file.
	t.Setenv("TJ_TOP_DAYS", "10")

	cfg, err := Load(env)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// godotenv sets variables for the whole process.
	t.Cleanup(func() {
		for _, name := range []string{"TJ_TRADES_FILE", "TJ_SHEET", "TJ_LOG_LEVEL", "TJ_TRACE"} {
			os.Unsetenv(name)
		}
	})

	if cfg.TradesFile != "journal.xlsx" || cfg.TopDays != 10 || !cfg.Trace {
		t.Errorf("Load() = %+v", cfg)
	}
	if got := cfg.Level(); got != slog.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", got)
	}
	want := source.Options{Sheet: "2024", Table: "trades", JSONPath: "$[*]"}
	if diff := cmp.Diff(want, cfg.SourceOptions()); diff != "" {
		t.Errorf("SourceOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, value, want string
	}{
		{"TJ_TOP_DAYS", "0", "TJ_TOP_DAYS must be at least 1"},
		{"TJ_TOP_DAYS", "many", "TJ_TOP_DAYS"},
		{"TJ_CURRENCY", "usd", "TJ_CURRENCY must be a three letters ISO 4217 code"},
		{"TJ_LOG_LEVEL", "verbose", "TJ_LOG_LEVEL must be one of: debug info warn error"},
		{"TJ_TRACE", "maybe", "TJ_TRACE"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.name, tt.value)
			_, err := Load(filepath.Join(t.TempDir(), ".env"))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}
