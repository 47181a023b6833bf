package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("MENTIONGRAPH_DB", "")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("MENTIONGRAPH_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nested", "mentiongraph.yaml")
	cfg := Default()
	cfg.Analysis.TopN = 5
	cfg.Corpus.Path = "posts.json"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Analysis.TopN != 5 || got.Corpus.Path != "posts.json" || got.Analysis.Workers != 4 {
		t.Fatalf("unexpected config: %+v", got)
	}
}

func TestLoadFillsDefaultsAndEnv(t *testing.T) {
	t.Setenv("METRICS_ADDR", ":9999")
	t.Setenv("MENTIONGRAPH_LOG_LEVEL", "warn")
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("analysis:\n  topN: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.DBPath != "./mentiongraph.db" {
		t.Fatalf("default dbPath lost: %q", cfg.Storage.DBPath)
	}
	if cfg.Metrics.Addr != ":9999" || cfg.Logging.Level != "warn" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestValidateRejectsNegatives(t *testing.T) {
	cfg := Default()
	cfg.Analysis.Workers = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative workers")
	}
	cfg = Default()
	cfg.Logging.Level = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
