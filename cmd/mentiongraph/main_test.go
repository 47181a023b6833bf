package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mentiongraph/internal/config"
)

func TestSourcePrefersCorpusFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "posts.json")
	body := `[{"id":1,"author":"alice","text":"@bob","timestamp":"2016-02-17T10:00:00Z"}]`
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(dir, "unused.db")
	src, closeFn, err := source(cfg, file)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	posts, err := src.LoadPosts(context.Background(), time.Time{}, time.Time{})
	if err != nil || len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d err=%v", len(posts), err)
	}
	if _, err := os.Stat(cfg.Storage.DBPath); !os.IsNotExist(err) {
		t.Fatalf("store should not be opened when a corpus file is given")
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("MENTIONGRAPH_LOG_LEVEL", "")
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Analysis.Workers != config.Default().Analysis.Workers {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigMissingFileValidatesEnv(t *testing.T) {
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("MENTIONGRAPH_LOG_LEVEL", "chatty")
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected invalid log level from env to be rejected")
	}
}
