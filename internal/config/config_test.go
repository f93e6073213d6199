package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateCreatesAndChecksDataDir(t *testing.T) {
	base := t.TempDir()
	dataDir := filepath.Join(base, "data")

	cfg := &Config{DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	info, err := os.Stat(dataDir)
	if err != nil {
		t.Fatalf("expected data dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be a directory", dataDir)
	}

	if _, err := os.Stat(filepath.Join(dataDir, ".write_test")); !os.IsNotExist(err) {
		t.Fatalf("expected write-test probe file to be cleaned up, stat err=%v", err)
	}
}

func TestLoadRequiresDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	t.Setenv("BIND_ADDR", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATA_DIR is unset")
	}
}
