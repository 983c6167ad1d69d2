package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if !cfg.Simplify.Enabled {
		t.Fatal("expected simplify to be enabled by default")
	}
	if cfg.Resolve.ReportUnusedImports {
		t.Fatal("expected unused-import reporting to be off by default")
	}
}

func TestValidateRejectsEmptyLabel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Simplify.Label = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an empty simplify label")
	}
}

func TestLoadAppliesProjectConfigOverDefaults(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	t.Setenv("HOME", dir)

	toml := "[simplify]\nenabled = false\nlabel = \"final\"\n"
	if err := os.WriteFile(filepath.Join(dir, "dingoc.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	if cfg.Simplify.Enabled {
		t.Fatal("expected project config to disable simplify")
	}
	if cfg.Simplify.Label != "final" {
		t.Fatalf("expected label %q, got %q", "final", cfg.Simplify.Label)
	}
}

func TestLoadOverrideWinsOverProjectConfig(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	t.Setenv("HOME", dir)

	toml := "[simplify]\nlabel = \"final\"\n"
	if err := os.WriteFile(filepath.Join(dir, "dingoc.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(&Config{Simplify: SimplifyConfig{Label: "override"}})
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	if cfg.Simplify.Label != "override" {
		t.Fatalf("expected override label to win, got %q", cfg.Simplify.Label)
	}
}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	return func() { os.Chdir(orig) }
}
