package config

import (
	"path/filepath"
	"testing"

	"github.com/pipech/readable-tailwind/internal/reflow"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Reflow.MaxWidth != 80 {
		t.Errorf("expected MaxWidth=80, got %d", cfg.Reflow.MaxWidth)
	}
	if cfg.Reflow.GroupPolicy != string(reflow.GroupEmptyLine) {
		t.Errorf("expected GroupPolicy=emptyLine, got %s", cfg.Reflow.GroupPolicy)
	}
	if !cfg.Reflow.AllowMultiline {
		t.Error("expected AllowMultiline=true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".twfmt.yaml")

	cfg := DefaultConfig()
	cfg.Reflow.MaxWidth = 100
	cfg.Reflow.GroupPolicy = string(reflow.GroupNewLine)

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Reflow.MaxWidth != 100 {
		t.Errorf("expected MaxWidth=100, got %d", loaded.Reflow.MaxWidth)
	}
	if loaded.Reflow.GroupPolicy != string(reflow.GroupNewLine) {
		t.Errorf("expected GroupPolicy=newLine, got %s", loaded.Reflow.GroupPolicy)
	}
}

func TestConfig_LoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Reflow.MaxWidth != 80 {
		t.Errorf("expected defaults, got MaxWidth=%d", cfg.Reflow.MaxWidth)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TWFMT_MAX_WIDTH", "120")
	t.Setenv("TWFMT_GROUP_POLICY", "never")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Reflow.MaxWidth != 120 {
		t.Errorf("expected MaxWidth=120, got %d", cfg.Reflow.MaxWidth)
	}
	if cfg.Reflow.GroupPolicy != "never" {
		t.Errorf("expected GroupPolicy=never, got %s", cfg.Reflow.GroupPolicy)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Reflow.GroupPolicy = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bad group policy")
	}

	cfg = DefaultConfig()
	cfg.Reflow.Indent = "zero"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bad indent")
	}

	cfg = DefaultConfig()
	cfg.Reflow.MaxWidth = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero width")
	}
}

func TestConfig_ReflowOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Reflow.Indent = "tab"
	cfg.Reflow.MaxTokensPerLine = 3

	opts := cfg.ReflowOptions()
	if opts.IndentUnit != "\t" {
		t.Errorf("expected tab indent, got %q", opts.IndentUnit)
	}
	if opts.MaxTokensPerLine != 3 {
		t.Errorf("expected MaxTokensPerLine=3, got %d", opts.MaxTokensPerLine)
	}
	if opts.GroupPolicy != reflow.GroupEmptyLine {
		t.Errorf("expected emptyLine policy, got %s", opts.GroupPolicy)
	}
}

func TestConfig_PathFilters(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Excluded("web/node_modules/pkg/index.js") {
		t.Error("node_modules path must be excluded")
	}
	if cfg.Excluded("web/src/index.js") {
		t.Error("source path must not be excluded")
	}
	if !cfg.WantsExtension("a/b/App.tsx") {
		t.Error(".tsx must be wanted")
	}
	if cfg.WantsExtension("a/b/main.go") {
		t.Error(".go must not be wanted")
	}
}
