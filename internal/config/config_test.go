package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.UsageCommand != DefaultUsageCommand {
		t.Errorf("UsageCommand = %q, want %q", cfg.UsageCommand, DefaultUsageCommand)
	}
	if cfg.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", cfg.Language, DefaultLanguage)
	}
	if cfg.Thresholds.HighCostPerHour != DefaultThresholds.HighCostPerHour {
		t.Errorf("HighCostPerHour = %v, want %v", cfg.Thresholds.HighCostPerHour, DefaultThresholds.HighCostPerHour)
	}
	if cfg.Output.Width != DefaultOutput.Width {
		t.Errorf("Width = %d, want %d", cfg.Output.Width, DefaultOutput.Width)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
language: zh-CN
usage_command: mycost
tool_weights:
  Edit: 25
thresholds:
  high_cost_per_hour: 9.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Language != "zh-CN" {
		t.Errorf("Language = %q, want zh-CN", cfg.Language)
	}
	if cfg.UsageCommand != "mycost" {
		t.Errorf("UsageCommand = %q, want mycost", cfg.UsageCommand)
	}
	if cfg.ToolWeights["Edit"] != 25 {
		t.Errorf("ToolWeights[Edit] = %v, want 25", cfg.ToolWeights["Edit"])
	}
	if cfg.Thresholds.HighCostPerHour != 9.5 {
		t.Errorf("HighCostPerHour = %v, want 9.5", cfg.Thresholds.HighCostPerHour)
	}
	// Unset keys keep their defaults.
	if cfg.SourceDir == "" {
		t.Error("SourceDir should fall back to the default")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in this environment")
	}

	if got := expandPath("~/exports"); got != filepath.Join(home, "exports") {
		t.Errorf("expandPath = %q, want under home", got)
	}
	if got := expandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("expandPath = %q, want unchanged", got)
	}
}
