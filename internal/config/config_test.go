package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Terrain.Resolution != 256 {
		t.Errorf("expected resolution 256, got %d", cfg.Terrain.Resolution)
	}
	if cfg.Terrain.WorldSize != 100.0 {
		t.Errorf("expected world size 100, got %f", cfg.Terrain.WorldSize)
	}
	if cfg.Terrain.HeightMultiplier != 1.0 {
		t.Errorf("expected height multiplier 1, got %f", cfg.Terrain.HeightMultiplier)
	}
	if cfg.Terrain.MidGreyLowest {
		t.Error("expected mid_grey_lowest to be false by default")
	}

	if cfg.Brush.Size != 5.0 {
		t.Errorf("expected brush size 5, got %f", cfg.Brush.Size)
	}
	if cfg.Brush.Amount != 0.2 {
		t.Errorf("expected brush amount 0.2, got %f", cfg.Brush.Amount)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

terrain:
  resolution: 512
  world_size: 250.0
  height_multiplier: 2.5
  base_heightmap: "hills.png"
  base_amount: 20.0
  mid_grey_lowest: true

brush:
  size: 12.5
  amount: 0.75

logging:
  level: "debug"
  log_file: "sculptor.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Terrain.Resolution != 512 {
		t.Errorf("expected resolution 512, got %d", cfg.Terrain.Resolution)
	}
	if cfg.Terrain.WorldSize != 250.0 {
		t.Errorf("expected world size 250, got %f", cfg.Terrain.WorldSize)
	}
	if cfg.Terrain.BaseHeightmap != "hills.png" {
		t.Errorf("expected base heightmap hills.png, got %s", cfg.Terrain.BaseHeightmap)
	}
	if !cfg.Terrain.MidGreyLowest {
		t.Error("expected mid_grey_lowest to be true")
	}
	if cfg.Brush.Size != 12.5 {
		t.Errorf("expected brush size 12.5, got %f", cfg.Brush.Size)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadPartialFile(t *testing.T) {
	// Fields absent from the file keep their defaults.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
terrain:
  resolution: 128
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Terrain.Resolution != 128 {
		t.Errorf("expected resolution 128, got %d", cfg.Terrain.Resolution)
	}
	if cfg.Terrain.WorldSize != 100.0 {
		t.Errorf("expected default world size 100, got %f", cfg.Terrain.WorldSize)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Graphics.Width)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("graphics: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "saved", "config.yaml")

	cfg := Default()
	cfg.Terrain.Resolution = 1024
	cfg.Brush.Amount = 1.5

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Terrain.Resolution != 1024 {
		t.Errorf("expected resolution 1024 after round trip, got %d", loaded.Terrain.Resolution)
	}
	if loaded.Brush.Amount != 1.5 {
		t.Errorf("expected brush amount 1.5 after round trip, got %f", loaded.Brush.Amount)
	}
}
