package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 900 {
		t.Errorf("expected width 900, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 620 {
		t.Errorf("expected height 620, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Sky.Turbidity != 4.0 {
		t.Errorf("expected turbidity 4.0, got %f", cfg.Sky.Turbidity)
	}
	if cfg.Sky.Albedo != [3]float32{0.1, 0.1, 0.1} {
		t.Errorf("expected albedo 0.1 per channel, got %v", cfg.Sky.Albedo)
	}

	if cfg.Camera.FOVDegrees != 70 {
		t.Errorf("expected fov 70, got %f", cfg.Camera.FOVDegrees)
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

sky:
  turbidity: 7.5
  albedo: [0.2, 0.25, 0.3]
  sun_speed: 1.2

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
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
	if cfg.Sky.Turbidity != 7.5 {
		t.Errorf("expected turbidity 7.5, got %f", cfg.Sky.Turbidity)
	}
	if cfg.Sky.Albedo != [3]float32{0.2, 0.25, 0.3} {
		t.Errorf("expected overridden albedo, got %v", cfg.Sky.Albedo)
	}

	// Unset sections keep defaults
	if cfg.Camera.FOVDegrees != 70 {
		t.Errorf("expected default fov, got %f", cfg.Camera.FOVDegrees)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestValidateClampsSkyParameters(t *testing.T) {
	cfg := Default()
	cfg.Sky.Turbidity = 42
	cfg.Sky.Albedo = [3]float32{-0.5, 0.5, 1.5}
	cfg.Validate()

	if cfg.Sky.Turbidity != 10 {
		t.Errorf("expected turbidity clamped to 10, got %f", cfg.Sky.Turbidity)
	}
	if cfg.Sky.Albedo != [3]float32{0, 0.5, 1} {
		t.Errorf("expected albedo clamped to [0,1], got %v", cfg.Sky.Albedo)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Sky.Turbidity = 2.5
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if loaded.Sky.Turbidity != 2.5 {
		t.Errorf("expected turbidity 2.5 after round trip, got %f", loaded.Sky.Turbidity)
	}
}
