package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Door choreography
	if cfg.Door.RecoilThreshold != 52 {
		t.Errorf("expected recoil threshold 52, got %v", cfg.Door.RecoilThreshold)
	}
	if cfg.Door.CompleteThreshold != 1.5 {
		t.Errorf("expected complete threshold 1.5, got %v", cfg.Door.CompleteThreshold)
	}
	if cfg.Door.Recoil.Smooth != 0.8 {
		t.Errorf("expected recoil smooth 0.8, got %v", cfg.Door.Recoil.Smooth)
	}
	if cfg.Door.Enter.Smooth != 1.6 {
		t.Errorf("expected enter smooth 1.6, got %v", cfg.Door.Enter.Smooth)
	}

	// Transition timings
	if cfg.Transition.TextDelay != 1500*time.Millisecond {
		t.Errorf("expected text delay 1.5s, got %v", cfg.Transition.TextDelay)
	}
	if cfg.Transition.SwapDelay != 4500*time.Millisecond {
		t.Errorf("expected swap delay 4.5s, got %v", cfg.Transition.SwapDelay)
	}
	if cfg.Transition.RevealDelay != 100*time.Millisecond {
		t.Errorf("expected reveal delay 100ms, got %v", cfg.Transition.RevealDelay)
	}

	// Cabin
	if cfg.Cabin.ModalDelay != 3*time.Second {
		t.Errorf("expected modal delay 3s, got %v", cfg.Cabin.ModalDelay)
	}
	if cfg.Cabin.PressDuration != 150*time.Millisecond {
		t.Errorf("expected press duration 150ms, got %v", cfg.Cabin.PressDuration)
	}
	if len(cfg.Cabin.Lights) != 9 {
		t.Errorf("expected 9 blinking lights, got %d", len(cfg.Cabin.Lights))
	}

	// Logging
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

door:
  recoil_threshold: 55
  enter:
    position: {x: 0, y: 6, z: -2}
    look_at: {x: 0, y: 6, z: -30}
    smooth: 2

cabin:
  modal_delay: 1s
  screen_on_color: "#112233"
  lights:
    - node: luz
      color: "#ffffff"
      speed: 1
      phase: 0.5

transition:
  swap_delay: 6s

content:
  path: "portfolio.json"
  watch: true

logging:
  level: "debug"
  log_file: "showcase.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Door.RecoilThreshold != 55 {
		t.Errorf("expected recoil threshold 55, got %v", cfg.Door.RecoilThreshold)
	}
	if cfg.Door.Enter.LookAt.Z != -30 {
		t.Errorf("expected enter look_at z -30, got %v", cfg.Door.Enter.LookAt.Z)
	}
	// Untouched keys keep their defaults.
	if cfg.Door.Recoil.Smooth != 0.8 {
		t.Errorf("expected recoil smooth to stay 0.8, got %v", cfg.Door.Recoil.Smooth)
	}
	if cfg.Cabin.ModalDelay != time.Second {
		t.Errorf("expected modal delay 1s, got %v", cfg.Cabin.ModalDelay)
	}
	if len(cfg.Cabin.Lights) != 1 || cfg.Cabin.Lights[0].Phase != 0.5 {
		t.Errorf("expected lights list to be replaced, got %+v", cfg.Cabin.Lights)
	}
	if cfg.Transition.SwapDelay != 6*time.Second {
		t.Errorf("expected swap delay 6s, got %v", cfg.Transition.SwapDelay)
	}
	if cfg.Content.Path != "portfolio.json" || !cfg.Content.Watch {
		t.Errorf("unexpected content config %+v", cfg.Content)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("door:\n  recoil_treshold: 40\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for unknown key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("expected empty file to be accepted, got %v", err)
	}
	if cfg.Door.RecoilThreshold != 52 {
		t.Errorf("expected defaults to survive, got %v", cfg.Door.RecoilThreshold)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Cabin.ScreenOnColor = "blue"
	cfg.Cabin.Lights[2].Color = "#zzzzzz"
	cfg.Door.Smooth = -1
	cfg.Door.CompleteThreshold = 60
	cfg.Run.Script = append(cfg.Run.Script, ScriptStep{Kind: "double-click", Target: "porta"})

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors, got nil")
	}
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor in %v", err)
	}
	if !errors.Is(err, ErrInvalidSmoothTime) {
		t.Errorf("expected ErrInvalidSmoothTime in %v", err)
	}
	if !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("expected ErrInvalidThreshold in %v", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#00aaff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 0 || c.B != 1 {
		t.Errorf("unexpected colour %+v", c)
	}
	if got := ColorOrBlack("nope"); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("expected black fallback, got %+v", got)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Door.RecoilThreshold = 53

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Door.RecoilThreshold != 53 {
		t.Errorf("expected recoil threshold 53, got %v", loaded.Door.RecoilThreshold)
	}
	if loaded.Transition.SwapDelay != cfg.Transition.SwapDelay {
		t.Errorf("expected swap delay %v, got %v", cfg.Transition.SwapDelay, loaded.Transition.SwapDelay)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "content and watch flags",
			setup: func() {
				*flagContent = "other.yaml"
				*flagWatch = true
			},
			verify: func(cfg *Config) {
				if cfg.Content.Path != "other.yaml" {
					t.Errorf("expected content path other.yaml, got %s", cfg.Content.Path)
				}
				if !cfg.Content.Watch {
					t.Error("expected watch to be enabled")
				}
			},
			teardown: func() {
				*flagContent = ""
				*flagWatch = false
			},
		},
		{
			name: "headless and duration flags",
			setup: func() {
				*flagHeadless = true
				*flagDuration = 3 * time.Second
			},
			verify: func(cfg *Config) {
				if !cfg.Run.Headless {
					t.Error("expected headless to be enabled")
				}
				if cfg.Run.Duration != 3*time.Second {
					t.Errorf("expected duration 3s, got %v", cfg.Run.Duration)
				}
			},
			teardown: func() {
				*flagHeadless = false
				*flagDuration = 0
			},
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("cabin:\n  screen_off_color: \"black\"\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}
