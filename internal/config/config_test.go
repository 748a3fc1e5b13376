package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	restore := overrideConfigEnv(tempDir)
	defer restore()

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	_ = os.Remove(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.Volume != DefaultVolume {
		t.Errorf("Volume = %d, want %d", cfg.Volume, DefaultVolume)
	}
	if cfg.Muted {
		t.Error("Muted should default to false")
	}
	if cfg.EditorCollapsed {
		t.Error("EditorCollapsed should default to false")
	}
	if cfg.WindowW != DefaultWidth {
		t.Errorf("WindowW = %d, want %d", cfg.WindowW, DefaultWidth)
	}
	if cfg.WindowH != DefaultHeight {
		t.Errorf("WindowH = %d, want %d", cfg.WindowH, DefaultHeight)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, got error: %v", path, err)
	}
}

func TestSaveAndReload(t *testing.T) {
	restore := overrideConfigEnv(t.TempDir())
	defer restore()

	cfg := newDefaultConfig()
	cfg.WindowW = 900
	cfg.WindowH = 700
	cfg.EditorCollapsed = true
	cfg.Muted = true
	cfg.Volume = 25
	cfg.WindowX, cfg.WindowY, cfg.WindowPosValid = 12, 34, true
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("reloaded config = %+v, want %+v", *got, *cfg)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	restore := overrideConfigEnv(t.TempDir())
	defer restore()

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	raw := `{"windowW": 100, "windowH": 0, "windowX": 40, "volume": 140, "muted": true}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.WindowW != MinWindowWidth {
		t.Errorf("WindowW = %d, want %d", cfg.WindowW, MinWindowWidth)
	}
	if cfg.WindowH != DefaultHeight {
		t.Errorf("WindowH = %d, want %d", cfg.WindowH, DefaultHeight)
	}
	if cfg.Volume != DefaultVolume {
		t.Errorf("Volume = %d, want %d", cfg.Volume, DefaultVolume)
	}
	if !cfg.Muted {
		t.Error("Muted should survive the load")
	}
	if !cfg.WindowPosValid {
		t.Error("a stored window position should be marked valid")
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	restore := overrideConfigEnv(t.TempDir())
	defer restore()

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load should fail on a malformed file")
	}
}

func overrideConfigEnv(tempDir string) func() {
	originals := map[string]string{
		"APPDATA":         os.Getenv("APPDATA"),
		"LOCALAPPDATA":    os.Getenv("LOCALAPPDATA"),
		"USERPROFILE":     os.Getenv("USERPROFILE"),
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"HOME":            os.Getenv("HOME"),
	}

	if runtime.GOOS == "windows" {
		os.Setenv("APPDATA", tempDir)
		os.Setenv("LOCALAPPDATA", tempDir)
		os.Setenv("USERPROFILE", tempDir)
	} else {
		xdg := filepath.Join(tempDir, "xdg")
		_ = os.MkdirAll(xdg, 0o755)
		os.Setenv("XDG_CONFIG_HOME", xdg)
		os.Setenv("HOME", tempDir)
	}

	return func() {
		for k, v := range originals {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}
}
