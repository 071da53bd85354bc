package willowgui

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("title: demo\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := DefaultConfig()
	want.Title = "demo"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	data := []byte(`
screen_width: 800
screen_height: 600
font_size: 16
sizes:
  margin: 6
theme:
  text: "#ff000080"
log_level: debug
fade_in: 0.25
debug: true
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.ScreenWidth != 800 || cfg.ScreenHeight != 600 || cfg.FontSize != 16 {
		t.Errorf("screen/font = %dx%d %v, want 800x600 16", cfg.ScreenWidth, cfg.ScreenHeight, cfg.FontSize)
	}
	if cfg.Sizes.Margin != 6 || cfg.Sizes.ScrollBarWidth != 12 {
		t.Errorf("sizes = %+v, want margin 6 and default scroll bar width", cfg.Sizes)
	}
	if got := cfg.Theme.Text.Hex(); got != "#ff000080" {
		t.Errorf("theme text = %s, want #ff000080", got)
	}
	if cfg.Theme.Button != DefaultTheme().Button {
		t.Error("unset theme color lost its default")
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level = %v, %v; want DEBUG, nil", level, err)
	}
	if len(cfg.Options()) != 5 {
		t.Errorf("len(Options) = %d, want 5 with fade-in", len(cfg.Options()))
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "screen_width: [1"},
		{"zero width", "screen_width: 0"},
		{"negative height", "screen_height: -5"},
		{"zero font", "font_size: 0"},
		{"negative fade", "fade_in: -1"},
		{"unknown level", "log_level: loud"},
		{"bad color", "theme:\n  text: nope"},
		{"negative margin", "sizes:\n  margin: -1"},
		{"narrow scroll bar", "sizes:\n  scroll_bar_width: 6"},
		{"zero resize thumb", "sizes:\n  resize_thumb_height: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); err == nil {
				t.Error("ParseConfig succeeded, want error")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.yaml")
	if err := os.WriteFile(path, []byte("title: from file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "from file" {
		t.Errorf("Title = %q, want %q", cfg.Title, "from file")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig of a missing file succeeded")
	}
}

func TestConfigLevelDefault(t *testing.T) {
	level, err := DefaultConfig().Level()
	if err != nil || level != slog.LevelInfo {
		t.Errorf("Level = %v, %v; want INFO, nil", level, err)
	}
}

func TestConfigLoadFont(t *testing.T) {
	cfg := DefaultConfig()
	f, err := cfg.LoadFont()
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Size() != 14 {
		t.Errorf("Size = %v, want 14", f.Size())
	}

	cfg.FontPath = filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := cfg.LoadFont(); err == nil {
		t.Error("LoadFont of a missing file succeeded")
	}
}

func TestNewHost(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScreenWidth, cfg.ScreenHeight = 800, 600
	cfg.LayoutStore = filepath.Join(t.TempDir(), "layout.db")

	var ticks int
	h, err := NewHost(cfg, func(g *Gui) {
		ticks++
		g.ModalWindow("M").Show(func(*Gui) {})
	})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	defer h.Close()

	if w, hgt := h.Layout(1, 1); w != 800 || hgt != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", w, hgt)
	}
	if err := h.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
	m := mustLookup[*Window](t, h.Gui(), "M", KindWindow)
	if got := m.Position(); got != (Vec2{240, 140}) {
		t.Errorf("modal position = %v, want {240 140}", got)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewHostInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FontSize = 0
	if _, err := NewHost(cfg, func(*Gui) {}); err == nil {
		t.Error("NewHost accepted an invalid config")
	}
}
