package willowgui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host is an ebiten.Game that runs a Gui on its own Scene. Each Update
// dispatches pointer input, then runs one Gui tick with the UI function.
type Host struct {
	cfg   Config
	scene *Scene
	gui   *Gui
	store *LayoutStore
	ui    func(*Gui)
}

// NewHost builds the scene, font, logger and layout store cfg describes.
// Call Close when done.
func NewHost(cfg Config, ui func(*Gui)) (*Host, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	font, err := cfg.LoadFont()
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		level, err := cfg.Level()
		if err != nil {
			return nil, err
		}
		SetLogger(slog.New(NewLogHandler(os.Stderr, level)))
	}

	h := &Host{cfg: cfg, scene: NewScene(), ui: ui}
	h.scene.SetDebugMode(cfg.Debug)

	opts := cfg.Options()
	if cfg.LayoutStore != "" {
		h.store, err = OpenLayoutStore(cfg.LayoutStore)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLayoutStore(h.store))
	}
	h.gui = NewGui(h.scene.Root(), font, opts...)
	return h, nil
}

// Scene returns the host's scene.
func (h *Host) Scene() *Scene { return h.scene }

// Gui returns the host's Gui.
func (h *Host) Gui() *Gui { return h.gui }

// Update implements ebiten.Game.
func (h *Host) Update() error {
	h.scene.Update()
	h.gui.Run(h.ui)
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.scene.Draw(screen)
}

// Layout implements ebiten.Game. The logical screen keeps the configured
// size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.cfg.ScreenWidth, h.cfg.ScreenHeight
}

// Close closes the layout store, if any.
func (h *Host) Close() error {
	if h.store == nil {
		return nil
	}
	return h.store.Close()
}

// Run opens a window and runs ui every tick until the window closes.
func Run(cfg Config, ui func(*Gui)) error {
	h, err := NewHost(cfg, ui)
	if err != nil {
		return err
	}
	defer h.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("willowgui: run: %w", err)
	}
	return nil
}
