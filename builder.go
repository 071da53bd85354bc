package willowgui

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	defaultModalWidth  = 320
	defaultModalHeight = 320
)

// WindowBuilder collects the initial style of a window. The style only
// applies when the window is created; an existing window keeps the style
// it has in memory.
type WindowBuilder struct {
	g     *Gui
	title string
	modal bool
	style WindowStyle
}

// Window starts declaring an ordinary window. Call Show to declare it.
func (g *Gui) Window(title string) *WindowBuilder {
	return &WindowBuilder{g: g, title: title}
}

// ModalWindow starts declaring a modal window. Modal windows are centred
// on screen, are not resizable and do not scroll unless asked to. While
// one is declared no ordinary window receives input.
func (g *Gui) ModalWindow(title string) *WindowBuilder {
	b := &WindowBuilder{g: g, title: title, modal: true}
	return b.Resizable(false)
}

// TitleBar shows or hides the title bar.
func (b *WindowBuilder) TitleBar(v bool) *WindowBuilder {
	b.style.TitleBar = &v
	return b
}

// Resizable enables or disables the resize thumb.
func (b *WindowBuilder) Resizable(v bool) *WindowBuilder {
	b.style.Resizable = &v
	return b
}

// Scrollable enables or disables the scroll bar.
func (b *WindowBuilder) Scrollable(v bool) *WindowBuilder {
	b.style.Scrollable = &v
	return b
}

// Position sets the top-left corner. It is ignored for modal windows.
func (b *WindowBuilder) Position(x, y float64) *WindowBuilder {
	b.style.Position = &Vec2{x, y}
	return b
}

// Size sets the width and height.
func (b *WindowBuilder) Size(w, h float64) *WindowBuilder {
	b.style.Size = &Vec2{w, h}
	return b
}

// Show declares the window with contents built by fn.
func (b *WindowBuilder) Show(fn func(*Gui)) {
	b.g.showWindow(b.title, b.style, b.modal, fn)
}

func (g *Gui) showWindow(title string, style WindowStyle, modal bool, contents func(*Gui)) {
	mgr := g.windows
	scrollable := true
	if modal {
		mgr = g.modals
		scrollable = false
		size := Vec2{defaultModalWidth, defaultModalHeight}
		if style.Size != nil {
			size = *style.Size
		}
		style.Position = &Vec2{
			X: math.Round((g.screenW - size.X) / 2),
			Y: math.Round((g.screenH - size.Y) / 2),
		}
	}

	gwid := g.TitleToGwid(title)
	if g.store != nil && !g.memory.Has(gwid) {
		saved, ok, err := g.store.Load(gwid)
		switch {
		case err != nil:
			Logger().Warn("load window layout", "gwid", gwid, "err", err)
		case ok:
			style = saved
		}
	}
	slot := GetOrInit(g.memory, gwid, style)

	w, found := lookup[*Window](g, gwid, KindWindow)
	if !found {
		w = newWindow(g, g.ctx, gwid, title, slot, scrollable)
		g.register(w)
		mgr.AddNewWindow(w)
		if g.fadeIn > 0 {
			w.node.Alpha = 0
			g.Animate(TweenAlpha(w.node, 1, g.fadeIn, ease.Linear))
		}
	}
	w.style = slot
	g.markAlive(w)

	placer := NewPlacer(w.cursorPosition(), w.contentArea(), Vertical, g.sizes.Margin)
	g.enter(w, placer)
	prev := g.currentWindow
	g.currentWindow = w

	contents(g)

	g.currentWindow = prev
	g.leave()
	w.bounds = placer.Bounds
}
