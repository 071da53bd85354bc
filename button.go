package willowgui

import "math"

const buttonPadding = 4

// Button is a push button. It reports a click once, on the tick after the
// pointer is released.
type Button struct {
	widgetBase
	clicked bool
	pressed bool
}

// Button declares a button and reports whether it was clicked since the
// last tick.
func (g *Gui) Button(title string) bool {
	gwid := g.TitleToGwid(title)
	b, ok := lookup[*Button](g, gwid, KindButton)
	if !ok {
		b = newButton(g, g.ctx, gwid, title)
		g.register(b)
	}
	g.place(b)
	return b.clicked
}

func newButton(g *Gui, ctx creation, gwid, title string) *Button {
	b := &Button{widgetBase: g.newBase(ctx, KindButton, gwid, title)}
	h := g.WidgetHeight()
	b.desiredW = b.textWidth(title) + buttonPadding*2
	b.desiredH = h
	b.minW = g.font.Size()
	b.minH = h
	b.node.SetSize(b.desiredW, h)

	b.node.OnPointerDown = func(PointerContext) {
		b.focusWindow()
		b.pressed = true
	}
	b.node.OnPointerUp = func(PointerContext) {
		b.pressed = false
		b.clicked = true
	}
	return b
}

// Pressed reports whether the pointer is held on the button.
func (b *Button) Pressed() bool { return b.pressed }

func (b *Button) postRun() {
	b.clicked = false
}

// Paint draws the button face, its centred label and the frame.
func (b *Button) Paint(c *Canvas) bool {
	theme := &b.gui.theme
	w, h := b.node.Width, b.node.Height

	face := theme.Button
	if b.pressed {
		face = theme.ButtonHighlight
	}
	c.FillRect(0, 0, w, h, face)

	font := b.gui.font
	limited := min(b.textWidth(b.title), w-buttonPadding*2)
	// Leave room for descenders.
	textH := font.Size() * 1.2
	dx := math.Round((w - limited) / 2)
	dy := math.Round((h - textH) / 2)
	if limited > 0 {
		c.DrawText(font, b.title, dx, dy, limited, theme.Text)
	}

	c.DrawFrame(w, h, theme.ButtonFrame)
	return true
}
