package willowgui

const (
	textBoxWidth   = 256
	textBoxPadding = 4
)

// TextBoxMemory is the persisted state of a TextBox.
type TextBoxMemory struct {
	Scroll float64
}

// TextBox shows wrapped, read-only text in a fixed height with its own
// scroll bar.
type TextBox struct {
	widgetBase
	Text     string
	mem      *TextBoxMemory
	bar      ScrollBar
	tracking tracking
}

// TextBox declares a text box of the given height showing text.
func (g *Gui) TextBox(title string, height float64, text string) *TextBox {
	gwid := g.TitleToGwid(title)
	tb, ok := lookup[*TextBox](g, gwid, KindTextBox)
	if !ok {
		tb = newTextBox(g, g.ctx, gwid, title)
		g.register(tb)
	}
	tb.mem = GetOrInit(g.memory, memoryKey(gwid, KindTextBox), TextBoxMemory{})
	tb.bar.Scroll = tb.mem.Scroll
	tb.Text = text
	g.currentWidget() // panics outside a window
	// Fill the container; a placer out of room keeps the current width.
	if avail := g.currentPlacer().AvailableWidth(); avail > 0 {
		tb.desiredW = avail
	}
	tb.desiredH = height
	g.place(tb)
	return tb
}

func newTextBox(g *Gui, ctx creation, gwid, title string) *TextBox {
	tb := &TextBox{
		widgetBase: g.newBase(ctx, KindTextBox, gwid, title),
		bar:        NewScrollBar(g.sizes, false),
	}
	tb.desiredW = textBoxWidth
	tb.node.SetSize(textBoxWidth, g.WidgetHeight())

	tb.node.OnPointerDown = func(pc PointerContext) {
		tb.focusWindow()
		if tb.bar.IntersectThumb(tb.scrollArea(), pc.Local()) {
			tb.tracking = trackThumb
		}
	}
	tb.node.OnPointerMove = func(pc PointerContext) {
		if tb.tracking == trackThumb {
			tb.bar.ScrollBy(tb.scrollArea(), pc.PrevDeltaY)
			tb.mem.Scroll = tb.bar.Scroll
		}
	}
	tb.node.OnPointerUp = func(PointerContext) {
		tb.tracking = trackNone
	}
	return tb
}

// Scroll returns the scroll offset.
func (tb *TextBox) Scroll() float64 { return tb.bar.Scroll }

// ScrollToBottom scrolls to the end of the text.
func (tb *TextBox) ScrollToBottom() {
	tb.bar.ScrollToBottom(tb.scrollArea())
	tb.mem.Scroll = tb.bar.Scroll
}

func (tb *TextBox) visibleArea() AABB {
	return AABB{
		Min: Vec2{textBoxPadding, textBoxPadding},
		Max: Vec2{
			tb.node.Width - tb.gui.sizes.ScrollBarWidth,
			tb.node.Height - textBoxPadding,
		},
	}
}

func (tb *TextBox) scrollArea() ScrollArea {
	visible := tb.visibleArea()
	// Paint wraps inside the visible area, not from x = 0.
	h := TextLinesHeight(tb.Text, visible.Width(), tb.gui.font)
	return ScrollArea{
		Visible: visible,
		Content: AABB{Min: visible.Min, Max: Vec2{visible.Max.X, visible.Min.Y + h}},
	}
}

func (tb *TextBox) scrollBar() *ScrollBar { return &tb.bar }

func (tb *TextBox) postRun() {
	if tb.mem != nil {
		tb.mem.Scroll = tb.bar.Scroll
	}
}

// Paint draws the background, the visible part of the text and the scroll
// bar.
func (tb *TextBox) Paint(c *Canvas) bool {
	theme := &tb.gui.theme
	c.FillRect(0, 0, tb.node.Width, tb.node.Height, theme.TextBoxBg)

	area := tb.scrollArea()
	start := Vec2{area.Visible.Min.X, area.Visible.Min.Y - tb.bar.Scroll}
	drawTextClipped(c, tb.Text, start, area.Visible, tb.gui.font, theme.Text)

	if tb.bar.InspectArea(area) || tb.tracking == trackThumb {
		tb.bar.draw(c, area, theme)
	}
	return true
}
