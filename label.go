package willowgui

import "math"

// Label is a line of text.
type Label struct {
	widgetBase
}

// Label declares a label showing title.
func (g *Gui) Label(title string) {
	gwid := g.TitleToGwid(title)
	l, ok := lookup[*Label](g, gwid, KindLabel)
	if !ok {
		l = newLabel(g, g.ctx, gwid, title)
		g.register(l)
	}
	g.place(l)
}

func newLabel(g *Gui, ctx creation, gwid, title string) *Label {
	l := &Label{widgetBase: g.newBase(ctx, KindLabel, gwid, title)}
	w, h := l.textWidth(title), g.WidgetHeight()
	l.desiredW, l.desiredH = w, h
	l.minW, l.minH = w, h
	l.node.SetSize(w, h)
	l.node.OnPointerDown = func(PointerContext) { l.focusWindow() }
	return l
}

// Paint draws the text vertically centred.
func (l *Label) Paint(c *Canvas) bool {
	font := l.gui.font
	dy := math.Round((l.node.Height - font.Size()) / 2)
	c.DrawText(font, l.title, 0, dy, 0, l.gui.theme.Text)
	return true
}

const marginWidth = 100

// Margin is an invisible spacer.
type Margin struct {
	widgetBase
}

// Margin declares a spacer one widget high.
func (g *Gui) Margin(title string) {
	gwid := g.TitleToGwid(title)
	m, ok := lookup[*Margin](g, gwid, KindMargin)
	if !ok {
		m = &Margin{widgetBase: g.newBase(g.ctx, KindMargin, gwid, title)}
		m.desiredW, m.desiredH = marginWidth, g.WidgetHeight()
		m.node.OnPointerDown = func(PointerContext) { m.focusWindow() }
		g.register(m)
	}
	g.place(m)
}
