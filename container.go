package willowgui

import "math"

const (
	collapsingWidth  = 128
	collapsingIndent = 4
)

// CollapsingMemory is the persisted state of a Collapsing header.
type CollapsingMemory struct {
	Open bool
}

// Collapsing is a header that shows or hides the widgets declared under it.
type Collapsing struct {
	widgetBase
	mem *CollapsingMemory
}

// Collapsing declares a collapsible section. contents runs only while the
// section is open; the open state survives until the window closes. It
// reports whether the section is open.
func (g *Gui) Collapsing(title string, contents func(*Gui)) bool {
	gwid := g.TitleToGwid(title)
	c, ok := lookup[*Collapsing](g, gwid, KindCollapsing)
	if !ok {
		c = newCollapsing(g, g.ctx, gwid, title)
		g.register(c)
	}
	c.mem = GetOrInit(g.memory, memoryKey(gwid, KindCollapsing), CollapsingMemory{Open: true})

	p := g.currentPlacer()
	h := g.WidgetHeight()
	origin := p.Cursor
	avail := p.AvailableWidth()
	size := p.RequireSize(Vec2{collapsingWidth, h})
	c.node.SetPosition(origin.X, origin.Y)
	c.node.SetSize(size.X, h)
	g.attach(c)

	box := AABB{Max: size}
	if c.mem.Open {
		child := NewPlacer(
			Vec2{collapsingIndent, h},
			AABB{Min: Vec2{collapsingIndent, h}, Max: Vec2{avail, math.Inf(1)}},
			Vertical, g.sizes.Margin,
		)
		g.enter(c, child)
		contents(g)
		g.leave()
		box.Enlarge(child.Bounds.Min)
		box.Enlarge(child.Bounds.Max)
	}
	p.Advance(box.Translate(origin))
	return c.mem.Open
}

func newCollapsing(g *Gui, ctx creation, gwid, title string) *Collapsing {
	c := &Collapsing{widgetBase: g.newBase(ctx, KindCollapsing, gwid, title)}
	c.node.OnPointerDown = func(PointerContext) {
		c.focusWindow()
		c.mem.Open = !c.mem.Open
	}
	return c
}

// Open reports whether the section is expanded.
func (c *Collapsing) Open() bool { return c.mem != nil && c.mem.Open }

// Paint draws the header. The children are drawn only while open.
func (c *Collapsing) Paint(cv *Canvas) bool {
	theme := &c.gui.theme
	font := c.gui.font
	w, h := c.node.Width, c.node.Height
	cv.FillRect(0, 0, w, h, theme.Button)

	marker := "▼"
	if !c.Open() {
		marker = "►"
	}
	dy := math.Round((h - font.Size()*1.2) / 2)
	cv.DrawText(font, marker, 2, dy, 0, theme.Text)
	mw, _ := font.MeasureString(marker + " ")
	cv.DrawText(font, c.title, 2+mw, dy, w-2-mw, theme.Text)
	return c.Open()
}

// Row lays the widgets declared under it out left to right.
type Row struct {
	widgetBase
}

// Horizontal declares a row spanning the available width.
func (g *Gui) Horizontal(title string, contents func(*Gui)) {
	gwid := g.TitleToGwid(title)
	hz, ok := lookup[*Row](g, gwid, KindHorizontal)
	if !ok {
		hz = &Row{widgetBase: g.newBase(g.ctx, KindHorizontal, gwid, title)}
		hz.node.OnPointerDown = func(PointerContext) { hz.focusWindow() }
		g.register(hz)
	}

	p := g.currentPlacer()
	origin := p.Cursor
	width := max(p.AvailableWidth(), 0)
	hz.node.SetPosition(origin.X, origin.Y)
	g.attach(hz)

	child := NewPlacer(Vec2{}, AABB{Max: Vec2{width, math.Inf(1)}}, Horizontal, g.sizes.Margin)
	g.enter(hz, child)
	contents(g)
	g.leave()

	size := Vec2{width, child.Bounds.Max.Y}
	hz.node.SetSize(size.X, size.Y)
	p.Advance(AABB{Min: origin, Max: origin.Add(size)})
}
