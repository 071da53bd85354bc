package willowgui

import "math"

const (
	defaultWindowWidth  = 320
	defaultWindowHeight = 240
	minWindowWidth      = 64
	minWindowHeight     = 64
)

// tracking is the drag a widget is following between pointer-down and
// pointer-up.
type tracking uint8

const (
	trackNone tracking = iota
	trackMoving
	trackResizing
	trackThumb
)

// WindowStyle is the persisted part of a window's state. Nil fields fall
// back to the defaults when a window is created.
type WindowStyle struct {
	Position   *Vec2 `yaml:"position,omitempty"`
	Size       *Vec2 `yaml:"size,omitempty"`
	TitleBar   *bool `yaml:"title_bar,omitempty"`
	Resizable  *bool `yaml:"resizable,omitempty"`
	Scrollable *bool `yaml:"scrollable,omitempty"`
}

// Equal reports whether both styles set the same fields to the same values.
func (s WindowStyle) Equal(o WindowStyle) bool {
	return ptrEqual(s.Position, o.Position) && ptrEqual(s.Size, o.Size) &&
		ptrEqual(s.TitleBar, o.TitleBar) && ptrEqual(s.Resizable, o.Resizable) &&
		ptrEqual(s.Scrollable, o.Scrollable)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// Window is a floating, movable container with an optional title bar,
// resize thumb and scroll bar.
type Window struct {
	widgetBase

	Resizable  bool
	Scrollable bool

	manager        *WindowManager
	zOrder         int
	bounds         AABB
	titleBarHeight float64
	margin         float64
	tracking       tracking
	startW, startH float64
	bar            ScrollBar
	style          *WindowStyle
	saved          WindowStyle
	cache          *RenderTexture
}

func newWindow(g *Gui, ctx creation, gwid, title string, style *WindowStyle, scrollable bool) *Window {
	w := &Window{
		widgetBase: g.newBase(ctx, KindWindow, gwid, title),
		Resizable:  boolOr(style.Resizable, true),
		Scrollable: boolOr(style.Scrollable, scrollable),
		margin:     g.sizes.Margin,
		bar:        NewScrollBar(g.sizes, true),
		style:      style,
	}
	if boolOr(style.TitleBar, true) {
		w.titleBarHeight = math.Round(g.font.Size() * 1.25)
	}

	n := w.node
	size := Vec2{defaultWindowWidth, defaultWindowHeight}
	if style.Size != nil {
		size = *style.Size
	}
	if style.Position != nil {
		n.SetPosition(style.Position.X, style.Position.Y)
	}
	n.SetSize(size.X, size.Y)

	n.FindChildren = w.findChildren
	n.OnPointerDown = w.handlePointerDown
	n.OnPointerMove = w.handlePointerMove
	n.OnPointerUp = w.handlePointerUp
	n.OnDispose = func() {
		if w.cache != nil {
			w.cache.Dispose()
			w.cache = nil
		}
	}
	return w
}

// ZOrder returns 0 for the frontmost window of its manager, increasing
// toward the back.
func (w *Window) ZOrder() int { return w.zOrder }

// Bounds returns the area the window's children occupied on the last tick.
func (w *Window) Bounds() AABB { return w.bounds }

// Scroll returns the vertical scroll offset of the contents.
func (w *Window) Scroll() float64 { return w.bar.Scroll }

// IsActive reports whether the window is the frontmost window of an enabled
// manager.
func (w *Window) IsActive() bool {
	return w.manager != nil && w.manager.IsActive(w)
}

// MoveFront asks the window's manager to bring it to the front at the end
// of the tick.
func (w *Window) MoveFront() {
	if w.manager != nil {
		w.manager.MoveFront(w)
	}
}

// Style returns the window's current style with every field set.
func (w *Window) Style() WindowStyle {
	pos := w.node.Position()
	size := w.node.Size()
	titleBar := w.titleBarHeight != 0
	resizable := w.Resizable
	scrollable := w.Scrollable
	return WindowStyle{
		Position:   &pos,
		Size:       &size,
		TitleBar:   &titleBar,
		Resizable:  &resizable,
		Scrollable: &scrollable,
	}
}

// cursorPosition is where the first child is placed.
func (w *Window) cursorPosition() Vec2 {
	return Vec2{w.margin, w.titleBarHeight + w.margin - w.bar.Scroll}
}

// contentArea is the region children are laid out in.
func (w *Window) contentArea() AABB {
	right := w.margin
	if w.Scrollable {
		right = w.gui.sizes.ScrollBarWidth
	}
	return AABB{
		Min: Vec2{w.margin, w.titleBarHeight + w.margin},
		Max: Vec2{w.node.Width - right, w.node.Height - w.margin},
	}
}

func (w *Window) resizeArea() AABB {
	s := w.gui.sizes
	return AABB{
		Min: Vec2{w.node.Width - s.ResizeThumbWidth, w.node.Height - s.ResizeThumbHeight},
		Max: Vec2{w.node.Width, w.node.Height},
	}
}

func (w *Window) scrollArea() ScrollArea {
	return ScrollArea{Visible: w.contentArea(), Content: w.bounds}
}

func (w *Window) scrollBar() *ScrollBar { return &w.bar }

func (w *Window) postRun() {
	*w.style = w.Style()
}

// findChildren keeps pointer input away from the children of windows that
// are not in front, so that a click on them reaches the window and brings
// it forward.
func (w *Window) findChildren(lx, ly float64) bool {
	if w.zOrder != 0 {
		return false
	}
	width, height := w.node.Width, w.node.Height
	s := w.gui.sizes
	insideWindow := 0 < lx && lx < width && w.titleBarHeight < ly && ly < height
	insideResizeThumb := width-s.ResizeThumbWidth < lx && lx < width &&
		height-s.ResizeThumbHeight < ly && ly < height
	insideScrollBar := w.bar.IntersectBar(w.scrollArea(), Vec2{lx, ly})
	return insideWindow && !insideResizeThumb && !insideScrollBar
}

func (w *Window) handlePointerDown(pc PointerContext) {
	p := pc.Local()
	switch {
	case p.Y < w.titleBarHeight:
		w.tracking = trackMoving
	case w.bar.IntersectThumb(w.scrollArea(), p):
		w.tracking = trackThumb
	case w.Resizable && w.resizeArea().Contains(p):
		w.tracking = trackResizing
		w.startW, w.startH = w.node.Width, w.node.Height
	default:
		w.tracking = trackNone
	}
	w.MoveFront()
}

func (w *Window) handlePointerMove(pc PointerContext) {
	switch {
	case w.tracking == trackMoving:
		w.node.SetPosition(w.node.X+pc.PrevDeltaX, w.node.Y+pc.PrevDeltaY)
	case w.tracking == trackThumb && w.Scrollable:
		w.bar.ScrollBy(w.scrollArea(), pc.PrevDeltaY)
	case w.tracking == trackResizing && w.Resizable:
		// Width and height stay integral; they size the offscreen cache.
		w.node.SetSize(
			math.Round(math.Max(minWindowWidth, w.startW+pc.StartDeltaX)),
			math.Round(math.Max(minWindowHeight, w.startH+pc.StartDeltaY)),
		)
		w.bar.ScrollBy(w.scrollArea(), 0)
	}
}

func (w *Window) handlePointerUp(PointerContext) {
	w.tracking = trackNone
}

// Paint draws the frame and the children clipped to the window body.
func (w *Window) Paint(c *Canvas) bool {
	theme := &w.gui.theme
	width, height := w.node.Width, w.node.Height

	if w.titleBarHeight > 0 {
		bg := theme.WindowTitleBarBg
		if !w.IsActive() {
			bg = bg.WithAlpha(0.6)
		}
		c.FillRect(0, 0, width, w.titleBarHeight, bg)
		title := LimitText(w.gui.font, w.title, width-w.margin*2, "")
		c.DrawText(w.gui.font, title, w.margin, 0, 0, theme.Text)
	}

	c.FillRect(0, w.titleBarHeight, width, height-w.titleBarHeight, theme.WindowBg)

	w.paintChildren(c)

	if w.Scrollable && (w.bar.InspectArea(w.scrollArea()) || w.tracking == trackThumb) {
		w.bar.draw(c, w.scrollArea(), theme)
	}
	if w.Resizable {
		w.paintResizeThumb(c, theme.WindowResizeThumb)
	}
	c.DrawFrame(width, height, theme.WindowFrame)
	return false
}

// paintChildren renders the children into the offscreen cache and blits it
// below the title bar.
func (w *Window) paintChildren(c *Canvas) {
	if c.Target() == nil {
		return
	}
	vw := int(math.Round(w.node.Width))
	vh := int(math.Round(w.node.Height - w.titleBarHeight))
	if vw <= 0 || vh <= 0 {
		return
	}
	if w.cache == nil {
		w.cache = NewRenderTexture(vw, vh)
	} else {
		w.cache.Resize(vw, vh)
	}
	w.cache.Clear()
	paintChildren(w.node, w.cache.Canvas(0, w.titleBarHeight))
	c.DrawImage(w.cache.Image(), 0, w.titleBarHeight)
}

func (w *Window) paintResizeThumb(c *Canvas, col Color) {
	const dot = 3
	area := w.resizeArea()
	y := area.Min.Y + 1
	for j := 0; j < 3; j++ {
		x := area.Min.X + 1
		for i := 0; i < 3; i++ {
			c.FillRect(x, y, dot, dot, col)
			x += dot + 1
		}
		y += dot + 1
	}
}
