package willowgui

// scrollThumbInset is the gap between the thumb and each side of the bar.
const scrollThumbInset = 3

// ScrollArea pairs the visible region of a scrollable widget with the
// bounds of its content, both in the widget's local coordinates.
type ScrollArea struct {
	Visible AABB
	Content AABB
}

// ScrollBarShape is the geometry of a vertical scroll bar for one
// ScrollArea and scroll offset.
type ScrollBarShape struct {
	// MaxScroll is content height minus visible height. Scroll offsets are
	// kept in [0, MaxScroll].
	MaxScroll float64
	Bar       AABB
	Thumb     AABB
}

// travel is the distance the thumb can move along the bar.
func (s ScrollBarShape) travel() float64 {
	return s.Bar.Height() - s.Thumb.Height()
}

// ScrollBar is a vertical scroll offset and the rules that bound it.
type ScrollBar struct {
	Scroll float64
	// AvoidsResizeThumb shortens the bar so it does not overlap a window's
	// resize thumb.
	AvoidsResizeThumb bool

	width        float64
	resizeThumbH float64
}

// NewScrollBar returns a scroll bar at offset 0 using the widths in sizes.
func NewScrollBar(sizes Sizes, avoidsResizeThumb bool) ScrollBar {
	return ScrollBar{
		AvoidsResizeThumb: avoidsResizeThumb,
		width:             sizes.ScrollBarWidth,
		resizeThumbH:      sizes.ResizeThumbHeight,
	}
}

// Shape computes the bar geometry. ok is false when the content fits in the
// visible area or the bar would have no height.
func (sb *ScrollBar) Shape(area ScrollArea) (shape ScrollBarShape, ok bool) {
	visibleH := area.Visible.Height()
	contentH := area.Content.Height()
	if visibleH >= contentH {
		return ScrollBarShape{}, false
	}
	var avoid float64
	if sb.AvoidsResizeThumb {
		avoid = sb.resizeThumbH
	}
	barH := visibleH - avoid
	if barH <= 0 {
		return ScrollBarShape{}, false
	}
	maxScroll := contentH - visibleH
	barX := area.Visible.Max.X
	barY := area.Visible.Min.Y

	thumbW := sb.width - scrollThumbInset*2
	thumbH := visibleH / contentH * barH
	thumbX := barX + scrollThumbInset
	thumbY := barY + sb.Scroll/maxScroll*(barH-thumbH)

	return ScrollBarShape{
		MaxScroll: maxScroll,
		Bar: AABB{
			Min: Vec2{barX, barY},
			Max: Vec2{barX + sb.width, barY + barH},
		},
		Thumb: AABB{
			Min: Vec2{thumbX, thumbY},
			Max: Vec2{thumbX + thumbW, thumbY + thumbH},
		},
	}, true
}

// ScrollBy moves the thumb by dy pixels along the bar and clamps the result.
// Without a shape the offset resets to 0. ScrollBy(area, 0) re-clamps a
// stale offset and is idempotent.
func (sb *ScrollBar) ScrollBy(area ScrollArea, dy float64) {
	shape, ok := sb.Shape(area)
	if !ok {
		sb.Scroll = 0
		return
	}
	sb.Scroll = clamp(sb.Scroll+dy*shape.MaxScroll/shape.travel(), 0, shape.MaxScroll)
}

// ScrollTo sets the offset, clamped. It does nothing without a shape.
func (sb *ScrollBar) ScrollTo(area ScrollArea, v float64) {
	if shape, ok := sb.Shape(area); ok {
		sb.Scroll = clamp(v, 0, shape.MaxScroll)
	}
}

// ScrollToBottom sets the offset to its maximum. It does nothing without a
// shape.
func (sb *ScrollBar) ScrollToBottom(area ScrollArea) {
	if shape, ok := sb.Shape(area); ok {
		sb.Scroll = shape.MaxScroll
	}
}

// InspectArea reports whether the content overflows the visible area
// vertically.
func (sb *ScrollBar) InspectArea(area ScrollArea) bool {
	inside := area.Visible.Min.Y <= area.Content.Min.Y &&
		area.Content.Max.Y <= area.Visible.Max.Y
	return !inside
}

// IntersectThumb reports whether p hits the thumb.
func (sb *ScrollBar) IntersectThumb(area ScrollArea, p Vec2) bool {
	shape, ok := sb.Shape(area)
	return ok && shape.Thumb.Contains(p)
}

// IntersectBar reports whether p hits the bar.
func (sb *ScrollBar) IntersectBar(area ScrollArea, p Vec2) bool {
	shape, ok := sb.Shape(area)
	return ok && shape.Bar.Contains(p)
}

// draw paints the bar and thumb.
func (sb *ScrollBar) draw(c *Canvas, area ScrollArea, theme *Theme) {
	shape, ok := sb.Shape(area)
	if !ok {
		return
	}
	bar := shape.Bar
	c.FillRect(bar.Min.X, bar.Min.Y, bar.Width(), bar.Height(), theme.ScrollBarBg.WithAlpha(0.75))
	thumb := shape.Thumb
	c.FillRect(thumb.Min.X, thumb.Min.Y, thumb.Width(), thumb.Height(), theme.ScrollBarThumb)
}
