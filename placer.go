package willowgui

// Direction is the axis along which a Placer advances its cursor.
type Direction uint8

const (
	Vertical   Direction = iota // next widget goes below the previous one
	Horizontal                  // next widget goes to the right of the previous one
)

// Placer is the flow layout cursor of a container. Widgets ask it how much
// width is left, take a size from it, and report the box they occupied.
type Placer struct {
	Cursor    Vec2
	Direction Direction
	// Bounds is the union of every box passed to Advance, starting as the
	// degenerate box at the initial cursor.
	Bounds AABB
	Outer  AABB
	Margin float64
}

// NewPlacer returns a placer at cursor inside outer. margin is the gap left
// after every advanced box.
func NewPlacer(cursor Vec2, outer AABB, dir Direction, margin float64) *Placer {
	return &Placer{
		Cursor:    cursor,
		Direction: dir,
		Bounds:    AABB{Min: cursor, Max: cursor},
		Outer:     outer,
		Margin:    margin,
	}
}

// AvailableWidth returns the distance from the cursor to the right edge of
// the outer bounds. It may be negative.
func (p *Placer) AvailableWidth() float64 {
	return p.Outer.Max.X - p.Cursor.X
}

// RequireSize clamps the desired width to the available width. Heights are
// never clamped.
func (p *Placer) RequireSize(desired Vec2) Vec2 {
	return Vec2{X: min(p.AvailableWidth(), desired.X), Y: desired.Y}
}

// Advance records an occupied box and moves the cursor past it.
func (p *Placer) Advance(box AABB) {
	p.Bounds.Enlarge(box.Min)
	p.Bounds.Enlarge(box.Max)
	if p.Direction == Vertical {
		p.Cursor.Y = p.Bounds.Max.Y + p.Margin
	} else {
		p.Cursor.X = p.Bounds.Max.X + p.Margin
	}
}
