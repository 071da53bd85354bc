package willowgui

// AABB is an axis-aligned bounding box given by its min and max corners.
type AABB struct {
	Min Vec2 `yaml:"min"`
	Max Vec2 `yaml:"max"`
}

// Width returns Max.X - Min.X.
func (a AABB) Width() float64 { return a.Max.X - a.Min.X }

// Height returns Max.Y - Min.Y.
func (a AABB) Height() float64 { return a.Max.Y - a.Min.Y }

// Contains reports whether p lies inside a. Edges are inside.
func (a AABB) Contains(p Vec2) bool {
	return a.Min.X <= p.X && p.X <= a.Max.X &&
		a.Min.Y <= p.Y && p.Y <= a.Max.Y
}

// Enlarge grows a so that it contains p.
func (a *AABB) Enlarge(p Vec2) {
	if p.X < a.Min.X {
		a.Min.X = p.X
	}
	if p.Y < a.Min.Y {
		a.Min.Y = p.Y
	}
	if p.X > a.Max.X {
		a.Max.X = p.X
	}
	if p.Y > a.Max.Y {
		a.Max.Y = p.Y
	}
}

// Translate returns a moved by d.
func (a AABB) Translate(d Vec2) AABB {
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}

// Expand returns a grown by pad on every side.
func (a AABB) Expand(pad float64) AABB {
	return AABB{
		Min: Vec2{a.Min.X - pad, a.Min.Y - pad},
		Max: Vec2{a.Max.X + pad, a.Max.Y + pad},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
