package willowgui

import "math"

// Typewrite lays text out glyph by glyph starting at cursor and returns the
// final pen position.
//
// A newline moves the pen to the start of the next line. Runes the font
// has no glyph for are skipped. The pen wraps before a glyph when it has
// reached rightBorder, or when the glyph would touch it. Layout stops at
// the first rune whose line starts at or below bottomBorder. Pass
// math.Inf(1) to disable a border. fn, when non-nil, receives each placed
// glyph.
func Typewrite(s string, font Font, lineHeight float64, cursor Vec2, rightBorder, bottomBorder float64, fn func(pos Vec2, g Glyph)) Vec2 {
	x, y := cursor.X, cursor.Y

	for _, r := range s {
		if y >= bottomBorder {
			break
		}
		if r == '\n' {
			y += lineHeight
			x = cursor.X
			continue
		}
		g, ok := font.Glyph(r)
		if !ok {
			continue
		}
		if x >= rightBorder {
			y += lineHeight
			x = cursor.X
		}
		if x+g.OffsetX+g.Width >= rightBorder {
			y += lineHeight
			x = cursor.X
		}
		if fn != nil {
			fn(Vec2{x, y}, g)
		}
		x += g.Advance
	}
	return Vec2{x, y}
}

// TextLinesHeight returns the height text occupies when wrapped at width,
// using the font size as line height.
func TextLinesHeight(s string, width float64, font Font) float64 {
	end := Typewrite(s, font, font.Size(), Vec2{}, width, math.Inf(1), nil)
	return end.Y + font.Size()
}

// drawTextClipped draws wrapped text starting at pos, cropping glyphs to
// bounds.
func drawTextClipped(c *Canvas, s string, pos Vec2, bounds AABB, font Font, col Color) {
	Typewrite(s, font, font.Size(), pos, bounds.Max.X, bounds.Max.Y, func(p Vec2, g Glyph) {
		if g.Image == nil {
			return
		}
		minX := p.X + g.OffsetX
		maxX := minX + g.Width
		minY := p.Y + g.OffsetY
		maxY := minY + g.Height
		if minX >= bounds.Max.X || maxX <= bounds.Min.X ||
			minY >= bounds.Max.Y || maxY <= bounds.Min.Y {
			return
		}
		dx1 := max(minX, bounds.Min.X) - minX
		dy1 := max(minY, bounds.Min.Y) - minY
		dx2 := min(maxX, bounds.Max.X) - maxX
		dy2 := min(maxY, bounds.Max.Y) - maxY
		c.drawRegion(g.Image, dx1, dy1, g.Width-dx1+dx2, g.Height-dy1+dy2, minX+dx1, minY+dy1, col)
	})
}
