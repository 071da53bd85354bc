package willowgui

import (
	"math"
	"strconv"
)

const (
	sliderMargin = 2
	sliderWidth  = 100
)

// Slider edits a number in [Min, Max] by dragging across a track.
type Slider struct {
	widgetBase
	value    Accessor[float64]
	Min, Max float64
	changed  bool
	dragging bool
}

// Slider declares a slider bound to value and reports whether the value
// was changed since the last tick.
func (g *Gui) Slider(title string, value Accessor[float64], min, max float64) bool {
	gwid := g.TitleToGwid(title)
	s, ok := lookup[*Slider](g, gwid, KindSlider)
	if !ok {
		s = newSlider(g, g.ctx, gwid, title)
		g.register(s)
	}
	s.value = value
	s.Min, s.Max = min, max
	g.place(s)
	return s.changed
}

func newSlider(g *Gui, ctx creation, gwid, title string) *Slider {
	s := &Slider{widgetBase: g.newBase(ctx, KindSlider, gwid, title)}
	h := g.WidgetHeight()
	w := sliderWidth + sliderMargin + s.textWidth(title)
	s.desiredW, s.desiredH = w, h
	s.minW, s.minH = w, h
	s.node.SetSize(w, h)

	s.node.OnPointerDown = s.handlePointerDown
	s.node.OnPointerMove = s.handlePointerMove
	s.node.OnPointerUp = func(PointerContext) { s.dragging = false }
	return s
}

// Value returns the bound value.
func (s *Slider) Value() float64 {
	if s.value == nil {
		return 0
	}
	return s.value.Get()
}

func (s *Slider) set(v float64) {
	s.value.Set(v)
	s.changed = true
}

func (s *Slider) handlePointerDown(pc PointerContext) {
	s.focusWindow()
	s.dragging = pc.LocalX <= sliderWidth
	if !s.dragging {
		return
	}
	t := pc.LocalX / sliderWidth
	s.set(s.Min + (s.Max-s.Min)*t)
}

func (s *Slider) handlePointerMove(pc PointerContext) {
	if !s.dragging {
		return
	}
	t := pc.LocalX / sliderWidth
	s.set(clamp(s.Min+(s.Max-s.Min)*t, s.Min, s.Max))
}

func (s *Slider) postRun() {
	s.changed = false
}

// Paint draws the track with the value, the title and the cursor.
func (s *Slider) Paint(c *Canvas) bool {
	theme := &s.gui.theme
	font := s.gui.font
	h := s.node.Height
	textH := font.Size() * 1.2
	dy := math.Round((h - textH) / 2)

	c.FillRect(0, 0, sliderWidth, h, theme.SliderBg)
	c.DrawText(font, s.title, sliderWidth+sliderMargin, dy, 0, theme.Text)

	v := s.Value()
	label := LimitText(font, strconv.FormatFloat(v, 'f', -1, 64), sliderWidth-8, "")
	lw, _ := font.MeasureString(label)
	c.DrawText(font, label, math.Round((sliderWidth-lw)/2), dy, 0, theme.Text.WithAlpha(0.75))

	const cursorWidth = 2
	t := 0.0
	if s.Max != s.Min {
		t = (v - s.Min) / (s.Max - s.Min)
	}
	x := 1 + math.Floor((sliderWidth-2-cursorWidth)*t)
	c.FillRect(x, 0, cursorWidth, h, ColorWhite)
	c.DrawFrame(sliderWidth, h, theme.SliderFrame)
	return true
}
