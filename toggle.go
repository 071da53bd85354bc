package willowgui

import "math"

const checkBoxMargin = 2

// Checkbox toggles a bool on pointer-down.
type Checkbox struct {
	widgetBase
	value   Accessor[bool]
	pressed bool
}

// Checkbox declares a checkbox bound to value and reports whether it was
// pressed since the last tick.
func (g *Gui) Checkbox(title string, value Accessor[bool]) bool {
	gwid := g.TitleToGwid(title)
	cb, ok := lookup[*Checkbox](g, gwid, KindCheckbox)
	if !ok {
		cb = newCheckbox(g, g.ctx, gwid, title)
		g.register(cb)
	}
	cb.value = value
	g.place(cb)
	return cb.pressed
}

func newCheckbox(g *Gui, ctx creation, gwid, title string) *Checkbox {
	cb := &Checkbox{widgetBase: g.newBase(ctx, KindCheckbox, gwid, title)}
	cb.sizeToggle(title)
	cb.node.OnPointerDown = func(PointerContext) {
		cb.focusWindow()
		cb.pressed = true
		cb.value.Set(!cb.value.Get())
	}
	cb.node.OnPointerUp = func(PointerContext) {
		cb.pressed = false
	}
	return cb
}

// sizeToggle sizes a widget made of a square box followed by its title.
func (b *widgetBase) sizeToggle(title string) {
	h := b.gui.WidgetHeight()
	w := h + checkBoxMargin + b.textWidth(title)
	b.desiredW, b.desiredH = w, h
	b.minW, b.minH = w, h
	b.node.SetSize(w, h)
}

// Checked returns the bound value.
func (cb *Checkbox) Checked() bool {
	return cb.value != nil && cb.value.Get()
}

func (cb *Checkbox) postRun() {
	cb.pressed = false
}

// Paint draws the box, the check mark and the title.
func (cb *Checkbox) Paint(c *Canvas) bool {
	theme := &cb.gui.theme
	box := cb.node.Height
	col := theme.CheckBox
	if cb.pressed {
		col = theme.CheckMark
	}
	c.FillRect(0, 0, box, box, col)
	if !cb.pressed && cb.Checked() {
		c.FillRect(2, 2, box-4, box-4, theme.CheckMark)
	}
	cb.paintTitle(c, box)
	return true
}

// paintTitle draws the title to the right of a box of the given size.
func (b *widgetBase) paintTitle(c *Canvas, box float64) {
	font := b.gui.font
	dy := math.Round((box - font.Size()*1.2) / 2)
	c.DrawText(font, b.title, box+checkBoxMargin, dy, 0, b.gui.theme.Text)
}

// Radio selects one value out of a group sharing an Accessor.
type Radio struct {
	widgetBase
	selected func() bool
	choose   func()
	pressed  bool
}

// RadioButton declares a radio button that stores buttonValue in value when
// pressed. It reports whether it was pressed since the last tick.
func RadioButton[T comparable](g *Gui, title string, value Accessor[T], buttonValue T) bool {
	gwid := g.TitleToGwid(title)
	r, ok := lookup[*Radio](g, gwid, KindRadioButton)
	if !ok {
		r = newRadio(g, g.ctx, gwid, title)
		g.register(r)
	}
	r.selected = func() bool { return value.Get() == buttonValue }
	r.choose = func() { value.Set(buttonValue) }
	g.place(r)
	return r.pressed
}

func newRadio(g *Gui, ctx creation, gwid, title string) *Radio {
	r := &Radio{widgetBase: g.newBase(ctx, KindRadioButton, gwid, title)}
	r.sizeToggle(title)
	r.node.OnPointerDown = func(PointerContext) {
		r.focusWindow()
		r.pressed = true
		r.choose()
	}
	r.node.OnPointerUp = func(PointerContext) {
		r.pressed = false
	}
	return r
}

// Selected reports whether the bound value equals the button's value.
func (r *Radio) Selected() bool {
	return r.selected != nil && r.selected()
}

func (r *Radio) postRun() {
	r.pressed = false
}

// Paint draws the button and the title.
func (r *Radio) Paint(c *Canvas) bool {
	theme := &r.gui.theme
	box := r.node.Height
	col := theme.CheckBox
	if r.pressed {
		col = theme.CheckMark
	}
	c.FillRect(0, 0, box, box, col)
	if !r.pressed && r.Selected() {
		inset := math.Round(box / 4)
		c.FillRect(inset, inset, box-inset*2, box-inset*2, theme.CheckMark)
	}
	r.paintTitle(c, box)
	return true
}
