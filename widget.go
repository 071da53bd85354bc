package willowgui

import "math"

// Kind tags the concrete type of a widget. Lookups by gwid are scoped to a
// kind, so two widgets of different kinds may share a title. State a widget
// keeps in Memory is scoped the same way, see memoryKey.
type Kind uint8

const (
	KindButton Kind = iota + 1
	KindCheckbox
	KindRadioButton
	KindSlider
	KindLabel
	KindMargin
	KindTextBox
	KindCollapsing
	KindHorizontal
	KindWindow
)

var allKinds = [...]Kind{
	KindButton, KindCheckbox, KindRadioButton, KindSlider, KindLabel,
	KindMargin, KindTextBox, KindCollapsing, KindHorizontal, KindWindow,
}

var kindNames = map[Kind]string{
	KindButton:      "button",
	KindCheckbox:    "checkbox",
	KindRadioButton: "radio",
	KindSlider:      "slider",
	KindLabel:       "label",
	KindMargin:      "margin",
	KindTextBox:     "textbox",
	KindCollapsing:  "collapsing",
	KindHorizontal:  "horizontal",
	KindWindow:      "window",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Widget is implemented by every widget the Gui creates.
type Widget interface {
	Kind() Kind
	Gwid() string
	Title() string
	Node() *Node
	base() *widgetBase
}

// postRunner is implemented by widgets with end-of-tick state to reset or
// persist.
type postRunner interface {
	postRun()
}

// scroller is implemented by widgets owning a ScrollBar. The Gui re-clamps
// every scroller at the end of each tick.
type scroller interface {
	scrollArea() ScrollArea
	scrollBar() *ScrollBar
}

// widgetBase holds the state shared by all widgets.
type widgetBase struct {
	gui          *Gui
	node         *Node
	kind         Kind
	gwid         string
	title        string
	parentWindow *Window

	// Size requests for placement. Zero means "use the current size" for
	// desired and "no minimum" for min.
	desiredW, desiredH float64
	minW, minH         float64
}

func (b *widgetBase) Kind() Kind        { return b.kind }
func (b *widgetBase) Gwid() string      { return b.gwid }
func (b *widgetBase) Title() string     { return b.title }
func (b *widgetBase) Node() *Node       { return b.node }
func (b *widgetBase) base() *widgetBase { return b }

// Width returns the placed width.
func (b *widgetBase) Width() float64 { return b.node.Width }

// Height returns the placed height.
func (b *widgetBase) Height() float64 { return b.node.Height }

// Position returns the placed position relative to the parent widget.
func (b *widgetBase) Position() Vec2 { return b.node.Position() }

// memoryKey is the Memory key of the state a widget of kind k owns under
// gwid. The kind segment starts with ':', which an escaped title never
// does, so it cannot collide with a gwid or with UseMemory slots. The key
// stays under the window's gwid and is released with it.
func memoryKey(gwid string, k Kind) string {
	return gwid + GwidSeparator + ":" + k.String()
}

// focusWindow brings the window containing the widget to the front.
func (b *widgetBase) focusWindow() {
	if b.parentWindow != nil {
		b.parentWindow.MoveFront()
	}
}

// placeSelf sizes the widget from its requests, moves it to the placer's
// cursor and advances the placer past it.
func (b *widgetBase) placeSelf(p *Placer) {
	n := b.node
	desired := n.Size()
	if b.desiredW > 0 {
		desired.X = b.desiredW
	}
	if b.desiredH > 0 {
		desired.Y = b.desiredH
	}
	size := p.RequireSize(desired)
	if b.minW > 0 {
		size.X = math.Max(b.minW, size.X)
	}
	if b.minH > 0 {
		size.Y = math.Max(b.minH, size.Y)
	}
	n.SetPosition(p.Cursor.X, p.Cursor.Y)
	n.SetSize(size.X, size.Y)
	p.Advance(AABB{Min: p.Cursor, Max: p.Cursor.Add(size)})
}

// textWidth measures a single line with the Gui font.
func (b *widgetBase) textWidth(s string) float64 {
	w, _ := b.gui.font.MeasureString(s)
	return w
}

// Accessor binds a widget to a value owned by the application.
type Accessor[T any] interface {
	Get() T
	Set(v T)
}

type fieldAccessor[T any] struct{ p *T }

func (a fieldAccessor[T]) Get() T  { return *a.p }
func (a fieldAccessor[T]) Set(v T) { *a.p = v }

// Field returns an Accessor reading and writing *p.
func Field[T any](p *T) Accessor[T] {
	return fieldAccessor[T]{p: p}
}

type funcAccessor[T any] struct {
	get func() T
	set func(T)
}

func (a funcAccessor[T]) Get() T  { return a.get() }
func (a funcAccessor[T]) Set(v T) { a.set(v) }

// Funcs returns an Accessor backed by a getter and a setter.
func Funcs[T any](get func() T, set func(T)) Accessor[T] {
	return funcAccessor[T]{get: get, set: set}
}
