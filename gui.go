package willowgui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// widgetKey identifies a widget: a gwid is unique per widget kind.
type widgetKey struct {
	gwid string
	kind Kind
}

// creation is the context every widget constructor of a tick receives.
type creation struct {
	// local marks new nodes as client-local.
	local bool
}

// Gui reconciles the widgets an application declares each tick with the
// nodes in the scene graph, the memory store and the window order.
//
// A tick is Run(fn): PreRun, the declarations in fn, then PostRun. Widgets
// declared during a tick are alive; widgets not declared are destroyed at
// PostRun, and the memory of windows that were not declared is released.
type Gui struct {
	root   *Node
	font   Font
	memory *Memory
	sizes  Sizes
	theme  Theme

	screenW, screenH float64

	windows *WindowManager
	modals  *WindowManager
	cover   *Node

	ids           IDStack
	widgets       []Widget
	placers       []*Placer
	currentWindow *Window

	alive map[Widget]struct{}
	index map[widgetKey]Widget
	ctx   creation

	tweens []*TweenGroup
	fadeIn float32
	store  *LayoutStore

	debug bool
	seen  map[widgetKey]bool
}

// Option configures a Gui.
type Option func(*Gui)

// WithMemory makes the Gui keep widget state in m. By default each Gui has
// its own store.
func WithMemory(m *Memory) Option {
	return func(g *Gui) { g.memory = m }
}

// WithSizes overrides the widget metrics.
func WithSizes(s Sizes) Option {
	return func(g *Gui) { g.sizes = s }
}

// WithTheme overrides the widget palette.
func WithTheme(t Theme) Option {
	return func(g *Gui) { g.theme = t }
}

// WithScreenSize sets the area modal windows are centred in and the modal
// blocker covers. The default is 640x480.
func WithScreenSize(w, h float64) Option {
	return func(g *Gui) { g.screenW, g.screenH = w, h }
}

// WithLayoutStore seeds new windows from s and saves window styles to it as
// they change.
func WithLayoutStore(s *LayoutStore) Option {
	return func(g *Gui) { g.store = s }
}

// WithFadeIn fades new windows in over the given number of seconds.
func WithFadeIn(seconds float64) Option {
	return func(g *Gui) { g.fadeIn = float32(seconds) }
}

// WithDebug enables warnings for widget ids declared twice in one tick.
func WithDebug(enabled bool) Option {
	return func(g *Gui) { g.debug = enabled }
}

// NewGui creates a Gui whose layers are attached to root. root should sit
// at the screen origin.
func NewGui(root *Node, font Font, opts ...Option) *Gui {
	g := &Gui{
		root:    root,
		font:    font,
		sizes:   DefaultSizes(),
		theme:   DefaultTheme(),
		screenW: 640,
		screenH: 480,
		windows: NewWindowManager("windows"),
		modals:  NewWindowManager("modal windows"),
		alive:   make(map[Widget]struct{}),
		index:   make(map[widgetKey]Widget),
		seen:    make(map[widgetKey]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.memory == nil {
		g.memory = NewMemory()
	}

	g.cover = NewNode("modal cover")
	g.cover.SetSize(g.screenW, g.screenH)

	root.AddChild(g.windows.root)
	root.AddChild(g.cover)
	root.AddChild(g.modals.root)
	return g
}

// Root returns the node the Gui layers are attached to.
func (g *Gui) Root() *Node { return g.root }

// Font returns the font widgets are measured and drawn with.
func (g *Gui) Font() Font { return g.font }

// Memory returns the widget state store.
func (g *Gui) Memory() *Memory { return g.memory }

// Sizes returns the widget metrics.
func (g *Gui) Sizes() Sizes { return g.sizes }

// Theme returns the widget palette.
func (g *Gui) Theme() Theme { return g.theme }

// Windows returns the manager of ordinary windows.
func (g *Gui) Windows() *WindowManager { return g.windows }

// Modals returns the manager of modal windows.
func (g *Gui) Modals() *WindowManager { return g.modals }

// WidgetHeight returns the height of single-line widgets.
func (g *Gui) WidgetHeight() float64 {
	return math.Round(g.font.Size() * 1.5)
}

// --- Identity ---

// PushID pushes an id segment. Widgets declared until the matching PopID
// get gwids under it.
func (g *Gui) PushID(segment string) { g.ids.Push(segment) }

// PushIntID pushes a numeric id segment.
func (g *Gui) PushIntID(segment int) { g.ids.PushInt(segment) }

// PopID pops the last id segment.
func (g *Gui) PopID() { g.ids.Pop() }

// CurrentGwid returns the id of the current scope. ok is false at the top
// level.
func (g *Gui) CurrentGwid() (gwid string, ok bool) { return g.ids.CurrentID() }

// TitleToGwid returns the gwid a widget titled title gets in the current
// scope.
func (g *Gui) TitleToGwid(title string) string { return g.ids.ToGwid(title) }

// --- Tick ---

// Run runs one tick: PreRun, fn, PostRun. Registered tweens advance first
// by one tick of ebiten time.
func (g *Gui) Run(fn func(*Gui)) {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.updateTweens(float32(1 / float64(tps)))
	g.PreRun()
	fn(g)
	g.PostRun()
}

// PreRun starts a tick. Run calls it.
func (g *Gui) PreRun() {
	clear(g.alive)
	clear(g.seen)
	g.ctx = creation{local: g.root.Local}
}

// PostRun ends a tick. Run calls it.
func (g *Gui) PostRun() {
	widgets := g.collectWidgets()

	for _, w := range widgets {
		if s, ok := w.(scroller); ok {
			s.scrollBar().ScrollBy(s.scrollArea(), 0)
		}
		if p, ok := w.(postRunner); ok {
			p.postRun()
		}
	}

	var closed []string
	for _, w := range widgets {
		if w.Kind() == KindWindow && !g.isAlive(w) {
			closed = append(closed, w.Gwid())
		}
	}

	for _, w := range widgets {
		if g.isAlive(w) {
			continue
		}
		key := widgetKey{gwid: w.Gwid(), kind: w.Kind()}
		if g.index[key] == w {
			delete(g.index, key)
		}
		// A parent's destruction may already have taken it.
		if n := w.Node(); !n.IsDisposed() {
			n.Dispose()
		}
		Logger().Debug("widget destroyed", "gwid", key.gwid, "kind", key.kind.String())
	}

	for _, gwid := range closed {
		released := g.memory.ReleaseHierarchy(gwid)
		Logger().Debug("window closed", "gwid", gwid, "released", released)
	}

	g.windows.SortWindows()
	g.modals.SortWindows()

	modal := g.modals.Len() > 0
	if modal != g.cover.Interactable {
		Logger().Debug("modal state changed", "modal", modal)
	}
	g.cover.Interactable = modal
	g.windows.Enabled = !modal

	g.saveLayouts()
	g.ctx = creation{}
}

// collectWidgets returns the widgets in the tree in depth-first order.
func (g *Gui) collectWidgets() []Widget {
	var widgets []Widget
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.widget != nil {
			widgets = append(widgets, n.widget)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(g.root)
	return widgets
}

func (g *Gui) saveLayouts() {
	if g.store == nil {
		return
	}
	for _, mgr := range [...]*WindowManager{g.windows, g.modals} {
		for _, w := range mgr.Windows() {
			style := w.Style()
			if style.Equal(w.saved) {
				continue
			}
			if err := g.store.Save(w.gwid, style); err != nil {
				Logger().Warn("save window layout", "gwid", w.gwid, "err", err)
				continue
			}
			w.saved = style
		}
	}
}

// --- Widget bookkeeping ---

// newBase prepares the node of a widget about to be created.
func (g *Gui) newBase(ctx creation, kind Kind, gwid, title string) widgetBase {
	n := NewNode(kind.String() + " " + gwid)
	n.Interactable = true
	n.Local = ctx.local
	return widgetBase{gui: g, node: n, kind: kind, gwid: gwid, title: title}
}

// register indexes a newly created widget and binds it to its node.
func (g *Gui) register(w Widget) {
	n := w.Node()
	n.widget = w
	if p, ok := w.(Painter); ok {
		n.Painter = p
	}
	g.index[widgetKey{gwid: w.Gwid(), kind: w.Kind()}] = w
	Logger().Debug("widget created", "gwid", w.Gwid(), "kind", w.Kind().String())
}

// lookup finds the widget of the given kind declared under gwid.
func lookup[T Widget](g *Gui, gwid string, kind Kind) (T, bool) {
	var zero T
	w, ok := g.index[widgetKey{gwid: gwid, kind: kind}]
	if !ok {
		return zero, false
	}
	t, ok := w.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

func (g *Gui) markAlive(w Widget) {
	if g.debug {
		g.debugCheckDuplicate(w)
	}
	g.alive[w] = struct{}{}
}

func (g *Gui) isAlive(w Widget) bool {
	_, ok := g.alive[w]
	return ok
}

func (g *Gui) currentWidget() Widget {
	if len(g.widgets) == 0 {
		panic("willowgui: widget declared outside of a window")
	}
	return g.widgets[len(g.widgets)-1]
}

func (g *Gui) currentPlacer() *Placer {
	return g.placers[len(g.placers)-1]
}

// attach appends w under the current container and marks it alive. An
// already attached widget moves to the end so that children keep
// declaration order.
func (g *Gui) attach(w Widget) {
	b := w.base()
	b.parentWindow = g.currentWindow
	parent := g.currentWidget().Node()
	if n := b.node; n.Parent == parent {
		parent.SetChildIndex(n, parent.NumChildren()-1)
	} else {
		parent.AddChild(n)
	}
	g.markAlive(w)
}

// place sizes w with the current placer and attaches it.
func (g *Gui) place(w Widget) {
	g.currentWidget() // panics outside a window
	w.base().placeSelf(g.currentPlacer())
	g.attach(w)
}

// enter makes w the container of the following declarations.
func (g *Gui) enter(w Widget, p *Placer) {
	g.widgets = append(g.widgets, w)
	g.placers = append(g.placers, p)
	g.ids.Push(w.Title())
}

// leave undoes the matching enter.
func (g *Gui) leave() {
	g.ids.Pop()
	g.placers[len(g.placers)-1] = nil
	g.placers = g.placers[:len(g.placers)-1]
	g.widgets[len(g.widgets)-1] = nil
	g.widgets = g.widgets[:len(g.widgets)-1]
}

// --- Lookup and composite widgets ---

// GetWidget returns the widget titled title in the current scope. When
// widgets of several kinds share the gwid, the first kind in declaration
// order of the Kind constants wins.
func (g *Gui) GetWidget(title string) (Widget, bool) {
	return WidgetAs[Widget](g, title)
}

// WidgetAs returns the widget titled title in the current scope if it has
// type T.
func WidgetAs[T Widget](g *Gui, title string) (T, bool) {
	gwid := g.TitleToGwid(title)
	for _, k := range allKinds {
		if w, ok := g.index[widgetKey{gwid: gwid, kind: k}]; ok {
			if t, ok := w.(T); ok {
				return t, true
			}
		}
	}
	var zero T
	return zero, false
}

// BeginWidget opens the id scope of a composite widget.
func (g *Gui) BeginWidget(title string) { g.ids.Push(title) }

// EndWidget closes the scope opened by BeginWidget.
func (g *Gui) EndWidget() { g.ids.Pop() }

// UseMemory returns the state slot titled title in the current scope,
// storing initial the first time. The slot lives until the enclosing
// window closes.
func UseMemory[T any](g *Gui, title string, initial T) *T {
	return GetOrInit(g.memory, g.TitleToGwid(title), initial)
}
