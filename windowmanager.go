package willowgui

// WindowManager keeps the front-to-back order of a set of windows. The
// order is the child order of Root: the last child is the frontmost window.
type WindowManager struct {
	root *Node

	// Enabled gates pointer input for every managed window. When false no
	// window is active and hit testing never reaches them.
	Enabled bool

	newWindows []*Window
	toFront    []*Window
}

// NewWindowManager returns an enabled manager with an empty root node.
func NewWindowManager(name string) *WindowManager {
	wm := &WindowManager{root: NewNode(name), Enabled: true}
	wm.root.FindChildren = func(_, _ float64) bool { return wm.Enabled }
	return wm
}

// Root returns the node windows are attached to.
func (wm *WindowManager) Root() *Node {
	return wm.root
}

// AddNewWindow registers a window created this tick. It becomes the
// frontmost window on the next SortWindows.
func (wm *WindowManager) AddNewWindow(w *Window) {
	w.manager = wm
	wm.newWindows = append(wm.newWindows, w)
}

// MoveFront registers an existing window to be moved to the front on the
// next SortWindows.
func (wm *WindowManager) MoveFront(w *Window) {
	w.manager = wm
	wm.toFront = append(wm.toFront, w)
}

// SortWindows appends the new windows and then the windows moved to the
// front, each group in call order, and reassigns z-orders so that the last
// child gets 0. Disposed windows are skipped.
func (wm *WindowManager) SortWindows() {
	for _, w := range wm.newWindows {
		wm.bringToEnd(w)
	}
	for _, w := range wm.toFront {
		wm.bringToEnd(w)
	}

	windows := wm.Windows()
	for i, w := range windows {
		w.zOrder = len(windows) - 1 - i
	}

	clear(wm.newWindows)
	wm.newWindows = wm.newWindows[:0]
	clear(wm.toFront)
	wm.toFront = wm.toFront[:0]
}

func (wm *WindowManager) bringToEnd(w *Window) {
	n := w.node
	if n.IsDisposed() {
		return
	}
	if n.Parent == wm.root {
		wm.root.SetChildIndex(n, wm.root.NumChildren()-1)
		return
	}
	wm.root.AddChild(n)
}

// Windows returns the managed windows from back to front.
func (wm *WindowManager) Windows() []*Window {
	var windows []*Window
	for _, c := range wm.root.children {
		if w, ok := c.widget.(*Window); ok {
			windows = append(windows, w)
		}
	}
	return windows
}

// Len returns the number of windows attached to the root.
func (wm *WindowManager) Len() int {
	return wm.root.NumChildren()
}

// IsActive reports whether w is the frontmost window of an enabled manager.
func (wm *WindowManager) IsActive(w *Window) bool {
	if !wm.Enabled {
		return false
	}
	n := wm.root.NumChildren()
	return n > 0 && wm.root.ChildAt(n-1) == w.node
}
