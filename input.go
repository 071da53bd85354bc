package willowgui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	startX  float64
	startY  float64
	lastX   float64
	lastY   float64
	hitNode *Node
	button  MouseButton // button captured at press time
}

// CapturePointer routes all events for pointerID to the given node.
func (s *Scene) CapturePointer(pointerID int, node *Node) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = node
	}
}

// ReleasePointer stops routing events for pointerID to a captured node.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's
// Width x Height box.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.Width <= 0 || n.Height <= 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order, appending interactable
// nodes to buf. Invisible subtrees are skipped, and a node's FindChildren
// gate prunes its descendants at the probed point.
func collectInteractable(n *Node, wx, wy float64, buf []*Node) []*Node {
	if !n.Visible || n.disposed {
		return buf
	}
	if n.Interactable {
		buf = append(buf, n)
	}
	if len(n.children) == 0 {
		return buf
	}
	if n.FindChildren != nil {
		lx, ly := n.WorldToLocal(wx, wy)
		if !n.FindChildren(lx, ly) {
			return buf
		}
	}
	for _, child := range n.children {
		buf = collectInteractable(child, wx, wy, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, worldX, worldY, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update to handle mouse and touch input.
// An injected event, when queued, replaces the real mouse for that frame.
func (s *Scene) processInput() {
	mods := readModifiers()
	if !s.processInjectedInput(mods) {
		s.processMousePointer(mods)
	}
	s.processTouchPointers(mods)
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button, mods)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, mods)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
// The node under a press receives the following moves and the release,
// whatever lies under the pointer by then.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		target := s.captured[pointerID]
		if target == nil {
			target = s.hitTest(wx, wy)
		}
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitNode = target
		s.fire(target, firePointerDown, pointerID, wx, wy, ps, mods)

	case pressed && ps.down:
		if wx != ps.lastX || wy != ps.lastY {
			s.fire(ps.hitNode, firePointerMove, pointerID, wx, wy, ps, mods)
			ps.lastX, ps.lastY = wx, wy
		}

	case !pressed && ps.down:
		s.fire(ps.hitNode, firePointerUp, pointerID, wx, wy, ps, mods)
		if ps.hitNode != nil && !ps.hitNode.disposed && s.hitTest(wx, wy) == ps.hitNode {
			s.fire(ps.hitNode, fireClick, pointerID, wx, wy, ps, mods)
		}
		s.captured[pointerID] = nil
		ps.down = false
		ps.hitNode = nil

	default:
		ps.lastX, ps.lastY = wx, wy
	}
}

// --- Event dispatch ---

type fireKind uint8

const (
	firePointerDown fireKind = iota
	firePointerMove
	firePointerUp
	fireClick
)

func (s *Scene) fire(node *Node, kind fireKind, pointerID int, wx, wy float64, ps *pointerState, mods KeyModifiers) {
	if node == nil || node.disposed {
		return
	}
	var fn func(PointerContext)
	switch kind {
	case firePointerDown:
		fn = node.OnPointerDown
	case firePointerMove:
		fn = node.OnPointerMove
	case firePointerUp:
		fn = node.OnPointerUp
	case fireClick:
		fn = node.OnClick
	}
	if fn == nil {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	fn(PointerContext{
		Node:    node,
		GlobalX: wx, GlobalY: wy,
		LocalX: lx, LocalY: ly,
		StartDeltaX: wx - ps.startX, StartDeltaY: wy - ps.startY,
		PrevDeltaX: wx - ps.lastX, PrevDeltaY: wy - ps.lastY,
		Button:    ps.button,
		PointerID: pointerID,
		Modifiers: mods,
	})
}
