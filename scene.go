package willowgui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and input state.
type Scene struct {
	root  *Node
	debug bool

	// Input state
	captured     [maxPointers]*Node
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	testRunner *TestRunner
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{root: NewNode("root")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update refreshes world transforms and dispatches pointer input to nodes.
func (s *Scene) Update() {
	// Hit testing needs this frame's positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
}

// Draw paints the tree onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	paintTree(s.root, newCanvas(screen))
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on disposed nodes panic and depth/child-count/duplicate-id warnings are
// logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
