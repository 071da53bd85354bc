package willowgui

import "fmt"

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("willowgui debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			"node", n.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("node has too many children",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// debugCheckDuplicate warns when a (gwid, kind) pair is declared twice in
// one tick. The second declaration aliases the first widget.
func (g *Gui) debugCheckDuplicate(w Widget) {
	key := widgetKey{gwid: w.Gwid(), kind: w.Kind()}
	if g.seen[key] {
		Logger().Warn("duplicate widget id in one tick", "gwid", key.gwid, "kind", key.kind.String())
		return
	}
	g.seen[key] = true
}
