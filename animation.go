package willowgui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates float64 fields on a Node simultaneously. Create one
// via TweenAlpha and call Update(dt) each tick. If the target node is
// disposed, the group stops immediately.
type TweenGroup struct {
	tweens []*gween.Tween
	fields []*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i, t := range g.tweens {
		val, finished := t.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenAlpha animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{
		tweens: []*gween.Tween{gween.New(float32(node.Alpha), float32(to), duration, fn)},
		fields: []*float64{&node.Alpha},
		target: node,
	}
}

// Animate registers a tween the Gui advances at the start of every Run until
// it finishes.
func (g *Gui) Animate(t *TweenGroup) {
	g.tweens = append(g.tweens, t)
}

// updateTweens advances every registered tween and drops finished ones.
func (g *Gui) updateTweens(dt float32) {
	live := g.tweens[:0]
	for _, t := range g.tweens {
		t.Update(dt)
		if !t.Done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(g.tweens); i++ {
		g.tweens[i] = nil
	}
	g.tweens = live
}
