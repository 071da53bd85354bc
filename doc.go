// Package willowgui is an immediate-mode GUI for [Ebitengine].
//
// The application describes its interface every tick by calling widget
// functions on a [Gui]. Widgets persist between ticks as nodes of a retained
// scene graph: a widget declared again with the same id keeps its node and
// state, and a widget that is not declared is destroyed at the end of the
// tick.
//
// # Quick start
//
// [Run] opens a window and calls the UI function once per tick:
//
//	var volume = 0.5
//	var mute bool
//
//	willowgui.Run(willowgui.DefaultConfig(), func(g *willowgui.Gui) {
//		g.Window("Settings").Position(20, 20).Show(func(g *willowgui.Gui) {
//			g.Slider("Volume", willowgui.Field(&volume), 0, 1)
//			g.Checkbox("Mute", willowgui.Field(&mute))
//			if g.Button("Reset") {
//				volume = 0.5
//			}
//		})
//	})
//
// For full control, create a [Scene] and a Gui attached to its root, then
// call [Scene.Update] followed by [Gui.Run] from your own game loop.
//
// # Identity
//
// A widget is identified by its gwid: the titles of its enclosing windows
// and containers and its own title, joined by "::". Titles are unique per
// widget kind within a scope; use [Gui.PushID] or [Gui.PushIntID] to tell
// apart widgets declared in a loop. Declaring the same gwid and kind twice
// in one tick is not supported; [WithDebug] logs a warning when it
// happens.
//
// # State
//
// Values the application owns are bound through an [Accessor], usually
// [Field]. State the GUI owns, such as scroll offsets and open sections,
// lives in a [Memory] keyed by gwid, scoped per widget kind, and is released
// when the window that owns it is not declared for a tick. [UseMemory] gives custom widgets the
// same storage.
//
// # Windows
//
// Ordinary windows can be moved, resized and scrolled; clicking one brings
// it to the front. While a modal window is declared a blocker covers the
// screen and no ordinary window receives input. A [LayoutStore] keeps
// window positions and sizes across program runs.
//
// [Ebitengine]: https://ebitengine.org
package willowgui
