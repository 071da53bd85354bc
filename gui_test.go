package willowgui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTestGui attaches a Gui using the 12px test font to a fresh scene.
// Widget height is 18 and the title bar is 15 high.
func newTestGui(t *testing.T, opts ...Option) (*Scene, *Gui) {
	t.Helper()
	s := NewScene()
	g := NewGui(s.Root(), newTestFont(t), opts...)
	return s, g
}

func mustLookup[T Widget](t *testing.T, g *Gui, gwid string, kind Kind) T {
	t.Helper()
	w, ok := lookup[T](g, gwid, kind)
	if !ok {
		t.Fatalf("no %v widget %q", kind, gwid)
	}
	return w
}

func TestWidgetIdentityStable(t *testing.T) {
	_, g := newTestGui(t)
	ui := func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			g.Button("OK")
		})
	}

	g.Run(ui)
	first := mustLookup[*Button](t, g, "W::OK", KindButton)
	g.Run(ui)
	second := mustLookup[*Button](t, g, "W::OK", KindButton)

	if first != second {
		t.Error("button was recreated on the second tick")
	}
	if first.Node().IsDisposed() {
		t.Error("button node disposed while declared")
	}
	if first.Gwid() != "W::OK" || first.Title() != "OK" || first.Kind() != KindButton {
		t.Errorf("button = (%q, %q, %v), want (W::OK, OK, button)", first.Gwid(), first.Title(), first.Kind())
	}
}

func TestKindScopedLookup(t *testing.T) {
	_, g := newTestGui(t)
	var on bool
	g.Run(func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			g.Button("X")
			g.Checkbox("X", Field(&on))
		})
	})
	b := mustLookup[*Button](t, g, "W::X", KindButton)
	cb := mustLookup[*Checkbox](t, g, "W::X", KindCheckbox)
	if b.Node() == cb.Node() {
		t.Error("button and checkbox share a node")
	}
	if _, ok := lookup[*Button](g, "W::X", KindCheckbox); ok {
		t.Error("kind-mismatched lookup should report not found")
	}
}

func TestDeadWidgetDestroyed(t *testing.T) {
	_, g := newTestGui(t)
	show := true
	ui := func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			if show {
				g.Button("OK")
			}
			g.Label("Hello")
		})
	}

	g.Run(ui)
	b := mustLookup[*Button](t, g, "W::OK", KindButton)

	show = false
	g.Run(ui)
	if !b.Node().IsDisposed() {
		t.Error("undeclared button node should be disposed")
	}
	if _, ok := lookup[*Button](g, "W::OK", KindButton); ok {
		t.Error("undeclared button still indexed")
	}
	w := mustLookup[*Window](t, g, "W", KindWindow)
	if w.Node().IsDisposed() {
		t.Error("declared window disposed")
	}

	show = true
	g.Run(ui)
	again := mustLookup[*Button](t, g, "W::OK", KindButton)
	if again == b {
		t.Error("redeclared button reused a destroyed widget")
	}
}

func TestChildOrderFollowsDeclarations(t *testing.T) {
	_, g := newTestGui(t)
	order := []string{"A", "B", "C"}
	ui := func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			for _, title := range order {
				g.Label(title)
			}
		})
	}
	g.Run(ui)
	order = []string{"C", "A", "B"}
	g.Run(ui)

	w := mustLookup[*Window](t, g, "W", KindWindow)
	var got []string
	for _, c := range w.Node().Children() {
		got = append(got, c.widget.Title())
	}
	if diff := cmp.Diff(order, got); diff != "" {
		t.Errorf("child order mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryPersistsAcrossTicks(t *testing.T) {
	_, g := newTestGui(t)
	var got []int
	ui := func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			n := UseMemory(g, "count", 10)
			*n++
			got = append(got, *n)
		})
	}
	for i := 0; i < 3; i++ {
		g.Run(ui)
	}
	if diff := cmp.Diff([]int{11, 12, 13}, got); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestClosedWindowReleasesMemory(t *testing.T) {
	_, g := newTestGui(t)
	showW := true
	ui := func(g *Gui) {
		if showW {
			g.Window("W").Show(func(g *Gui) {
				UseMemory(g, "state", 1)
				g.Collapsing("Section", func(g *Gui) {
					g.TextBox("Log", 60, "hello")
				})
			})
		}
		g.Window("V").Show(func(g *Gui) {
			UseMemory(g, "state", 2)
		})
	}

	g.Run(ui)
	for _, k := range []string{"W", "W::state", "W::Section:::collapsing", "W::Section::Log:::textbox", "V", "V::state"} {
		if !g.Memory().Has(k) {
			t.Fatalf("memory missing %q after first tick", k)
		}
	}

	showW = false
	g.Run(ui)
	want := []string{"V", "V::state"}
	if diff := cmp.Diff(want, g.Memory().Keys()); diff != "" {
		t.Errorf("memory keys mismatch (-want +got):\n%s", diff)
	}
	if _, ok := lookup[*Window](g, "W", KindWindow); ok {
		t.Error("closed window still indexed")
	}
}

func TestReopenedWindowStartsFresh(t *testing.T) {
	_, g := newTestGui(t)
	show := true
	var n *int
	ui := func(g *Gui) {
		if show {
			g.Window("W").Show(func(g *Gui) {
				n = UseMemory(g, "n", 0)
			})
		}
	}
	g.Run(ui)
	*n = 42
	show = false
	g.Run(ui)
	show = true
	g.Run(ui)
	if *n != 0 {
		t.Errorf("n = %d after reopening, want 0", *n)
	}
}

func TestButtonClickEndToEnd(t *testing.T) {
	s, g := newTestGui(t)
	var clicked bool
	ui := func(g *Gui) {
		g.Window("W").Position(10, 10).Show(func(g *Gui) {
			clicked = g.Button("OK")
		})
	}
	g.Run(ui)

	// The button sits at (4, 19) in the window, (14, 29) on screen.
	s.InjectPress(20, 35)
	s.Update()
	g.Run(ui)
	if clicked {
		t.Error("click reported on press")
	}
	b := mustLookup[*Button](t, g, "W::OK", KindButton)
	if !b.Pressed() {
		t.Error("button not pressed after press")
	}

	s.InjectRelease(20, 35)
	s.Update()
	g.Run(ui)
	if !clicked {
		t.Error("click not reported after release")
	}

	g.Run(ui)
	if clicked {
		t.Error("click reported twice")
	}
}

func TestModalBlocksWindows(t *testing.T) {
	s, g := newTestGui(t)
	modal := true
	var clicked bool
	ui := func(g *Gui) {
		g.Window("W").Position(10, 10).Show(func(g *Gui) {
			if g.Button("OK") {
				clicked = true
			}
		})
		if modal {
			g.ModalWindow("Confirm").Show(func(g *Gui) {
				g.Label("Sure?")
			})
		}
	}
	g.Run(ui)

	if !g.cover.Interactable || g.Windows().Enabled {
		t.Fatal("modal did not disable ordinary windows")
	}
	m := mustLookup[*Window](t, g, "Confirm", KindWindow)
	if got := m.Position(); got != (Vec2{160, 80}) {
		t.Errorf("modal position = %v, want {160 80}", got)
	}
	if m.Resizable || m.Scrollable {
		t.Error("modal window should be neither resizable nor scrollable")
	}
	w := mustLookup[*Window](t, g, "W", KindWindow)
	if w.IsActive() {
		t.Error("ordinary window active under a modal")
	}

	s.InjectClick(20, 35)
	s.Update()
	g.Run(ui)
	s.Update()
	g.Run(ui)
	if clicked {
		t.Error("button clicked through the modal blocker")
	}

	modal = false
	g.Run(ui)
	if g.cover.Interactable || !g.Windows().Enabled {
		t.Fatal("closing the modal did not re-enable windows")
	}
	s.InjectClick(20, 35)
	s.Update()
	g.Run(ui)
	s.Update()
	g.Run(ui)
	if !clicked {
		t.Error("button not clickable after the modal closed")
	}
}

func TestModalWindowCentred(t *testing.T) {
	_, g := newTestGui(t, WithScreenSize(800, 600))
	g.Run(func(g *Gui) {
		g.ModalWindow("M").Position(0, 0).Size(200, 100).Show(func(*Gui) {})
	})
	m := mustLookup[*Window](t, g, "M", KindWindow)
	if got := m.Position(); got != (Vec2{300, 250}) {
		t.Errorf("modal position = %v, want {300 250}", got)
	}
	if got := m.Node().Size(); got != (Vec2{200, 100}) {
		t.Errorf("modal size = %v, want {200 100}", got)
	}
}

func TestGetWidget(t *testing.T) {
	_, g := newTestGui(t)
	g.Run(func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			g.Slider("Volume", Field(new(float64)), 0, 1)
			w, ok := g.GetWidget("Volume")
			if !ok || w.Kind() != KindSlider {
				t.Errorf("GetWidget(Volume) = (%v, %v), want slider", w, ok)
			}
			if _, ok := WidgetAs[*Slider](g, "Volume"); !ok {
				t.Error("WidgetAs[*Slider] missed the slider")
			}
			if _, ok := WidgetAs[*Button](g, "Volume"); ok {
				t.Error("WidgetAs[*Button] found a slider")
			}
			if w, ok := g.GetWidget("Missing"); ok || w != nil {
				t.Errorf("GetWidget(Missing) = (%v, %v), want (nil, false)", w, ok)
			}
		})
	})
}

func TestCompositeWidgetScope(t *testing.T) {
	_, g := newTestGui(t)
	var gwid string
	g.Run(func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			g.BeginWidget("Picker")
			UseMemory(g, "sel", 0)
			gwid = g.TitleToGwid("sel")
			g.EndWidget()
		})
	})
	if gwid != "W::Picker::sel" {
		t.Errorf("gwid = %q, want W::Picker::sel", gwid)
	}
	if !g.Memory().Has(gwid) {
		t.Errorf("memory missing %q", gwid)
	}
}

func TestWidgetOutsideWindowPanics(t *testing.T) {
	_, g := newTestGui(t)
	defer func() {
		if recover() == nil {
			t.Error("declaring a widget outside a window should panic")
		}
	}()
	g.Run(func(g *Gui) { g.Button("OK") })
}

func TestDuplicateGwidWarning(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	_, g := newTestGui(t, WithDebug(true))
	g.Run(func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			g.Button("OK")
			g.Button("OK")
		})
	})
	if !strings.Contains(buf.String(), "duplicate widget id") {
		t.Errorf("log = %q, want a duplicate widget id warning", buf.String())
	}
}

func TestDuplicateGwidSilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	_, g := newTestGui(t)
	g.Run(func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			g.Button("OK")
			g.Button("OK")
		})
	})
	if strings.Contains(buf.String(), "duplicate") {
		t.Errorf("log = %q, want no duplicate warning", buf.String())
	}
}

func TestCreationContextLocal(t *testing.T) {
	s := NewScene()
	s.Root().Local = true
	g := NewGui(s.Root(), newTestFont(t))
	g.Run(func(g *Gui) {
		g.Window("W").Show(func(g *Gui) { g.Label("L") })
	})
	l := mustLookup[*Label](t, g, "W::L", KindLabel)
	if !l.Node().Local {
		t.Error("label node should inherit the local flag")
	}
	if g.ctx != (creation{}) {
		t.Errorf("creation context = %+v after PostRun, want zero", g.ctx)
	}
}

func TestFadeIn(t *testing.T) {
	_, g := newTestGui(t, WithFadeIn(0.5))
	ui := func(g *Gui) { g.Window("W").Show(func(*Gui) {}) }
	g.Run(ui)
	w := mustLookup[*Window](t, g, "W", KindWindow)
	if w.Node().Alpha != 0 {
		t.Errorf("alpha = %v on creation, want 0", w.Node().Alpha)
	}
	for i := 0; i < 60; i++ {
		g.Run(ui)
	}
	if w.Node().Alpha != 1 {
		t.Errorf("alpha = %v after fade, want 1", w.Node().Alpha)
	}
	if len(g.tweens) != 0 {
		t.Errorf("%d tweens left after fade", len(g.tweens))
	}
}
