package willowgui

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ff0000", want: Color{1, 0, 0, 1}},
		{in: "00ff00", want: Color{0, 1, 0, 1}},
		{in: " #0000ff00 ", want: Color{0, 0, 1, 0}},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{1, 0, 0, 1}, "#ff0000"},
		{Color{0, 0, 0, 0.5}, "#00000080"},
		{Color{2, -1, 0, 1}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestMustHexColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustHexColor("nope")
}

func TestColorYAML(t *testing.T) {
	type doc struct {
		Fg Color `yaml:"fg"`
	}
	var d doc
	if err := yaml.Unmarshal([]byte(`fg: "#4296f9"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := d.Fg.Hex(); got != "#4296f9" {
		t.Errorf("Fg = %s, want #4296f9", got)
	}
	out, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back doc
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal of %q: %v", out, err)
	}
	if back.Fg != d.Fg {
		t.Errorf("round trip = %v, want %v", back.Fg, d.Fg)
	}
	if err := yaml.Unmarshal([]byte(`fg: [1, 2]`), &d); err == nil {
		t.Error("Unmarshal of a sequence succeeded")
	}
}

func TestColorToRGBA(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.toRGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
	if got := (Color{1, 1, 1, 1}).WithAlpha(0.25).A; got != 0.25 {
		t.Errorf("WithAlpha alpha = %v, want 0.25", got)
	}
}

func TestAABB(t *testing.T) {
	a := AABB{Min: Vec2{10, 20}, Max: Vec2{110, 70}}
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", Vec2{50, 40}, true},
		{"top-left corner", Vec2{10, 20}, true},
		{"bottom-right corner", Vec2{110, 70}, true},
		{"outside left", Vec2{9, 40}, false},
		{"outside below", Vec2{50, 71}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if a.Width() != 100 || a.Height() != 50 {
		t.Errorf("size = %vx%v, want 100x50", a.Width(), a.Height())
	}
	b := a
	b.Enlarge(Vec2{0, 100})
	if diff := cmp.Diff(AABB{Min: Vec2{0, 20}, Max: Vec2{110, 100}}, b); diff != "" {
		t.Errorf("Enlarge mismatch (-want +got):\n%s", diff)
	}
	if got := a.Translate(Vec2{1, 2}); got.Min != (Vec2{11, 22}) || got.Max != (Vec2{111, 72}) {
		t.Errorf("Translate = %v", got)
	}
	if got := a.Expand(2); got.Min != (Vec2{8, 18}) || got.Max != (Vec2{112, 72}) {
		t.Errorf("Expand = %v", got)
	}
}

func TestSceneDrawSmoke(t *testing.T) {
	s, g := newTestGui(t)
	on := true
	v := 0.5
	ui := func(g *Gui) {
		g.Window("W").Show(func(g *Gui) {
			g.Button("OK")
			g.Checkbox("On", Field(&on))
			g.Slider("V", Field(&v), 0, 1)
			g.TextBox("log", 40, "hello\nworld")
		})
		g.ModalWindow("M").Show(func(g *Gui) { g.Label("sure?") })
	}
	g.Run(ui)
	g.Run(ui)

	screen := ebiten.NewImage(640, 480)
	defer screen.Deallocate()
	s.Draw(screen)

	w := mustLookup[*Window](t, g, "W", KindWindow)
	if w.cache == nil || w.cache.Width() != 320 || w.cache.Height() != 225 {
		t.Errorf("window cache not sized to the body below the title bar")
	}
	w.Node().Dispose()
	if w.cache != nil {
		t.Error("disposing the window kept its cache")
	}
}
