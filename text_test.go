package willowgui

import (
	"fmt"
	"strings"
	"testing"
)

// testFontData is BMFont data for printable ASCII with 8px wide glyphs on a
// 12px line.
func testFontData() []byte {
	var b strings.Builder
	b.WriteString("info face=\"test\" size=12\n")
	b.WriteString("common lineHeight=12 base=10\n")
	for r := 32; r < 127; r++ {
		fmt.Fprintf(&b, "char id=%d x=0 y=0 width=8 height=12 xoffset=0 yoffset=0 xadvance=8\n", r)
	}
	return []byte(b.String())
}

// newTestFont returns a measurement-only monospaced font of size 12.
func newTestFont(t testing.TB) *BitmapFont {
	t.Helper()
	f, err := LoadBitmapFont(testFontData(), nil)
	if err != nil {
		t.Fatalf("LoadBitmapFont: %v", err)
	}
	return f
}

func TestLoadBitmapFont(t *testing.T) {
	f := newTestFont(t)
	if f.Size() != 12 {
		t.Errorf("Size = %v, want 12", f.Size())
	}
	if f.LineHeight() != 12 {
		t.Errorf("LineHeight = %v, want 12", f.LineHeight())
	}
	g, ok := f.Glyph('A')
	if !ok {
		t.Fatal("Glyph('A') not found")
	}
	if g.Advance != 8 || g.Width != 8 || g.Height != 12 {
		t.Errorf("Glyph('A') = %+v, want 8x12 advancing 8", g)
	}
	if g.Image != nil {
		t.Error("Glyph image should be nil without a page")
	}
	if _, ok := f.Glyph('é'); ok {
		t.Error("Glyph('é') should be missing")
	}
}

func TestLoadBitmapFontErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no common", "info size=12\nchar id=65 xadvance=8\n"},
		{"no chars", "info size=12\ncommon lineHeight=12\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBitmapFont([]byte(tt.data), nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBitmapFontMeasureString(t *testing.T) {
	f := newTestFont(t)
	tests := []struct {
		s    string
		w, h float64
	}{
		{"", 0, 12},
		{"abc", 24, 12},
		{"ab\nabcd", 32, 24},
		{"a\x01b", 16, 12},
	}
	for _, tt := range tests {
		w, h := f.MeasureString(tt.s)
		if w != tt.w || h != tt.h {
			t.Errorf("MeasureString(%q) = (%v, %v), want (%v, %v)", tt.s, w, h, tt.w, tt.h)
		}
	}
}

func TestBitmapFontKerning(t *testing.T) {
	data := string(testFontData()) + "kerning first=65 second=86 amount=-2\n"
	f, err := LoadBitmapFont([]byte(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	if w, _ := f.MeasureString("AV"); w != 14 {
		t.Errorf("MeasureString(AV) = %v, want 14", w)
	}
}

func TestLimitText(t *testing.T) {
	f := newTestFont(t)
	tests := []struct {
		name     string
		s        string
		maxWidth float64
		ellipsis string
		want     string
	}{
		{"fits", "hello", 40, "", "hello"},
		{"cut", "hello", 30, "", "hel"},
		{"cut with ellipsis", "hello world", 50, "..", "hell.."},
		{"nothing fits", "hello", 4, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LimitText(f, tt.s, tt.maxWidth, tt.ellipsis); got != tt.want {
				t.Errorf("LimitText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultFont(t *testing.T) {
	f, err := DefaultFont(14)
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	if f.Size() != 14 {
		t.Errorf("Size = %v, want 14", f.Size())
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v, want > 0", f.LineHeight())
	}
}

func TestLoadTTFFontInvalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid TTF data")
	}
}
