package willowgui

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Font is the interface widgets measure and draw text through.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
	// Size is the nominal font size; widget heights derive from it.
	Size() float64
	// Glyph returns the metrics and image of r. ok is false when the font
	// has no glyph for r.
	Glyph(r rune) (g Glyph, ok bool)
}

// Glyph is a single rasterized character. Offsets place the image relative
// to the pen position at the top of the line.
type Glyph struct {
	Rune    rune
	Image   *ebiten.Image // nil for blank glyphs such as space
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Advance float64
}

// LimitText returns s unchanged when it fits in maxWidth. Otherwise it
// returns the longest prefix that fits together with ellipsis, followed by
// ellipsis.
func LimitText(font Font, s string, maxWidth float64, ellipsis string) string {
	if w, _ := font.MeasureString(s); w <= maxWidth {
		return s
	}
	ellipsisW, _ := font.MeasureString(ellipsis)

	var b strings.Builder
	var width float64
	for _, r := range s {
		g, ok := font.Glyph(r)
		if !ok {
			continue
		}
		width += g.Advance
		if width+ellipsisW >= maxWidth {
			break
		}
		b.WriteRune(r)
	}
	b.WriteString(ellipsis)
	return b.String()
}

// --- glyph (internal) ---

type glyph struct {
	id       rune
	x, y     uint16
	width    uint16
	height   uint16
	xOffset  int16
	yOffset  int16
	xAdvance int16
}

// --- BitmapFont ---

const asciiGlyphCount = 128

// BitmapFont renders text from a pre-rasterized glyph atlas in BMFont format.
type BitmapFont struct {
	size       float64
	lineHeight float64
	base       float64
	page       *ebiten.Image // atlas image; nil fonts still measure

	asciiGlyphs [asciiGlyphCount]glyph // fixed array for ASCII, zero-alloc lookup
	asciiSet    [asciiGlyphCount]bool  // which ASCII entries are populated
	extGlyphs   map[rune]*glyph        // extended Unicode

	kernings map[[2]rune]int16
}

// MeasureString returns the width and height of the rendered text.
func (f *BitmapFont) MeasureString(s string) (width, height float64) {
	var maxW float64
	var cursorX float64
	var prevRune rune
	var hasPrev bool
	lines := 1

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if r == '\n' {
			maxW = max(maxW, cursorX)
			cursorX = 0
			lines++
			hasPrev = false
			continue
		}

		g := f.glyph(r)
		if g == nil {
			hasPrev = false
			continue
		}

		if hasPrev {
			cursorX += float64(f.kern(prevRune, r))
		}
		cursorX += float64(g.xAdvance)
		prevRune = r
		hasPrev = true
	}

	return max(maxW, cursorX), float64(lines) * f.lineHeight
}

// LineHeight returns the vertical distance between baselines.
func (f *BitmapFont) LineHeight() float64 {
	return f.lineHeight
}

// Size returns the "info size" of the font, or its line height when the
// .fnt data has none.
func (f *BitmapFont) Size() float64 {
	if f.size > 0 {
		return f.size
	}
	return f.lineHeight
}

// Glyph implements Font.
func (f *BitmapFont) Glyph(r rune) (Glyph, bool) {
	g := f.glyph(r)
	if g == nil {
		return Glyph{}, false
	}
	out := Glyph{
		Rune:    r,
		OffsetX: float64(g.xOffset),
		OffsetY: float64(g.yOffset),
		Width:   float64(g.width),
		Height:  float64(g.height),
		Advance: float64(g.xAdvance),
	}
	if f.page != nil && g.width > 0 && g.height > 0 {
		rect := image.Rect(int(g.x), int(g.y), int(g.x)+int(g.width), int(g.y)+int(g.height))
		out.Image = f.page.SubImage(rect).(*ebiten.Image)
	}
	return out, true
}

// glyph returns the glyph for the given rune, or nil if not found.
func (f *BitmapFont) glyph(r rune) *glyph {
	if r >= 0 && r < asciiGlyphCount {
		if f.asciiSet[r] {
			return &f.asciiGlyphs[r]
		}
		return nil
	}
	if g, ok := f.extGlyphs[r]; ok {
		return g
	}
	return nil
}

// kern returns the kerning amount for the given rune pair.
func (f *BitmapFont) kern(first, second rune) int16 {
	if f.kernings == nil {
		return 0
	}
	return f.kernings[[2]rune{first, second}]
}

// LoadBitmapFont parses BMFont .fnt text-format data. page is the atlas
// image the glyph rectangles refer to; it may be nil for measurement only.
func LoadBitmapFont(fntData []byte, page *ebiten.Image) (*BitmapFont, error) {
	f := &BitmapFont{page: page}

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	var charCount int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "info":
			if v, ok := fields["size"]; ok {
				size, _ := strconv.ParseFloat(v, 64)
				f.size = math.Abs(size)
			}

		case "common":
			if v, ok := fields["lineHeight"]; ok {
				f.lineHeight, _ = strconv.ParseFloat(v, 64)
			}
			if v, ok := fields["base"]; ok {
				f.base, _ = strconv.ParseFloat(v, 64)
			}

		case "char":
			charCount++
			g := glyph{
				id:       rune(atoiField(fields, "id")),
				x:        uint16(atoiField(fields, "x")),
				y:        uint16(atoiField(fields, "y")),
				width:    uint16(atoiField(fields, "width")),
				height:   uint16(atoiField(fields, "height")),
				xOffset:  int16(atoiField(fields, "xoffset")),
				yOffset:  int16(atoiField(fields, "yoffset")),
				xAdvance: int16(atoiField(fields, "xadvance")),
			}
			if g.id >= 0 && g.id < asciiGlyphCount {
				f.asciiGlyphs[g.id] = g
				f.asciiSet[g.id] = true
			} else {
				if f.extGlyphs == nil {
					f.extGlyphs = make(map[rune]*glyph)
				}
				f.extGlyphs[g.id] = &g
			}

		case "kerning":
			if f.kernings == nil {
				f.kernings = make(map[[2]rune]int16)
			}
			pair := [2]rune{rune(atoiField(fields, "first")), rune(atoiField(fields, "second"))}
			f.kernings[pair] = int16(atoiField(fields, "amount"))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("willowgui: error reading .fnt data: %w", err)
	}
	if f.lineHeight == 0 {
		return nil, fmt.Errorf("willowgui: .fnt data missing common lineHeight")
	}
	if charCount == 0 {
		return nil, fmt.Errorf("willowgui: .fnt data has no char definitions")
	}
	return f, nil
}

func atoiField(fields map[string]string, key string) int {
	v, _ := strconv.Atoi(fields[key])
	return v
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}

// --- TTFFont ---

// ttfMetrics caches the layout metrics of one rune.
type ttfMetrics struct {
	present          bool
	offsetX, offsetY float64
	width, height    float64
	advance          float64
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face    *text.GoTextFace
	source  *text.GoTextFaceSource
	outline *sfnt.Font
	buf     sfnt.Buffer
	size    float64
	lh      float64 // cached line height
	metrics map[rune]ttfMetrics
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("willowgui: failed to parse TTF data: %w", err)
	}
	outline, err := sfnt.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("willowgui: failed to parse TTF outlines: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &TTFFont{
		face:    face,
		source:  source,
		outline: outline,
		size:    size,
		lh:      m.HAscent + m.HDescent + m.HLineGap,
		metrics: make(map[rune]ttfMetrics),
	}, nil
}

// DefaultFont loads the built-in Go Regular typeface at size.
func DefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the face size.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// Glyph implements Font. Metrics are cached per rune; the image comes from
// text/v2's own glyph cache on every call.
func (f *TTFFont) Glyph(r rune) (Glyph, bool) {
	m, ok := f.metrics[r]
	var img *ebiten.Image
	if !ok {
		m, img = f.loadGlyph(r)
		f.metrics[r] = m
	} else if m.present && m.width > 0 {
		img = f.glyphImage(r)
	}
	if !m.present {
		return Glyph{}, false
	}
	return Glyph{
		Rune:    r,
		Image:   img,
		OffsetX: m.offsetX,
		OffsetY: m.offsetY,
		Width:   m.width,
		Height:  m.height,
		Advance: m.advance,
	}, true
}

func (f *TTFFont) loadGlyph(r rune) (ttfMetrics, *ebiten.Image) {
	idx, err := f.outline.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return ttfMetrics{}, nil
	}
	s := string(r)
	m := ttfMetrics{present: true, advance: text.Advance(s, f.face)}
	glyphs := text.AppendGlyphs(nil, s, f.face, nil)
	if len(glyphs) == 0 || glyphs[0].Image == nil {
		return m, nil
	}
	g := glyphs[0]
	b := g.Image.Bounds()
	m.offsetX, m.offsetY = g.X, g.Y
	m.width, m.height = float64(b.Dx()), float64(b.Dy())
	return m, g.Image
}

func (f *TTFFont) glyphImage(r rune) *ebiten.Image {
	glyphs := text.AppendGlyphs(nil, string(r), f.face, nil)
	if len(glyphs) == 0 {
		return nil
	}
	return glyphs[0].Image
}
