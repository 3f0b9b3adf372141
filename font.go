package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement and rendering. Labels and
// window titles draw through it; layout queries only measure.
type Font interface {
	// MeasureString returns the rendered width and height of text.
	MeasureString(text string) (width, height float64)
	// LineHeight returns the height of a single line.
	LineHeight() float64
	// DrawString renders text with its top-left corner at (x, y).
	DrawString(screen *ebiten.Image, text string, x, y float64, tint Color)
}

// --- BasicFont ---

// BasicFont is a fixed-advance placeholder font. It measures every rune at
// Advance pixels wide and renders solid glyph blocks, which makes it useful
// for tools, prototyping, and tests where real glyph shapes don't matter.
type BasicFont struct {
	Advance float64 // horizontal advance per rune
	Height  float64 // line height
}

// NewBasicFont creates a fixed-advance font.
func NewBasicFont(advance, height float64) *BasicFont {
	return &BasicFont{Advance: advance, Height: height}
}

func (f *BasicFont) MeasureString(text string) (float64, float64) {
	if text == "" {
		return 0, f.Height
	}
	n := 0
	for range text {
		n++
	}
	return float64(n) * f.Advance, f.Height
}

func (f *BasicFont) LineHeight() float64 { return f.Height }

// DrawString renders one block per rune, inset a pixel on each side so
// adjacent glyphs stay distinguishable.
func (f *BasicFont) DrawString(screen *ebiten.Image, text string, x, y float64, tint Color) {
	gw := f.Advance - 2
	gh := f.Height - 2
	if gw <= 0 || gh <= 0 {
		return
	}
	i := 0
	for _, r := range text {
		if r != ' ' {
			drawScaled(screen, WhitePixel, x+float64(i)*f.Advance+1, y+1, gw, gh, tint)
		}
		i++
	}
}

// --- FaceFont ---

// FaceFont adapts an ebiten text/v2 face to the Font interface.
type FaceFont struct {
	Face text.Face
}

// NewFaceFont wraps a text/v2 face. Panics if face is nil.
func NewFaceFont(face text.Face) *FaceFont {
	if face == nil {
		panic("sapling: cannot create FaceFont from nil face")
	}
	return &FaceFont{Face: face}
}

func (f *FaceFont) MeasureString(s string) (float64, float64) {
	return text.Measure(s, f.Face, f.LineHeight())
}

func (f *FaceFont) LineHeight() float64 {
	m := f.Face.Metrics()
	return m.HAscent + m.HDescent
}

func (f *FaceFont) DrawString(screen *ebiten.Image, s string, x, y float64, tint Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	a := float32(tint.A)
	op.ColorScale.Scale(float32(tint.R)*a, float32(tint.G)*a, float32(tint.B)*a, a)
	text.Draw(screen, s, f.Face, op)
}
