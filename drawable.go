package sapling

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable renders a stretchable visual into a rectangle. Backgrounds,
// fills, and dimming overlays are all Drawables; styles reference them by
// interface so widgets never care where the pixels come from.
type Drawable interface {
	// Draw renders into the rectangle at (x, y) with the given size, in
	// screen coordinates, modulated by tint.
	Draw(screen *ebiten.Image, x, y, width, height float64, tint Color)
	// MinWidth returns the smallest width this drawable renders well at.
	MinWidth() float64
	// MinHeight returns the smallest height this drawable renders well at.
	MinHeight() float64
}

// drawScaled stretches src over the destination rectangle with a
// premultiplied tint.
func drawScaled(screen *ebiten.Image, src *ebiten.Image, x, y, width, height float64, tint Color) {
	if width <= 0 || height <= 0 {
		return
	}
	b := src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/sw, height/sh)
	op.GeoM.Translate(x, y)
	a := float32(tint.A)
	op.ColorScale.Scale(float32(tint.R)*a, float32(tint.G)*a, float32(tint.B)*a, a)
	screen.DrawImage(src, op)
}

// --- ColorDrawable ---

// ColorDrawable fills its rectangle with a solid color.
type ColorDrawable struct {
	Color Color
}

// NewColorDrawable creates a solid fill drawable.
func NewColorDrawable(c Color) *ColorDrawable {
	return &ColorDrawable{Color: c}
}

func (d *ColorDrawable) Draw(screen *ebiten.Image, x, y, width, height float64, tint Color) {
	drawScaled(screen, WhitePixel, x, y, width, height, d.Color.Mul(tint))
}

func (d *ColorDrawable) MinWidth() float64 { return 0 }

func (d *ColorDrawable) MinHeight() float64 { return 0 }

// --- RegionDrawable ---

// RegionDrawable stretches an atlas region (or any sub-rectangle of an
// image) over its rectangle.
type RegionDrawable struct {
	Source *ebiten.Image
	Region TextureRegion
}

// NewRegionDrawable creates a drawable for a region within source.
func NewRegionDrawable(source *ebiten.Image, region TextureRegion) *RegionDrawable {
	return &RegionDrawable{Source: source, Region: region}
}

func (d *RegionDrawable) Draw(screen *ebiten.Image, x, y, width, height float64, tint Color) {
	if d.Source == nil {
		return
	}
	r := d.Region
	sub := d.Source.SubImage(image.Rect(
		int(r.X), int(r.Y),
		int(r.X)+int(r.Width), int(r.Y)+int(r.Height),
	)).(*ebiten.Image)
	drawScaled(screen, sub, x, y, width, height, tint)
}

func (d *RegionDrawable) MinWidth() float64 { return float64(d.Region.OriginalW) }

func (d *RegionDrawable) MinHeight() float64 { return float64(d.Region.OriginalH) }

// --- TintDrawable ---

// TintDrawable wraps another drawable with a fixed tint, letting one base
// drawable serve several styles.
type TintDrawable struct {
	Wrapped Drawable
	Tint    Color
}

// NewTintDrawable wraps a drawable with a tint.
func NewTintDrawable(wrapped Drawable, tint Color) *TintDrawable {
	if wrapped == nil {
		panic("sapling: cannot tint nil drawable")
	}
	return &TintDrawable{Wrapped: wrapped, Tint: tint}
}

func (d *TintDrawable) Draw(screen *ebiten.Image, x, y, width, height float64, tint Color) {
	d.Wrapped.Draw(screen, x, y, width, height, d.Tint.Mul(tint))
}

func (d *TintDrawable) MinWidth() float64 { return d.Wrapped.MinWidth() }

func (d *TintDrawable) MinHeight() float64 { return d.Wrapped.MinHeight() }
