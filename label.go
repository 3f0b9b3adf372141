package sapling

import "github.com/hajimehoshi/ebiten/v2"

// LabelStyle bundles the resources a Label draws with.
type LabelStyle struct {
	Font       Font
	FontColor  Color
	Background Drawable // optional
}

// Label is a single-line text widget. It implements Layouter: its preferred
// size is the measured text size.
type Label struct {
	BaseActor
	style LabelStyle
	text  string
	align Align

	prefW, prefH float64
	needsLayout  bool
}

// NewLabel creates a label with the given text and style.
func NewLabel(text string, style LabelStyle) *Label {
	l := &Label{style: style, text: text, needsLayout: true}
	l.initActor("label", l)
	l.SetSize(l.PrefWidth(), l.PrefHeight())
	return l
}

// Text returns the label's current text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's text and invalidates its layout.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.needsLayout = true
	invalidateAncestors(l)
}

// SetAlign positions the text within the label's bounds.
func (l *Label) SetAlign(align Align) { l.align = align }

// Style returns the label's style.
func (l *Label) Style() LabelStyle { return l.style }

// SetStyle replaces the label's style and invalidates its layout.
func (l *Label) SetStyle(style LabelStyle) {
	l.style = style
	l.needsLayout = true
	invalidateAncestors(l)
}

// --- Layouter ---

func (l *Label) measure() {
	if !l.needsLayout {
		return
	}
	l.needsLayout = false
	if l.style.Font == nil {
		l.prefW, l.prefH = 0, 0
		return
	}
	l.prefW, l.prefH = l.style.Font.MeasureString(l.text)
}

func (l *Label) MinWidth() float64 { l.measure(); return l.prefW }

func (l *Label) MinHeight() float64 { l.measure(); return l.prefH }

func (l *Label) PrefWidth() float64 { l.measure(); return l.prefW }

func (l *Label) PrefHeight() float64 { l.measure(); return l.prefH }

func (l *Label) MaxWidth() float64 { return 0 }

func (l *Label) MaxHeight() float64 { return 0 }

func (l *Label) Invalidate() { l.needsLayout = true }

func (l *Label) InvalidateHierarchy() {
	l.Invalidate()
	invalidateAncestors(l)
}

func (l *Label) Validate() { l.measure() }

func (l *Label) Pack() {
	l.SetSize(l.PrefWidth(), l.PrefHeight())
	l.Validate()
}

// Draw renders the background (if any) and the aligned text.
func (l *Label) Draw(screen *ebiten.Image, parentAlpha float64) {
	if !l.Visible {
		return
	}
	l.measure()
	alpha := parentAlpha * l.Color.A
	sx, sy := l.LocalToStage(0, 0)

	if l.style.Background != nil {
		l.style.Background.Draw(screen, sx, sy, l.Width, l.Height,
			Color{l.Color.R, l.Color.G, l.Color.B, alpha})
	}
	if l.style.Font == nil || l.text == "" {
		return
	}

	// Align the measured text block within the label bounds.
	tx := (l.Width - l.prefW) / 2
	switch {
	case l.align&AlignLeft != 0:
		tx = 0
	case l.align&AlignRight != 0:
		tx = l.Width - l.prefW
	}
	ty := (l.Height - l.prefH) / 2
	switch {
	case l.align&AlignTop != 0:
		ty = 0
	case l.align&AlignBottom != 0:
		ty = l.Height - l.prefH
	}

	tint := l.style.FontColor.Mul(Color{l.Color.R, l.Color.G, l.Color.B, alpha})
	l.style.Font.DrawString(screen, l.text, sx+tx, sy+ty, tint)
}
