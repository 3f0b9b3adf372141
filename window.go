package sapling

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Edge is a bitmask of window edges under the pointer. During a drag it
// selects the resize behavior; EdgeMove marks a title bar grab.
type Edge uint8

const (
	EdgeNone   Edge = 0
	EdgeLeft   Edge = 1 << 0
	EdgeRight  Edge = 1 << 1
	EdgeTop    Edge = 1 << 2
	EdgeBottom Edge = 1 << 3
	EdgeMove   Edge = 1 << 4
)

// Has reports whether e contains all edges in mask.
func (e Edge) Has(mask Edge) bool { return e&mask == mask }

// extraGrabBorder widens the resize hit zone once an edge has been detected,
// so near-corner grabs pick up the adjacent edge too.
const extraGrabBorder = 25

// defaultResizeBorder is the grab thickness of resizable window edges.
const defaultResizeBorder = 8

// WindowStyle holds the drawables and font a window renders with.
type WindowStyle struct {
	Background      Drawable // window body, may be nil
	TitleFont       Font
	TitleFontColor  Color
	StageBackground Drawable // dimmer drawn behind the window, may be nil
}

// DragTarget is what the drag/resize listener manipulates: an actor with
// layout sizing, edge padding, and drag policy. Window implements it; any
// widget with a grabbable border can reuse the listener by implementing it
// too.
type DragTarget interface {
	Actor
	Layouter

	// EdgePads returns the top, left, bottom, right content padding. The top
	// pad is the move-grab strip.
	EdgePads() (top, left, bottom, right float64)
	CanMove() bool
	CanResize() bool
	// BlocksInput reports whether the target swallows input that lands on it
	// but hits no child (modal behavior).
	BlocksInput() bool
	// StageClamped reports whether drags keep the target inside the stage.
	StageClamped() bool
	// GrabBorder returns the thickness of the resize hit zone.
	GrabBorder() float64
}

// dragResizeListener implements moving and resizing of a DragTarget from
// pointer input. One listener instance per target.
type dragResizeListener struct {
	InputAdapter
	target   DragTarget
	edge     Edge
	dragging bool

	startX, startY float64
	lastX, lastY   float64
}

// updateEdge classifies the local pointer position into an Edge mask.
// x, y are in the target's local space.
func (l *dragResizeListener) updateEdge(x, y float64) {
	b := l.target.Base()
	width, height := b.Width, b.Height
	padTop, padLeft, padBottom, padRight := l.target.EdgePads()
	border := l.target.GrabBorder() / 2

	l.edge = EdgeNone
	if l.target.CanResize() &&
		x >= padLeft-border && x <= width-padRight+border &&
		y <= height-padBottom+border {
		if x < padLeft+border {
			l.edge |= EdgeLeft
		}
		if x > width-padRight-border {
			l.edge |= EdgeRight
		}
		if y > height-padBottom-border {
			l.edge |= EdgeBottom
		}
		if l.edge != EdgeNone {
			// Near a corner the zone widens so the second edge joins in.
			border += extraGrabBorder
			if x < padLeft+border {
				l.edge |= EdgeLeft
			}
			if x > width-padRight-border {
				l.edge |= EdgeRight
			}
			if y > height-padBottom-border {
				l.edge |= EdgeBottom
			}
		}
	}
	if l.edge == EdgeNone && l.target.CanMove() &&
		y >= 0 && y <= padTop && x >= padLeft && x <= width-padRight {
		l.edge = EdgeMove
	}
}

func (l *dragResizeListener) TouchDown(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool {
	if button == MouseButtonLeft {
		l.updateEdge(x, y)
		l.dragging = l.edge != EdgeNone
		l.startX, l.startY = x, y
		b := l.target.Base()
		l.lastX = x - b.Width
		l.lastY = y - b.Height
	}
	return l.edge != EdgeNone || l.target.BlocksInput()
}

func (l *dragResizeListener) TouchDragged(ev *InputEvent, x, y float64, pointer int) bool {
	if !l.dragging {
		return false
	}
	b := l.target.Base()
	width, height := b.Width, b.Height
	wx, wy := b.X, b.Y
	minW := l.target.MinWidth()
	minH := l.target.MinHeight()
	stage := b.stage
	clampPos := l.target.StageClamped() && stage != nil && b.parent == stage.root

	if l.edge == EdgeMove {
		wx += x - l.startX
		wy += y - l.startY
	}
	if l.edge.Has(EdgeLeft) {
		amountX := x - l.startX
		if width-amountX < minW {
			amountX = width - minW
		}
		if clampPos && wx+amountX < 0 {
			amountX = -wx
		}
		width -= amountX
		wx += amountX
	}
	if l.edge.Has(EdgeTop) {
		amountY := y - l.startY
		if height-amountY < minH {
			amountY = height - minH
		}
		if clampPos && wy+amountY < 0 {
			amountY = -wy
		}
		height -= amountY
		wy += amountY
	}
	if l.edge.Has(EdgeRight) {
		amountX := x - l.lastX - width
		if width+amountX < minW {
			amountX = minW - width
		}
		if clampPos && wx+width+amountX > stage.Width() {
			amountX = stage.Width() - wx - width
		}
		width += amountX
	}
	if l.edge.Has(EdgeBottom) {
		amountY := y - l.lastY - height
		if height+amountY < minH {
			amountY = minH - height
		}
		if clampPos && wy+height+amountY > stage.Height() {
			amountY = stage.Height() - wy - height
		}
		height += amountY
	}

	newX, newY := math.Round(wx), math.Round(wy)
	newW, newH := math.Round(width), math.Round(height)
	moved := newX != b.X || newY != b.Y
	resized := newW != b.Width || newH != b.Height
	b.X, b.Y = newX, newY
	b.Width, b.Height = newW, newH
	if resized {
		l.target.Invalidate()
	}
	if stage != nil {
		name := b.Name
		if moved {
			stage.emitGeometry(EventWindowMoved, name, b.X, b.Y, b.Width, b.Height)
		}
		if resized {
			stage.emitGeometry(EventWindowResized, name, b.X, b.Y, b.Width, b.Height)
		}
	}
	return true
}

func (l *dragResizeListener) TouchUp(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool {
	l.dragging = false
	l.edge = EdgeNone
	return false
}

func (l *dragResizeListener) MouseMoved(ev *InputEvent, x, y float64) bool {
	l.updateEdge(x, y)
	return l.target.BlocksInput()
}

func (l *dragResizeListener) Scrolled(ev *InputEvent, x, y, scrollX, scrollY float64) bool {
	return l.target.BlocksInput()
}

func (l *dragResizeListener) KeyDown(ev *InputEvent, key ebiten.Key) bool {
	return l.target.BlocksInput()
}

func (l *dragResizeListener) KeyUp(ev *InputEvent, key ebiten.Key) bool {
	return l.target.BlocksInput()
}

func (l *dragResizeListener) KeyTyped(ev *InputEvent, r rune) bool {
	return l.target.BlocksInput()
}

// raiseListener brings the window to the front of its sibling order on any
// press, without consuming the event.
type raiseListener struct {
	InputAdapter
	target Actor
}

func (l *raiseListener) TouchDown(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool {
	l.target.Base().ToFront()
	return false
}

// Window is a draggable, optionally resizable table with a title bar. The
// title bar occupies the top padding strip; grabbing it moves the window,
// grabbing a resizable edge resizes it. A modal window swallows all input
// that does not land on one of its children.
type Window struct {
	Table

	Movable         bool
	Resizable       bool
	KeepWithinStage bool
	Modal           bool
	ResizeBorder    float64

	style      WindowStyle
	titleLabel *Label
	titleTable *Table
	drag       *dragResizeListener

	fade       *gween.Tween
	fadeRemove bool
}

// NewWindow creates a window with the given title. Windows start movable,
// clamped to the stage, and not resizable.
func NewWindow(title string, style WindowStyle) *Window {
	w := &Window{
		Movable:         true,
		KeepWithinStage: true,
		ResizeBorder:    defaultResizeBorder,
		style:           style,
	}
	w.initTable("window", w)
	w.Touchable = TouchableEnabled
	w.SetBackground(style.Background)

	w.titleLabel = NewLabel(title, LabelStyle{Font: style.TitleFont, FontColor: style.TitleFontColor})
	w.titleTable = NewTable()
	w.titleTable.Name = "title"
	w.titleTable.Add(w.titleLabel).Expand().Fill()
	w.AddActor(w.titleTable)

	// The title bar height drives the top padding, so the content area
	// always starts below the title.
	w.padTop = valueFunc(func(Actor) float64 {
		return w.titleLabel.PrefHeight()
	})

	w.AddListener(&raiseListener{target: w})
	w.drag = &dragResizeListener{target: w}
	w.AddListener(w.drag)

	w.SetSize(150, 150)
	return w
}

// NewWindowFromSkin creates a window styled by the named skin entry.
func NewWindowFromSkin(title string, skin *Skin, styleName string) (*Window, error) {
	style, err := skin.WindowStyle(styleName)
	if err != nil {
		return nil, err
	}
	return NewWindow(title, style), nil
}

// Style returns the window's style.
func (w *Window) Style() WindowStyle { return w.style }

// SetStyle replaces the window's style, restyles the title label, and
// installs the style's background as the table background.
func (w *Window) SetStyle(style WindowStyle) {
	w.style = style
	w.titleLabel.SetStyle(LabelStyle{Font: style.TitleFont, FontColor: style.TitleFontColor})
	w.SetBackground(style.Background)
	w.InvalidateHierarchy()
}

// Title returns the title text.
func (w *Window) Title() string { return w.titleLabel.Text() }

// SetTitle changes the title text.
func (w *Window) SetTitle(title string) { w.titleLabel.SetText(title) }

// SetTitleAlign positions the title text within the title bar.
func (w *Window) SetTitleAlign(align Align) {
	w.titleLabel.SetAlign(align)
	w.titleTable.GetCell(w.titleLabel).Align(align)
}

// TitleLabel returns the label rendering the title.
func (w *Window) TitleLabel() *Label { return w.titleLabel }

// TitleTable returns the table laid out over the title bar. Extra actors
// (close buttons and the like) can be added to it.
func (w *Window) TitleTable() *Table { return w.titleTable }

// Dragging reports whether a pointer is currently moving or resizing the
// window.
func (w *Window) Dragging() bool { return w.drag.dragging }

// --- DragTarget ---

func (w *Window) EdgePads() (top, left, bottom, right float64) {
	return w.PadTop(), w.PadLeft(), w.PadBottom(), w.PadRight()
}

func (w *Window) CanMove() bool { return w.Movable }

func (w *Window) CanResize() bool { return w.Resizable }

func (w *Window) BlocksInput() bool { return w.Modal }

func (w *Window) StageClamped() bool { return w.KeepWithinStage }

func (w *Window) GrabBorder() float64 { return w.ResizeBorder }

// --- Fades ---

// FadeIn tweens the window's alpha from transparent to opaque.
func (w *Window) FadeIn(duration float32) {
	w.Color.A = 0
	w.fade = gween.New(0, 1, duration, ease.OutQuad)
	w.fadeRemove = false
}

// FadeOut tweens the window's alpha to transparent, then removes the window
// from its parent.
func (w *Window) FadeOut(duration float32) {
	w.fade = gween.New(float32(w.Color.A), 0, duration, ease.OutQuad)
	w.fadeRemove = true
}

func (w *Window) Act(dt float64) {
	if w.fade != nil {
		v, done := w.fade.Update(float32(dt))
		w.Color.A = float64(v)
		if done {
			w.fade = nil
			if w.fadeRemove {
				w.fadeRemove = false
				w.Remove()
			}
		}
	}
	w.Group.Act(dt)
}

// EnsureWithinStage clamps the window back inside the visible stage area.
// With a camera attached the clamp is against the camera's visible extent,
// otherwise against the stage viewport. Only top-level windows clamp.
func (w *Window) EnsureWithinStage() {
	if !w.KeepWithinStage || w.stage == nil {
		return
	}
	if cam := w.stage.Camera(); cam != nil {
		halfW, halfH := cam.HalfExtents()
		if w.X+w.Width > cam.X+halfW {
			w.X = cam.X + halfW - w.Width
		}
		if w.X < cam.X-halfW {
			w.X = cam.X - halfW
		}
		if w.Y+w.Height > cam.Y+halfH {
			w.Y = cam.Y + halfH - w.Height
		}
		if w.Y < cam.Y-halfH {
			w.Y = cam.Y - halfH
		}
		return
	}
	if w.parent != w.stage.root {
		return
	}
	if w.X < 0 {
		w.X = 0
	}
	if w.X+w.Width > w.stage.Width() {
		w.X = w.stage.Width() - w.Width
	}
	if w.Y < 0 {
		w.Y = 0
	}
	if w.Y+w.Height > w.stage.Height() {
		w.Y = w.stage.Height() - w.Height
	}
}

// Hit gives the title bar precedence over content cells, so a press on the
// title strip grabs the window even when a cell child sits underneath. A
// modal window absorbs hits that land nowhere.
func (w *Window) Hit(x, y float64, touchable bool) Actor {
	if !w.Visible {
		return nil
	}
	hit := w.Group.Hit(x, y, touchable)
	if hit == nil && w.Modal && (!touchable || w.Touchable == TouchableEnabled) {
		return w.self
	}
	if hit == nil || hit.Base() == w.Base() {
		return hit
	}
	if y >= 0 && y <= w.PadTop() && x >= 0 && x <= w.Width {
		// Resolve the hit to its direct-child ancestor under the window.
		cur := hit
		for cur.Base().parent != nil && cur.Base().parent != &w.Group {
			cur = parentActor(cur)
		}
		if w.GetCell(cur) != nil {
			return w.self
		}
	}
	return hit
}

func (w *Window) Draw(screen *ebiten.Image, parentAlpha float64) {
	if !w.Visible {
		return
	}
	if w.stage != nil {
		if w.stage.KeyboardFocus() == nil {
			w.stage.SetKeyboardFocus(w.self)
		}
		w.EnsureWithinStage()
		if w.style.StageBackground != nil {
			sx, sy := w.stage.Root().LocalToStage(0, 0)
			w.style.StageBackground.Draw(screen, sx, sy, w.stage.Width(), w.stage.Height(),
				Color{w.Color.R, w.Color.G, w.Color.B, w.Color.A * parentAlpha})
		}
	}
	w.Validate()
	alpha := parentAlpha * w.Color.A
	if w.background != nil {
		sx, sy := w.LocalToStage(0, 0)
		w.background.Draw(screen, sx, sy, w.Width, w.Height,
			Color{w.Color.R, w.Color.G, w.Color.B, alpha})
	}

	// The title table is laid out over the top padding strip and drawn
	// between the background and the content children.
	w.titleTable.SetBounds(w.PadLeft(), 0, w.Width-w.PadLeft()-w.PadRight(), w.PadTop())
	w.titleTable.Color.A = w.Color.A
	w.titleTable.Draw(screen, parentAlpha)

	for _, c := range w.Children() {
		if c.Base() == w.titleTable.Base() || !c.Base().Visible {
			continue
		}
		c.Draw(screen, alpha)
	}
}
