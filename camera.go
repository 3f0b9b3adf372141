package sapling

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera projects the stage through a movable, zoomable view. A stage with a
// camera attached converts screen coordinates through it before hit testing,
// and keep-within-stage windows clamp against the camera's visible extent.
type Camera struct {
	// X and Y are the stage-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera with the given viewport, centered on it.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// ScrollTo animates the camera to the given stage position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// update advances scroll animation. Called from Stage.Update.
func (c *Camera) update(dt float32) {
	prevX, prevY := c.X, c.Y

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// StageToScreen converts stage coordinates to screen coordinates.
func (c *Camera) StageToScreen(x, y float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, x, y)
}

// ScreenToStage converts screen coordinates to stage coordinates.
func (c *Camera) ScreenToStage(sx, sy float64) (x, y float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// HalfExtents returns half the visible width and height in stage units,
// accounting for zoom.
func (c *Camera) HalfExtents() (hw, hh float64) {
	return c.Viewport.Width / (2 * c.Zoom), c.Viewport.Height / (2 * c.Zoom)
}

// VisibleBounds returns the stage-space rectangle the camera can see.
func (c *Camera) VisibleBounds() Rect {
	hw, hh := c.HalfExtents()
	return Rect{X: c.X - hw, Y: c.Y - hh, Width: 2 * hw, Height: 2 * hh}
}

// SetZoom sets the zoom factor and marks the view matrix dirty.
// Zoom values at or below zero are rejected.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 || math.IsNaN(z) {
		return
	}
	c.Zoom = z
	c.dirty = true
}

// SetPosition centers the camera on the given stage position.
func (c *Camera) SetPosition(x, y float64) {
	c.X = x
	c.Y = y
	c.dirty = true
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
