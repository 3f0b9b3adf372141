package sapling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a drawable submits to the screen.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Mul returns the component-wise product of two colors.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex string.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("sapling: color %q must start with '#'", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("sapling: color %q must have 6 or 8 hex digits", s)
	}
	var bytes [4]uint8
	bytes[3] = 255
	for i := 0; i*2 < len(hex); i++ {
		var b uint8
		for _, ch := range []byte(hex[i*2 : i*2+2]) {
			b <<= 4
			switch {
			case ch >= '0' && ch <= '9':
				b |= ch - '0'
			case ch >= 'a' && ch <= 'f':
				b |= ch - 'a' + 10
			case ch >= 'A' && ch <= 'F':
				b |= ch - 'A' + 10
			default:
				return Color{}, fmt.Errorf("sapling: color %q has invalid hex digit %q", s, ch)
			}
		}
		bytes[i] = b
	}
	return Color{
		R: float64(bytes[0]) / 255,
		G: float64(bytes[1]) / 255,
		B: float64(bytes[2]) / 255,
		A: float64(bytes[3]) / 255,
	}, nil
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used by solid color drawables and the
// fixed-advance placeholder font.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Touchable controls how an actor participates in hit testing.
type Touchable uint8

const (
	TouchableEnabled      Touchable = iota // the actor and its children receive hits
	TouchableDisabled                      // neither the actor nor its children receive hits
	TouchableChildrenOnly                  // only the actor's children receive hits
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventTouchDown     EventType = iota // pointer button pressed over an actor
	EventTouchUp                        // pointer button released
	EventTouchDragged                   // pointer moved while a button is held
	EventMouseMoved                     // pointer moved with no button held
	EventScrolled                       // scroll wheel moved over an actor
	EventKeyDown                        // key pressed while the actor has focus
	EventKeyUp                          // key released while the actor has focus
	EventKeyTyped                       // character typed while the actor has focus
	EventWindowMoved                    // a window's position changed during a drag
	EventWindowResized                  // a window's size changed during a drag
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Align positions content within an enclosing area. Zero value centers on
// both axes; bits can be combined (e.g. AlignTop|AlignLeft).
type Align uint8

const (
	AlignCenter Align = 0
	AlignTop    Align = 1 << 0
	AlignBottom Align = 1 << 1
	AlignLeft   Align = 1 << 2
	AlignRight  Align = 1 << 3
)
