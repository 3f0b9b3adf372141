package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an actor simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor) and call Update(dt) each frame, typically from the actor's Act
// or a wrapper actor.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates the actor's X and Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(a Actor, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := a.Base()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(b.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(b.Y), float32(toY), duration, fn)
	g.fields[0] = &b.X
	g.fields[1] = &b.Y
	return g
}

// TweenScale creates a TweenGroup that animates the actor's ScaleX and ScaleY
// to the given target values over the specified duration using the easing function.
func TweenScale(a Actor, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := a.Base()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(b.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(b.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &b.ScaleX
	g.fields[1] = &b.ScaleY
	return g
}

// TweenColor creates a TweenGroup that animates all four components of the
// actor's Color (R, G, B, A) to the target color over the specified duration.
func TweenColor(a Actor, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := a.Base()
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(b.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(b.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(b.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(b.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &b.Color.R
	g.fields[1] = &b.Color.G
	g.fields[2] = &b.Color.B
	g.fields[3] = &b.Color.A
	return g
}

// TweenAlpha creates a TweenGroup that animates the actor's Color.A to the
// target value over the specified duration using the easing function.
func TweenAlpha(a Actor, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := a.Base()
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(b.Color.A), float32(to), duration, fn)
	g.fields[0] = &b.Color.A
	return g
}

// TweenRotation creates a TweenGroup that animates the actor's Rotation to the
// target value over the specified duration using the easing function.
func TweenRotation(a Actor, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := a.Base()
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(b.Rotation), float32(to), duration, fn)
	g.fields[0] = &b.Rotation
	return g
}
