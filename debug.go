package sapling

import "github.com/hajimehoshi/ebiten/v2"

// debugOutlineColor is the bounds overlay color in debug mode.
var debugOutlineColor = Color{R: 0, G: 1, B: 0, A: 0.8}

// debugMaxTreeDepth is the actor tree depth past which debug mode warns.
const debugMaxTreeDepth = 32

// debugMaxChildCount is the per-group child count past which debug mode warns.
const debugMaxChildCount = 1000

// drawDebug outlines every visible actor's bounds in stage space.
// Called at the end of Stage.Draw when debug mode is on.
func (s *Stage) drawDebug(screen *ebiten.Image) {
	s.debugOutline(screen, s.root)
}

func (s *Stage) debugOutline(screen *ebiten.Image, a Actor) {
	b := a.Base()
	if !b.Visible {
		return
	}
	x0, y0 := b.LocalToStage(0, 0)
	x1, y1 := b.LocalToStage(b.Width, b.Height)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	w, h := x1-x0, y1-y0
	drawScaled(screen, WhitePixel, x0, y0, w, 1, debugOutlineColor)
	drawScaled(screen, WhitePixel, x0, y1-1, w, 1, debugOutlineColor)
	drawScaled(screen, WhitePixel, x0, y0, 1, h, debugOutlineColor)
	drawScaled(screen, WhitePixel, x1-1, y0, 1, h, debugOutlineColor)

	if g, ok := a.(groupLike); ok {
		for _, c := range g.Children() {
			s.debugOutline(screen, c)
		}
	}
}

// debugCheckTree warns on stderr when the actor tree looks degenerate.
// Called from Stage.Update when debug mode is on.
func (s *Stage) debugCheckTree() {
	s.debugCheckActor(s.root, 1)
}

func (s *Stage) debugCheckActor(a Actor, depth int) {
	if depth > debugMaxTreeDepth {
		s.debugWarn("tree depth %d exceeds %d at actor %q", depth, debugMaxTreeDepth, a.Base().Name)
		return
	}
	g, ok := a.(groupLike)
	if !ok {
		return
	}
	children := g.Children()
	if len(children) > debugMaxChildCount {
		s.debugWarn("group %q has %d children (threshold %d)", a.Base().Name, len(children), debugMaxChildCount)
	}
	for _, c := range children {
		s.debugCheckActor(c, depth+1)
	}
}
