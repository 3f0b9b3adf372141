package sapling

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Actor is a scene graph element: something positioned on a stage that can
// act each frame, draw itself, and answer hit tests. Concrete widgets embed
// [BaseActor] and override the methods they care about.
type Actor interface {
	// Base returns the embedded BaseActor holding transform and tree state.
	Base() *BaseActor
	// Act advances time-based behavior by dt seconds.
	Act(dt float64)
	// Draw renders the actor. parentAlpha is the accumulated ancestor alpha.
	Draw(screen *ebiten.Image, parentAlpha float64)
	// Hit returns the topmost actor at (x, y) in this actor's local
	// coordinates, or nil. When touchable is true, actors whose Touchable
	// mode excludes them are skipped.
	Hit(x, y float64, touchable bool) Actor
}

// BaseActor holds the state common to every scene element. A single flat
// struct is shared by all widgets to keep the hot path free of indirection,
// with behavior differences expressed by overriding Actor methods.
type BaseActor struct {
	Name string

	// Transform (parent space)
	X, Y             float64
	Width, Height    float64
	OriginX, OriginY float64
	ScaleX, ScaleY   float64
	Rotation         float64 // radians, clockwise

	Color     Color
	Visible   bool
	Touchable Touchable
	UserData  any

	self      Actor
	parent    *Group
	stage     *Stage
	listeners []InputListener
}

// initActor sets the default field values shared by all constructors and
// records the concrete widget identity for hit testing and event dispatch.
func (b *BaseActor) initActor(name string, self Actor) {
	b.Name = name
	b.ScaleX = 1
	b.ScaleY = 1
	b.Color = ColorWhite
	b.Visible = true
	b.Touchable = TouchableEnabled
	b.self = self
}

// Base returns b. Promoted through embedding, it gives any widget's common state.
func (b *BaseActor) Base() *BaseActor { return b }

// Act does nothing. Widgets with time-based behavior override it.
func (b *BaseActor) Act(dt float64) {}

// Draw does nothing. Visible widgets override it.
func (b *BaseActor) Draw(screen *ebiten.Image, parentAlpha float64) {}

// Hit returns this actor if (x, y) falls within its bounds.
func (b *BaseActor) Hit(x, y float64, touchable bool) Actor {
	if touchable && b.Touchable != TouchableEnabled {
		return nil
	}
	if !b.Visible {
		return nil
	}
	if x >= 0 && x < b.Width && y >= 0 && y < b.Height {
		return b.self
	}
	return nil
}

// Parent returns the group this actor belongs to, or nil.
func (b *BaseActor) Parent() *Group { return b.parent }

// Stage returns the stage this actor is attached to, or nil.
func (b *BaseActor) Stage() *Stage { return b.stage }

// SetPosition sets the actor's top-left position in parent coordinates.
func (b *BaseActor) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

// SetSize sets the actor's width and height.
func (b *BaseActor) SetSize(w, h float64) {
	b.Width = w
	b.Height = h
}

// SetBounds sets position and size together.
func (b *BaseActor) SetBounds(x, y, w, h float64) {
	b.X = x
	b.Y = y
	b.Width = w
	b.Height = h
}

// AddListener registers an input listener on this actor.
// Listeners fire in registration order during event dispatch.
func (b *BaseActor) AddListener(l InputListener) {
	if l == nil {
		panic("sapling: cannot add nil listener")
	}
	b.listeners = append(b.listeners, l)
}

// RemoveListener unregisters a previously added listener.
func (b *BaseActor) RemoveListener(l InputListener) {
	for i, x := range b.listeners {
		if x == l {
			copy(b.listeners[i:], b.listeners[i+1:])
			b.listeners[len(b.listeners)-1] = nil
			b.listeners = b.listeners[:len(b.listeners)-1]
			return
		}
	}
}

// Remove detaches this actor from its parent. No-op if it has none.
func (b *BaseActor) Remove() {
	if b.parent != nil {
		b.parent.RemoveActor(b.self)
	}
}

// ToFront moves this actor to the end of its parent's child list so it
// draws above (and is hit before) its siblings.
func (b *BaseActor) ToFront() {
	p := b.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c.Base() == b {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = b.self
			return
		}
	}
}

// ToBack moves this actor to the start of its parent's child list.
func (b *BaseActor) ToBack() {
	p := b.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c.Base() == b {
			copy(p.children[1:i+1], p.children[:i])
			p.children[0] = b.self
			return
		}
	}
}

// localTransform returns the parent-from-local affine matrix:
// Translate(X, Y) * Translate(origin) * Rotate * Scale * Translate(-origin).
func (b *BaseActor) localTransform() [6]float64 {
	sin, cos := math.Sincos(b.Rotation)
	m := [6]float64{cos * b.ScaleX, sin * b.ScaleX, -sin * b.ScaleY, cos * b.ScaleY, 0, 0}
	ox, oy := b.OriginX, b.OriginY
	m[4] = b.X + ox - (m[0]*ox + m[2]*oy)
	m[5] = b.Y + oy - (m[1]*ox + m[3]*oy)
	return m
}

// ParentToLocal converts a point from parent coordinates to this actor's
// local coordinates.
func (b *BaseActor) ParentToLocal(px, py float64) (float64, float64) {
	if b.Rotation == 0 {
		if b.ScaleX == 1 && b.ScaleY == 1 {
			return px - b.X, py - b.Y
		}
		ox, oy := b.OriginX, b.OriginY
		return (px-b.X-ox)/b.ScaleX + ox, (py-b.Y-oy)/b.ScaleY + oy
	}
	return transformPoint(invertAffine(b.localTransform()), px, py)
}

// LocalToParent converts a point from this actor's local coordinates to
// parent coordinates.
func (b *BaseActor) LocalToParent(lx, ly float64) (float64, float64) {
	return transformPoint(b.localTransform(), lx, ly)
}

// stageTransform returns the stage-from-local affine matrix.
func (b *BaseActor) stageTransform() [6]float64 {
	m := b.localTransform()
	for g := b.parent; g != nil; g = g.parent {
		m = mulAffine(g.localTransform(), m)
	}
	return m
}

// StageToLocal converts a point from stage coordinates to this actor's
// local coordinates.
func (b *BaseActor) StageToLocal(sx, sy float64) (float64, float64) {
	return transformPoint(invertAffine(b.stageTransform()), sx, sy)
}

// LocalToStage converts a point from this actor's local coordinates to
// stage coordinates.
func (b *BaseActor) LocalToStage(lx, ly float64) (float64, float64) {
	return transformPoint(b.stageTransform(), lx, ly)
}

// --- Group ---

// Group is an actor that holds children. Children are positioned in the
// group's local coordinate space and drawn in child-list order, so later
// children paint on top.
type Group struct {
	BaseActor
	children []Actor
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	g := &Group{}
	g.initActor(name, g)
	return g
}

// AddActor appends child to this group.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or adding it would create a cycle.
func (g *Group) AddActor(child Actor) {
	if child == nil {
		panic("sapling: cannot add nil actor")
	}
	cb := child.Base()
	if g.isDescendantOf(cb) {
		panic("sapling: adding actor would create a cycle")
	}
	if cb.parent != nil {
		cb.parent.RemoveActor(child)
	}
	cb.parent = g
	g.children = append(g.children, child)
	setStage(child, g.stage)
}

// AddActorAt inserts child at the given index in the child list.
func (g *Group) AddActorAt(index int, child Actor) {
	if child == nil {
		panic("sapling: cannot add nil actor")
	}
	if index < 0 || index > len(g.children) {
		panic("sapling: child index out of range")
	}
	cb := child.Base()
	if g.isDescendantOf(cb) {
		panic("sapling: adding actor would create a cycle")
	}
	if cb.parent != nil {
		cb.parent.RemoveActor(child)
	}
	cb.parent = g
	g.children = append(g.children, nil)
	copy(g.children[index+1:], g.children[index:])
	g.children[index] = child
	setStage(child, g.stage)
}

// RemoveActor detaches child from this group. No-op if child is not a member.
func (g *Group) RemoveActor(child Actor) {
	cb := child.Base()
	for i, c := range g.children {
		if c.Base() == cb {
			copy(g.children[i:], g.children[i+1:])
			g.children[len(g.children)-1] = nil
			g.children = g.children[:len(g.children)-1]
			cb.parent = nil
			setStage(child, nil)
			return
		}
	}
}

// Clear detaches all children from this group.
func (g *Group) Clear() {
	for _, c := range g.children {
		c.Base().parent = nil
		setStage(c, nil)
	}
	g.children = g.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (g *Group) Children() []Actor { return g.children }

// NumChildren returns the number of children.
func (g *Group) NumChildren() int { return len(g.children) }

// Act advances all children.
func (g *Group) Act(dt float64) {
	for _, c := range g.children {
		c.Act(dt)
	}
}

// Draw renders visible children in child-list order.
func (g *Group) Draw(screen *ebiten.Image, parentAlpha float64) {
	if !g.Visible {
		return
	}
	g.drawChildren(screen, parentAlpha*g.Color.A)
}

func (g *Group) drawChildren(screen *ebiten.Image, alpha float64) {
	for _, c := range g.children {
		if c.Base().Visible {
			c.Draw(screen, alpha)
		}
	}
}

// Hit tests children in reverse child-list order (topmost first), then the
// group's own bounds.
func (g *Group) Hit(x, y float64, touchable bool) Actor {
	if touchable && g.Touchable == TouchableDisabled {
		return nil
	}
	if !g.Visible {
		return nil
	}
	for i := len(g.children) - 1; i >= 0; i-- {
		c := g.children[i]
		cx, cy := c.Base().ParentToLocal(x, y)
		if hit := c.Hit(cx, cy, touchable); hit != nil {
			return hit
		}
	}
	if touchable && g.Touchable == TouchableChildrenOnly {
		return nil
	}
	return g.BaseActor.Hit(x, y, touchable)
}

// isDescendantOf reports whether g is b's actor or sits below it in the tree.
func (g *Group) isDescendantOf(b *BaseActor) bool {
	for p := &g.BaseActor; p != nil; {
		if p == b {
			return true
		}
		if p.parent == nil {
			return false
		}
		p = &p.parent.BaseActor
	}
	return false
}

// setStage propagates the owning stage through a subtree.
func setStage(a Actor, s *Stage) {
	a.Base().stage = s
	if g, ok := a.(groupLike); ok {
		for _, c := range g.Children() {
			setStage(c, s)
		}
	}
}

// groupLike matches any actor that exposes children (Group and everything
// embedding it).
type groupLike interface {
	Children() []Actor
}

// parentActor returns the actor identity of a's parent group, or nil.
func parentActor(a Actor) Actor {
	p := a.Base().parent
	if p == nil {
		return nil
	}
	return p.self
}
