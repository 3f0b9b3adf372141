package sapling

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// EventSink receives UI events for external consumers (metrics, ECS bridges,
// replay capture). Optional; set via Stage.SetEventSink.
type EventSink interface {
	Emit(event UIEvent)
}

// UIEvent is the flattened record published to an EventSink.
type UIEvent struct {
	Type      EventType
	ActorName string // name of the target actor, "" if none
	StageX    float64
	StageY    float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	// Window geometry (valid for EventWindowMoved, EventWindowResized)
	X, Y          float64
	Width, Height float64
}

// stagePointer tracks the interaction state of a single pointer.
type stagePointer struct {
	down   bool
	x, y   float64 // last stage-space position
	button MouseButton
	target Actor // actor whose listener consumed touch down, nil if none
}

// Stage owns the actor tree, routes input to it, and draws it. All methods
// must be called from the game loop goroutine; the stage is single-threaded
// by design, like the rest of the package.
type Stage struct {
	root          *Group
	width, height float64
	camera        *Camera
	keyboardFocus Actor
	sink          EventSink
	debug         bool

	pointers     [maxPointers]stagePointer
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	screenshotQueue []string
	screenshotDir   string
}

// NewStage creates a stage with the given viewport size and a pre-created
// root group spanning it.
func NewStage(width, height float64) *Stage {
	root := NewGroup("root")
	root.SetSize(width, height)
	s := &Stage{
		root:   root,
		width:  width,
		height: height,
	}
	root.stage = s
	return s
}

// Root returns the stage's root group.
func (s *Stage) Root() *Group { return s.root }

// Width returns the stage viewport width.
func (s *Stage) Width() float64 { return s.width }

// Height returns the stage viewport height.
func (s *Stage) Height() float64 { return s.height }

// SetViewport resizes the stage viewport (and the root group).
func (s *Stage) SetViewport(width, height float64) {
	s.width = width
	s.height = height
	s.root.SetSize(width, height)
}

// AddActor adds an actor directly to the stage root.
func (s *Stage) AddActor(a Actor) { s.root.AddActor(a) }

// SetCamera attaches a camera. When set, screen coordinates are projected
// through it before hit testing, and keep-within-stage widgets clamp against
// the camera's visible extent instead of the raw viewport.
func (s *Stage) SetCamera(c *Camera) { s.camera = c }

// Camera returns the attached camera, or nil.
func (s *Stage) Camera() *Camera { return s.camera }

// KeyboardFocus returns the actor receiving key events, or nil.
func (s *Stage) KeyboardFocus() Actor { return s.keyboardFocus }

// SetKeyboardFocus routes subsequent key events to the given actor.
// Pass nil to clear focus.
func (s *Stage) SetKeyboardFocus(a Actor) { s.keyboardFocus = a }

// SetEventSink sets the optional UI event bridge.
func (s *Stage) SetEventSink(sink EventSink) { s.sink = sink }

// SetDebugMode enables stderr warnings for suspicious states.
func (s *Stage) SetDebugMode(enabled bool) { s.debug = enabled }

// Hit returns the topmost actor at the given stage coordinates, or nil.
// When touchable is true, actors whose Touchable mode excludes them are
// skipped.
func (s *Stage) Hit(stageX, stageY float64, touchable bool) Actor {
	x, y := s.root.ParentToLocal(stageX, stageY)
	return s.root.Hit(x, y, touchable)
}

// Update processes input and advances actor behavior by one frame.
func (s *Stage) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	if s.camera != nil {
		s.camera.update(float32(dt))
	}
	s.root.Act(dt)
	s.processInput()
	if s.debug {
		s.debugCheckTree()
	}
}

// Draw renders the actor tree onto the screen.
func (s *Stage) Draw(screen *ebiten.Image) {
	s.root.Draw(screen, 1)
	if s.debug {
		s.drawDebug(screen)
	}
	s.flushScreenshots(screen)
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput handles mouse, touch, wheel, and typed character input.
// Called once per Update.
func (s *Stage) processInput() {
	mods := readModifiers()

	if !s.processInjected(mods) {
		s.processMousePointer(mods)
		s.processTouchPointers(mods)
		s.processWheel(mods)
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		s.KeyTyped(r)
	}
}

// screenToStage converts screen coordinates to stage coordinates through the
// camera, if one is attached.
func (s *Stage) screenToStage(sx, sy float64) (float64, float64) {
	if s.camera != nil {
		return s.camera.ScreenToStage(sx, sy)
	}
	return sx, sy
}

// processMousePointer handles mouse input (pointer 0).
func (s *Stage) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	x, y := s.screenToStage(float64(mx), float64(my))

	// If the pointer is already down, keep the button captured at press time.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, x, y, pressed, button, mods)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Stage) processTouchPointers(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			s.debugWarn("touch pointer slots exhausted, ignoring touch %d", tid)
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		x, y := s.screenToStage(float64(tx), float64(ty))
		s.processPointer(slot, x, y, true, MouseButtonLeft, mods)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.x, ps.y, false, MouseButtonLeft, mods)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Stage) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processWheel dispatches scroll wheel movement to the actor under the mouse.
func (s *Stage) processWheel(mods KeyModifiers) {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	ps := &s.pointers[0]
	s.Scrolled(ps.x, ps.y, dx, dy, mods)
}

// processPointer runs the pointer state machine for a single pointer.
// x, y are stage coordinates.
func (s *Stage) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.x, ps.y = x, y

		target := s.Hit(x, y, true)
		if target == nil {
			target = s.root
		}
		ev := &InputEvent{
			Type: EventTouchDown, Target: target,
			StageX: x, StageY: y,
			Pointer: pointerID, Button: button, Modifiers: mods,
			stage: s,
		}
		ps.target = s.bubble(ev, target)
		s.emit(EventTouchDown, target, x, y, button, mods)

	case !pressed && ps.down:
		if ps.target != nil {
			ev := &InputEvent{
				Type: EventTouchUp, Target: ps.target, ListenerActor: ps.target,
				StageX: x, StageY: y,
				Pointer: pointerID, Button: ps.button, Modifiers: mods,
				stage: s,
			}
			s.notify(ev, ps.target)
			s.emit(EventTouchUp, ps.target, x, y, ps.button, mods)
		}
		ps.down = false
		ps.target = nil
		ps.x, ps.y = x, y

	case pressed && ps.down:
		if x != ps.x || y != ps.y {
			if ps.target != nil {
				ev := &InputEvent{
					Type: EventTouchDragged, Target: ps.target, ListenerActor: ps.target,
					StageX: x, StageY: y,
					Pointer: pointerID, Button: ps.button, Modifiers: mods,
					stage: s,
				}
				s.notify(ev, ps.target)
				s.emit(EventTouchDragged, ps.target, x, y, ps.button, mods)
			}
			ps.x, ps.y = x, y
		}

	default: // hover move
		if pointerID == 0 && (x != ps.x || y != ps.y) {
			target := s.Hit(x, y, true)
			if target == nil {
				target = s.root
			}
			ev := &InputEvent{
				Type: EventMouseMoved, Target: target,
				StageX: x, StageY: y,
				Pointer: pointerID, Modifiers: mods,
				stage: s,
			}
			s.bubble(ev, target)
			ps.x, ps.y = x, y
		}
	}
}

// Scrolled dispatches a scroll event to the actor under (stageX, stageY),
// bubbling up until consumed. Returns whether any listener consumed it.
func (s *Stage) Scrolled(stageX, stageY, scrollX, scrollY float64, mods KeyModifiers) bool {
	target := s.Hit(stageX, stageY, true)
	if target == nil {
		target = s.root
	}
	ev := &InputEvent{
		Type: EventScrolled, Target: target,
		StageX: stageX, StageY: stageY,
		ScrollX: scrollX, ScrollY: scrollY, Modifiers: mods,
		stage: s,
	}
	return s.bubble(ev, target) != nil
}

// KeyDown dispatches a key press to the keyboard focus actor, bubbling up
// until consumed. Returns whether any listener consumed it.
func (s *Stage) KeyDown(key ebiten.Key) bool {
	if s.keyboardFocus == nil {
		return false
	}
	ev := &InputEvent{Type: EventKeyDown, Target: s.keyboardFocus, Key: key, stage: s}
	return s.bubble(ev, s.keyboardFocus) != nil
}

// KeyUp dispatches a key release to the keyboard focus actor.
func (s *Stage) KeyUp(key ebiten.Key) bool {
	if s.keyboardFocus == nil {
		return false
	}
	ev := &InputEvent{Type: EventKeyUp, Target: s.keyboardFocus, Key: key, stage: s}
	return s.bubble(ev, s.keyboardFocus) != nil
}

// KeyTyped dispatches a typed character to the keyboard focus actor.
func (s *Stage) KeyTyped(r rune) bool {
	if s.keyboardFocus == nil {
		return false
	}
	ev := &InputEvent{Type: EventKeyTyped, Target: s.keyboardFocus, Rune: r, stage: s}
	return s.bubble(ev, s.keyboardFocus) != nil
}

// bubble walks from target up the ancestor chain, notifying each actor's
// listeners until one consumes the event. Returns the consuming actor, or
// nil if the event fell through.
func (s *Stage) bubble(ev *InputEvent, target Actor) Actor {
	for a := target; a != nil; a = parentActor(a) {
		if s.notify(ev, a) {
			return a
		}
	}
	return nil
}

// notify fires ev on all of a's listeners. Returns whether any consumed it.
func (s *Stage) notify(ev *InputEvent, a Actor) bool {
	b := a.Base()
	if len(b.listeners) == 0 {
		return false
	}
	ev.ListenerActor = a
	lx, ly := b.StageToLocal(ev.StageX, ev.StageY)
	consumed := false
	for _, l := range b.listeners {
		switch ev.Type {
		case EventTouchDown:
			consumed = l.TouchDown(ev, lx, ly, ev.Pointer, ev.Button) || consumed
		case EventTouchUp:
			consumed = l.TouchUp(ev, lx, ly, ev.Pointer, ev.Button) || consumed
		case EventTouchDragged:
			consumed = l.TouchDragged(ev, lx, ly, ev.Pointer) || consumed
		case EventMouseMoved:
			consumed = l.MouseMoved(ev, lx, ly) || consumed
		case EventScrolled:
			consumed = l.Scrolled(ev, lx, ly, ev.ScrollX, ev.ScrollY) || consumed
		case EventKeyDown:
			consumed = l.KeyDown(ev, ev.Key) || consumed
		case EventKeyUp:
			consumed = l.KeyUp(ev, ev.Key) || consumed
		case EventKeyTyped:
			consumed = l.KeyTyped(ev, ev.Rune) || consumed
		}
	}
	if ev.handled {
		consumed = true
	}
	return consumed
}

// emit publishes a pointer event to the event sink, if one is set.
func (s *Stage) emit(eventType EventType, target Actor, x, y float64, button MouseButton, mods KeyModifiers) {
	if s.sink == nil || target == nil {
		return
	}
	lx, ly := target.Base().StageToLocal(x, y)
	s.sink.Emit(UIEvent{
		Type:      eventType,
		ActorName: target.Base().Name,
		StageX:    x,
		StageY:    y,
		LocalX:    lx,
		LocalY:    ly,
		Button:    button,
		Modifiers: mods,
	})
}

// emitGeometry publishes a window move or resize to the event sink.
func (s *Stage) emitGeometry(eventType EventType, name string, x, y, width, height float64) {
	if s.sink == nil {
		return
	}
	s.sink.Emit(UIEvent{
		Type:      eventType,
		ActorName: name,
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
	})
}

// debugWarn prints a warning to stderr when debug mode is on.
func (s *Stage) debugWarn(format string, args ...any) {
	if s.debug {
		fmt.Fprintf(os.Stderr, "sapling: "+format+"\n", args...)
	}
}
