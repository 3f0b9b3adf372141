package sapling

import "github.com/hajimehoshi/ebiten/v2"

// InputEvent carries the data for one input callback. The same event value is
// reused while an event bubbles up the ancestor chain; ListenerActor is
// updated at each hop.
type InputEvent struct {
	Type          EventType
	Target        Actor // the actor originally hit
	ListenerActor Actor // the actor whose listener is being notified
	StageX        float64
	StageY        float64
	Pointer       int
	Button        MouseButton
	ScrollX       float64
	ScrollY       float64
	Key           ebiten.Key
	Rune          rune
	Modifiers     KeyModifiers

	stage   *Stage
	handled bool
}

// Stage returns the stage that dispatched this event.
func (e *InputEvent) Stage() *Stage { return e.stage }

// Handle marks the event as consumed, stopping propagation to ancestors.
// Returning true from a listener callback has the same effect.
func (e *InputEvent) Handle() { e.handled = true }

// Handled reports whether the event was consumed.
func (e *InputEvent) Handled() bool { return e.handled }

// InputListener receives input callbacks for an actor. Local coordinates are
// in the listening actor's coordinate space. Every callback reports whether
// it consumed the event; a consumed event stops bubbling.
//
// Embed [InputAdapter] to implement only the callbacks you need.
type InputListener interface {
	// TouchDown fires when a pointer button is pressed over the actor.
	// Returning true captures the pointer: TouchDragged and TouchUp for
	// this pointer are then routed to this actor until release.
	TouchDown(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool
	// TouchUp fires when a captured pointer's button is released.
	TouchUp(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool
	// TouchDragged fires when a captured pointer moves while held.
	TouchDragged(ev *InputEvent, x, y float64, pointer int) bool
	// MouseMoved fires when the pointer moves with no button held.
	MouseMoved(ev *InputEvent, x, y float64) bool
	// Scrolled fires when the scroll wheel moves over the actor.
	Scrolled(ev *InputEvent, x, y, scrollX, scrollY float64) bool
	// KeyDown fires when a key is pressed while the actor has keyboard focus.
	KeyDown(ev *InputEvent, key ebiten.Key) bool
	// KeyUp fires when a key is released while the actor has keyboard focus.
	KeyUp(ev *InputEvent, key ebiten.Key) bool
	// KeyTyped fires for each typed character while the actor has focus.
	KeyTyped(ev *InputEvent, r rune) bool
}

// InputAdapter is a no-op InputListener. Embed it and override the callbacks
// you care about.
type InputAdapter struct{}

func (InputAdapter) TouchDown(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool {
	return false
}

func (InputAdapter) TouchUp(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool {
	return false
}

func (InputAdapter) TouchDragged(ev *InputEvent, x, y float64, pointer int) bool { return false }

func (InputAdapter) MouseMoved(ev *InputEvent, x, y float64) bool { return false }

func (InputAdapter) Scrolled(ev *InputEvent, x, y, scrollX, scrollY float64) bool { return false }

func (InputAdapter) KeyDown(ev *InputEvent, key ebiten.Key) bool { return false }

func (InputAdapter) KeyUp(ev *InputEvent, key ebiten.Key) bool { return false }

func (InputAdapter) KeyTyped(ev *InputEvent, r rune) bool { return false }
