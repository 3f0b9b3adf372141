package sapling

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
)

// recordingListener records every event it sees and consumes according to
// its consume flag.
type recordingListener struct {
	InputAdapter
	consume bool

	downs, ups, drags int
	moves, scrolls    int
	keys, runes       int

	lastX, lastY float64
}

func (r *recordingListener) TouchDown(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool {
	r.downs++
	r.lastX, r.lastY = x, y
	return r.consume
}

func (r *recordingListener) TouchUp(ev *InputEvent, x, y float64, pointer int, button MouseButton) bool {
	r.ups++
	r.lastX, r.lastY = x, y
	return r.consume
}

func (r *recordingListener) TouchDragged(ev *InputEvent, x, y float64, pointer int) bool {
	r.drags++
	r.lastX, r.lastY = x, y
	return r.consume
}

func (r *recordingListener) MouseMoved(ev *InputEvent, x, y float64) bool {
	r.moves++
	return r.consume
}

func (r *recordingListener) Scrolled(ev *InputEvent, x, y, scrollX, scrollY float64) bool {
	r.scrolls++
	return r.consume
}

func (r *recordingListener) KeyDown(ev *InputEvent, key ebiten.Key) bool {
	r.keys++
	return r.consume
}

func (r *recordingListener) KeyTyped(ev *InputEvent, ch rune) bool {
	r.runes++
	return r.consume
}

// recordingSink collects emitted UI events.
type recordingSink struct {
	events []UIEvent
}

func (s *recordingSink) Emit(e UIEvent) { s.events = append(s.events, e) }

func TestProcessPointer_PressDispatchesToHitActor(t *testing.T) {
	s := NewStage(640, 480)
	a := newTestActor("a", 100, 100)
	a.SetPosition(50, 50)
	lis := &recordingListener{consume: true}
	a.AddListener(lis)
	s.AddActor(a)

	s.processPointer(0, 100, 100, true, MouseButtonLeft, 0)

	if lis.downs != 1 {
		t.Fatalf("downs = %d, want 1", lis.downs)
	}
	if lis.lastX != 50 || lis.lastY != 50 {
		t.Errorf("local coords = (%v,%v), want (50,50)", lis.lastX, lis.lastY)
	}
}

func TestProcessPointer_DragAndReleaseGoToCapturedActor(t *testing.T) {
	s := NewStage(640, 480)
	a := newTestActor("a", 100, 100)
	lis := &recordingListener{consume: true}
	a.AddListener(lis)
	s.AddActor(a)

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	// Drag far outside the actor's bounds: still delivered to the capturer.
	s.processPointer(0, 500, 400, true, MouseButtonLeft, 0)
	s.processPointer(0, 500, 400, false, MouseButtonLeft, 0)

	if lis.downs != 1 || lis.drags != 1 || lis.ups != 1 {
		t.Errorf("downs/drags/ups = %d/%d/%d, want 1/1/1", lis.downs, lis.drags, lis.ups)
	}
	if lis.lastX != 500 || lis.lastY != 400 {
		t.Errorf("release local coords = (%v,%v), want (500,400)", lis.lastX, lis.lastY)
	}
}

func TestProcessPointer_StationaryHeldPointerEmitsNoDrag(t *testing.T) {
	s := NewStage(640, 480)
	a := newTestActor("a", 100, 100)
	lis := &recordingListener{consume: true}
	a.AddListener(lis)
	s.AddActor(a)

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)

	if lis.drags != 0 {
		t.Errorf("drags = %d, want 0 for a stationary pointer", lis.drags)
	}
}

func TestProcessPointer_NoConsumerMeansNoCapture(t *testing.T) {
	s := NewStage(640, 480)
	a := newTestActor("a", 100, 100)
	lis := &recordingListener{consume: false}
	a.AddListener(lis)
	s.AddActor(a)

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 60, 60, true, MouseButtonLeft, 0)

	if lis.downs != 1 {
		t.Errorf("downs = %d, want 1", lis.downs)
	}
	if lis.drags != 0 {
		t.Errorf("drags = %d, want 0 (down was not consumed)", lis.drags)
	}
}

func TestProcessPointer_BubblesToParent(t *testing.T) {
	s := NewStage(640, 480)
	g := NewGroup("g")
	g.SetSize(200, 200)
	parentLis := &recordingListener{consume: true}
	g.AddListener(parentLis)
	a := newTestActor("a", 100, 100)
	g.AddActor(a)
	s.AddActor(g)

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)

	if parentLis.downs != 1 {
		t.Errorf("parent downs = %d, want 1 (event should bubble)", parentLis.downs)
	}
}

func TestProcessPointer_ConsumedEventStopsBubbling(t *testing.T) {
	s := NewStage(640, 480)
	g := NewGroup("g")
	g.SetSize(200, 200)
	parentLis := &recordingListener{consume: true}
	g.AddListener(parentLis)
	a := newTestActor("a", 100, 100)
	childLis := &recordingListener{consume: true}
	a.AddListener(childLis)
	g.AddActor(a)
	s.AddActor(g)

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)

	if childLis.downs != 1 {
		t.Errorf("child downs = %d, want 1", childLis.downs)
	}
	if parentLis.downs != 0 {
		t.Errorf("parent downs = %d, want 0 (child consumed)", parentLis.downs)
	}
}

func TestProcessPointer_HoverMove(t *testing.T) {
	s := NewStage(640, 480)
	a := newTestActor("a", 100, 100)
	lis := &recordingListener{consume: true}
	a.AddListener(lis)
	s.AddActor(a)

	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	s.processPointer(0, 60, 50, false, MouseButtonLeft, 0)

	if lis.moves == 0 {
		t.Error("no MouseMoved delivered for hover movement")
	}
}

func TestScrolled_DispatchedUnderPointer(t *testing.T) {
	s := NewStage(640, 480)
	a := newTestActor("a", 100, 100)
	lis := &recordingListener{consume: true}
	a.AddListener(lis)
	s.AddActor(a)

	if !s.Scrolled(50, 50, 0, -1, 0) {
		t.Error("Scrolled over a consuming listener returned false")
	}
	if lis.scrolls != 1 {
		t.Errorf("scrolls = %d, want 1", lis.scrolls)
	}
}

func TestKeyTyped_GoesToKeyboardFocus(t *testing.T) {
	s := NewStage(640, 480)
	a := newTestActor("a", 100, 100)
	lis := &recordingListener{consume: true}
	a.AddListener(lis)
	s.AddActor(a)

	if s.KeyTyped('x') {
		t.Error("KeyTyped with no focus returned true")
	}

	s.SetKeyboardFocus(a)
	if !s.KeyTyped('x') {
		t.Error("KeyTyped with focus returned false")
	}
	if lis.runes != 1 {
		t.Errorf("runes = %d, want 1", lis.runes)
	}
}

func TestEventSink_ReceivesPointerEvents(t *testing.T) {
	s := NewStage(640, 480)
	sink := &recordingSink{}
	s.SetEventSink(sink)
	a := newTestActor("box", 100, 100)
	a.SetPosition(20, 30)
	lis := &recordingListener{consume: true}
	a.AddListener(lis)
	s.AddActor(a)

	s.processPointer(0, 70, 80, true, MouseButtonLeft, ModShift)
	s.processPointer(0, 70, 80, false, MouseButtonLeft, ModShift)

	want := []UIEvent{
		{
			Type: EventTouchDown, ActorName: "box",
			StageX: 70, StageY: 80, LocalX: 50, LocalY: 50,
			Button: MouseButtonLeft, Modifiers: ModShift,
		},
		{
			Type: EventTouchUp, ActorName: "box",
			StageX: 70, StageY: 80, LocalX: 50, LocalY: 50,
			Button: MouseButtonLeft, Modifiers: ModShift,
		},
	}
	if diff := cmp.Diff(want, sink.events); diff != "" {
		t.Errorf("sink events mismatch (-want +got):\n%s", diff)
	}
}

func TestStageHit_MissReturnsNil(t *testing.T) {
	s := NewStage(640, 480)
	a := newTestActor("a", 100, 100)
	s.AddActor(a)

	// Root covers the stage, so a miss on children hits the root group.
	if hit := s.Hit(500, 400, true); hit != Actor(s.Root()) {
		t.Errorf("Hit off-actor = %v, want the root group", hit)
	}
	if hit := s.Hit(-10, -10, true); hit != nil {
		t.Errorf("Hit outside the stage = %v, want nil", hit)
	}
}

func TestSetViewport_ResizesRoot(t *testing.T) {
	s := NewStage(640, 480)
	s.SetViewport(800, 600)
	if s.Width() != 800 || s.Height() != 600 {
		t.Errorf("viewport = %vx%v, want 800x600", s.Width(), s.Height())
	}
	if s.Root().Width != 800 || s.Root().Height != 600 {
		t.Errorf("root size = %vx%v, want 800x600", s.Root().Width, s.Root().Height)
	}
}
