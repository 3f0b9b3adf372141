package sapling

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func testWindowStyle() WindowStyle {
	return WindowStyle{
		TitleFont:      &BasicFont{Advance: 7, Height: 20},
		TitleFontColor: ColorWhite,
	}
}

func TestNewWindow_Defaults(t *testing.T) {
	w := NewWindow("Settings", testWindowStyle())

	if !w.Movable {
		t.Error("new window should be movable")
	}
	if w.Resizable {
		t.Error("new window should not be resizable")
	}
	if !w.KeepWithinStage {
		t.Error("new window should keep within stage")
	}
	if w.Modal {
		t.Error("new window should not be modal")
	}
	if w.Width != 150 || w.Height != 150 {
		t.Errorf("size = %vx%v, want 150x150", w.Width, w.Height)
	}
	if w.Title() != "Settings" {
		t.Errorf("title = %q, want %q", w.Title(), "Settings")
	}
}

func TestWindow_PadTopTracksTitleHeight(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	if got := w.PadTop(); got != 20 {
		t.Errorf("PadTop() = %v, want title font height 20", got)
	}

	w.titleLabel.SetStyle(LabelStyle{Font: &BasicFont{Advance: 7, Height: 32}, FontColor: ColorWhite})
	if got := w.PadTop(); got != 32 {
		t.Errorf("PadTop() after font change = %v, want 32", got)
	}
}

func TestUpdateEdge_ResizeZones(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	w.Resizable = true // 150x150, ResizeBorder 8 -> half border 4

	tests := []struct {
		name string
		x, y float64
		want Edge
	}{
		{"left edge", 2, 75, EdgeLeft},
		{"right edge", 148, 75, EdgeRight},
		{"bottom edge", 75, 148, EdgeBottom},
		{"bottom right corner", 147, 147, EdgeRight | EdgeBottom},
		{"center", 75, 75, EdgeNone},
		{"title strip", 75, 10, EdgeMove},
	}
	for _, tt := range tests {
		w.drag.updateEdge(tt.x, tt.y)
		if w.drag.edge != tt.want {
			t.Errorf("%s: edge at (%v,%v) = %v, want %v", tt.name, tt.x, tt.y, w.drag.edge, tt.want)
		}
	}
}

func TestUpdateEdge_CornerZoneWidens(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	w.Resizable = true

	// 130 is outside the plain bottom zone (y > 146) but inside the widened
	// one (y > 121), so a near-corner right grab picks up bottom too.
	w.drag.updateEdge(147, 130)
	if w.drag.edge != EdgeRight|EdgeBottom {
		t.Errorf("edge = %v, want EdgeRight|EdgeBottom", w.drag.edge)
	}

	w.drag.updateEdge(75, 130)
	if w.drag.edge != EdgeNone {
		t.Errorf("edge away from corner = %v, want EdgeNone (no widening without a base edge)", w.drag.edge)
	}
}

func TestUpdateEdge_NotResizable(t *testing.T) {
	w := NewWindow("t", testWindowStyle())

	w.drag.updateEdge(148, 75)
	if w.drag.edge != EdgeNone {
		t.Errorf("edge on non-resizable window = %v, want EdgeNone", w.drag.edge)
	}
	w.drag.updateEdge(75, 10)
	if w.drag.edge != EdgeMove {
		t.Errorf("title strip on non-resizable window = %v, want EdgeMove", w.drag.edge)
	}
}

func TestUpdateEdge_NotMovable(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	w.Movable = false

	w.drag.updateEdge(75, 10)
	if w.drag.edge != EdgeNone {
		t.Errorf("title strip on immovable window = %v, want EdgeNone", w.drag.edge)
	}
}

func TestWindow_TitleBarDrag(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(100, 100)
	s.AddActor(w)

	s.processPointer(0, 150, 110, true, MouseButtonLeft, 0)
	if !w.Dragging() {
		t.Fatal("window not dragging after title bar press")
	}

	s.processPointer(0, 170, 130, true, MouseButtonLeft, 0)
	if w.X != 120 || w.Y != 120 {
		t.Errorf("position after drag = (%v,%v), want (120,120)", w.X, w.Y)
	}

	// A second move by the same delta moves the window again: drags are
	// incremental against the grab offset.
	s.processPointer(0, 190, 150, true, MouseButtonLeft, 0)
	if w.X != 140 || w.Y != 140 {
		t.Errorf("position after second drag = (%v,%v), want (140,140)", w.X, w.Y)
	}
	if w.Width != 150 || w.Height != 150 {
		t.Errorf("size changed during a move drag: %vx%v", w.Width, w.Height)
	}

	s.processPointer(0, 190, 150, false, MouseButtonLeft, 0)
	if w.Dragging() {
		t.Error("still dragging after release")
	}
	if w.drag.edge != EdgeNone {
		t.Errorf("edge after release = %v, want EdgeNone", w.drag.edge)
	}
}

func TestWindow_ContentPressDoesNotDrag(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(100, 100)
	s.AddActor(w)

	s.processPointer(0, 175, 175, true, MouseButtonLeft, 0)
	if w.Dragging() {
		t.Error("content-area press started a drag")
	}
	s.processPointer(0, 200, 200, true, MouseButtonLeft, 0)
	if w.X != 100 || w.Y != 100 {
		t.Errorf("window moved from a content-area press: (%v,%v)", w.X, w.Y)
	}
}

func TestWindow_ResizeRightEdge(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.Resizable = true
	w.SetPosition(100, 100)
	w.Add(newTestActor("content", 10, 10)).Width(FixedOf(100)).Height(FixedOf(50))
	s.AddActor(w)

	s.processPointer(0, 247, 175, true, MouseButtonLeft, 0)
	if w.drag.edge != EdgeRight {
		t.Fatalf("edge = %v, want EdgeRight", w.drag.edge)
	}

	s.processPointer(0, 330, 175, true, MouseButtonLeft, 0)
	if w.Width != 233 {
		t.Errorf("width = %v, want 233", w.Width)
	}
	if w.X != 100 {
		t.Errorf("x = %v, want 100 (right resize must not move the window)", w.X)
	}
	s.processPointer(0, 330, 175, false, MouseButtonLeft, 0)
}

func TestWindow_ResizeClampsToMinSize(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.Resizable = true
	w.SetPosition(100, 100)
	w.Add(newTestActor("content", 10, 10)).Width(FixedOf(100)).Height(FixedOf(50))
	s.AddActor(w)

	// minWidth = 100 from the cell, minHeight = 20 title + 50 cell.
	s.processPointer(0, 247, 175, true, MouseButtonLeft, 0)
	s.processPointer(0, 120, 175, true, MouseButtonLeft, 0)
	if w.Width != 100 {
		t.Errorf("width = %v, want min width 100", w.Width)
	}
	s.processPointer(0, 120, 175, false, MouseButtonLeft, 0)

	// Dragging the bottom edge up clamps to min height. The window is 100
	// wide after the clamp above, so grab at local x=50 to stay clear of the
	// widened corner zones.
	s.processPointer(0, 150, 248, true, MouseButtonLeft, 0)
	if w.drag.edge != EdgeBottom {
		t.Fatalf("edge = %v, want EdgeBottom", w.drag.edge)
	}
	s.processPointer(0, 150, 110, true, MouseButtonLeft, 0)
	if w.Height != 70 {
		t.Errorf("height = %v, want min height 70", w.Height)
	}
}

func TestWindow_ResizeLeftEdgeMovesAndShrinks(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.Resizable = true
	w.SetPosition(100, 100)
	s.AddActor(w)

	s.processPointer(0, 102, 175, true, MouseButtonLeft, 0)
	if w.drag.edge != EdgeLeft {
		t.Fatalf("edge = %v, want EdgeLeft", w.drag.edge)
	}

	s.processPointer(0, 122, 175, true, MouseButtonLeft, 0)
	if w.X != 120 {
		t.Errorf("x = %v, want 120", w.X)
	}
	if w.Width != 130 {
		t.Errorf("width = %v, want 130", w.Width)
	}
}

func TestWindow_ResizeClampedByStageEdge(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.Resizable = true
	w.SetPosition(500, 100)
	w.SetSize(100, 150)
	s.AddActor(w)

	s.processPointer(0, 598, 175, true, MouseButtonLeft, 0)
	if w.drag.edge != EdgeRight {
		t.Fatalf("edge = %v, want EdgeRight", w.drag.edge)
	}

	s.processPointer(0, 700, 175, true, MouseButtonLeft, 0)
	if w.Width != 140 {
		t.Errorf("width = %v, want 140 (stage edge clamp)", w.Width)
	}
	if w.X+w.Width != 640 {
		t.Errorf("right edge = %v, want 640", w.X+w.Width)
	}
}

func TestWindow_DragRoundsGeometry(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(100, 100)
	s.AddActor(w)

	s.processPointer(0, 150.4, 110, true, MouseButtonLeft, 0)
	s.processPointer(0, 160.9, 115.3, true, MouseButtonLeft, 0)

	if w.X != 111 || w.Y != 105 {
		t.Errorf("position = (%v,%v), want rounded (111,105)", w.X, w.Y)
	}
}

func TestWindow_DragEmitsGeometryEvents(t *testing.T) {
	s := NewStage(640, 480)
	sink := &recordingSink{}
	s.SetEventSink(sink)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(100, 100)
	s.AddActor(w)

	s.processPointer(0, 150, 110, true, MouseButtonLeft, 0)
	s.processPointer(0, 170, 130, true, MouseButtonLeft, 0)

	var moved []UIEvent
	for _, e := range sink.events {
		if e.Type == EventWindowMoved {
			moved = append(moved, e)
		}
	}
	if len(moved) != 1 {
		t.Fatalf("window moved events = %d, want 1", len(moved))
	}
	e := moved[0]
	if e.ActorName != "window" || e.X != 120 || e.Y != 120 || e.Width != 150 || e.Height != 150 {
		t.Errorf("moved event = %+v", e)
	}
}

func TestWindow_ModalAbsorbsMissedHits(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(200, 200)
	s.AddActor(w)

	if hit := s.Hit(50, 50, true); hit != Actor(s.Root()) {
		t.Errorf("non-modal miss = %v, want root", hit)
	}

	w.Modal = true
	if hit := s.Hit(50, 50, true); hit != Actor(w) {
		t.Errorf("modal miss = %v, want the window", hit)
	}
}

func TestWindow_ModalConsumesOutsidePress(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.Modal = true
	w.SetPosition(200, 200)
	s.AddActor(w)

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	if s.pointers[0].target != Actor(w) {
		t.Errorf("captured target = %v, want the modal window", s.pointers[0].target)
	}
	if w.Dragging() {
		t.Error("outside press should not start a drag")
	}
}

func TestWindowHit_TitleBarPrecedenceOverCells(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	content := newTestActor("content", 10, 10)
	w.Add(content)
	// Force the content to overlap the title strip.
	content.SetBounds(10, 5, 50, 30)

	if hit := w.Hit(20, 10, true); hit != Actor(w) {
		t.Errorf("hit over a cell child in the title strip = %v, want the window", hit)
	}
	if hit := w.Hit(20, 25, true); hit != Actor(content) {
		t.Errorf("hit below the title strip = %v, want the content actor", hit)
	}
}

func TestWindowHit_TitleTableChildrenPassThrough(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	w.TitleTable().SetBounds(0, 0, 150, 20)
	w.TitleLabel().SetBounds(0, 0, 150, 20)

	if hit := w.Hit(75, 10, true); hit != Actor(w.TitleLabel()) {
		t.Errorf("hit over the title label = %v, want the label", hit)
	}
}

func TestWindowHit_Invisible(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	w.Modal = true
	w.Visible = false
	if hit := w.Hit(75, 75, true); hit != nil {
		t.Errorf("hit on invisible window = %v, want nil", hit)
	}
}

func TestEnsureWithinStage_ClampsToViewport(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(600, 400)
	s.AddActor(w)

	w.EnsureWithinStage()
	if w.X != 490 || w.Y != 330 {
		t.Errorf("position = (%v,%v), want (490,330)", w.X, w.Y)
	}

	w.SetPosition(-20, -30)
	w.EnsureWithinStage()
	if w.X != 0 || w.Y != 0 {
		t.Errorf("position = (%v,%v), want (0,0)", w.X, w.Y)
	}
}

func TestEnsureWithinStage_OversizedWindowIsStable(t *testing.T) {
	s := NewStage(100, 100)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(10, 10)
	s.AddActor(w)

	w.EnsureWithinStage()
	x, y := w.X, w.Y
	w.EnsureWithinStage()
	if w.X != x || w.Y != y {
		t.Errorf("oversized clamp not stable: (%v,%v) then (%v,%v)", x, y, w.X, w.Y)
	}
}

func TestEnsureWithinStage_Disabled(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.KeepWithinStage = false
	w.SetPosition(1000, 1000)
	s.AddActor(w)

	w.EnsureWithinStage()
	if w.X != 1000 || w.Y != 1000 {
		t.Errorf("position = (%v,%v), want untouched (1000,1000)", w.X, w.Y)
	}
}

func TestEnsureWithinStage_NestedWindowNotClamped(t *testing.T) {
	s := NewStage(640, 480)
	holder := NewGroup("holder")
	s.AddActor(holder)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(1000, 1000)
	holder.AddActor(w)

	w.EnsureWithinStage()
	if w.X != 1000 || w.Y != 1000 {
		t.Errorf("nested window clamped to (%v,%v), want untouched", w.X, w.Y)
	}
}

func TestEnsureWithinStage_CameraExtent(t *testing.T) {
	s := NewStage(640, 480)
	cam := NewCamera(Rect{Width: 640, Height: 480})
	s.SetCamera(cam)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(700, 100)
	s.AddActor(w)

	w.EnsureWithinStage()
	if w.X != 490 {
		t.Errorf("x = %v, want 490 (camera right edge 640)", w.X)
	}

	cam.SetZoom(2) // visible x range [160, 480], y range [120, 360]
	w.SetPosition(100, 100)
	w.EnsureWithinStage()
	if w.X != 160 || w.Y != 120 {
		t.Errorf("position = (%v,%v), want (160,120)", w.X, w.Y)
	}
}

func TestWindow_Pack(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	w.Add(newTestActor("content", 10, 10)).Width(FixedOf(100)).Height(FixedOf(50))

	w.Pack()
	if w.Width != 100 {
		t.Errorf("packed width = %v, want 100", w.Width)
	}
	if w.Height != 70 {
		t.Errorf("packed height = %v, want 70 (title 20 + content 50)", w.Height)
	}
}

func TestWindow_PrefIncludesBackgroundMin(t *testing.T) {
	style := testWindowStyle()
	style.Background = &RegionDrawable{Region: TextureRegion{OriginalW: 200, OriginalH: 120}}
	w := NewWindow("t", style)

	if got := w.PrefWidth(); got != 200 {
		t.Errorf("PrefWidth = %v, want background min 200", got)
	}
	if got := w.MinHeight(); got != 120 {
		t.Errorf("MinHeight = %v, want background min 120", got)
	}
}

func TestWindow_FadeIn(t *testing.T) {
	w := NewWindow("t", testWindowStyle())
	w.FadeIn(0.5)
	if w.Color.A != 0 {
		t.Fatalf("alpha after FadeIn start = %v, want 0", w.Color.A)
	}

	w.Act(0.25)
	if w.Color.A <= 0 || w.Color.A >= 1 {
		t.Errorf("alpha mid-fade = %v, want in (0,1)", w.Color.A)
	}

	w.Act(1)
	if w.Color.A != 1 {
		t.Errorf("alpha after fade = %v, want 1", w.Color.A)
	}
}

func TestWindow_FadeOutRemoves(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	s.AddActor(w)

	w.FadeOut(0.5)
	w.Act(1)
	if w.Color.A != 0 {
		t.Errorf("alpha after fade out = %v, want 0", w.Color.A)
	}
	if w.Parent() != nil {
		t.Error("window still parented after fade out completed")
	}
}

func TestWindow_SetTitle(t *testing.T) {
	w := NewWindow("old", testWindowStyle())
	w.SetTitle("new")
	if w.Title() != "new" {
		t.Errorf("title = %q, want %q", w.Title(), "new")
	}
}

func TestWindow_ModalConsumesScroll(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.SetPosition(100, 100)
	s.AddActor(w)

	if s.Scrolled(175, 175, 0, 1, 0) {
		t.Error("non-modal window consumed a scroll")
	}
	w.Modal = true
	if !s.Scrolled(175, 175, 0, 1, 0) {
		t.Error("modal window did not consume a scroll over its body")
	}
}

func TestWindow_ModalConsumesKeys(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	s.AddActor(w)
	s.SetKeyboardFocus(w)

	if s.KeyDown(ebiten.KeyA) || s.KeyUp(ebiten.KeyA) || s.KeyTyped('x') {
		t.Error("non-modal window consumed a key event")
	}

	w.Modal = true
	if !s.KeyDown(ebiten.KeyA) {
		t.Error("modal window did not consume key down")
	}
	if !s.KeyUp(ebiten.KeyA) {
		t.Error("modal window did not consume key up")
	}
	if !s.KeyTyped('x') {
		t.Error("modal window did not consume a typed rune")
	}
}

func TestWindow_HoverRefreshesEdge(t *testing.T) {
	s := NewStage(640, 480)
	w := NewWindow("t", testWindowStyle())
	w.Resizable = true
	w.SetPosition(100, 100)
	s.AddActor(w)

	// Hover (no button) over the title strip, then near the right edge.
	s.processPointer(0, 175, 110, false, 0, 0)
	if w.drag.edge != EdgeMove {
		t.Errorf("edge after title hover = %v, want EdgeMove", w.drag.edge)
	}
	s.processPointer(0, 247, 175, false, 0, 0)
	if w.drag.edge != EdgeRight {
		t.Errorf("edge after right-border hover = %v, want EdgeRight", w.drag.edge)
	}

	if w.drag.MouseMoved(nil, 75, 75) {
		t.Error("non-modal window consumed a hover move")
	}
	w.Modal = true
	if !w.drag.MouseMoved(nil, 75, 75) {
		t.Error("modal window did not consume a hover move")
	}
}

func TestEnsureWithinStage_CameraViewportExtent(t *testing.T) {
	s := NewStage(640, 480)
	cam := NewCamera(Rect{Width: 320, Height: 240})
	s.SetCamera(cam)
	w := NewWindow("t", testWindowStyle())
	w.SetSize(100, 80)
	w.SetPosition(400, 50)
	s.AddActor(w)

	// The camera sees [0,320]x[0,240]; the clamp follows the camera's
	// viewport, not the stage size.
	w.EnsureWithinStage()
	if w.X != 220 || w.Y != 50 {
		t.Errorf("position = (%v,%v), want (220,50)", w.X, w.Y)
	}
}

func TestWindow_BackgroundInstalledOnTableSlot(t *testing.T) {
	bg := &RegionDrawable{Region: TextureRegion{OriginalW: 200, OriginalH: 120}}
	style := testWindowStyle()
	style.Background = bg

	w := NewWindow("t", style)
	if w.Background() != Drawable(bg) {
		t.Error("style background was not installed as the table background")
	}

	w2 := NewWindow("t", testWindowStyle())
	if w2.Background() != nil {
		t.Errorf("background = %v, want nil", w2.Background())
	}
	w2.SetBackground(bg)
	if got := w2.PrefWidth(); got != 200 {
		t.Errorf("PrefWidth after SetBackground = %v, want 200", got)
	}
	if got := w2.MinHeight(); got != 120 {
		t.Errorf("MinHeight after SetBackground = %v, want 120", got)
	}
}
