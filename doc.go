// Package sapling is a retained-mode UI widget toolkit for [Ebitengine].
//
// Sapling provides the actor tree, input routing, deferred layout, and the
// widgets (windows, tables, labels) that in-game tooling and editor overlays
// need.
//
// # Quick start
//
// Implement [ebiten.Game] and drive a [Stage] from it:
//
//	type Game struct{ stage *sapling.Stage }
//
//	func (g *Game) Update() error              { g.stage.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.stage.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Actors
//
// Every visual element is an [Actor]. Actors form a tree rooted at
// [Stage.Root]. Children inherit their parent's transform and alpha, and
// input events bubble from the hit actor up toward the root.
//
//	stage := sapling.NewStage(640, 480)
//	win := sapling.NewWindow("Inventory", style)
//	win.Resizable = true
//	stage.AddActor(win)
//
// # Windows
//
// A [Window] is a [Table] with a title bar. Dragging the title bar moves it,
// dragging a resizable edge resizes it, and [Window.KeepWithinStage] clamps
// it to the visible stage. Modal windows swallow input that misses their
// children. Content is added through table cells:
//
//	win.Add(label).Expand().Fill()
//	win.Pack()
//
// # Layout
//
// Widgets implement [Layouter]: sizing is computed lazily and cached until
// invalidated. Cell and table padding take [Value] instances, so padding can
// be fixed ([FixedOf]) or derived from another actor ([PercentWidthOf]).
//
// # Key features
//
// Sapling includes a camera with scroll-to tweening (via [gween]), JSON
// texture atlas loading, YAML skins, window fades, synthetic input injection
// for tests and automation, and an event sink bridge for ECS integration
// (via [Donburi] adapter in sapling/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sapling
