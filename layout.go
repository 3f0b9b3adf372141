package sapling

// Layouter is the layout capability: widgets that size themselves report
// minimum, preferred, and maximum dimensions and participate in the
// invalidate/validate lifecycle. Tables, labels, and windows implement it;
// plain actors do not, and layout queries against them fall back to their
// raw size (see the layout-query Values in value.go).
type Layouter interface {
	MinWidth() float64
	MinHeight() float64
	PrefWidth() float64
	PrefHeight() float64
	// MaxWidth and MaxHeight return 0 for "unbounded".
	MaxWidth() float64
	MaxHeight() float64

	// Invalidate marks this widget's layout as stale so the next Validate
	// recomputes it.
	Invalidate()
	// InvalidateHierarchy invalidates this widget and every Layouter above it.
	InvalidateHierarchy()
	// Validate recomputes the layout if it is stale.
	Validate()
	// Pack resizes the widget to its preferred size and validates it.
	Pack()
}

// invalidateAncestors walks up from a, invalidating every Layouter found.
func invalidateAncestors(a Actor) {
	for p := parentActor(a); p != nil; p = parentActor(p) {
		if l, ok := p.(Layouter); ok {
			l.Invalidate()
		}
	}
}
