package sapling

import "math"

// Value is a deferred, context-parameterized scalar used for declarative
// layout sizing: paddings, cell sizes, and widget constraints are expressed
// as Values and evaluated lazily against the actor they apply to.
type Value interface {
	// Get evaluates the value for the given context actor. The context may
	// be nil; implementations fall back to zero.
	Get(context Actor) float64
}

// valueFunc adapts a plain function to the Value interface.
type valueFunc func(context Actor) float64

func (f valueFunc) Get(context Actor) float64 { return f(context) }

// --- Fixed ---

// Fixed is a constant Value. Small integer values are pooled; obtain Fixed
// values through [FixedOf] to benefit from the pool.
type Fixed struct {
	value float64
}

// NewFixed creates an unpooled constant Value.
func NewFixed(v float64) *Fixed { return &Fixed{value: v} }

// Get returns the constant.
func (f *Fixed) Get(context Actor) float64 { return f.value }

// Zero is the canonical Fixed zero. FixedOf(0) always returns it.
var Zero = &Fixed{}

// Pool bounds for FixedOf. Integer values in [fixedPoolMin, fixedPoolMax]
// share canonical instances.
const (
	fixedPoolMin = -10
	fixedPoolMax = 100
	// fixedTolerance is how close to an integer a value must be to hit the pool.
	fixedTolerance = 1e-6
)

var fixedPool [fixedPoolMax - fixedPoolMin + 1]*Fixed

func init() {
	fixedPool[-fixedPoolMin] = Zero
}

// FixedOf returns a Fixed holding v. Calls with the same integer value in
// [-10, 100] (within tolerance) return the identical pooled instance, with
// exactly 0 mapping to [Zero]; all other inputs allocate fresh.
func FixedOf(v float64) *Fixed {
	if v == 0 {
		return Zero
	}
	rounded := math.Round(v)
	if math.Abs(v-rounded) <= fixedTolerance && rounded >= fixedPoolMin && rounded <= fixedPoolMax {
		idx := int(rounded) - fixedPoolMin
		if fixedPool[idx] == nil {
			fixedPool[idx] = &Fixed{value: rounded}
		}
		return fixedPool[idx]
	}
	return &Fixed{value: v}
}

// --- Percent values ---

// PercentWidth returns a Value that evaluates to percent * the context
// actor's width. A nil context evaluates to 0.
func PercentWidth(percent float64) Value {
	return valueFunc(func(context Actor) float64 {
		if context == nil {
			return 0
		}
		return context.Base().Width * percent
	})
}

// PercentWidthOf returns a Value that evaluates to percent * the given
// actor's width, regardless of context. Panics if actor is nil.
func PercentWidthOf(percent float64, actor Actor) Value {
	if actor == nil {
		panic("sapling: actor cannot be nil")
	}
	return valueFunc(func(Actor) float64 {
		return actor.Base().Width * percent
	})
}

// PercentHeight returns a Value that evaluates to percent * the context
// actor's height. A nil context evaluates to 0.
func PercentHeight(percent float64) Value {
	return valueFunc(func(context Actor) float64 {
		if context == nil {
			return 0
		}
		return context.Base().Height * percent
	})
}

// PercentHeightOf returns a Value that evaluates to percent * the given
// actor's height, regardless of context. Panics if actor is nil.
func PercentHeightOf(percent float64, actor Actor) Value {
	if actor == nil {
		panic("sapling: actor cannot be nil")
	}
	return valueFunc(func(Actor) float64 {
		return actor.Base().Height * percent
	})
}

// --- Layout-query singletons ---
//
// Each queries the context's Layout capability when present, falls back to
// the raw actor size otherwise, and evaluates to 0 for a nil context.

// MinWidthValue evaluates to the context's layout minimum width.
var MinWidthValue Value = valueFunc(func(context Actor) float64 {
	if l, ok := context.(Layouter); ok {
		return l.MinWidth()
	}
	if context == nil {
		return 0
	}
	return context.Base().Width
})

// MinHeightValue evaluates to the context's layout minimum height.
var MinHeightValue Value = valueFunc(func(context Actor) float64 {
	if l, ok := context.(Layouter); ok {
		return l.MinHeight()
	}
	if context == nil {
		return 0
	}
	return context.Base().Height
})

// PrefWidthValue evaluates to the context's layout preferred width.
var PrefWidthValue Value = valueFunc(func(context Actor) float64 {
	if l, ok := context.(Layouter); ok {
		return l.PrefWidth()
	}
	if context == nil {
		return 0
	}
	return context.Base().Width
})

// PrefHeightValue evaluates to the context's layout preferred height.
var PrefHeightValue Value = valueFunc(func(context Actor) float64 {
	if l, ok := context.(Layouter); ok {
		return l.PrefHeight()
	}
	if context == nil {
		return 0
	}
	return context.Base().Height
})

// MaxWidthValue evaluates to the context's layout maximum width.
var MaxWidthValue Value = valueFunc(func(context Actor) float64 {
	if l, ok := context.(Layouter); ok {
		return l.MaxWidth()
	}
	if context == nil {
		return 0
	}
	return context.Base().Width
})

// MaxHeightValue evaluates to the context's layout maximum height.
var MaxHeightValue Value = valueFunc(func(context Actor) float64 {
	if l, ok := context.(Layouter); ok {
		return l.MaxHeight()
	}
	if context == nil {
		return 0
	}
	return context.Base().Height
})
