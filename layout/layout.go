// Package layout provides the constraint-based solver that partitions a
// rectangular area among widgets.
//
// A Layout is a direction, an optional margin and inter-segment spacing, and
// an ordered list of constraints. Split resolves the constraints into one
// sub-rectangle per constraint, partitioning the usable area exactly: no
// cell is lost or double-assigned, and over-demand degrades sizes toward
// zero instead of ever going negative.
//
// Split is pure and deterministic, which makes the results memoizable; see
// cache.go.
package layout

import (
	"errors"

	"github.com/dshills/gridterm/core"
)

// Layout solver errors.
var (
	// ErrNegativeConstraint reports a constraint declared with a negative
	// length, percentage, or bound.
	ErrNegativeConstraint = errors.New("negative constraint value")
	// ErrNegativeSpacing reports negative inter-segment spacing.
	ErrNegativeSpacing = errors.New("negative spacing")
)

// Direction selects the axis a layout splits along.
type Direction uint8

const (
	// Vertical stacks segments top to bottom.
	Vertical Direction = iota
	// Horizontal places segments left to right.
	Horizontal
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Layout describes how to split an area into segments.
type Layout struct {
	direction   Direction
	constraints []Constraint
	margin      int
	vmargin     int
	spacing     int
}

// New creates a layout with the given direction and constraints, no margin
// and no spacing.
func New(direction Direction, constraints ...Constraint) Layout {
	return Layout{direction: direction, constraints: constraints}
}

// NewVertical creates a layout that stacks segments top to bottom.
func NewVertical(constraints ...Constraint) Layout {
	return New(Vertical, constraints...)
}

// NewHorizontal creates a layout that places segments left to right.
func NewHorizontal(constraints ...Constraint) Layout {
	return New(Horizontal, constraints...)
}

// WithConstraints returns a copy of the layout with the given constraints.
func (l Layout) WithConstraints(constraints ...Constraint) Layout {
	l.constraints = constraints
	return l
}

// WithMargin returns a copy of the layout with the given outer margin on
// all sides.
func (l Layout) WithMargin(margin int) Layout {
	l.margin = margin
	l.vmargin = margin
	return l
}

// WithMargins returns a copy of the layout with separate horizontal and
// vertical outer margins.
func (l Layout) WithMargins(horizontal, vertical int) Layout {
	l.margin = horizontal
	l.vmargin = vertical
	return l
}

// WithSpacing returns a copy of the layout with the given gap between
// adjacent segments.
func (l Layout) WithSpacing(spacing int) Layout {
	l.spacing = spacing
	return l
}

// Split partitions the area into one rectangle per constraint, in
// constraint order. Results are memoized; identical inputs hit the cache.
func (l Layout) Split(area core.Rect) ([]core.Rect, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	if rects, ok := defaultCache.get(l, area); ok {
		return rects, nil
	}
	rects := l.solve(area)
	defaultCache.put(l, area, rects)
	return rects, nil
}

// MustSplit is Split for layouts known to be well formed; it panics on a
// malformed constraint set.
func (l Layout) MustSplit(area core.Rect) []core.Rect {
	rects, err := l.Split(area)
	if err != nil {
		panic(err)
	}
	return rects
}

func (l Layout) validate() error {
	if l.spacing < 0 {
		return ErrNegativeSpacing
	}
	if l.margin < 0 || l.vmargin < 0 {
		return ErrNegativeSpacing
	}
	for _, c := range l.constraints {
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

// solve is the pure solver behind Split.
//
// Resolution happens in fixed priority order (Length, then Min, then
// Percentage/Ratio, then Fill, then Max) with each pass clamped to the
// length still unclaimed, so over-demand degrades later and lower-priority
// segments toward zero. Whatever remains after the passes is distributed to
// the flexible segments (Fill by weight, else Min evenly), one leftover
// cell at a time to the earliest candidates; if no segment is flexible the
// last one takes the remainder. The sizes therefore always sum exactly to
// the usable length.
func (l Layout) solve(area core.Rect) []core.Rect {
	n := len(l.constraints)
	if n == 0 {
		return []core.Rect{}
	}

	inner := area.Inner(l.margin, l.vmargin)
	length := inner.Height
	if l.direction == Horizontal {
		length = inner.Width
	}
	usable := max(length-l.spacing*(n-1), 0)

	sizes := make([]int, n)
	remaining := usable

	// Bounded passes in priority order.
	for _, kind := range []ConstraintKind{KindLength, KindMin, KindPercentage, KindRatio} {
		for i, c := range l.constraints {
			if c.Kind != kind {
				continue
			}
			want := c.apply(usable)
			sizes[i] = min(want, remaining)
			remaining -= sizes[i]
		}
	}

	remaining = l.distribute(sizes, remaining)

	// Max segments soak up what the flexible segments did not claim.
	for i, c := range l.constraints {
		if c.Kind != KindMax {
			continue
		}
		sizes[i] = min(c.apply(usable), remaining)
		remaining -= sizes[i]
	}

	// Nothing may be lost: without flexible segments the last one grows.
	if remaining > 0 {
		sizes[n-1] += remaining
	}

	return l.assemble(inner, sizes)
}

// distribute hands the remaining length to the flexible segments: Fill
// constraints by declared weight, or Min constraints evenly when there are
// no fills. Integer-truncated shares are assigned first and the rounding
// leftover goes one cell at a time to the earliest flexible segments, so
// the distribution is exact and deterministic.
func (l Layout) distribute(sizes []int, remaining int) int {
	if remaining <= 0 {
		return remaining
	}

	flexible := make([]int, 0, len(l.constraints))
	weights := make([]int, 0, len(l.constraints))
	for i, c := range l.constraints {
		if c.Kind == KindFill {
			flexible = append(flexible, i)
			weights = append(weights, c.weight())
		}
	}
	if len(flexible) == 0 {
		for i, c := range l.constraints {
			if c.Kind == KindMin {
				flexible = append(flexible, i)
				weights = append(weights, 1)
			}
		}
	}
	if len(flexible) == 0 {
		return remaining
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	distributed := 0
	for j, i := range flexible {
		share := remaining * weights[j] / totalWeight
		sizes[i] += share
		distributed += share
	}
	for j := 0; distributed < remaining; j++ {
		sizes[flexible[j%len(flexible)]]++
		distributed++
	}
	return 0
}

// assemble turns segment sizes into rectangles along the split axis.
func (l Layout) assemble(inner core.Rect, sizes []int) []core.Rect {
	rects := make([]core.Rect, len(sizes))
	pos := inner.Y
	if l.direction == Horizontal {
		pos = inner.X
	}
	for i, size := range sizes {
		if l.direction == Horizontal {
			rects[i] = core.RectAt(pos, inner.Y, size, inner.Height)
		} else {
			rects[i] = core.RectAt(inner.X, pos, inner.Width, size)
		}
		pos += size + l.spacing
	}
	return rects
}
