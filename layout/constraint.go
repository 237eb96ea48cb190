package layout

import "fmt"

// ConstraintKind identifies how a Constraint sizes its segment.
type ConstraintKind uint8

const (
	// KindLength is a fixed number of cells.
	KindLength ConstraintKind = iota
	// KindPercentage is a share of the usable length, truncated.
	KindPercentage
	// KindRatio is a numerator/denominator share of the usable length.
	KindRatio
	// KindMin is a lower bound that can grow when length is left over.
	KindMin
	// KindMax is an upper bound filled only from length nothing else claims.
	KindMax
	// KindFill claims leftover length proportionally to its weight.
	KindFill
)

// Constraint is one rule governing a segment's size in a layout split.
type Constraint struct {
	Kind ConstraintKind
	// Value is the length, percentage, bound, or fill weight.
	Value int
	// Den is the denominator for ratio constraints.
	Den int
}

// Length creates a fixed-length constraint.
func Length(cells int) Constraint {
	return Constraint{Kind: KindLength, Value: cells}
}

// Percentage creates a percentage-of-usable-length constraint.
func Percentage(percent int) Constraint {
	return Constraint{Kind: KindPercentage, Value: percent}
}

// Ratio creates a num/den share-of-usable-length constraint.
func Ratio(num, den int) Constraint {
	return Constraint{Kind: KindRatio, Value: num, Den: den}
}

// Min creates a lower-bound constraint.
func Min(cells int) Constraint {
	return Constraint{Kind: KindMin, Value: cells}
}

// Max creates an upper-bound constraint.
func Max(cells int) Constraint {
	return Constraint{Kind: KindMax, Value: cells}
}

// Fill creates a fill-weight constraint. A weight of 0 is treated as 1.
func Fill(weight int) Constraint {
	return Constraint{Kind: KindFill, Value: weight}
}

// apply returns the length this constraint asks for out of the given usable
// length, before clamping against what is actually left.
func (c Constraint) apply(usable int) int {
	switch c.Kind {
	case KindLength, KindMin:
		return min(c.Value, usable)
	case KindPercentage:
		return min(usable*c.Value/100, usable)
	case KindRatio:
		den := max(c.Den, 1) // 0/0 -> 0 and x/0 -> x
		return min(usable*c.Value/den, usable)
	case KindMax:
		return min(c.Value, usable)
	default: // KindFill sizes only from leftover distribution
		return 0
	}
}

// weight returns the fill weight, treating zero as one.
func (c Constraint) weight() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// validate reports malformed constraints. Negative declared values are a
// programming error, never silently corrected.
func (c Constraint) validate() error {
	if c.Value < 0 && c.Kind != KindFill {
		return fmt.Errorf("%w: %s", ErrNegativeConstraint, c)
	}
	if c.Kind == KindRatio && c.Den < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeConstraint, c)
	}
	return nil
}

// String returns a string representation of the constraint.
func (c Constraint) String() string {
	switch c.Kind {
	case KindLength:
		return fmt.Sprintf("Length(%d)", c.Value)
	case KindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.Value)
	case KindRatio:
		return fmt.Sprintf("Ratio(%d,%d)", c.Value, c.Den)
	case KindMin:
		return fmt.Sprintf("Min(%d)", c.Value)
	case KindMax:
		return fmt.Sprintf("Max(%d)", c.Value)
	case KindFill:
		return fmt.Sprintf("Fill(%d)", c.Value)
	default:
		return fmt.Sprintf("Unknown(%d)", c.Value)
	}
}
