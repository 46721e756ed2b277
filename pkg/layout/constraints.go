// Package layout holds the sizing vocabulary shared by the engine and views:
// per-axis constraints, size hints, the flexible allocation routine used by
// row and column containers, and the per-node size cache.
package layout

import (
	"fmt"
	"math"

	"github.com/flux-ui/flux/pkg/graphics"
)

// ConstraintKind selects how a view is asked to size itself along one axis.
type ConstraintKind uint8

const (
	// KindIdeal asks for the natural size.
	KindIdeal ConstraintKind = iota
	// KindMin asks for the smallest acceptable size.
	KindMin
	// KindMax asks for the largest acceptable size (may be +Inf).
	KindMax
	// KindFixed imposes an exact size.
	KindFixed
)

// Constraint is a sizing directive for a single axis.
type Constraint struct {
	Kind  ConstraintKind
	Value float64 // only meaningful for KindFixed
}

// Shorthand constraints.
var (
	Ideal = Constraint{Kind: KindIdeal}
	Min   = Constraint{Kind: KindMin}
	Max   = Constraint{Kind: KindMax}
)

// Fixed returns a fixed constraint of v.
func Fixed(v float64) Constraint {
	return Constraint{Kind: KindFixed, Value: v}
}

// IsFixed reports whether c imposes an exact value.
func (c Constraint) IsFixed() bool {
	return c.Kind == KindFixed
}

// Resolve picks the extent matching c from a leaf's own min, ideal, and max.
func (c Constraint) Resolve(min, ideal, max float64) float64 {
	switch c.Kind {
	case KindMin:
		return min
	case KindMax:
		return max
	case KindFixed:
		return c.Value
	default:
		return ideal
	}
}

// Shrink returns c reduced by d when fixed; other kinds pass through.
func (c Constraint) Shrink(d float64) Constraint {
	if c.Kind == KindFixed {
		return Fixed(math.Max(0, c.Value-d))
	}
	return c
}

func (c Constraint) String() string {
	switch c.Kind {
	case KindMin:
		return "min"
	case KindMax:
		return "max"
	case KindFixed:
		return fmt.Sprintf("fixed(%g)", c.Value)
	default:
		return "ideal"
	}
}

// Constraints pairs a width and a height constraint. It is comparable and
// used as the size cache key.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Uniform applies c to both axes.
func Uniform(c Constraint) Constraints {
	return Constraints{Width: c, Height: c}
}

// FixedSize returns constraints that pin both axes to size.
func FixedSize(size graphics.Size) Constraints {
	return Constraints{Width: Fixed(size.Width), Height: Fixed(size.Height)}
}

// Along returns the constraint on axis.
func (c Constraints) Along(axis graphics.Axis) Constraint {
	if axis == graphics.Horizontal {
		return c.Width
	}
	return c.Height
}

// With returns c with the constraint on axis replaced.
func (c Constraints) With(axis graphics.Axis, v Constraint) Constraints {
	if axis == graphics.Horizontal {
		c.Width = v
	} else {
		c.Height = v
	}
	return c
}

// Shrink reduces fixed axes by the given insets.
func (c Constraints) Shrink(d graphics.Size) Constraints {
	return Constraints{Width: c.Width.Shrink(d.Width), Height: c.Height.Shrink(d.Height)}
}

// Resolve applies each axis constraint to the given per-axis extents.
func (c Constraints) Resolve(min, ideal, max graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  c.Width.Resolve(min.Width, ideal.Width, max.Width),
		Height: c.Height.Resolve(min.Height, ideal.Height, max.Height),
	}
}

func (c Constraints) String() string {
	return fmt.Sprintf("(%v, %v)", c.Width, c.Height)
}

// Layout is the final rectangle assigned to a node. Position is relative to
// the parent's origin.
type Layout struct {
	Position graphics.Offset
	Size     graphics.Size
}

// Rect returns l as a graphics.Rect.
func (l Layout) Rect() graphics.Rect {
	return graphics.Rect{Position: l.Position, Size: l.Size}
}

// Contains reports whether p, in the parent's coordinates, lies inside l.
// The rectangle is half-open.
func (l Layout) Contains(p graphics.Offset) bool {
	return l.Rect().Contains(p)
}

// Sizer lazily computes a child's size under a constraint chosen by the
// parent. Implementations cache results, so repeated queries are cheap.
type Sizer interface {
	Size(c Constraints) graphics.Size
}
