package layout

import (
	"math"

	"github.com/flux-ui/flux/pkg/graphics"
)

// SizeHint is a node's self-reported size range, independent of any imposed
// constraint.
type SizeHint struct {
	Min   graphics.Size
	Ideal graphics.Size
	Max   graphics.Size
}

// HintOf queries s under uniform min, ideal, and max constraints and returns
// the normalized hint.
func HintOf(s Sizer) SizeHint {
	return SizeHint{
		Min:   s.Size(Uniform(Min)),
		Ideal: s.Size(Uniform(Ideal)),
		Max:   s.Size(Uniform(Max)),
	}.Normalize()
}

// Normalize enforces min <= ideal <= max per axis by raising ideal and max.
func (h SizeHint) Normalize() SizeHint {
	h.Min = graphics.Size{Width: math.Max(0, h.Min.Width), Height: math.Max(0, h.Min.Height)}
	h.Ideal = h.Ideal.Max(h.Min)
	h.Max = h.Max.Max(h.Ideal)
	return h
}

// Valid reports whether min <= ideal <= max holds on both axes.
func (h SizeHint) Valid() bool {
	return h.Min.Width <= h.Ideal.Width && h.Ideal.Width <= h.Max.Width &&
		h.Min.Height <= h.Ideal.Height && h.Ideal.Height <= h.Max.Height
}

// Flexibility returns how far ideal can shrink toward min and grow toward max
// along axis.
func (h SizeHint) Flexibility(axis graphics.Axis) (shrink, grow float64) {
	return h.Ideal.Along(axis) - h.Min.Along(axis), h.Max.Along(axis) - h.Ideal.Along(axis)
}
