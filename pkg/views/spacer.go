package views

import (
	"math"

	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// Extent is the range a view accepts along one axis.
type Extent struct {
	Min, Ideal, Max float64
}

// Flexible is an extent with no natural size that grows without bound.
var Flexible = Extent{Max: math.Inf(1)}

// Exactly returns a rigid extent of v.
func Exactly(v float64) Extent {
	return Extent{Min: v, Ideal: v, Max: v}
}

// Spacer is an empty view with a configurable extent on each axis. The
// zero value is rigid at zero size; NewSpacer starts flexible.
type Spacer struct {
	core.Leaf
	W, H Extent
}

// NewSpacer returns a spacer that is flexible on both axes.
func NewSpacer() Spacer {
	return Spacer{W: Flexible, H: Flexible}
}

// Width fixes the spacer's width to w.
func (s Spacer) Width(w float64) Spacer {
	s.W = Exactly(w)
	return s
}

// Height fixes the spacer's height to h.
func (s Spacer) Height(h float64) Spacer {
	s.H = Exactly(h)
	return s
}

// MinWidth sets the smallest width the spacer accepts.
func (s Spacer) MinWidth(w float64) Spacer {
	s.W.Min = w
	return s
}

// MaxWidth sets the largest width the spacer accepts.
func (s Spacer) MaxWidth(w float64) Spacer {
	s.W.Max = w
	return s
}

// MinHeight sets the smallest height the spacer accepts.
func (s Spacer) MinHeight(h float64) Spacer {
	s.H.Min = h
	return s
}

// MaxHeight sets the largest height the spacer accepts.
func (s Spacer) MaxHeight(h float64) Spacer {
	s.H.Max = h
	return s
}

func (s Spacer) Size(c layout.Constraints, _ []core.Sizer) graphics.Size {
	return c.Resolve(
		graphics.Size{Width: s.W.Min, Height: s.H.Min},
		graphics.Size{Width: s.W.Ideal, Height: s.H.Ideal},
		graphics.Size{Width: s.W.Max, Height: s.H.Max},
	)
}
