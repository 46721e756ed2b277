package layout

import (
	"math"
	"slices"

	"github.com/flux-ui/flux/pkg/graphics"
)

// Epsilon is the smallest amount of slack or capacity the flexible allocation
// treats as non-zero.
const Epsilon = 0.01

// Distribute spreads delta over sizes, growing (delta > 0) or shrinking
// (delta < 0) each entry by at most its capacity. Every round divides what is
// left equally among entries that can still absorb more, so entries with
// small capacities saturate and the remainder flows to the others. sizes is
// updated in place. Capacities whose sign disagrees with delta count as zero.
//
// It returns the undistributed remainder (non-zero only when every capacity
// is exhausted) and the number of rounds, which never exceeds len(sizes).
func Distribute(sizes, capacities []float64, delta float64) (remaining float64, rounds int) {
	caps := slices.Clone(capacities)
	for i, c := range caps {
		if (delta > 0 && c < 0) || (delta < 0 && c > 0) || math.IsNaN(c) {
			caps[i] = 0
		}
	}
	remaining = delta
	for math.Abs(remaining) > Epsilon {
		flexible := 0
		for _, c := range caps {
			if math.Abs(c) > Epsilon {
				flexible++
			}
		}
		if flexible == 0 {
			break
		}
		rounds++
		flex := remaining / float64(flexible)
		for i, c := range caps {
			if math.Abs(c) <= Epsilon {
				continue
			}
			var change float64
			if delta > 0 {
				change = math.Min(c, flex)
			} else {
				change = math.Max(c, flex)
			}
			sizes[i] += change
			caps[i] -= change
			remaining -= change
		}
	}
	return remaining, rounds
}

// Flex lays children out in a line along Axis with Spacing between them,
// sharing any slack or deficit through Distribute.
type Flex struct {
	Axis    graphics.Axis
	Spacing float64
}

// Measure returns the size of a line of children: the main extent is the sum
// of the children's plus spacing, the cross extent is the largest child's.
func (f Flex) Measure(sizes []graphics.Size) graphics.Size {
	var main, cross float64
	if n := len(sizes); n > 1 {
		main = f.Spacing * float64(n-1)
	}
	for _, s := range sizes {
		main += s.Along(f.Axis)
		cross = math.Max(cross, s.Along(f.Axis.Cross()))
	}
	return graphics.Size{}.With(f.Axis, main).With(f.Axis.Cross(), cross)
}

// Size computes the container size under c. A fixed main-axis constraint
// triggers flexible allocation; any other kind is forwarded to every child.
func (f Flex) Size(c Constraints, children []Sizer) graphics.Size {
	main := c.Along(f.Axis)
	if !main.IsFixed() {
		sizes := make([]graphics.Size, len(children))
		for i, child := range children {
			sizes[i] = child.Size(c)
		}
		return f.Measure(sizes)
	}
	return f.Measure(f.allocate(c, main.Value, children))
}

// Layout positions children inside a container of the given size.
func (f Flex) Layout(size graphics.Size, children []Sizer) []Layout {
	sizes := f.allocate(FixedSize(size), size.Along(f.Axis), children)
	layouts := make([]Layout, len(children))
	var offset float64
	for i, s := range sizes {
		layouts[i] = Layout{Position: graphics.Offset{}.With(f.Axis, offset), Size: s}
		offset += s.Along(f.Axis) + f.Spacing
	}
	return layouts
}

func (f Flex) allocate(c Constraints, extent float64, children []Sizer) []graphics.Size {
	probe := c.With(f.Axis, Ideal)
	sizes := make([]graphics.Size, len(children))
	for i, child := range children {
		sizes[i] = child.Size(probe)
	}
	available := extent - f.Measure(sizes).Along(f.Axis)
	if math.Abs(available) <= Epsilon {
		return sizes
	}
	if available < 0 {
		probe = c.With(f.Axis, Min)
	} else {
		probe = c.With(f.Axis, Max)
	}
	mains := make([]float64, len(children))
	capacities := make([]float64, len(children))
	for i, child := range children {
		mains[i] = sizes[i].Along(f.Axis)
		capacities[i] = child.Size(probe).Along(f.Axis) - mains[i]
	}
	Distribute(mains, capacities, available)
	for i, child := range children {
		sizes[i] = child.Size(c.With(f.Axis, Fixed(mains[i])))
	}
	return sizes
}
