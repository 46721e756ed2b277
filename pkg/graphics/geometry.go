// Package graphics defines the geometry, paint, and painter types shared by
// the layout engine, views, and painter backends.
package graphics

import "math"

// Axis selects a layout direction.
type Axis int

const (
	// Horizontal is the x axis.
	Horizontal Axis = iota
	// Vertical is the y axis.
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Offset is a 2D point or displacement.
type Offset struct {
	X float64
	Y float64
}

// Add returns o translated by other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o translated by the negation of other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Along returns the component on axis.
func (o Offset) Along(axis Axis) float64 {
	if axis == Horizontal {
		return o.X
	}
	return o.Y
}

// With returns o with the component on axis replaced by v.
func (o Offset) With(axis Axis, v float64) Offset {
	if axis == Horizontal {
		o.X = v
	} else {
		o.Y = v
	}
	return o
}

// Size is a 2D extent. Components are never negative in laid-out trees.
type Size struct {
	Width  float64
	Height float64
}

// Along returns the extent on axis.
func (s Size) Along(axis Axis) float64 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// With returns s with the extent on axis replaced by v.
func (s Size) With(axis Axis, v float64) Size {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Add returns the component-wise sum.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the component-wise difference, floored at zero.
func (s Size) Sub(other Size) Size {
	return Size{Width: math.Max(0, s.Width-other.Width), Height: math.Max(0, s.Height-other.Height)}
}

// Min returns the component-wise minimum.
func (s Size) Min(other Size) Size {
	return Size{Width: math.Min(s.Width, other.Width), Height: math.Min(s.Height, other.Height)}
}

// Max returns the component-wise maximum.
func (s Size) Max(other Size) Size {
	return Size{Width: math.Max(s.Width, other.Width), Height: math.Max(s.Height, other.Height)}
}

// Clamp limits s to lo..hi per component.
func (s Size) Clamp(lo, hi Size) Size {
	return s.Max(lo).Min(hi)
}

// IsFinite reports whether both components are finite.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0) && !math.IsNaN(s.Width) && !math.IsNaN(s.Height)
}

// Rect is an axis-aligned rectangle defined by its origin and size.
type Rect struct {
	Position Offset
	Size     Size
}

// Contains reports whether p lies inside r. The rectangle is half-open:
// the left and top edges are inside, the right and bottom edges are not.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Position.X && p.Y >= r.Position.Y &&
		p.X < r.Position.X+r.Size.Width && p.Y < r.Position.Y+r.Size.Height
}

// Translate returns r moved by d.
func (r Rect) Translate(d Offset) Rect {
	r.Position = r.Position.Add(d)
	return r
}
