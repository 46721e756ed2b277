package layout

import "github.com/flux-ui/flux/pkg/graphics"

// EdgeInsets represents padding on four sides.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll creates uniform insets on all sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Horizontal returns the sum of left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Size returns the total space the insets take on each axis.
func (e EdgeInsets) Size() graphics.Size {
	return graphics.Size{Width: e.Horizontal(), Height: e.Vertical()}
}

// TopLeft returns the offset of the inset content.
func (e EdgeInsets) TopLeft() graphics.Offset {
	return graphics.Offset{X: e.Left, Y: e.Top}
}
