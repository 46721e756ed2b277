package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// Fill returns a fill paint of color c.
func Fill(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

// Stroke returns a stroke paint of color c and width w.
func Stroke(c Color, w float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: w}
}

// TextStyle describes how a label should be measured and drawn.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// TextLine is a single measured line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout holds measured text produced by the text package.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	LineHeight float64
	Lines      []TextLine
}
