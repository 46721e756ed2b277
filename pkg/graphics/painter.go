package graphics

// Painter is the drawing surface handed to views. Positions are relative to
// the current translation. Translations nest and are always restored when
// the callback returns.
type Painter interface {
	// Translate runs fn with the origin moved by offset.
	Translate(offset Offset, fn func(Painter))
	// DrawRect draws an axis-aligned rectangle.
	DrawRect(pos Offset, size Size, paint Paint)
	// DrawRoundedRect draws a rectangle with rounded corners. Smoothing in
	// 0..1 blends circular corners toward a squircle; backends may ignore it.
	DrawRoundedRect(pos Offset, size Size, radius, smoothing float64, paint Paint)
	// DrawText draws a measured text layout with its top-left corner at pos,
	// clipped or aligned within width.
	DrawText(text *TextLayout, pos Offset, width float64)
}

// TranslateStack tracks the accumulated origin of nested Translate calls.
// Backends embed it to implement Translate.
type TranslateStack struct {
	origin Offset
}

// Origin returns the accumulated translation.
func (s *TranslateStack) Origin() Offset {
	return s.origin
}

// Push applies offset, runs fn, and restores the previous origin even if fn
// panics.
func (s *TranslateStack) Push(offset Offset, fn func()) {
	saved := s.origin
	s.origin = s.origin.Add(offset)
	defer func() { s.origin = saved }()
	fn()
}
