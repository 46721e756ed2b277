// Package text measures and lays out single-style text for labels.
//
// Measurement uses a bitmap face from golang.org/x/image scaled to the
// requested font size, so results are deterministic across platforms and
// need no font files.
package text

import (
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/flux-ui/flux/pkg/graphics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the initial fallback size.
const DefaultFontSize = 16

var fallbackSize atomic.Uint64

func init() {
	fallbackSize.Store(math.Float64bits(DefaultFontSize))
}

// SetFallbackSize changes the size used when a style leaves FontSize unset
// and the size new labels start with. A non-positive size restores
// DefaultFontSize.
func SetFallbackSize(size float64) {
	if size <= 0 || math.IsInf(size, 0) || math.IsNaN(size) {
		size = DefaultFontSize
	}
	fallbackSize.Store(math.Float64bits(size))
}

// FallbackSize returns the size used when a style leaves FontSize unset.
func FallbackSize() float64 {
	return math.Float64frombits(fallbackSize.Load())
}

// Measurer reports the size text occupies at a font size.
type Measurer interface {
	Measure(text string, size float64) graphics.Size
}

// Face measures text with a bitmap font face scaled to arbitrary sizes.
// It is safe for concurrent use.
type Face struct {
	mu   sync.Mutex
	face font.Face
	base float64
}

// NewFace wraps face, whose glyphs are designed for a font size of base.
func NewFace(face font.Face, base float64) *Face {
	return &Face{face: face, base: base}
}

var defaultFace = NewFace(basicfont.Face7x13, 13)

// Default returns the shared face backed by basicfont.Face7x13.
func Default() *Face {
	return defaultFace
}

// Source returns the unscaled face and the size it was designed for. Raster
// backends draw with it and scale the result.
func (f *Face) Source() (font.Face, float64) {
	return f.face, f.base
}

func (f *Face) scale(size float64) float64 {
	if size <= 0 {
		size = FallbackSize()
	}
	return size / f.base
}

// Width returns the advance of s at size.
func (f *Face) Width(s string, size float64) float64 {
	f.mu.Lock()
	adv := font.MeasureString(f.face, s)
	f.mu.Unlock()
	return toFloat(adv) * f.scale(size)
}

// Metrics returns the ascent and line height at size.
func (f *Face) Metrics(size float64) (ascent, lineHeight float64) {
	f.mu.Lock()
	m := f.face.Metrics()
	f.mu.Unlock()
	s := f.scale(size)
	return toFloat(m.Ascent) * s, toFloat(m.Height) * s
}

// Measure returns the unwrapped size of text at size.
func (f *Face) Measure(text string, size float64) graphics.Size {
	return f.Layout(text, graphics.TextStyle{FontSize: size}, 0).Size
}

// Layout measures text in style. A positive maxWidth wraps lines at word
// boundaries; zero or infinity keeps each paragraph on one line.
func (f *Face) Layout(text string, style graphics.TextStyle, maxWidth float64) *graphics.TextLayout {
	if style.FontSize <= 0 {
		style.FontSize = FallbackSize()
	}
	ascent, lineHeight := f.Metrics(style.FontSize)
	measure := func(s string) float64 { return f.Width(s, style.FontSize) }
	lines := layoutLines(text, maxWidth, measure)
	width := 0.0
	for _, line := range lines {
		width = math.Max(width, line.Width)
	}
	return &graphics.TextLayout{
		Text:       text,
		Style:      style,
		Size:       graphics.Size{Width: width, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		LineHeight: lineHeight,
		Lines:      lines,
	}
}

// Layout measures text with the default face.
func Layout(text string, style graphics.TextStyle, maxWidth float64) *graphics.TextLayout {
	return defaultFace.Layout(text, style, maxWidth)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []graphics.TextLine {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]graphics.TextLine, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, graphics.TextLine{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, graphics.TextLine{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, graphics.TextLine{Text: line, Width: measure(line)})
		}
	}
	return lines
}

// wrapParagraph breaks text at the last space that fits in maxWidth. A word
// wider than maxWidth is split between runes.
func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			if measure(text[start:next]) > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		lines = append(lines, strings.TrimRightFunc(text[start:cut], unicode.IsSpace))
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
