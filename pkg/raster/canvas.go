// Package raster paints display lists into in-memory RGBA images.
//
// Shapes are scan-converted with golang.org/x/image/vector. Text is drawn
// with the bitmap face from the text package at its design size and scaled
// to the requested font size.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/text"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Canvas is a [graphics.Painter] backed by an *image.RGBA.
type Canvas struct {
	graphics.TranslateStack
	img  *image.RGBA
	face *text.Face
}

// New creates a canvas of size filled with background.
func New(size graphics.Size, background graphics.Color) *Canvas {
	w := int(math.Ceil(math.Max(size.Width, 0)))
	h := int(math.Ceil(math.Max(size.Height, 0)))
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), face: text.Default()}
	c.Clear(background)
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear replaces every pixel with color.
func (c *Canvas) Clear(color graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

// Replay paints list onto the canvas.
func (c *Canvas) Replay(list *graphics.DisplayList) {
	if list != nil {
		list.Paint(c)
	}
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) Translate(offset graphics.Offset, fn func(graphics.Painter)) {
	c.Push(offset, func() { fn(c) })
}

func (c *Canvas) DrawRect(pos graphics.Offset, size graphics.Size, paint graphics.Paint) {
	c.DrawRoundedRect(pos, size, 0, 0, paint)
}

// DrawRoundedRect ignores smoothing. Strokes are drawn inside the rectangle.
func (c *Canvas) DrawRoundedRect(pos graphics.Offset, size graphics.Size, radius, _ float64, paint graphics.Paint) {
	if size.Width <= 0 || size.Height <= 0 || paint.Color.Alpha() == 0 {
		return
	}
	origin := c.Origin().Add(pos)
	r := c.rasterizer()
	outer := box{x: origin.X, y: origin.Y, w: size.Width, h: size.Height, r: radius}
	outer.path(r, false)
	if paint.Style == graphics.PaintStyleStroke {
		sw := paint.StrokeWidth
		if sw <= 0 {
			sw = 1
		}
		inner := box{x: outer.x + sw, y: outer.y + sw, w: outer.w - 2*sw, h: outer.h - 2*sw, r: math.Max(radius-sw, 0)}
		if inner.w > 0 && inner.h > 0 {
			inner.path(r, true)
		}
	}
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(paint.Color.NRGBA()), image.Point{})
}

// DrawText draws each line of layout. A positive width clips lines to it.
func (c *Canvas) DrawText(layout *graphics.TextLayout, pos graphics.Offset, width float64) {
	if layout == nil || layout.Style.Color.Alpha() == 0 {
		return
	}
	origin := c.Origin().Add(pos)
	clip := c.img.Bounds()
	if width > 0 && !math.IsInf(width, 1) {
		clip = clip.Intersect(image.Rect(
			int(math.Floor(origin.X)), clip.Min.Y,
			int(math.Ceil(origin.X+width)), clip.Max.Y,
		))
	}
	dst, ok := c.img.SubImage(clip).(*image.RGBA)
	if !ok || dst.Bounds().Empty() {
		return
	}
	src, base := c.face.Source()
	size := layout.Style.FontSize
	if size <= 0 {
		size = text.FallbackSize()
	}
	scale := size / base
	for i, line := range layout.Lines {
		if line.Text == "" {
			continue
		}
		glyphs := renderLine(src, line.Text, layout.Style.Color)
		gb := glyphs.Bounds()
		x := origin.X
		y := origin.Y + float64(i)*layout.LineHeight
		target := image.Rect(
			int(math.Round(x)), int(math.Round(y)),
			int(math.Round(x+float64(gb.Dx())*scale)), int(math.Round(y+float64(gb.Dy())*scale)),
		)
		xdraw.ApproxBiLinear.Scale(dst, target, glyphs, gb, xdraw.Over, nil)
	}
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// renderLine draws s at the face's design size onto a transparent image
// exactly one line tall.
func renderLine(face font.Face, s string, color graphics.Color) *image.RGBA {
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	h := m.Height.Ceil()
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(s)
	return img
}

type box struct {
	x, y, w, h, r float64
}

// path appends the outline of b to z. Reversed outlines cut holes.
func (b box) path(z *vector.Rasterizer, reverse bool) {
	r := math.Min(b.r, math.Min(b.w, b.h)/2)
	if r < 0 {
		r = 0
	}
	x0, y0, x1, y1 := b.x, b.y, b.x+b.w, b.y+b.h
	k := r * (1 - kappa)
	pt := func(x, y float64) (float32, float32) { return float32(x), float32(y) }

	if !reverse {
		z.MoveTo(pt(x0+r, y0))
		z.LineTo(pt(x1-r, y0))
		if r > 0 {
			cubeTo(z, x1-k, y0, x1, y0+k, x1, y0+r)
		}
		z.LineTo(pt(x1, y1-r))
		if r > 0 {
			cubeTo(z, x1, y1-k, x1-k, y1, x1-r, y1)
		}
		z.LineTo(pt(x0+r, y1))
		if r > 0 {
			cubeTo(z, x0+k, y1, x0, y1-k, x0, y1-r)
		}
		z.LineTo(pt(x0, y0+r))
		if r > 0 {
			cubeTo(z, x0, y0+k, x0+k, y0, x0+r, y0)
		}
		z.ClosePath()
		return
	}
	z.MoveTo(pt(x0+r, y0))
	if r > 0 {
		cubeTo(z, x0+k, y0, x0, y0+k, x0, y0+r)
	}
	z.LineTo(pt(x0, y1-r))
	if r > 0 {
		cubeTo(z, x0, y1-k, x0+k, y1, x0+r, y1)
	}
	z.LineTo(pt(x1-r, y1))
	if r > 0 {
		cubeTo(z, x1-k, y1, x1, y1-k, x1, y1-r)
	}
	z.LineTo(pt(x1, y0+r))
	if r > 0 {
		cubeTo(z, x1, y0+k, x1-k, y0, x1-r, y0)
	}
	z.ClosePath()
}

func cubeTo(z *vector.Rasterizer, bx, by, cx, cy, dx, dy float64) {
	z.CubeTo(float32(bx), float32(by), float32(cx), float32(cy), float32(dx), float32(dy))
}
