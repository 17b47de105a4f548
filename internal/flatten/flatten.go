// Package flatten composites images onto a solid background and drops
// their alpha channel.
package flatten

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/wucyAAA/iconopaque/internal/ir"
)

// Flatten composites src over a canvas filled with bg, using the alpha of
// each source pixel as its blend weight, and returns the result without
// alpha. The output always has the dimensions of src. bg is treated as
// fully opaque; nil means white.
func Flatten(src image.Image, bg color.Color) *ir.RGBImage {
	b := src.Bounds()
	canvas := NewCanvas(b.Dx(), b.Dy(), bg)
	Composite(canvas, WithAlpha(src))
	return StripAlpha(canvas)
}

// NewCanvas allocates a width×height raster with every pixel set to bg at
// full opacity.
func NewCanvas(width, height int, bg color.Color) *image.RGBA {
	if bg == nil {
		bg = color.White
	}
	c := color.NRGBAModel.Convert(bg).(color.NRGBA)
	c.A = 0xff

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return canvas
}

// WithAlpha returns src as an NRGBA raster anchored at the origin.
// Sources without an alpha channel come out fully opaque.
func WithAlpha(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if m, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return m
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Composite blends src onto canvas with the Porter-Duff over operator.
// The source alpha already weights each pixel, so no separate mask is
// passed: a mask equal to src would apply the alpha twice.
func Composite(canvas *image.RGBA, src *image.NRGBA) {
	draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Over)
}

// StripAlpha copies the colour channels of an opaque canvas into a
// 3-channel image.
func StripAlpha(canvas *image.RGBA) *ir.RGBImage {
	b := canvas.Bounds()
	out := ir.NewRGBImage(b.Dx(), b.Dy())
	for y := 0; y < out.Height; y++ {
		row := canvas.Pix[canvas.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := out.Pix[out.PixOffset(0, y):]
		for x := 0; x < out.Width; x++ {
			dst[x*3+0] = row[x*4+0]
			dst[x*3+1] = row[x*4+1]
			dst[x*3+2] = row[x*4+2]
		}
	}
	return out
}
