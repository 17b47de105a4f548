package ir

import (
	"image"
	"image/color"
)

// RGBImage is the opaque raster produced by flattening and handed to the
// encoders. Pixels are stored as interleaved R,G,B bytes (3 bytes per
// pixel, row-major order). There is no alpha channel: every pixel reads
// back with A = 0xff.
type RGBImage struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height * 3
}

// NewRGBImage allocates a black width×height image.
func NewRGBImage(width, height int) *RGBImage {
	if width < 0 || height < 0 {
		panic("ir: negative image size")
	}
	return &RGBImage{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// ColorModel reports RGBA so that encoders pick their 8-bit fast paths;
// Opaque tells them to leave the alpha channel out.
func (m *RGBImage) ColorModel() color.Model { return color.RGBAModel }

func (m *RGBImage) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

func (m *RGBImage) At(x, y int) color.Color { return m.RGBAAt(x, y) }

// RGBAAt returns the pixel at (x, y). Points outside the image are
// reported as the zero colour, matching image.RGBA.
func (m *RGBImage) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.RGBA{}
	}
	i := m.PixOffset(x, y)
	return color.RGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: 0xff}
}

// Set stores c with its alpha discarded. Premultiplied input is
// un-premultiplied first so that the stored colour is what c would look
// like at full opacity.
func (m *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := m.PixOffset(x, y)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = n.R, n.G, n.B
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (m *RGBImage) PixOffset(x, y int) int {
	return (y*m.Width + x) * 3
}

// Opaque always reports true.
func (m *RGBImage) Opaque() bool { return true }
