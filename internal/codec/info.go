package codec

import (
	"fmt"
	"image"
	"image/color"
)

// colorModelName returns a short name for the colour models the
// registered decoders produce.
func colorModelName(m image.Image) string {
	if _, ok := m.(*image.Paletted); ok {
		return "Paletted"
	}
	switch m.ColorModel() {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Grayscale"
	case color.Gray16Model:
		return "Grayscale16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "YCbCrA"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "Alpha"
	default:
		return fmt.Sprintf("%T", m.ColorModel())
	}
}

// ImageInfo describes a decoded image file.
type ImageInfo struct {
	Width      int
	Height     int
	Format     Format
	ColorModel string
	// Translucent is true when at least one pixel is not fully opaque.
	Translucent bool
}

// GetInfo decodes data and reports its dimensions, container format and
// whether any pixel carries transparency.
func GetInfo(data []byte) (*ImageInfo, error) {
	dec, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &ImageInfo{
		Width:       dec.Width,
		Height:      dec.Height,
		Format:      dec.Format,
		ColorModel:  colorModelName(dec.Image),
		Translucent: !IsOpaque(dec.Image),
	}, nil
}

// IsOpaque reports whether every pixel of m has full alpha.
func IsOpaque(m image.Image) bool {
	if o, ok := m.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
