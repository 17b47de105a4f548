package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 85

// EncoderOptions controls encoding.
type EncoderOptions struct {
	Quality int // JPEG quality 1-100, default 85; ignored by other formats
}

// Encode encodes m in the given format and returns the file contents.
// The PNG encoder writes opaque images as 3-channel truecolour.
func Encode(m image.Image, f Format, opts EncoderOptions) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch f {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		err = enc.Encode(&buf, m)
	case JPEG:
		err = jpeg.Encode(&buf, m, &jpeg.Options{Quality: clampQuality(opts.Quality)})
	case GIF:
		err = gif.Encode(&buf, m, &gif.Options{NumColors: 256})
	case BMP:
		err = bmp.Encode(&buf, m)
	case TIFF:
		err = tiff.Encode(&buf, m, &tiff.Options{Compression: tiff.Deflate})
	case ICO:
		err = ico.Encode(&buf, m)
	default:
		return nil, fmt.Errorf("no encoder for format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s encode: %w", f, err)
	}
	return buf.Bytes(), nil
}

func clampQuality(q int) int {
	if q == 0 {
		return DefaultQuality
	}
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}
