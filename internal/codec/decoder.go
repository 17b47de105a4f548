package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func init() {
	image.RegisterFormat(string(ICO), "\x00\x00\x01\x00", ico.Decode, ico.DecodeConfig)
}

// Decoded holds the result of decoding an image file.
type Decoded struct {
	Image  image.Image
	Format Format
	Width  int
	Height int
}

// Decode decodes an image from memory. The container format is sniffed
// from the data, not taken from any file name.
func Decode(data []byte) (*Decoded, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}

	m, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	b := m.Bounds()
	return &Decoded{
		Image:  m,
		Format: Format(name),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
