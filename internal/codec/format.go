package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an image container.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	WebP Format = "webp"
	ICO  Format = "ico"
)

// writable maps destination extensions to the format written for them.
// WebP is decode-only.
var writable = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".ico":  ICO,
}

// FormatFromPath returns the output format implied by the extension of
// path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := writable[ext]; ok {
		return f, nil
	}
	if ext == "" {
		return "", fmt.Errorf("no file extension in %q", path)
	}
	return "", fmt.Errorf("unsupported output format %q", ext)
}
