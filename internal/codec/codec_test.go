package codec

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wucyAAA/iconopaque/internal/ir"
)

func translucentPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 0x80, A: uint8(x * 255 / w)})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func solidRGB(w, h int) *ir.RGBImage {
	m := ir.NewRGBImage(w, h)
	for i := range m.Pix {
		m.Pix[i] = 0x40
	}
	return m
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"assets/icon_opaque.png", PNG},
		{"ICON.PNG", PNG},
		{"out.jpg", JPEG},
		{"out.jpeg", JPEG},
		{"out.gif", GIF},
		{"out.bmp", BMP},
		{"out.tif", TIFF},
		{"out.tiff", TIFF},
		{"favicon.ico", ICO},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Errorf("FormatFromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	for _, bad := range []string{"noext", "out.webp", "out.svg"} {
		if _, err := FormatFromPath(bad); err == nil {
			t.Errorf("FormatFromPath(%q) succeeded, want error", bad)
		}
	}
}

func TestDecodePNG(t *testing.T) {
	dec, err := Decode(translucentPNG(t, 7, 5))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec.Format != PNG {
		t.Errorf("format = %q, want png", dec.Format)
	}
	if dec.Width != 7 || dec.Height != 5 {
		t.Errorf("unexpected dimensions: %dx%d", dec.Width, dec.Height)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(nil); err == nil {
		t.Error("Decode(nil) succeeded")
	}
	if _, err := Decode([]byte("this is not an image")); err == nil {
		t.Error("Decode(text) succeeded")
	}
}

// The PNG colour type byte sits right after width, height and bit depth
// in the IHDR chunk.
func TestEncodePNGHasNoAlpha(t *testing.T) {
	data, err := Encode(solidRGB(4, 3), PNG, EncoderOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) < 26 || string(data[12:16]) != "IHDR" {
		t.Fatal("output is not a valid PNG")
	}
	if w, h := binary.BigEndian.Uint32(data[16:20]), binary.BigEndian.Uint32(data[20:24]); w != 4 || h != 3 {
		t.Errorf("IHDR dimensions %dx%d, want 4x3", w, h)
	}
	const truecolour = 2
	if data[25] != truecolour {
		t.Errorf("PNG colour type = %d, want %d (RGB)", data[25], truecolour)
	}
}

func TestEncodeDecodeAllFormats(t *testing.T) {
	src := solidRGB(16, 12)
	for _, f := range []Format{PNG, JPEG, GIF, BMP, TIFF, ICO} {
		data, err := Encode(src, f, EncoderOptions{Quality: 90})
		if err != nil {
			t.Errorf("[%s] Encode: %v", f, err)
			continue
		}
		info, err := GetInfo(data)
		if err != nil {
			t.Errorf("[%s] GetInfo: %v", f, err)
			continue
		}
		if info.Width != 16 || info.Height != 12 {
			t.Errorf("[%s] dimensions %dx%d, want 16x12", f, info.Width, info.Height)
		}
		if info.Translucent {
			t.Errorf("[%s] output reports transparency", f)
		}
		t.Logf("[%s] %d bytes, decoded as %s/%s", f, len(data), info.Format, info.ColorModel)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if _, err := Encode(solidRGB(1, 1), WebP, EncoderOptions{}); err == nil {
		t.Error("Encode(webp) succeeded, want error")
	}
}

func TestGetInfoTranslucent(t *testing.T) {
	info, err := GetInfo(translucentPNG(t, 8, 8))
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	want := &ImageInfo{Width: 8, Height: 8, Format: PNG, ColorModel: "NRGBA", Translucent: true}
	if d := cmp.Diff(want, info); d != "" {
		t.Errorf("GetInfo mismatch (-want +got):\n%s", d)
	}
}

func TestClampQuality(t *testing.T) {
	for in, want := range map[int]int{0: DefaultQuality, -3: 1, 1: 1, 50: 50, 100: 100, 250: 100} {
		if got := clampQuality(in); got != want {
			t.Errorf("clampQuality(%d) = %d, want %d", in, got, want)
		}
	}
}
