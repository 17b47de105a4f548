package color

import (
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"
)

// White is the default background.
var White = imgcolor.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

var named = map[string]imgcolor.RGBA{
	"white": White,
	"black": {A: 0xff},
	"gray":  {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"grey":  {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"red":   {R: 0xff, A: 0xff},
	"green": {G: 0x80, A: 0xff},
	"blue":  {B: 0xff, A: 0xff},
}

// ParseBackground converts a colour name or a hex triplet ("#rgb",
// "#rrggbb", with or without the leading '#') to an opaque colour.
func ParseBackground(s string) (imgcolor.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return imgcolor.RGBA{}, fmt.Errorf("unknown background colour: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return imgcolor.RGBA{}, fmt.Errorf("unknown background colour: %q", s)
	}
	return imgcolor.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// BackgroundName returns the name of c if it has one, its hex triplet
// otherwise.
func BackgroundName(c imgcolor.RGBA) string {
	for _, name := range []string{"white", "black", "gray", "red", "green", "blue"} {
		if named[name] == c {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
