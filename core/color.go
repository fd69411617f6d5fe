package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color kept independent of the terminal library
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{}
	RGBWhite = RGB{R: 0xff, G: 0xff, B: 0xff}
)

// Blend mixes src over c with weight alpha in [0, 1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	switch {
	case alpha <= 0:
		return c
	case alpha >= 1:
		return src
	}
	mix := func(dst, top uint8) uint8 {
		return uint8(float64(dst) + (float64(top)-float64(dst))*alpha)
	}
	return RGB{R: mix(c.R, src.R), G: mix(c.G, src.G), B: mix(c.B, src.B)}
}

// ParseHexRGB parses "#rrggbb" or "rrggbb"
func ParseHexRGB(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats the color as "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
