// Package waveform generates the decorative bar row shown for audio-only media.
// Bar colors are sampled from a cyclic gradient blended in linear light with a
// brightness correction, and scroll one position per animation tick.
package waveform

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// Black is returned wherever a color cannot be computed.
var Black = RGB{}

// ParseHex parses "29A6FF" or "#29A6FF".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Black, fmt.Errorf("parse color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#rrggbb", the form lipgloss accepts.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) String() string {
	return c.Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromSRGB decodes an 8-bit sRGB channel into linear light in [0,1].
func FromSRGB(v uint8) float64 {
	r, _, _ := colorful.Color{R: float64(v) / 255}.LinearRgb()
	return r
}

// ToSRGB encodes a linear channel back to 8-bit sRGB. Out-of-range input is clamped.
func ToSRGB(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}

	r, _, _ := colorful.LinearRgb(v, 0, 0).Clamped().RGB255()
	return r
}

type linear struct {
	r, g, b float64
}

func (c RGB) linear() linear {
	return linear{r: FromSRGB(c.R), g: FromSRGB(c.G), b: FromSRGB(c.B)}
}

func (l linear) sum() float64 {
	return l.r + l.g + l.b
}
