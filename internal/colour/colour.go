// Package colour implements the colour engine behind huegen: hex/HSL
// conversion, harmony scheme generation and WCAG accessibility metrics.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// HSL is the canonical internal colour representation.
// H is in [0,360), S and L are percentages in [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// hexPattern matches "#RGB" and "#RRGGBB", case-insensitive.
var hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ValidHex reports whether hex is a well-formed "#RGB" or "#RRGGBB" string.
func ValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

// CanonicalHex expands 3-digit shorthand by nibble duplication and
// uppercases the result. The second return value is false when hex is not
// well-formed.
func CanonicalHex(hex string) (string, bool) {
	if !ValidHex(hex) {
		return "", false
	}
	if len(hex) == 4 {
		// "#ABC" -> "#AABBCC".
		hex = fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
	}
	return strings.ToUpper(hex), true
}

// ParseHex parses a well-formed hex string into RGB.
// The second return value is false for malformed input.
func ParseHex(hex string) (RGB, bool) {
	canonical, ok := CanonicalHex(hex)
	if !ok {
		return RGB{}, false
	}
	r, _ := strconv.ParseUint(canonical[1:3], 16, 8)
	g, _ := strconv.ParseUint(canonical[3:5], 16, 8)
	b, _ := strconv.ParseUint(canonical[5:7], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// HexToHSL converts a hex colour string to HSL with each component rounded
// to the nearest integer. The function is total: malformed input (wrong
// length, non-hex characters) yields the documented fallback HSL{0,0,0}
// rather than an error. Callers that need to distinguish bad input should
// validate with ValidHex first.
//
// Achromatic colours (r==g==b) fix hue and saturation to 0.
func HexToHSL(hex string) HSL {
	rgb, ok := ParseHex(hex)
	if !ok {
		return HSL{}
	}
	h, s, l := rgbToHSL(rgb)
	return HSL{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToHex converts HSL components to an uppercase "#RRGGBB" string.
// h must already be normalized into [0,360) by the caller (see
// NormalizeHue); s and l are percentages in [0,100].
func HSLToHex(h, s, l int) string {
	return hslToRGB(h, s, l).Hex()
}

// NormalizeHue reduces an arbitrary hue to [0,360), mapping negative
// values onto the wheel (NormalizeHue(-30) == 330).
func NormalizeHue(h int) int {
	return ((h % 360) + 360) % 360
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic: hue is undefined, fixed to 0.
	if delta == 0 {
		s = 0
		h = 0
		return
	}

	// Saturation.
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return
}

// hslToRGB converts integer HSL components to RGB using the standard
// six-sector piecewise formula, rounding each channel to the nearest
// integer.
func hslToRGB(h, s, l int) RGB {
	sf := float64(s) / 100.0
	lf := float64(l) / 100.0

	if s == 0 {
		// Grey short-circuit: avoids the hue sector branch entirely.
		v := uint8(math.Round(lf * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if lf < 0.5 {
		q = lf * (1 + sf)
	} else {
		q = lf + sf - lf*sf
	}
	p := 2*lf - q

	hf := float64(h)
	r := hueToRGB(p, q, hf+120)
	g := hueToRGB(p, q, hf)
	b := hueToRGB(p, q, hf-120)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion, working in degrees.
func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
