package colour

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RandomBase picks a random base colour suitable for palette generation.
// Hue is uniform over the wheel while saturation and lightness are kept in
// a band that produces workable harmonies: fully desaturated or extreme
// lightness bases collapse most schemes into near-duplicates.
func RandomBase(rng *rand.Rand) string {
	h := rng.Float64() * 360.0
	s := 0.5 + rng.Float64()*0.5  // [0.5, 1.0)
	l := 0.35 + rng.Float64()*0.3 // [0.35, 0.65)

	c := colorful.Hsl(h, s, l).Clamped()
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}.Hex()
}

// RandomScheme picks a uniformly random harmony scheme.
func RandomScheme(rng *rand.Rand) Scheme {
	schemes := Schemes()
	return schemes[rng.IntN(len(schemes))]
}
