package colour

import (
	"fmt"
	"strings"
)

// Scheme identifies a colour harmony rule. The set is closed: every tag
// maps to one pure derivation function over a base colour.
type Scheme string

const (
	SchemeLuminosityContrast      Scheme = "luminosity-contrast"
	SchemeMonochromaticAchromatic Scheme = "monochromatic-achromatic"
	SchemeMonochromatic           Scheme = "monochromatic"
	SchemeAnalogous               Scheme = "analogous"
	SchemeComplementary           Scheme = "complementary"
	SchemeTriadic                 Scheme = "triadic"
	SchemeSplitComplementary      Scheme = "split-complementary"
	SchemeTetradic                Scheme = "tetradic"
)

// Schemes returns all harmony schemes in a fixed display order.
func Schemes() []Scheme {
	return []Scheme{
		SchemeLuminosityContrast,
		SchemeMonochromaticAchromatic,
		SchemeMonochromatic,
		SchemeAnalogous,
		SchemeComplementary,
		SchemeTriadic,
		SchemeSplitComplementary,
		SchemeTetradic,
	}
}

// ParseScheme resolves a scheme tag case-insensitively, accepting both the
// canonical kebab-case form and separator-free variants
// ("SplitComplementary", "split_complementary").
func ParseScheme(s string) (Scheme, error) {
	normalized := strings.ToLower(s)
	normalized = strings.ReplaceAll(normalized, "_", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	for _, scheme := range Schemes() {
		if strings.ReplaceAll(string(scheme), "-", "") == normalized {
			return scheme, nil
		}
	}
	return "", fmt.Errorf("unknown scheme %q (valid: %s)", s, schemeList())
}

func schemeList() string {
	schemes := Schemes()
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Entry is one generated palette member: a canonical uppercase hex value
// and a human-readable label.
type Entry struct {
	Hex   string `json:"hex"`
	Label string `json:"label"`
}

// Shade triplet deltas, shared by every hue-cluster scheme. Changing
// them changes the visual output.
const (
	tripletSatDelta   = 10
	tripletLightDelta = 20
	tripletLightCap   = 90
	tripletLightFloor = 10
)

// luminosityLadder is the fixed lightness ladder for the
// luminosity-contrast scheme, in generation order (darkest first).
var luminosityLadder = []int{10, 25, 40, 55, 70, 85, 95}

// Generate derives an ordered palette from baseHex according to scheme.
// The result is deduplicated by hex value, keeping the first occurrence's
// label. It is always non-empty for a valid base colour and nil when
// baseHex fails ValidHex or scheme is unknown, signalling to the caller
// that there is nothing to render.
func Generate(baseHex string, scheme Scheme) []Entry {
	base, ok := CanonicalHex(baseHex)
	if !ok {
		return nil
	}
	hsl := HexToHSL(base)

	var entries []Entry
	switch scheme {
	case SchemeLuminosityContrast:
		entries = generateLuminosityContrast(hsl)
	case SchemeMonochromaticAchromatic:
		entries = generateAchromatic(base)
	case SchemeMonochromatic:
		entries = generateMonochromatic(base, hsl)
	case SchemeAnalogous:
		entries = generateHueClusters(base, hsl, "Analogous", []int{30, -30})
	case SchemeComplementary:
		entries = generateHueClusters(base, hsl, "Complementary", []int{180, 195, 165})
	case SchemeTriadic:
		entries = generateHueClusters(base, hsl, "Triadic", []int{120, 240})
	case SchemeSplitComplementary:
		entries = generateHueClusters(base, hsl, "Split", []int{210, 150})
	case SchemeTetradic:
		entries = generateHueClusters(base, hsl, "Tetradic", []int{90, 180, 270})
	default:
		return nil
	}

	return dedupe(entries)
}

// generateLuminosityContrast emits the fixed lightness ladder at the base
// hue and saturation, then reverses it so the sequence runs light to dark.
// The literal base colour is never injected as its own step.
func generateLuminosityContrast(base HSL) []Entry {
	entries := make([]Entry, 0, len(luminosityLadder))
	for _, l := range luminosityLadder {
		entries = append(entries, Entry{Hex: HSLToHex(base.H, base.S, l)})
	}

	// Reverse in place, then label with a designer-familiar shade scale
	// (100 = lightest).
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	for i := range entries {
		entries[i].Label = fmt.Sprintf("Shade %d00", i+1)
	}
	return entries
}

// generateAchromatic emits the fixed monochromatic-achromatic sequence:
// base colour plus white, two greys and black.
func generateAchromatic(base string) []Entry {
	return []Entry{
		{Hex: base, Label: "Base"},
		{Hex: "#FFFFFF", Label: "White"},
		{Hex: "#E5E7EB", Label: "Light Grey"},
		{Hex: "#4B5563", Label: "Dark Grey"},
		{Hex: "#000000", Label: "Black"},
	}
}

// generateMonochromatic emits the base colour plus two lighter and two
// darker variants at the same hue. The deltas are asymmetric on purpose:
// the caps keep the light variants from washing out to white and the
// floors keep the dark ones from collapsing to black.
func generateMonochromatic(base string, hsl HSL) []Entry {
	return []Entry{
		{Hex: base, Label: "Base"},
		{Hex: HSLToHex(hsl.H, clamp(hsl.S+15, 0, 100), clamp(hsl.L+30, 0, 95)), Label: "Light 1"},
		{Hex: HSLToHex(hsl.H, clamp(hsl.S+5, 0, 100), clamp(hsl.L+15, 0, 80)), Label: "Light 2"},
		{Hex: HSLToHex(hsl.H, clamp(hsl.S-15, 0, 100), clamp(hsl.L-30, 5, 100)), Label: "Dark 1"},
		{Hex: HSLToHex(hsl.H, clamp(hsl.S-5, 0, 100), clamp(hsl.L-15, 20, 100)), Label: "Dark 2"},
	}
}

// generateHueClusters emits the base colour followed by one shade triplet
// per hue offset: principal, lighter and darker variants at each target
// hue on the wheel.
func generateHueClusters(base string, hsl HSL, labelPrefix string, offsets []int) []Entry {
	entries := make([]Entry, 0, 1+3*len(offsets))
	entries = append(entries, Entry{Hex: base, Label: "Base"})
	for i, offset := range offsets {
		h := NormalizeHue(hsl.H + offset)
		entries = append(entries,
			Entry{
				Hex:   HSLToHex(h, hsl.S, hsl.L),
				Label: fmt.Sprintf("%s %d", labelPrefix, i+1),
			},
			Entry{
				Hex:   HSLToHex(h, clamp(hsl.S+tripletSatDelta, 0, 100), clamp(hsl.L+tripletLightDelta, 0, tripletLightCap)),
				Label: fmt.Sprintf("%s %d Light", labelPrefix, i+1),
			},
			Entry{
				Hex:   HSLToHex(h, clamp(hsl.S-tripletSatDelta, 0, 100), clamp(hsl.L-tripletLightDelta, tripletLightFloor, 100)),
				Label: fmt.Sprintf("%s %d Dark", labelPrefix, i+1),
			},
		)
	}
	return entries
}

// dedupe drops entries whose hex value was already emitted, keeping the
// first occurrence's label.
func dedupe(entries []Entry) []Entry {
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if seen[e.Hex] {
			continue
		}
		seen[e.Hex] = true
		out = append(out, e)
	}
	return out
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
