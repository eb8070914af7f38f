// Package palette defines the named palette record built on top of the
// colour engine: an ordered colour sequence with designated roles, the
// JSON shape used for import/export, and terminal rendering helpers.
package palette

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmylchreest/huegen/internal/colour"
)

// Palette is a named, ordered colour sequence with five designated roles.
// Roles may alias the same colour. Palettes are replaced wholesale rather
// than mutated in place.
type Palette struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Colors     []string  `json:"colors"`
	Primary    string    `json:"primary"`
	Secondary  string    `json:"secondary"`
	Accent     string    `json:"accent"`
	Background string    `json:"background"`
	Text       string    `json:"text"`
	ExportedAt time.Time `json:"exportedAt"`
}

// FromEntries builds a named Palette from generated entries, deriving the
// role bindings:
//   - primary: the first entry (the Base colour where the scheme emits one)
//   - secondary: the second entry
//   - accent: the most saturated member that is not the primary
//   - background: the lightest member
//   - text: black or white, whichever reads against the background
//
// Returns nil for an empty entry sequence, mirroring the generator's
// "cannot render" signal.
func FromEntries(name string, entries []colour.Entry) *Palette {
	if len(entries) == 0 {
		return nil
	}

	p := &Palette{
		Name:   name,
		Colors: make([]string, len(entries)),
	}
	for i, e := range entries {
		p.Colors[i] = e.Hex
	}

	p.Primary = p.Colors[0]
	p.Secondary = p.Primary
	if len(p.Colors) > 1 {
		p.Secondary = p.Colors[1]
	}

	p.Accent = mostSaturated(p.Colors, p.Primary)
	p.Background = lightest(p.Colors)
	p.Text = colour.ReadableTextColor(p.Background)
	return p
}

// mostSaturated picks the member with the highest saturation, skipping the
// primary so the accent differs from it whenever the palette allows.
func mostSaturated(colors []string, primary string) string {
	best := primary
	bestSat := -1
	for _, hex := range colors {
		if hex == primary && len(colors) > 1 {
			continue
		}
		if s := colour.HexToHSL(hex).S; s > bestSat {
			bestSat = s
			best = hex
		}
	}
	return best
}

// lightest picks the member with the highest lightness.
func lightest(colors []string) string {
	best := colors[0]
	bestLight := -1
	for _, hex := range colors {
		if l := colour.HexToHSL(hex).L; l > bestLight {
			bestLight = l
			best = hex
		}
	}
	return best
}

// Validate checks that every member and role binding is a well-formed hex
// colour and that each role references a palette member.
func (p *Palette) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("palette has no name")
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("palette %q has no colours", p.Name)
	}
	members := make(map[string]bool, len(p.Colors))
	for i, hex := range p.Colors {
		if !colour.ValidHex(hex) {
			return fmt.Errorf("palette %q: colour %d (%q) is not a valid hex colour", p.Name, i, hex)
		}
		canonical, _ := colour.CanonicalHex(hex)
		members[canonical] = true
	}
	roles := map[string]string{
		"primary":    p.Primary,
		"secondary":  p.Secondary,
		"accent":     p.Accent,
		"background": p.Background,
	}
	for role, hex := range roles {
		canonical, ok := colour.CanonicalHex(hex)
		if !ok {
			return fmt.Errorf("palette %q: %s role (%q) is not a valid hex colour", p.Name, role, hex)
		}
		if !members[canonical] {
			return fmt.Errorf("palette %q: %s role %s is not a palette member", p.Name, role, canonical)
		}
	}
	// Text is black or white by construction and need not be a member.
	if !colour.ValidHex(p.Text) {
		return fmt.Errorf("palette %q: text role (%q) is not a valid hex colour", p.Name, p.Text)
	}
	return nil
}

// MarshalExport renders the palette in the interchange JSON shape with
// ExportedAt stamped to now.
func (p *Palette) MarshalExport() ([]byte, error) {
	out := *p
	out.ID = "" // IDs are store-local and do not travel
	out.ExportedAt = time.Now().UTC().Truncate(time.Second)
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalImport parses an exported palette, validates it and strips any
// foreign store ID.
func UnmarshalImport(data []byte) (*Palette, error) {
	var p Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	p.ID = ""
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	return p.StringWithPreview(false)
}

// StringWithPreview returns a listing with optional ANSI colour blocks.
func (p *Palette) StringWithPreview(showPreview bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Palette %q with %d colours:\n", p.Name, len(p.Colors))
	for i, hex := range p.Colors {
		if showPreview {
			fmt.Fprintf(&b, "  %2d: %s\n", i+1, colour.PreviewWithText(hex, hex, 9))
		} else {
			fmt.Fprintf(&b, "  %2d: %s\n", i+1, hex)
		}
	}
	fmt.Fprintf(&b, "  roles: primary=%s secondary=%s accent=%s background=%s text=%s\n",
		p.Primary, p.Secondary, p.Accent, p.Background, p.Text)
	return b.String()
}
