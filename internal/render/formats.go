// Package render turns palettes into consumable artifacts: stylesheet
// snippets for web projects and PNG swatch sheets for sharing.
package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/palette"
)

// Format identifies a textual output format.
type Format string

const (
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatTailwind Format = "tailwind"
	FormatJSON     Format = "json"
)

// Formats returns the supported textual formats in display order.
func Formats() []Format {
	return []Format{FormatCSS, FormatSCSS, FormatTailwind, FormatJSON}
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown format %q (valid: %s)", s, strings.Join(names, ", "))
}

const cssTemplate = `/* {{ .Name }} - generated by huegen */
:root {
{{- range $i, $hex := .Colors }}
  --{{ $.Prefix }}-{{ add $i 1 }}00: {{ lower $hex }};
{{- end }}
{{- range $role, $hex := .Roles }}
  --{{ $.Prefix }}-{{ $role }}: {{ lower $hex }};
{{- end }}
}
`

const scssTemplate = `// {{ .Name }} - generated by huegen
{{- range $i, $hex := .Colors }}
${{ $.Prefix }}-{{ add $i 1 }}00: {{ lower $hex }};
{{- end }}
{{- range $role, $hex := .Roles }}
${{ $.Prefix }}-{{ $role }}: {{ lower $hex }};
{{- end }}
`

const tailwindTemplate = `// {{ .Name }} - generated by huegen
// Merge into theme.extend.colors in tailwind.config.js
{{ printf "%q" .Prefix }}: {
{{- range $i, $hex := .Colors }}
  {{ printf "%q" (shade $i) }}: {{ printf "%q" (lower $hex) }},
{{- end }}
{{- range $role, $hex := .Roles }}
  {{ printf "%q" $role }}: {{ printf "%q" (lower $hex) }},
{{- end }}
},
`

// templateData is the view rendered by the textual templates. Roles is
// pre-sorted into a deterministic order.
type templateData struct {
	Name   string
	Prefix string
	Colors []string
	Roles  map[string]string
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"add":   func(a, b int) int { return a + b },
		"lower": strings.ToLower,
		"shade": func(i int) string { return fmt.Sprintf("%d00", i+1) },
	}
}

// Write renders the palette in the requested format.
func Write(p *palette.Palette, format Format) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	switch format {
	case FormatJSON:
		return p.MarshalExport()
	case FormatCSS:
		return renderTemplate("css", cssTemplate, p)
	case FormatSCSS:
		return renderTemplate("scss", scssTemplate, p)
	case FormatTailwind:
		return renderTemplate("tailwind", tailwindTemplate, p)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func renderTemplate(name, text string, p *palette.Palette) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(funcs()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	data := templateData{
		Name:   p.Name,
		Prefix: cssIdentifier(p.Name),
		Colors: p.Colors,
		Roles: map[string]string{
			"primary":    p.Primary,
			"secondary":  p.Secondary,
			"accent":     p.Accent,
			"background": p.Background,
			"text":       p.Text,
		},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// cssIdentifier reduces a palette name to a usable CSS custom property
// stem: lowercase ASCII letters, digits and dashes.
func cssIdentifier(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	id := strings.TrimRight(b.String(), "-")
	if id == "" {
		id = "palette"
	}
	return id
}

// ContrastReport lists the WCAG contrast ratio of every palette member
// against the palette background, worst first.
func ContrastReport(p *palette.Palette) []ContrastRow {
	rows := make([]ContrastRow, 0, len(p.Colors))
	for _, hex := range p.Colors {
		rows = append(rows, ContrastRow{
			Hex:      hex,
			Ratio:    colour.ContrastRatio(hex, p.Background),
			ReadsOn:  p.Background,
			TextOn:   colour.ReadableTextColor(hex),
			MeetsAA:  colour.ContrastRatio(hex, p.Background) >= 4.5,
			MeetsAAA: colour.ContrastRatio(hex, p.Background) >= 7.0,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Ratio < rows[j].Ratio })
	return rows
}

// ContrastRow is one line of a contrast report.
type ContrastRow struct {
	Hex      string  `json:"hex"`
	Ratio    float64 `json:"ratio"`
	ReadsOn  string  `json:"readsOn"`
	TextOn   string  `json:"textOn"`
	MeetsAA  bool    `json:"meetsAA"`
	MeetsAAA bool    `json:"meetsAAA"`
}
