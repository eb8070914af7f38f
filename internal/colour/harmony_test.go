package colour

import "testing"

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Scheme
		wantErr bool
	}{
		{name: "kebab", input: "split-complementary", want: SchemeSplitComplementary},
		{name: "camel case", input: "SplitComplementary", want: SchemeSplitComplementary},
		{name: "underscores", input: "luminosity_contrast", want: SchemeLuminosityContrast},
		{name: "mixed case", input: "TRIADIC", want: SchemeTriadic},
		{name: "unknown", input: "pentadic", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheme(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseScheme(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScheme(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseScheme(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	inputs := []string{"blue", "#12", "", "4F46E5", "#GGGGGG", "#ABCD"}
	for _, input := range inputs {
		t.Run("invalid "+input, func(t *testing.T) {
			if got := Generate(input, SchemeTriadic); len(got) != 0 {
				t.Errorf("Generate(%q) = %d entries, want empty", input, len(got))
			}
		})
	}

	t.Run("unknown scheme", func(t *testing.T) {
		if got := Generate("#FF0000", Scheme("pentadic")); len(got) != 0 {
			t.Errorf("Generate with unknown scheme = %d entries, want empty", len(got))
		}
	})
}

func TestGenerateMonochromaticAchromatic(t *testing.T) {
	got := Generate("#FF0000", SchemeMonochromaticAchromatic)

	want := []Entry{
		{Hex: "#FF0000", Label: "Base"},
		{Hex: "#FFFFFF", Label: "White"},
		{Hex: "#E5E7EB", Label: "Light Grey"},
		{Hex: "#4B5563", Label: "Dark Grey"},
		{Hex: "#000000", Label: "Black"},
	}
	assertEntries(t, got, want)
}

func TestGenerateLuminosityContrast(t *testing.T) {
	// #808080 is achromatic, so the ladder stays grey throughout. Output
	// runs light to dark: lightness 95, 85, 70, 55, 40, 25, 10.
	got := Generate("#808080", SchemeLuminosityContrast)

	want := []Entry{
		{Hex: "#F2F2F2", Label: "Shade 100"},
		{Hex: "#D9D9D9", Label: "Shade 200"},
		{Hex: "#B3B3B3", Label: "Shade 300"},
		{Hex: "#8C8C8C", Label: "Shade 400"},
		{Hex: "#666666", Label: "Shade 500"},
		{Hex: "#404040", Label: "Shade 600"},
		{Hex: "#1A1A1A", Label: "Shade 700"},
	}
	assertEntries(t, got, want)

	wantLightness := []int{95, 85, 70, 55, 40, 25, 10}
	for i, e := range got {
		hsl := HexToHSL(e.Hex)
		if hsl.H != 0 || hsl.S != 0 {
			t.Errorf("entry %d: %s has hue %d saturation %d, want 0/0", i, e.Hex, hsl.H, hsl.S)
		}
		if hsl.L != wantLightness[i] {
			t.Errorf("entry %d: %s lightness = %d, want %d", i, e.Hex, hsl.L, wantLightness[i])
		}
	}
}

func TestGenerateMonochromatic(t *testing.T) {
	// Base #4F46E5 = hsl(243, 75, 59).
	got := Generate("#4F46E5", SchemeMonochromatic)

	want := []Entry{
		{Hex: "#4F46E5", Label: "Base"},
		{Hex: "#CCCAFC", Label: "Light 1"}, // s+15 -> 90, l+30 capped at 89
		{Hex: "#8D88F2", Label: "Light 2"}, // s+5 -> 80, l+15 -> 74
		{Hex: "#221E76", Label: "Dark 1"},  // s-15 -> 60, l-30 -> 29
		{Hex: "#2A22BF", Label: "Dark 2"},  // s-5 -> 70, l-15 -> 44
	}
	assertEntries(t, got, want)
}

func TestGenerateTriadic(t *testing.T) {
	// Base #4F46E5 = hsl(243, 75, 59); clusters at hues 3 and 123.
	got := Generate("#4F46E5", SchemeTriadic)

	want := []Entry{
		{Hex: "#4F46E5", Label: "Base"},
		{Hex: "#E55048", Label: "Triadic 1"},
		{Hex: "#F7A09C", Label: "Triadic 1 Light"},
		{Hex: "#A42923", Label: "Triadic 1 Dark"},
		{Hex: "#48E550", Label: "Triadic 2"},
		{Hex: "#9CF7A0", Label: "Triadic 2 Light"},
		{Hex: "#23A429", Label: "Triadic 2 Dark"},
	}
	assertEntries(t, got, want)
	assertNoDuplicates(t, got)
}

func TestGenerateAnalogous(t *testing.T) {
	// Base #FF0000 = hsl(0, 100, 50); clusters at hues 30 and 330.
	got := Generate("#FF0000", SchemeAnalogous)

	want := []Entry{
		{Hex: "#FF0000", Label: "Base"},
		{Hex: "#FF8000", Label: "Analogous 1"},
		{Hex: "#FFB366", Label: "Analogous 1 Light"},
		{Hex: "#914D08", Label: "Analogous 1 Dark"},
		{Hex: "#FF0080", Label: "Analogous 2"},
		{Hex: "#FF66B3", Label: "Analogous 2 Light"},
		{Hex: "#91084D", Label: "Analogous 2 Dark"},
	}
	assertEntries(t, got, want)
}

func TestGenerateComplementary(t *testing.T) {
	// Three hue clusters: H+180 and H+180 +/- 15.
	got := Generate("#4F46E5", SchemeComplementary)

	if len(got) != 10 {
		t.Fatalf("Generate complementary = %d entries, want 10", len(got))
	}
	if got[0].Label != "Base" || got[0].Hex != "#4F46E5" {
		t.Errorf("first entry = %+v, want base colour", got[0])
	}
	if got[1].Hex != "#DDE548" {
		t.Errorf("principal complement = %s, want #DDE548", got[1].Hex)
	}
	assertNoDuplicates(t, got)
}

func TestGenerateSplitComplementary(t *testing.T) {
	got := Generate("#4F46E5", SchemeSplitComplementary)

	if len(got) != 7 {
		t.Fatalf("Generate split-complementary = %d entries, want 7", len(got))
	}
	// Clusters sit at (H+180)+30 and (H+180)-30: hues 93 and 33.
	if h := HexToHSL(got[1].Hex).H; h != 93 {
		t.Errorf("first cluster hue = %d, want 93", h)
	}
	if h := HexToHSL(got[4].Hex).H; h != 33 {
		t.Errorf("second cluster hue = %d, want 33", h)
	}
}

func TestGenerateTetradic(t *testing.T) {
	got := Generate("#4F46E5", SchemeTetradic)

	if len(got) != 10 {
		t.Fatalf("Generate tetradic = %d entries, want 10", len(got))
	}
	wantHues := []int{333, 63, 153}
	for i, wantHue := range wantHues {
		principal := got[1+3*i]
		if h := HexToHSL(principal.Hex).H; h != wantHue {
			t.Errorf("cluster %d principal hue = %d, want %d", i+1, h, wantHue)
		}
	}
}

// TestGenerateDeduplicates uses an achromatic base, where the principal
// cluster entries and the darker variants collapse to the same greys: the
// first occurrence keeps its label and later duplicates are dropped.
func TestGenerateDeduplicates(t *testing.T) {
	got := Generate("#808080", SchemeTriadic)

	want := []Entry{
		{Hex: "#808080", Label: "Base"},
		{Hex: "#ABBAAB", Label: "Triadic 1 Light"},
		{Hex: "#4D4D4D", Label: "Triadic 1 Dark"},
		{Hex: "#ABABBA", Label: "Triadic 2 Light"},
	}
	assertEntries(t, got, want)
	assertNoDuplicates(t, got)
}

func TestGenerateAllSchemesNonEmpty(t *testing.T) {
	for _, scheme := range Schemes() {
		t.Run(string(scheme), func(t *testing.T) {
			got := Generate("#4F46E5", scheme)
			if len(got) == 0 {
				t.Fatal("valid base produced empty palette")
			}
			assertNoDuplicates(t, got)
			for i, e := range got {
				if !ValidHex(e.Hex) {
					t.Errorf("entry %d: %q is not valid hex", i, e.Hex)
				}
				if e.Label == "" {
					t.Errorf("entry %d (%s): empty label", i, e.Hex)
				}
			}
		})
	}
}

func assertEntries(t *testing.T, got, want []Entry) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func assertNoDuplicates(t *testing.T, entries []Entry) {
	t.Helper()
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if prev, ok := seen[e.Hex]; ok {
			t.Errorf("duplicate hex %s (labels %q and %q)", e.Hex, prev, e.Label)
		}
		seen[e.Hex] = e.Label
	}
}
