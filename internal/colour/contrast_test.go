package colour

import (
	"math"
	"testing"
)

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name      string
		hex       string
		want      float64
		tolerance float64
	}{
		{name: "black", hex: "#000000", want: 0.0, tolerance: 0.0001},
		{name: "white", hex: "#FFFFFF", want: 1.0, tolerance: 0.0001},
		{name: "red", hex: "#FF0000", want: 0.2126, tolerance: 0.0001},
		{name: "green", hex: "#00FF00", want: 0.7152, tolerance: 0.0001},
		{name: "blue", hex: "#0000FF", want: 0.0722, tolerance: 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeLuminance(tt.hex)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("RelativeLuminance(%s) = %f, want %f", tt.hex, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("RelativeLuminance(%s) = %f, outside [0,1]", tt.hex, got)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	t.Run("black on white is maximum", func(t *testing.T) {
		got := ContrastRatio("#000000", "#FFFFFF")
		if math.Abs(got-21.0) > 0.0001 {
			t.Errorf("ContrastRatio(black, white) = %f, want 21", got)
		}
	})

	t.Run("symmetric in argument order", func(t *testing.T) {
		a := ContrastRatio("#4F46E5", "#FFFFFF")
		b := ContrastRatio("#FFFFFF", "#4F46E5")
		if a != b {
			t.Errorf("ContrastRatio not symmetric: %f vs %f", a, b)
		}
	})

	t.Run("identical colours yield exactly 1", func(t *testing.T) {
		for _, hex := range []string{"#000000", "#FFFFFF", "#4F46E5", "#808080"} {
			if got := ContrastRatio(hex, hex); got != 1.0 {
				t.Errorf("ContrastRatio(%s, %s) = %f, want 1", hex, hex, got)
			}
		}
	})

	t.Run("bounded by [1,21]", func(t *testing.T) {
		pairs := [][2]string{
			{"#123456", "#FEDCBA"},
			{"#FF0000", "#00FF00"},
			{"#808080", "#818181"},
		}
		for _, p := range pairs {
			got := ContrastRatio(p[0], p[1])
			if got < 1.0 || got > 21.0 {
				t.Errorf("ContrastRatio(%s, %s) = %f, outside [1,21]", p[0], p[1], got)
			}
		}
	})
}

func TestReadableTextColor(t *testing.T) {
	tests := []struct {
		name       string
		background string
		want       string
	}{
		{name: "white background gets black text", background: "#FFFFFF", want: TextBlack},
		{name: "black background gets white text", background: "#000000", want: TextWhite},
		{name: "yellow background gets black text", background: "#FFFF00", want: TextBlack},
		{name: "navy background gets white text", background: "#000080", want: TextWhite},
		{name: "mid grey sits below the threshold", background: "#808080", want: TextWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadableTextColor(tt.background); got != tt.want {
				t.Errorf("ReadableTextColor(%s) = %s, want %s", tt.background, got, tt.want)
			}
		})
	}
}
