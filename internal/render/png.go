package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/palette"
)

// Swatch sheet geometry.
const (
	swatchWidth  = 320
	swatchHeight = 48
	labelMargin  = 10
)

// WritePNG renders the palette as a vertical swatch sheet: one row per
// colour with its hex code overlaid in whichever of black or white reads
// against it.
func WritePNG(p *palette.Palette) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("palette %q has no colours", p.Name)
	}

	img := image.NewRGBA(image.Rect(0, 0, swatchWidth, swatchHeight*len(p.Colors)))

	for i, hex := range p.Colors {
		rgb, ok := colour.ParseHex(hex)
		if !ok {
			return nil, fmt.Errorf("palette %q: colour %d (%q) is not a valid hex colour", p.Name, i, hex)
		}
		row := image.Rect(0, i*swatchHeight, swatchWidth, (i+1)*swatchHeight)
		fill := color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
		draw.Draw(img, row, image.NewUniform(fill), image.Point{}, draw.Src)

		text, _ := colour.ParseHex(colour.ReadableTextColor(hex))
		drawLabel(img, hex, row, color.RGBA{R: text.R, G: text.G, B: text.B, A: 255})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLabel writes the hex code into a swatch row, vertically centred.
func drawLabel(dst draw.Image, label string, row image.Rectangle, textColour color.Color) {
	face := basicfont.Face7x13
	baseline := row.Min.Y + (row.Dy()+face.Ascent)/2

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColour),
		Face: face,
		Dot:  fixed.P(row.Min.X+labelMargin, baseline),
	}
	d.DrawString(label)
}
