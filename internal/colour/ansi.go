package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for truecolour terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured block for a hex colour, width
// characters wide. Uses the background colour with spaces for a solid
// block. Malformed hex renders as a black block via the parser fallback.
func Preview(hex string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	rgb, _ := ParseHex(hex)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour block with text overlaid, the text
// colour chosen for contrast against the block.
func PreviewWithText(hex, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	rgb, _ := ParseHex(hex)
	fg, _ := ParseHex(ReadableTextColor(hex))

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)
	return bg + fgSeq + display + ansiReset
}

// SupportsANSIColours reports whether stdout is a terminal that should
// receive colour escape sequences. NO_COLOR disables output per the
// informal convention; TERM=dumb terminals get plain text.
func SupportsANSIColours() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
