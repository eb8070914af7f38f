package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <hexA> <hexB>",
	Short: "Compute the WCAG contrast ratio between two colours",
	Long: `Compute the WCAG 2.0 contrast ratio between two colours and report
whether the pair meets the AA (4.5:1) and AAA (7:1) thresholds for normal
text.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, okA := colour.CanonicalHex(args[0])
		b, okB := colour.CanonicalHex(args[1])
		if !okA {
			return fmt.Errorf("%q is not a valid colour: please enter a hex value like #4F46E5", args[0])
		}
		if !okB {
			return fmt.Errorf("%q is not a valid colour: please enter a hex value like #4F46E5", args[1])
		}

		ratio := colour.ContrastRatio(a, b)
		out := cmd.OutOrStdout()
		if colour.SupportsANSIColours() {
			fmt.Fprintf(out, "%s %s  vs  %s %s\n", colour.Preview(a, 4), a, colour.Preview(b, 4), b)
		} else {
			fmt.Fprintf(out, "%s vs %s\n", a, b)
		}
		fmt.Fprintf(out, "Contrast ratio: %.2f:1\n", ratio)
		fmt.Fprintf(out, "WCAG AA  (4.5:1): %s\n", passFail(ratio >= 4.5))
		fmt.Fprintf(out, "WCAG AAA (7.0:1): %s\n", passFail(ratio >= 7.0))
		fmt.Fprintf(out, "Readable text on %s: %s\n", a, colour.ReadableTextColor(a))
		return nil
	},
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
