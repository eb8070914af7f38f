package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
)

// schemeDescriptions give a one-line summary per harmony scheme.
var schemeDescriptions = map[colour.Scheme]string{
	colour.SchemeLuminosityContrast:      "Tonal ladder of the base hue, light to dark",
	colour.SchemeMonochromaticAchromatic: "Base colour with white, greys and black",
	colour.SchemeMonochromatic:           "Lighter and darker variants of the base hue",
	colour.SchemeAnalogous:               "Neighbouring hues, 30 degrees either side",
	colour.SchemeComplementary:           "Opposite hue with two near-complement clusters",
	colour.SchemeTriadic:                 "Two hues at 120-degree spacing",
	colour.SchemeSplitComplementary:      "Two hues flanking the complement",
	colour.SchemeTetradic:                "Three hues at 90-degree spacing",
}

// schemesCmd represents the schemes command
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available harmony schemes",
	Run: func(cmd *cobra.Command, args []string) {
		// Entry counts come from a reference chromatic base; achromatic
		// bases produce fewer entries after deduplication.
		const referenceBase = "#4F46E5"

		table := NewTable([]string{"SCHEME", "COLOURS", "DESCRIPTION"})
		for _, scheme := range colour.Schemes() {
			count := len(colour.Generate(referenceBase, scheme))
			table.AddRow([]string{string(scheme), fmt.Sprintf("%d", count), schemeDescriptions[scheme]})
		}
		fmt.Fprint(cmd.OutOrStdout(), table.Render())
	},
}
