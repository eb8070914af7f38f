package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/palette"
)

var (
	// Generate command flags
	generateScheme  schemeValue
	generateJSON    bool
	generateNoColor bool
	generateSave    string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <hex>",
	Short: "Generate a palette from a base colour",
	Long: `Generate a colour palette from a base colour using a harmony scheme.

The base colour is a hex value ("#4F46E5" or the "#ABC" shorthand). Run
"huegen schemes" to list the available harmony schemes.

Examples:
  # Analogous palette (default scheme)
  huegen generate "#4F46E5"

  # Triadic palette as JSON
  huegen generate "#4F46E5" --scheme triadic --json

  # Generate and save to the local collection
  huegen generate "#FF8800" --scheme complementary --save sunset`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().VarP(&generateScheme, "scheme", "s", "harmony scheme (default from HUEGEN_DEFAULT_SCHEME)")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "emit the palette as JSON")
	generateCmd.Flags().BoolVar(&generateNoColor, "no-color", false, "disable ANSI colour previews")
	generateCmd.Flags().StringVar(&generateSave, "save", "", "save the palette to the collection under this name")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	baseHex := args[0]

	scheme, err := generateScheme.Resolve(cfg.DefaultScheme)
	if err != nil {
		return err
	}

	entries := colour.Generate(baseHex, scheme)
	if len(entries) == 0 {
		return fmt.Errorf("%q is not a valid colour: please enter a hex value like #4F46E5", baseHex)
	}

	if generateJSON {
		if err := printEntriesJSON(cmd, baseHex, scheme, entries); err != nil {
			return err
		}
	} else {
		printEntries(cmd, entries, !generateNoColor && colour.SupportsANSIColours())
	}

	if generateSave != "" {
		repo, err := openStore()
		if err != nil {
			return err
		}
		p := palette.FromEntries(generateSave, entries)
		if err := repo.Save(p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved palette %q (%d colours)\n", generateSave, len(p.Colors))
	}
	return nil
}

// printEntries renders generated entries as an aligned listing, with ANSI
// swatches when the terminal supports them.
func printEntries(cmd *cobra.Command, entries []colour.Entry, withPreview bool) {
	out := cmd.OutOrStdout()
	table := NewTable([]string{"", "LABEL", "HEX", "TEXT"})
	if !withPreview {
		table = NewTable([]string{"LABEL", "HEX", "TEXT"})
	}
	for _, e := range entries {
		text := colour.ReadableTextColor(e.Hex)
		if withPreview {
			table.AddRow([]string{colour.Preview(e.Hex, 8), e.Label, e.Hex, text})
		} else {
			table.AddRow([]string{e.Label, e.Hex, text})
		}
	}
	fmt.Fprint(out, table.Render())
}

// printEntriesJSON emits the generated palette in the same shape the HTTP
// API returns.
func printEntriesJSON(cmd *cobra.Command, baseHex string, scheme colour.Scheme, entries []colour.Entry) error {
	canonical, _ := colour.CanonicalHex(baseHex)
	payload := struct {
		Base    string         `json:"base"`
		Scheme  string         `json:"scheme"`
		Entries []colour.Entry `json:"entries"`
	}{Base: canonical, Scheme: string(scheme), Entries: entries}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
