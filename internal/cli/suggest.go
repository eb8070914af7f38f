package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/suggest"
)

var (
	// Suggest command flags
	suggestModel   string
	suggestBackend string
	suggestScheme  schemeValue
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <description>",
	Short: "Suggest a base colour from a text description",
	Long: `Ask a Google Gen AI model to pick a base colour for a description,
then generate a palette from it.

Requires GOOGLE_API_KEY for the Gemini API backend.

Examples:
  huegen suggest "sunset over the ocean"
  huegen suggest "forest at dawn" --scheme analogous
  huegen suggest "neon arcade" --model gemini-2.0-flash`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestModel, "model", suggest.DefaultModel, "Gen AI model to query")
	suggestCmd.Flags().StringVar(&suggestBackend, "backend", "gemini-api", "Gen AI backend (gemini-api, vertex-ai)")
	suggestCmd.Flags().VarP(&suggestScheme, "scheme", "s", "harmony scheme for the generated palette")
}

// runSuggest executes the suggest command.
func runSuggest(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	base, err := suggest.Suggest(cmd.Context(), prompt, suggest.Options{
		Model:   suggestModel,
		Backend: suggestBackend,
		Logger:  newLogger(),
	})
	if err != nil {
		return err
	}

	scheme, err := suggestScheme.Resolve(cfg.DefaultScheme)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Suggested base %s for %q, scheme %s\n\n", base, prompt, scheme)

	entries := colour.Generate(base, scheme)
	printEntries(cmd, entries, colour.SupportsANSIColours())
	return nil
}
