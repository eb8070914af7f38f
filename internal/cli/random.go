package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/palette"
)

var (
	// Random command flags
	randomScheme schemeValue
	randomSeed   uint64
	randomSave   string
	randomJSON   bool
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a palette from a random base colour",
	Long: `Generate a palette from a randomly chosen base colour. The scheme is
also picked at random unless --scheme is given. Pass --seed for a
reproducible result.`,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().VarP(&randomScheme, "scheme", "s", "harmony scheme (random when omitted)")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "seed for reproducible output (0 = time-based)")
	randomCmd.Flags().StringVar(&randomSave, "save", "", "save the palette to the collection under this name")
	randomCmd.Flags().BoolVar(&randomJSON, "json", false, "emit the palette as JSON")
}

// runRandom executes the random command.
func runRandom(cmd *cobra.Command, args []string) error {
	var rng *rand.Rand
	if randomSeed != 0 {
		rng = rand.New(rand.NewPCG(randomSeed, 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	base := colour.RandomBase(rng)

	var scheme colour.Scheme
	if randomScheme.set {
		scheme = randomScheme.scheme
	} else {
		scheme = colour.RandomScheme(rng)
	}

	entries := colour.Generate(base, scheme)
	if len(entries) == 0 {
		// RandomBase always yields a valid hex, so this indicates a bug.
		return fmt.Errorf("internal error: random base %q produced no palette", base)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Base %s, scheme %s\n\n", base, scheme)
	if randomJSON {
		if err := printEntriesJSON(cmd, base, scheme, entries); err != nil {
			return err
		}
	} else {
		printEntries(cmd, entries, colour.SupportsANSIColours())
	}

	if randomSave != "" {
		repo, err := openStore()
		if err != nil {
			return err
		}
		p := palette.FromEntries(randomSave, entries)
		if err := repo.Save(p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved palette %q (%d colours)\n", randomSave, len(p.Colors))
	}
	return nil
}
