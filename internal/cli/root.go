// Package cli provides the command-line interface for huegen.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/config"
	"github.com/jmylchreest/huegen/internal/store"
	"github.com/jmylchreest/huegen/internal/version"
)

var (
	// Resolved at startup, before any command runs.
	cfg config.Config

	// Global verbosity flag.
	rootVerbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huegen",
		Short: "A colour harmony palette generator",
		Long: `Huegen derives colour palettes from a base colour using classic
colour-harmony rules: analogous, complementary, triadic, split-complementary,
tetradic, monochromatic and tonal ladders.

Generated palettes can be previewed in the terminal, checked for WCAG
contrast, saved to a local collection, and exported as CSS, SCSS, Tailwind
config or PNG swatch sheets.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { cfg = config.Load() })

	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(schemesCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the application logger honouring --verbose and the
// configured level.
func newLogger() hclog.Logger {
	level := hclog.LevelFromString(cfg.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	if rootVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huegen",
		Level:  level,
		Output: os.Stderr,
	})
}

// openStore opens the configured palette store.
func openStore() (*store.FileStore, error) {
	return store.NewFileStore(cfg.StoreDir, newLogger())
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
