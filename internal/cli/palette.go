package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/palette"
	"github.com/jmylchreest/huegen/internal/render"
)

var (
	// Export flags
	exportFormat string
	exportOutput string
	exportPNG    string
)

// paletteCmd groups operations on the saved palette collection.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage the saved palette collection",
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openStore()
		if err != nil {
			return err
		}
		palettes, err := repo.List()
		if err != nil {
			return err
		}
		if len(palettes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved palettes. Use 'huegen generate --save <name>' to add one.")
			return nil
		}

		table := NewTable([]string{"NAME", "COLOURS", "PRIMARY", "BACKGROUND"})
		for _, p := range palettes {
			table.AddRow([]string{p.Name, fmt.Sprintf("%d", len(p.Colors)), p.Primary, p.Background})
		}
		fmt.Fprint(cmd.OutOrStdout(), table.Render())
		return nil
	},
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one saved palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openStore()
		if err != nil {
			return err
		}
		p, err := repo.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), p.StringWithPreview(colour.SupportsANSIColours()))

		rows := render.ContrastReport(p)
		fmt.Fprintln(cmd.OutOrStdout(), "\nContrast against background:")
		table := NewTable([]string{"HEX", "RATIO", "AA", "AAA"})
		for _, row := range rows {
			table.AddRow([]string{row.Hex, fmt.Sprintf("%.2f", row.Ratio), passFail(row.MeetsAA), passFail(row.MeetsAAA)})
		}
		fmt.Fprint(cmd.OutOrStdout(), table.Render())
		return nil
	},
}

var paletteDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openStore()
		if err != nil {
			return err
		}
		if err := repo.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted palette %q\n", args[0])
		return nil
	},
}

var paletteExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export a saved palette",
	Long: `Export a saved palette as JSON, CSS custom properties, SCSS variables
or a Tailwind colour block, and optionally as a PNG swatch sheet.

Examples:
  huegen palette export sunset
  huegen palette export sunset --format css -o sunset.css
  huegen palette export sunset --png sunset.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var paletteImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a palette from an exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		p, err := palette.UnmarshalImport(data)
		if err != nil {
			return err
		}
		repo, err := openStore()
		if err != nil {
			return err
		}
		if err := repo.Save(p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported palette %q (%d colours)\n", p.Name, len(p.Colors))
		return nil
	},
}

func init() {
	paletteExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json, css, scss, tailwind)")
	paletteExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	paletteExportCmd.Flags().StringVar(&exportPNG, "png", "", "also write a PNG swatch sheet to this path")

	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteShowCmd)
	paletteCmd.AddCommand(paletteDeleteCmd)
	paletteCmd.AddCommand(paletteExportCmd)
	paletteCmd.AddCommand(paletteImportCmd)
}

// runExport executes the palette export command.
func runExport(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	repo, err := openStore()
	if err != nil {
		return err
	}
	p, err := repo.Load(args[0])
	if err != nil {
		return err
	}

	out, err := render.Write(p, format)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		if !strings.HasSuffix(string(out), "\n") {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	} else {
		if err := os.WriteFile(exportOutput, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exportOutput)
	}

	if exportPNG != "" {
		sheet, err := render.WritePNG(p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportPNG, sheet, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportPNG, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exportPNG)
	}
	return nil
}
