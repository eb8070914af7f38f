package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Back up the palette collection to a tar.xz archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openStore()
		if err != nil {
			return err
		}
		if err := repo.Backup(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backed up palette collection to %s\n", args[0])
		return nil
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore the palette collection from a tar.xz archive",
	Long: `Restore palettes from an archive created with 'huegen backup'.
Existing palettes with matching names are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openStore()
		if err != nil {
			return err
		}
		count, err := repo.Restore(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d palette(s) from %s\n", count, args[0])
		return nil
	},
}
