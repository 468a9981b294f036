// overlay.go implements "zen overlay", authoring the SQLite text overlay.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwulff/zen/internal/db"
)

func newOverlayCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Manage the SQLite overlay of extra hexagram texts",
	}
	cmd.AddCommand(newOverlayImportCmd(e), newOverlayListCmd(e))
	return cmd
}

func newOverlayImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE.yaml",
		Short: "Import hexagram records from YAML into the overlay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			entries, err := db.ReadYAML(f)
			if err != nil {
				return err
			}

			path := e.overlayPath
			store, err := db.Create(path)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Import(entries); err != nil {
				return err
			}
			e.logger.Info("overlay imported", "path", path, "records", len(entries))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records into %s\n", len(entries), path)
			return nil
		},
	}
}

func newOverlayListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the trigram pairs stored in the overlay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := db.Open(e.overlayPath)
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := store.Hexagrams()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range rows {
				fmt.Fprintf(out, "(%d,%d)  %s %s\n", r.Upper, r.Lower, r.Glyph, r.Name)
			}
			return nil
		},
	}
}
