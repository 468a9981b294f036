// trigrams.go implements "zen trigrams", the trigram reference table.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jwulff/zen/internal/render"
)

func newTrigramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trigrams",
		Short: "List the eight trigrams with their ids and lines (bottom to top)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.TrigramTable(cmd.OutOrStdout())
		},
	}
}
