// draw.go implements "zen draw", a single non-interactive draw.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jwulff/zen/internal/render"
)

func newDrawCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw one hexagram and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := e.engine.Draw()
			e.logger.Debug("hexagram drawn", "lower", r.Lower.ID, "upper", r.Upper.ID,
				"moving_line", r.MovingLine, "fallback", r.Fallback)
			if asJSON {
				return render.JSON(cmd.OutOrStdout(), r)
			}
			return render.Text(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}
