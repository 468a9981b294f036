// lookup.go implements "zen lookup", a direct catalog read by trigram pair.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwulff/zen/internal/iching"
)

func newLookupCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "lookup UPPER LOWER",
		Short: "Show the hexagram text for an upper and a lower trigram (ids 1-8)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0], args[1])
			if err != nil {
				return err
			}
			h, found := e.engine.Catalog().Lookup(key.Upper, key.Lower)
			if !found {
				h = iching.Fallback(iching.TrigramByID(key.Upper), iching.TrigramByID(key.Lower))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(struct {
					Key      iching.Key      `json:"key"`
					Found    bool            `json:"found"`
					Hexagram iching.Hexagram `json:"hexagram"`
				}{key, found, h})
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s %s", h.Glyph, h.Name)
			if !found {
				b.WriteString("  (not in catalog)")
			}
			b.WriteString("\n卦辞：" + h.Judgment + "\n")
			for i, text := range h.LineTexts {
				fmt.Fprintf(&b, "  %d. %s\n", i+1, text)
			}
			b.WriteString("易传：" + h.Commentary.Tuan + "\n")
			b.WriteString("系辞传：" + h.Commentary.Xici + "\n")
			b.WriteString("象传：" + h.Commentary.Xiang + "\n")
			_, err = fmt.Fprint(out, b.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")
	return cmd
}

func parseKey(upper, lower string) (iching.Key, error) {
	u, err := strconv.Atoi(upper)
	if err != nil {
		return iching.Key{}, fmt.Errorf("upper trigram %q: %w", upper, err)
	}
	l, err := strconv.Atoi(lower)
	if err != nil {
		return iching.Key{}, fmt.Errorf("lower trigram %q: %w", lower, err)
	}
	key := iching.Key{Upper: u, Lower: l}
	return key, key.Validate()
}
