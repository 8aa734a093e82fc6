package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/cardforge/internal/render"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in card themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDEFAULT")
			for _, t := range render.Themes() {
				def := ""
				if t.ID() == render.DefaultTheme {
					def = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID(), t.Name(), def)
			}
			return w.Flush()
		},
	}
}
