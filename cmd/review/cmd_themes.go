package main

import (
	"fmt"
	"text/tabwriter"

	"quickreview/internal/theme"

	"github.com/spf13/cobra"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available poster themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tICON\tNAME\tACCENT")
			for _, th := range theme.All() {
				marker := ""
				if th.ID == cfg.ThemeID() {
					marker = " *"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", th.ID, marker, th.Icon, th.Name, th.Accent)
			}
			return w.Flush()
		},
	}
}
