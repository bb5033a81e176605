package main

import (
	"fmt"

	"quickreview/internal/review"
	"quickreview/internal/share"

	"github.com/spf13/cobra"
)

func newShareCmd() *cobra.Command {
	var place, text string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print the map-search and message-share links",
		Example: `  review share --place "Cafe X"
  review share --place "Cafe X" --text "Loved it!"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if place == "" {
				return errPlaceRequired
			}
			if text == "" {
				in := review.NewInput()
				in.PlaceName = place
				text = review.Generate(in).Medium
			}
			out := cmd.OutOrStdout()
			for _, link := range share.PublishLinks(place, text) {
				fmt.Fprintf(out, "%s\n  %s\n", link.Label, link.URL)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&place, "place", "p", "", "Place name (required)")
	cmd.Flags().StringVar(&text, "text", "", "Message text (default: the medium review for the place)")
	return cmd
}
