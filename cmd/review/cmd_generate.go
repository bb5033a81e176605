package main

import (
	"errors"
	"fmt"
	"io"

	"quickreview/internal/review"
	"quickreview/internal/wizard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errPlaceRequired = errors.New(wizard.MsgPlaceNameRequired)

// cliNotifier prints wizard notifications on stderr.
type cliNotifier struct {
	w io.Writer
}

func (n cliNotifier) Notify(msg string) {
	fmt.Fprintln(n.w, "» "+msg)
	logger.Debug("Notification", zap.String("message", msg))
}

type reviewFlags struct {
	place   string
	service string
	rating  int
	pros    string
	cons    string
}

func (f *reviewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.place, "place", "p", "", "Place name (required)")
	cmd.Flags().StringVarP(&f.service, "type", "t", "cafe", "Service type: cafe, restaurant, hotel, entertainment, general")
	cmd.Flags().IntVarP(&f.rating, "rating", "r", 0, "Star rating 1-5")
	cmd.Flags().StringVar(&f.pros, "pros", "", "Highlights (optional)")
	cmd.Flags().StringVar(&f.cons, "cons", "", "Remarks (optional)")
}

// apply fills the session form from the flags.
func (f *reviewFlags) apply(s *wizard.Session) error {
	t, ok := review.ParseServiceType(f.service)
	if !ok {
		return fmt.Errorf("unknown service type %q", f.service)
	}
	if f.rating != 0 && !s.SetRating(f.rating) {
		return fmt.Errorf("rating must be between 1 and %d, got %d", review.MaxRating, f.rating)
	}
	s.SetField(review.FieldPlaceName, f.place)
	s.SetField(review.FieldServiceType, string(t))
	s.SetField(review.FieldPros, f.pros)
	s.SetField(review.FieldCons, f.cons)
	return nil
}

func newGenerateCmd() *cobra.Command {
	var flags reviewFlags
	var variant string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the three review texts",
		Example: `  review generate --place "Cafe X" --rating 5 --pros "great coffee"
  review generate -p "Blue Hotel" -t hotel -r 3 --cons "slow check-in" --variant medium`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := wizard.New(wizard.Deps{Notifier: cliNotifier{w: cmd.ErrOrStderr()}})
			if err := flags.apply(s); err != nil {
				return err
			}
			if !s.GenerateReviews() {
				return errPlaceRequired
			}
			logger.Info("Generated reviews",
				zap.String("place", flags.place),
				zap.Int("rating", s.Review().Rating))

			out := cmd.OutOrStdout()
			g := s.Generated()
			if variant != "" {
				v := review.Variant(variant)
				text := g.Text(v)
				if text == "" {
					return fmt.Errorf("unknown variant %q (valid: short, medium, cinematic)", variant)
				}
				fmt.Fprintln(out, text)
				return nil
			}
			for i, v := range review.Variants {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "── %s ──\n%s\n", v, g.Text(v))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&variant, "variant", "", "Print only one variant: short, medium, cinematic")
	return cmd
}
