package cli

import (
	"context"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/repo"
	"github.com/pkordes/commutepro/internal/service"
)

// NewRootCommand builds the commute command tree.
func NewRootCommand(version string) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "commute",
		Short:         "CommutePro in the terminal: set up your commute and see when to leave",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("commute v{{.Version}}\n")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	// Colour only goes to a real terminal; NO_COLOR is honoured through color.NoColor.
	useColor := func(cmd *cobra.Command) bool {
		return !noColor && !color.NoColor && cmd.OutOrStdout() == os.Stdout
	}

	root.AddCommand(&cobra.Command{
		Use:   "setup",
		Short: "Answer the setup questions, then print today's recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions, err := repo.NewSessionRepo(repo.SessionOptions{MaxSessions: 16, TTL: time.Hour})
			if err != nil {
				return err
			}
			wizard := service.NewWizardService(sessions, service.StaticRecommender{})
			return NewSession(wizard, cmd.InOrStdin(), cmd.OutOrStdout(), useColor(cmd)).Run(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "cards",
		Short: "Print the sample recommendation cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recs, err := sampleRecommendations(cmd.Context())
			if err != nil {
				return err
			}
			PrintCards(cmd.OutOrStdout(), recs, useColor(cmd))
			return nil
		},
	})

	return root
}

// sampleRecommendations returns the cards for a placeholder complete setup.
func sampleRecommendations(ctx context.Context) ([]service.DirectedRecommendation, error) {
	setup := domain.Setup{}.
		SaveLocations(domain.LocationData{Home: "Home", Office: "Office"}).
		SaveOfficeWindow(domain.TimeRange{Start: "08:00", End: "09:00"}).
		SaveHomeWindow(domain.TimeRange{Start: "17:30", End: "19:00"})
	return service.NewWizardService(nil, service.StaticRecommender{}).Recommendations(ctx, setup)
}
