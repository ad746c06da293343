package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/service"
	"github.com/pkordes/commutepro/internal/views"
)

// trafficColor picks the badge colour for a traffic status.
func trafficColor(status domain.TrafficStatus) *color.Color {
	switch status {
	case domain.TrafficOptimal:
		return color.New(color.FgGreen, color.Bold)
	case domain.TrafficModerate:
		return color.New(color.FgYellow)
	case domain.TrafficCongested:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgHiBlack)
	}
}

// PrintCards writes one block per recommendation, office leg first.
// Colour is used only when useColor is set.
func PrintCards(w io.Writer, recs []service.DirectedRecommendation, useColor bool) {
	heading := color.New(color.Bold)
	muted := color.New(color.FgHiBlack)
	for i, r := range recs {
		card := views.NewCard(r.Recommendation, r.Direction)
		badge := trafficColor(card.TrafficStatus)
		for _, c := range []*color.Color{heading, muted, badge} {
			if useColor {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		heading.Fprintf(w, "%s", card.Heading)
		muted.Fprintf(w, "  %s\n", card.ConfidenceLabel)
		fmt.Fprintf(w, "  Best time  %s\n", card.BestTime)
		fmt.Fprintf(w, "  ETA        %s\n", card.ETALabel)
		fmt.Fprint(w, "  Traffic    ")
		badge.Fprintln(w, card.TrafficLabel)
		fmt.Fprintf(w, "  Weather    %s\n", card.WeatherLabel)
	}
}
