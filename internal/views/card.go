package views

import (
	"fmt"

	"github.com/pkordes/commutepro/internal/domain"
)

// Card is the view model for one recommendation card. It is a pure function
// of a recommendation and its direction; see NewCard.
type Card struct {
	Direction domain.Direction
	Heading   string

	BestTime        string
	ETA             int
	ETALabel        string
	ConfidenceLabel string

	TrafficStatus domain.TrafficStatus
	TrafficLabel  string
	BadgeVariant  string
	// Emphasized marks the optimal-traffic treatment.
	Emphasized    bool
	ShadowClass   string
	GradientClass string
	// Congested adds the alert marker next to the traffic badge.
	Congested bool

	WeatherIcon  string
	WeatherLabel string
}

var trafficLabels = map[domain.TrafficStatus]string{
	domain.TrafficOptimal:   "Clear Roads",
	domain.TrafficModerate:  "Light Traffic",
	domain.TrafficCongested: "Heavy Traffic",
}

// TrafficLabel returns the badge text for a traffic status.
func TrafficLabel(s domain.TrafficStatus) string {
	if l, ok := trafficLabels[s]; ok {
		return l
	}
	return "Unknown"
}

// BadgeVariant returns the badge style for a traffic status. Known statuses
// style themselves; anything else falls back to the neutral variant.
func BadgeVariant(s domain.TrafficStatus) string {
	if _, ok := trafficLabels[s]; ok {
		return string(s)
	}
	return "secondary"
}

// WeatherDisplay returns the icon name and caption for the weather.
// Anything that is not sunny is shown as rain.
func WeatherDisplay(w domain.Weather) (icon, label string) {
	if w == domain.WeatherSunny {
		return "sun", "Clear weather"
	}
	return "cloud-rain", "Rain expected"
}

// DirectionHeading returns the card title for a direction.
func DirectionHeading(d domain.Direction) string {
	if d == domain.DirectionToOffice {
		return "To Office"
	}
	return "To Home"
}

// NewCard maps a recommendation onto its card.
func NewCard(rec domain.Recommendation, dir domain.Direction) Card {
	icon, label := WeatherDisplay(rec.Weather)
	optimal := rec.TrafficStatus == domain.TrafficOptimal
	shadow := "shadow-card"
	if optimal {
		shadow = "shadow-optimal"
	}
	return Card{
		Direction:       dir,
		Heading:         DirectionHeading(dir),
		BestTime:        rec.BestTime,
		ETA:             rec.ETA,
		ETALabel:        fmt.Sprintf("%d min", rec.ETA),
		ConfidenceLabel: fmt.Sprintf("%d%% confident", rec.Confidence),
		TrafficStatus:   rec.TrafficStatus,
		TrafficLabel:    TrafficLabel(rec.TrafficStatus),
		BadgeVariant:    BadgeVariant(rec.TrafficStatus),
		Emphasized:      optimal,
		ShadowClass:     shadow,
		GradientClass:   "bg-gradient-" + string(rec.TrafficStatus),
		Congested:       rec.TrafficStatus == domain.TrafficCongested,
		WeatherIcon:     icon,
		WeatherLabel:    label,
	}
}
