package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/commutepro/internal/domain"
)

func toOffice() domain.Recommendation {
	return domain.Recommendation{BestTime: "08:45", ETA: 28, TrafficStatus: domain.TrafficOptimal, Weather: domain.WeatherSunny, Confidence: 92}
}

func toHome() domain.Recommendation {
	return domain.Recommendation{BestTime: "18:15", ETA: 35, TrafficStatus: domain.TrafficModerate, Weather: domain.WeatherRainy, Confidence: 87}
}

func TestTrafficLabel(t *testing.T) {
	cases := map[domain.TrafficStatus]string{
		domain.TrafficOptimal:   "Clear Roads",
		domain.TrafficModerate:  "Light Traffic",
		domain.TrafficCongested: "Heavy Traffic",
		"gridlock":              "Unknown",
		"":                      "Unknown",
	}
	for status, want := range cases {
		assert.Equal(t, want, TrafficLabel(status), "status %q", status)
	}
}

func TestBadgeVariant(t *testing.T) {
	assert.Equal(t, "optimal", BadgeVariant(domain.TrafficOptimal))
	assert.Equal(t, "moderate", BadgeVariant(domain.TrafficModerate))
	assert.Equal(t, "congested", BadgeVariant(domain.TrafficCongested))
	assert.Equal(t, "secondary", BadgeVariant("gridlock"))
}

func TestWeatherDisplay(t *testing.T) {
	icon, label := WeatherDisplay(domain.WeatherSunny)
	assert.Equal(t, "sun", icon)
	assert.Equal(t, "Clear weather", label)

	icon, label = WeatherDisplay(domain.WeatherRainy)
	assert.Equal(t, "cloud-rain", icon)
	assert.Equal(t, "Rain expected", label)
}

func TestNewCard_toOffice(t *testing.T) {
	c := NewCard(toOffice(), domain.DirectionToOffice)

	assert.Equal(t, "To Office", c.Heading)
	assert.Equal(t, "08:45", c.BestTime)
	assert.Equal(t, "28 min", c.ETALabel)
	assert.Equal(t, "92% confident", c.ConfidenceLabel)
	assert.Equal(t, "Clear Roads", c.TrafficLabel)
	assert.True(t, c.Emphasized)
	assert.Equal(t, "shadow-optimal", c.ShadowClass)
	assert.Equal(t, "bg-gradient-optimal", c.GradientClass)
	assert.False(t, c.Congested)
	assert.Equal(t, "Clear weather", c.WeatherLabel)
}

func TestNewCard_toHome(t *testing.T) {
	c := NewCard(toHome(), domain.DirectionToHome)

	assert.Equal(t, "To Home", c.Heading)
	assert.Equal(t, "35 min", c.ETALabel)
	assert.Equal(t, "Light Traffic", c.TrafficLabel)
	assert.Equal(t, "moderate", c.BadgeVariant)
	assert.False(t, c.Emphasized)
	assert.Equal(t, "shadow-card", c.ShadowClass)
	assert.Equal(t, "Rain expected", c.WeatherLabel)
	assert.Equal(t, "cloud-rain", c.WeatherIcon)
}

func TestNewCard_congested(t *testing.T) {
	rec := toHome()
	rec.TrafficStatus = domain.TrafficCongested

	c := NewCard(rec, domain.DirectionToHome)

	assert.True(t, c.Congested)
	assert.Equal(t, "Heavy Traffic", c.TrafficLabel)
	assert.False(t, c.Emphasized)
}

func TestNewCard_isPure(t *testing.T) {
	for _, dir := range []domain.Direction{domain.DirectionToOffice, domain.DirectionToHome} {
		for _, rec := range []domain.Recommendation{toOffice(), toHome()} {
			assert.Equal(t, NewCard(rec, dir), NewCard(rec, dir))
		}
	}
}
