package service

import (
	"context"
	"fmt"

	"github.com/pkordes/commutepro/internal/domain"
)

// Recommender produces a departure recommendation for one direction of the
// commute. A real implementation would consult traffic and weather sources;
// the only one shipped is StaticRecommender.
type Recommender interface {
	Recommend(ctx context.Context, dir domain.Direction, loc domain.LocationData, window domain.TimeRange) (domain.Recommendation, error)
}

// StaticRecommender ignores its inputs and returns fixed sample data.
type StaticRecommender struct{}

var staticRecommendations = map[domain.Direction]domain.Recommendation{
	domain.DirectionToOffice: {
		BestTime:      "08:45",
		ETA:           28,
		TrafficStatus: domain.TrafficOptimal,
		Weather:       domain.WeatherSunny,
		Confidence:    92,
	},
	domain.DirectionToHome: {
		BestTime:      "18:15",
		ETA:           35,
		TrafficStatus: domain.TrafficModerate,
		Weather:       domain.WeatherRainy,
		Confidence:    87,
	},
}

// Recommend returns the sample record for dir.
func (StaticRecommender) Recommend(_ context.Context, dir domain.Direction, _ domain.LocationData, _ domain.TimeRange) (domain.Recommendation, error) {
	rec, ok := staticRecommendations[dir]
	if !ok {
		return domain.Recommendation{}, fmt.Errorf("service.StaticRecommender.Recommend: unknown direction %q", dir)
	}
	return rec, nil
}

// DirectedRecommendation pairs a recommendation with the leg it is for.
type DirectedRecommendation struct {
	Direction      domain.Direction      `json:"direction"`
	Recommendation domain.Recommendation `json:"recommendation"`
}
