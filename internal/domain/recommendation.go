package domain

// TrafficStatus is the road condition reported for a trip.
type TrafficStatus string

const (
	TrafficOptimal   TrafficStatus = "optimal"
	TrafficModerate  TrafficStatus = "moderate"
	TrafficCongested TrafficStatus = "congested"
)

// Weather is the expected weather for a trip.
type Weather string

const (
	WeatherSunny Weather = "sunny"
	WeatherRainy Weather = "rainy"
)

// Direction is which leg of the commute a recommendation is for.
type Direction string

const (
	DirectionToOffice Direction = "toOffice"
	DirectionToHome   Direction = "toHome"
)

// Recommendation is a suggested departure for one direction of travel.
type Recommendation struct {
	// BestTime is the suggested departure time of day, "HH:MM".
	BestTime string `json:"best_time"`
	// ETA is the expected journey time in minutes.
	ETA           int           `json:"eta"`
	TrafficStatus TrafficStatus `json:"traffic_status"`
	Weather       Weather       `json:"weather"`
	// Confidence is a percentage, 0 to 100.
	Confidence int `json:"confidence"`
}
