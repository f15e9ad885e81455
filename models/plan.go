package models

import "time"

// CandidateVisit is one scored (place, time) slot considered by the selector.
type CandidateVisit struct {
	Place      Place     `json:"place"`
	Time       time.Time `json:"time"`
	CrowdLevel int       `json:"crowd_level"`
	Score      int       `json:"score"`
	Reasons    []string  `json:"reasons"`
}

// ScheduleStop is one entry of a finished day plan.
type ScheduleStop struct {
	Order             int     `json:"order"`
	Time              string  `json:"time"` // "03:04 PM"
	Place             string  `json:"place"`
	CrowdLevel        int     `json:"crowd_level"`
	Score             int     `json:"score"`
	Note              string  `json:"note"`
	TravelMinFromPrev *int    `json:"travel_min_from_prev,omitempty"`
}

// NearbyPlace pairs a catalog place with its distance from the request center.
type NearbyPlace struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DistanceKm float64 `json:"distance_km"`
}

// Center holds the request's center coordinates.
type Center struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DayPlan is the final itinerary returned to the caller.
type DayPlan struct {
	PlanID         string         `json:"plan_id"`
	Date           string         `json:"date"` // "2006-01-02"
	Center         Center         `json:"center"`
	WeatherSummary string         `json:"weather_summary"`
	Schedule       []ScheduleStop `json:"schedule"`
	NearbyPlaces   []NearbyPlace  `json:"nearby_places,omitempty"`
}
