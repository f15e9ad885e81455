package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trip-server/config"
	"trip-server/models"
	"trip-server/service"
)

const (
	LAT_QUERY_ARG       = "lat"
	LON_QUERY_ARG       = "lng"
	RADIUS_QUERY_ARG    = "radius"
	DATE_QUERY_ARG      = "date"
	HOUR_QUERY_ARG      = "hour"
	PLACE_QUERY_ARG     = "place"
	MAX_STOPS_QUERY_ARG = "max_stops"
	NEARBY_QUERY_ARG    = "include_nearby"
)

// PlanHandler serves the itinerary endpoints over the planner service.
type PlanHandler struct {
	plannerService *service.PlannerService
}

func NewPlanHandler(plannerService *service.PlannerService) *PlanHandler {
	return &PlanHandler{plannerService: plannerService}
}

// GetDayPlan handles GET /v1/plan/day
func (h *PlanHandler) GetDayPlan(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, lng, invalid := parseCoordinates(vals)
	if invalid != nil {
		http.Error(w, invalid.Error(), http.StatusBadRequest)
		return
	}

	req := service.PlanRequest{Lat: lat, Lng: lng, RadiusKm: config.DEFAULT_RADIUS_KM, IncludeNearby: true}

	if d := vals.Get(DATE_QUERY_ARG); d != "" {
		date, err := time.Parse("2006-01-02", d)
		if err != nil {
			http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
			return
		}
		req.Date = date
	}
	if rad := vals.Get(RADIUS_QUERY_ARG); rad != "" {
		radius, err := strconv.ParseFloat(rad, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		req.RadiusKm = radius
	}
	if ms := vals.Get(MAX_STOPS_QUERY_ARG); ms != "" {
		maxStops, err := strconv.Atoi(ms)
		if err != nil {
			http.Error(w, "Invalid argument "+MAX_STOPS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		req.MaxStops = maxStops
	}
	if nb := vals.Get(NEARBY_QUERY_ARG); nb != "" {
		req.IncludeNearby, _ = strconv.ParseBool(nb)
	}

	plan, err := h.plannerService.PlanDay(req)
	if err != nil {
		log.Println("Error building day plan:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, plan)
}

// GetPlacesNearby handles GET /v1/places/nearby
func (h *PlanHandler) GetPlacesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, lng, invalid := parseCoordinates(vals)
	if invalid != nil {
		http.Error(w, invalid.Error(), http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	nearby, err := h.plannerService.GetNearbyPlaces(lat, lng, radius)
	if err != nil {
		log.Println("Error loading nearby places:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, nearby)
}

// GetCrowdPrediction handles GET /v1/crowd/predict
func (h *PlanHandler) GetCrowdPrediction(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	place := vals.Get(PLACE_QUERY_ARG)
	if place == "" {
		http.Error(w, "Missing argument "+PLACE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	date := time.Now()
	if d := vals.Get(DATE_QUERY_ARG); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
			return
		}
		date = parsed
	}

	hour := date.Hour()
	if hs := vals.Get(HOUR_QUERY_ARG); hs != "" {
		parsed, err := strconv.Atoi(hs)
		if err != nil || parsed < 0 || parsed > 23 {
			http.Error(w, "Invalid argument "+HOUR_QUERY_ARG, http.StatusBadRequest)
			return
		}
		hour = parsed
	}

	prediction, err := h.plannerService.PredictCrowd(place, date, hour)
	if err != nil {
		var unknown *models.UnknownPlaceError
		if errors.As(err, &unknown) {
			http.Error(w, unknown.Error(), http.StatusNotFound)
			return
		}
		log.Println("Error predicting crowd level:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, prediction)
}

// Ping handles GET /ping
func (h *PlanHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

// parseCoordinates reads and range-checks lat/lng. Malformed coordinates are
// rejected here and never reach the core.
func parseCoordinates(vals url.Values) (lat, lng float64, invalid *models.InvalidInputError) {
	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		return 0, 0, &models.InvalidInputError{Field: LAT_QUERY_ARG, Reason: "not a number"}
	}
	lng, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		return 0, 0, &models.InvalidInputError{Field: LON_QUERY_ARG, Reason: "not a number"}
	}
	if lat < -90 || lat > 90 {
		return 0, 0, &models.InvalidInputError{Field: LAT_QUERY_ARG, Reason: "out of range"}
	}
	if lng < -180 || lng > 180 {
		return 0, 0, &models.InvalidInputError{Field: LON_QUERY_ARG, Reason: "out of range"}
	}
	return lat, lng, nil
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
