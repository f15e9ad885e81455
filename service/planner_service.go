package service

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"trip-server/catalog"
	"trip-server/config"
	"trip-server/dao/redis"
	"trip-server/geo"
	"trip-server/models"
	"trip-server/predict"
	"trip-server/schedule"
	"trip-server/weather"
)

// slotsPerPlace is how many visit slots each nearby place contributes to the
// candidate pool.
const slotsPerPlace = 2

// PlanRequest is a validated request for a one-day itinerary. Validation
// happens at the HTTP boundary; the service assumes coordinates are in range.
type PlanRequest struct {
	Lat           float64
	Lng           float64
	Date          time.Time
	RadiusKm      float64
	MaxStops      int
	StartHour     int
	EndHour       int
	IncludeNearby bool
}

// PlannerService runs the full itinerary pipeline: nearby discovery, crowd
// scoring, greedy selection and proximity ordering. Each request works on its
// own candidate state; the only shared data the service touches is immutable
// after construction plus the Redis cache.
type PlannerService struct {
	catalog   *catalog.Catalog
	finder    *geo.Finder
	predictor *predict.Predictor
	weather   *weather.Service
	placeDao  *redis.RedisPlaceDAO
}

// NewPlannerService constructs a PlannerService with its dependencies.
func NewPlannerService(
	cat *catalog.Catalog,
	finder *geo.Finder,
	predictor *predict.Predictor,
	weatherService *weather.Service,
	placeDao *redis.RedisPlaceDAO) *PlannerService {

	return &PlannerService{
		catalog:   cat,
		finder:    finder,
		predictor: predictor,
		weather:   weatherService,
		placeDao:  placeDao,
	}
}

// PlanDay builds a day plan for the request. A request that yields no
// feasible stop returns an empty schedule with the weather summary, not an
// error.
func (s *PlannerService) PlanDay(req PlanRequest) (*models.DayPlan, error) {
	req = s.applyDefaults(req)

	signature := planSignature(req)
	if cached, err := s.placeDao.GetDayPlan(signature); err == nil && cached != nil {
		log.Printf("[PlannerService] Serving cached day plan %s", signature)
		return cached, nil
	}

	report := s.weather.ReportFor(req.Lat, req.Lng, req.Date, 1)
	summary := weather.SummaryFor(report, req.Date)

	nearby := s.finder.FindNearby(req.Lat, req.Lng, req.RadiusKm, config.DEFAULT_NEARBY_LIMIT)

	candidates := s.collectCandidates(nearby, req, report)

	// Candidate generation order: strictly increasing clock time, best score
	// first within the same slot.
	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].Time.Equal(candidates[j].Time) {
			return candidates[i].Time.Before(candidates[j].Time)
		}
		return candidates[i].Score > candidates[j].Score
	})

	travelFn := func(a, b models.Place) *int {
		return geo.TravelMinutes(a, b, config.DEFAULT_TRAVEL_SPEED_KMH)
	}
	chosen := schedule.Select(candidates, config.DEFAULT_DWELL_MINUTES, travelFn, req.MaxStops)

	stops := s.assembleStops(chosen, req.Lat, req.Lng, travelFn)

	plan := &models.DayPlan{
		PlanID:         uuid.NewString(),
		Date:           req.Date.Format("2006-01-02"),
		Center:         models.Center{Lat: req.Lat, Lng: req.Lng},
		WeatherSummary: summary,
		Schedule:       stops,
	}
	if req.IncludeNearby {
		plan.NearbyPlaces = toNearbyPlaces(nearby)
	}

	if err := s.placeDao.SetDayPlan(signature, plan); err != nil {
		log.Printf("[PlannerService] Failed to cache day plan: %v", err)
	}
	return plan, nil
}

// PredictCrowd estimates the crowd level for one place and hour, serving from
// the prediction cache when possible.
func (s *PlannerService) PredictCrowd(ref string, date time.Time, hour int) (*models.Prediction, error) {
	place, err := s.catalog.Resolve(ref)
	if err != nil {
		return nil, err
	}
	visitTime := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	dateStr := visitTime.Format("2006-01-02")

	if cached, err := s.placeDao.GetPrediction(place.ID, dateStr, hour); err == nil && cached != nil {
		return cached, nil
	}

	report := s.weather.ReportFor(place.Lat, place.Lng, visitTime, 1)
	sample := weather.SampleAt(report, visitTime)

	prediction, err := s.predictor.Predict(place.Title, visitTime, sample)
	if err != nil {
		return nil, err
	}

	if err := s.placeDao.SetPrediction(place.ID, dateStr, hour, prediction); err != nil {
		log.Printf("[PlannerService] Failed to cache prediction for %s: %v", place.ID, err)
	}
	return prediction, nil
}

// GetNearbyPlaces serves the Redis-indexed radius query for the API surface.
func (s *PlannerService) GetNearbyPlaces(lat, lng, radiusKm float64) ([]models.NearbyPlace, error) {
	return s.placeDao.GetNearbyPlaces(lat, lng, radiusKm)
}

// applyDefaults fills unset fields. The radius is NOT defaulted here: a
// non-positive radius legitimately yields an empty candidate set, and the
// HTTP boundary substitutes the default when the parameter is absent.
func (s *PlannerService) applyDefaults(req PlanRequest) PlanRequest {
	if req.MaxStops <= 0 {
		req.MaxStops = config.DEFAULT_MAX_STOPS
	}
	if req.StartHour == 0 {
		req.StartHour = config.OPERATING_HOUR_START + 1
	}
	if req.EndHour == 0 {
		req.EndHour = config.OPERATING_HOUR_END
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	return req
}

// collectCandidates scores every operating hour for every nearby place and
// keeps the best slots per place. A scoring failure drops only that slot.
func (s *PlannerService) collectCandidates(nearby []geo.Nearby, req PlanRequest, report *models.WeatherReport) []models.CandidateVisit {
	var candidates []models.CandidateVisit
	dateStr := req.Date.Format("2006-01-02")

	for _, n := range nearby {
		var slots []models.CandidateVisit
		for hour := req.StartHour; hour <= req.EndHour; hour++ {
			slotTime := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
				hour, 0, 0, 0, req.Date.Location())

			prediction, err := s.predictionFor(n.Place, slotTime, dateStr, hour, report)
			if err != nil {
				log.Printf("[PlannerService] Skipping %s @ %02d:00: %v", n.Place.Title, hour, err)
				continue
			}

			slots = append(slots, models.CandidateVisit{
				Place:      n.Place,
				Time:       slotTime,
				CrowdLevel: prediction.CrowdLevel,
				Score:      100 - prediction.CrowdLevel,
				Reasons:    slotReasons(prediction.CrowdLevel, n.DistanceKm),
			})
		}

		// Best-scoring slots win; stable sort keeps earlier hours ahead on
		// ties.
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].Score > slots[j].Score
		})
		if len(slots) > slotsPerPlace {
			slots = slots[:slotsPerPlace]
		}
		candidates = append(candidates, slots...)
	}
	return candidates
}

// predictionFor checks the cache before scoring a slot.
func (s *PlannerService) predictionFor(place models.Place, slotTime time.Time, dateStr string, hour int, report *models.WeatherReport) (*models.Prediction, error) {
	if cached, err := s.placeDao.GetPrediction(place.ID, dateStr, hour); err == nil && cached != nil {
		return cached, nil
	}

	sample := weather.SampleAt(report, slotTime)
	prediction, err := s.predictor.Predict(place.Title, slotTime, sample)
	if err != nil {
		return nil, err
	}
	if err := s.placeDao.SetPrediction(place.ID, dateStr, hour, prediction); err != nil {
		log.Printf("[PlannerService] Failed to cache prediction for %s: %v", place.ID, err)
	}
	return prediction, nil
}

// assembleStops orders the chosen visits by proximity from the request center
// and annotates per-leg travel minutes. Travel times are recomputed from the
// reordered adjacency; values from the selection phase are discarded.
func (s *PlannerService) assembleStops(chosen []models.CandidateVisit, startLat, startLng float64, travelFn schedule.TravelTimeFn) []models.ScheduleStop {
	if len(chosen) == 0 {
		return []models.ScheduleStop{}
	}

	places := make([]models.Place, len(chosen))
	for i, c := range chosen {
		places[i] = c.Place
	}
	ordered := schedule.Order(places, startLat, startLng)

	orderIndex := make(map[string]int, len(ordered))
	for i, p := range ordered {
		orderIndex[p.ID] = i
	}
	sort.SliceStable(chosen, func(i, j int) bool {
		oi, oj := orderIndex[chosen[i].Place.ID], orderIndex[chosen[j].Place.ID]
		if oi != oj {
			return oi < oj
		}
		return chosen[i].Time.Before(chosen[j].Time)
	})

	stops := make([]models.ScheduleStop, 0, len(chosen))
	for i, c := range chosen {
		note := "Good trade-off"
		if len(c.Reasons) > 0 {
			note = c.Reasons[0]
		}
		stop := models.ScheduleStop{
			Order:      i + 1,
			Time:       c.Time.Format("03:04 PM"),
			Place:      c.Place.Title,
			CrowdLevel: c.CrowdLevel,
			Score:      c.Score,
			Note:       note,
		}
		if i > 0 {
			stop.TravelMinFromPrev = travelFn(chosen[i-1].Place, c.Place)
		}
		stops = append(stops, stop)
	}
	return stops
}

func slotReasons(crowdLevel int, distanceKm float64) []string {
	reasons := []string{fmt.Sprintf("~%d%% expected crowd", crowdLevel)}
	if crowdLevel <= 30 {
		reasons = append(reasons, "Quiet slot")
	}
	reasons = append(reasons, fmt.Sprintf("%.1f km away", distanceKm))
	return reasons
}

func toNearbyPlaces(nearby []geo.Nearby) []models.NearbyPlace {
	out := make([]models.NearbyPlace, 0, len(nearby))
	for _, n := range nearby {
		out = append(out, models.NearbyPlace{
			ID:         n.Place.ID,
			Title:      n.Place.Title,
			Lat:        n.Place.Lat,
			Lng:        n.Place.Lng,
			DistanceKm: n.DistanceKm,
		})
	}
	return out
}

func planSignature(req PlanRequest) string {
	return fmt.Sprintf("%s_%.4f_%.4f_%.1f_%d",
		req.Date.Format("2006-01-02"), req.Lat, req.Lng, req.RadiusKm, req.MaxStops)
}
