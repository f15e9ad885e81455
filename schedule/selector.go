package schedule

import (
	"sort"

	"trip-server/models"
)

// TravelTimeFn estimates travel minutes between two places, nil when either
// lacks coordinates (treated as zero additional minutes).
type TravelTimeFn func(a, b models.Place) *int

// Select picks a feasible subset of candidates, best score first. The walk is
// greedy: the top candidate is always accepted, and each later candidate is
// accepted only if the time gap to the most recently accepted one covers the
// dwell time plus travel time. Skipped candidates are discarded for good;
// there is no backtracking, so the result is feasible but not globally
// optimal.
// Equal scores keep their input order. The returned slice is in decision
// order, not clock order.
func Select(candidates []models.CandidateVisit, dwellMinutes int, travelTime TravelTimeFn, maxStops int) []models.CandidateVisit {
	if len(candidates) == 0 || maxStops <= 0 {
		return nil
	}

	byScore := make([]models.CandidateVisit, len(candidates))
	copy(byScore, candidates)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score > byScore[j].Score
	})

	var chosen []models.CandidateVisit
	for _, c := range byScore {
		if len(chosen) >= maxStops {
			break
		}
		if len(chosen) == 0 {
			chosen = append(chosen, c)
			continue
		}

		prev := chosen[len(chosen)-1]
		travelMin := 0
		if tm := travelTime(prev.Place, c.Place); tm != nil {
			travelMin = *tm
		}
		gapMin := c.Time.Sub(prev.Time).Minutes()
		if gapMin >= float64(dwellMinutes+travelMin) {
			chosen = append(chosen, c)
		}
	}
	return chosen
}
