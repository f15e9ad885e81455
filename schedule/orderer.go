package schedule

import (
	"trip-server/geo"
	"trip-server/models"
)

// Order re-sequences places with a nearest-neighbor tour from the start
// coordinates: repeatedly step to the closest unvisited place. The output is
// always a permutation of the input; places without coordinates keep their
// input order at the end of the tour. Like any nearest-neighbor heuristic
// this can produce suboptimal tours, e.g. zig-zagging between two clusters
// that are comparably near the start.
func Order(places []models.Place, startLat, startLng float64) []models.Place {
	var remaining []models.Place
	var noCoords []models.Place
	for _, p := range places {
		if p.HasCoords {
			remaining = append(remaining, p)
		} else {
			noCoords = append(noCoords, p)
		}
	}

	route := make([]models.Place, 0, len(places))
	curLat, curLng := startLat, startLng
	for len(remaining) > 0 {
		best := 0
		bestDist := geo.HaversineKm(curLat, curLng, remaining[0].Lat, remaining[0].Lng)
		for i := 1; i < len(remaining); i++ {
			d := geo.HaversineKm(curLat, curLng, remaining[i].Lat, remaining[i].Lng)
			if d < bestDist {
				best = i
				bestDist = d
			}
		}
		next := remaining[best]
		route = append(route, next)
		curLat, curLng = next.Lat, next.Lng
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return append(route, noCoords...)
}
