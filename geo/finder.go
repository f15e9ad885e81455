package geo

import (
	"math"
	"sort"

	"trip-server/catalog"
	"trip-server/models"
)

// Nearby pairs a catalog place with its distance from a query center.
type Nearby struct {
	Place      models.Place
	DistanceKm float64
}

// Finder answers radius queries over the place catalog using great-circle
// distance. Stateless beyond the immutable catalog; safe for concurrent use.
type Finder struct {
	catalog *catalog.Catalog
}

// NewFinder constructs a Finder over the given catalog.
func NewFinder(cat *catalog.Catalog) *Finder {
	return &Finder{catalog: cat}
}

// FindNearby returns places within radiusKm of the center, ascending by
// distance, truncated to limit. Places without coordinates are skipped.
// A non-positive radius yields an empty result, not an error.
func (f *Finder) FindNearby(centerLat, centerLng, radiusKm float64, limit int) []Nearby {
	if radiusKm <= 0 {
		return nil
	}

	var results []Nearby
	for _, p := range f.catalog.Places() {
		if !p.HasCoords {
			continue
		}
		d := HaversineKm(p.Lat, p.Lng, centerLat, centerLng)
		if d <= radiusKm {
			results = append(results, Nearby{Place: p, DistanceKm: round2(d)})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// TravelMinutes estimates travel time between two places at the given speed,
// rounding up to whole minutes. Returns nil when either place lacks
// coordinates; callers treat that as zero additional minutes.
func TravelMinutes(a, b models.Place, speedKmh float64) *int {
	if !a.HasCoords || !b.HasCoords {
		return nil
	}
	if speedKmh < 1e-6 {
		speedKmh = 1e-6
	}
	km := HaversineKm(a.Lat, a.Lng, b.Lat, b.Lng)
	minutes := int(math.Ceil(km / speedKmh * 60.0))
	return &minutes
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
