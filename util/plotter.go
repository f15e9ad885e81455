package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"trip-server/models"
)

// PlotDayRoute generates an HTML file rendering the ordered tour of a day
// plan, starting at the request center.
func PlotDayRoute(plan models.DayPlan) {
	byTitle := make(map[string]models.NearbyPlace, len(plan.NearbyPlaces))
	for _, n := range plan.NearbyPlaces {
		byTitle[n.Title] = n
	}

	// Route points in visiting order, center first.
	points := []opts.GeoData{
		{Name: "Start", Value: []float64{plan.Center.Lng, plan.Center.Lat}},
	}
	for _, stop := range plan.Schedule {
		n, ok := byTitle[stop.Place]
		if !ok {
			continue
		}
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("%d. %s", stop.Order, stop.Place),
			Value: []float64{n.Lng, n.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Day Route Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("DayRoute", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create("day_route_map.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Day route map generated: day_route_map.html")
}
