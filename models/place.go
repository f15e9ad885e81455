package models

import "fmt"

// Category classifies an attraction. The set is fixed reference data; the
// crowd model was trained against exactly these labels.
type Category string

const (
	CategoryTemple        Category = "temple"
	CategoryMemorialPark  Category = "memorial_park"
	CategoryLakeDam       Category = "lake_dam"
	CategoryWaterfall     Category = "waterfall"
	CategoryNaturalScenic Category = "natural_scenic"
)

// Place is an immutable catalog entry for a tourist attraction.
type Place struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	PlaceFactor float64  `json:"place_factor"`
	HasCoords   bool     `json:"has_coords"`
}

func (p *Place) ToString() string {
	return fmt.Sprintf("Place(id=%s, title=%s, category=%s, lat=%f, lng=%f)",
		p.ID, p.Title, p.Category, p.Lat, p.Lng)
}
