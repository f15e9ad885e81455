package catalog

import "trip-server/models"

// DefaultPlaces returns the built-in Rourkela attraction set. The factors
// match the data the crowd model was trained on.
func DefaultPlaces() []models.Place {
	return []models.Place{
		{ID: "religious_1", Title: "Hanuman Vatika", Category: models.CategoryTemple, Lat: 22.2496, Lng: 84.8820, PlaceFactor: 1.20, HasCoords: true},
		{ID: "religious_2", Title: "Vedvyas Temple", Category: models.CategoryTemple, Lat: 22.2691, Lng: 84.8089, PlaceFactor: 1.15, HasCoords: true},
		{ID: "park_1", Title: "Indira Gandhi Park", Category: models.CategoryMemorialPark, Lat: 22.2336, Lng: 84.8525, PlaceFactor: 1.25, HasCoords: true},
		{ID: "religious_3", Title: "Vaishno Devi Temple, Rourkela", Category: models.CategoryTemple, Lat: 22.2254, Lng: 84.8617, PlaceFactor: 1.05, HasCoords: true},
		{ID: "religious_4", Title: "Jagannath Temple, Sector 3", Category: models.CategoryTemple, Lat: 22.2208, Lng: 84.8434, PlaceFactor: 0.98, HasCoords: true},
		{ID: "dam_1", Title: "Mandira Dam", Category: models.CategoryLakeDam, Lat: 22.1061, Lng: 84.6527, PlaceFactor: 1.20, HasCoords: true},
		{ID: "dam_2", Title: "Pitamahal Dam", Category: models.CategoryLakeDam, Lat: 22.2485, Lng: 84.7067, PlaceFactor: 1.05, HasCoords: true},
		{ID: "river_1", Title: "Koel Riverbank", Category: models.CategoryLakeDam, Lat: 22.2144, Lng: 84.8269, PlaceFactor: 0.95, HasCoords: true},
		{ID: "religious_5", Title: "Rani Sati Mandir", Category: models.CategoryTemple, Lat: 22.2319, Lng: 84.8645, PlaceFactor: 0.85, HasCoords: true},
		{ID: "religious_6", Title: "Ghoghar Temple", Category: models.CategoryTemple, Lat: 22.1852, Lng: 84.9217, PlaceFactor: 0.82, HasCoords: true},
		{ID: "scenic_1", Title: "Deodhar George", Category: models.CategoryNaturalScenic, Lat: 22.1380, Lng: 84.9474, PlaceFactor: 1.00, HasCoords: true},
		{ID: "picnic_1", Title: "Darjeeng Picnic Spot", Category: models.CategoryLakeDam, Lat: 22.0873, Lng: 84.7726, PlaceFactor: 0.95, HasCoords: true},
		{ID: "picnic_2", Title: "Ranighatra Picnic Spot", Category: models.CategoryLakeDam, Lat: 22.3041, Lng: 84.9098, PlaceFactor: 0.90, HasCoords: true},
		{ID: "waterfall_1", Title: "Sitakund Waterfall", Category: models.CategoryWaterfall, Lat: 22.1527, Lng: 84.7891, PlaceFactor: 0.95, HasCoords: true},
		{ID: "waterfall_2", Title: "Mirigikhoj Waterfall", Category: models.CategoryWaterfall, Lat: 22.3316, Lng: 84.7452, PlaceFactor: 0.85, HasCoords: true},
	}
}
