package catalog

import (
	"sort"
	"time"

	"trip-server/models"
)

// Static reference tables. These mirror the data the crowd model was trained
// against; changing them invalidates the model contract.

var categoryBase = map[models.Category]float64{
	models.CategoryTemple:        0.80,
	models.CategoryMemorialPark:  0.70,
	models.CategoryLakeDam:       0.65,
	models.CategoryWaterfall:     0.60,
	models.CategoryNaturalScenic: 0.62,
}

// weeklyFactor is indexed Monday=0 .. Sunday=6.
var weeklyFactor = [7]float64{0.82, 0.86, 0.90, 0.95, 1.05, 1.28, 1.32}

var monthFactor = map[int]float64{
	1: 1.18, 2: 1.15, 3: 1.05, 4: 0.90, 5: 0.80, 6: 0.85,
	7: 0.92, 8: 0.95, 9: 0.96, 10: 1.05, 11: 1.18, 12: 1.22,
}

// hourCurve maps category -> operating hour -> popularity multiplier.
// Curves are defined for the operating window [7,20] only.
var hourCurve = map[models.Category]map[int]float64{
	models.CategoryTemple: {
		7: 0.80, 8: 0.95, 9: 0.75, 10: 0.60, 11: 0.55, 12: 0.60, 13: 0.65,
		14: 0.70, 15: 0.75, 16: 0.85, 17: 0.95, 18: 1.00, 19: 0.90, 20: 0.70,
	},
	models.CategoryMemorialPark: {
		7: 0.30, 8: 0.55, 9: 0.75, 10: 0.85, 11: 0.90, 12: 0.80, 13: 0.70,
		14: 0.70, 15: 0.75, 16: 0.90, 17: 1.00, 18: 0.90, 19: 0.65, 20: 0.45,
	},
	models.CategoryLakeDam: {
		7: 0.20, 8: 0.40, 9: 0.65, 10: 0.80, 11: 0.90, 12: 0.85, 13: 0.75,
		14: 0.70, 15: 0.75, 16: 0.90, 17: 1.00, 18: 0.95, 19: 0.70, 20: 0.50,
	},
	models.CategoryWaterfall: {
		7: 0.10, 8: 0.20, 9: 0.40, 10: 0.60, 11: 0.80, 12: 0.90, 13: 0.95,
		14: 1.00, 15: 0.90, 16: 0.75, 17: 0.50, 18: 0.30, 19: 0.15, 20: 0.05,
	},
	models.CategoryNaturalScenic: {
		7: 0.35, 8: 0.60, 9: 0.80, 10: 0.90, 11: 0.95, 12: 0.85, 13: 0.75,
		14: 0.75, 15: 0.85, 16: 1.00, 17: 0.95, 18: 0.85, 19: 0.60, 20: 0.40,
	},
}

// holidayRules maps ISO date -> multipliers. Religious-category places get the
// second multiplier, everything else the first.
var holidayRules = map[string]models.HolidayRule{
	"2024-08-15": {Label: "Independence Day", NonReligiousMult: 1.15, ReligiousMult: 1.15},
	"2024-08-19": {Label: "Raksha Bandhan", NonReligiousMult: 1.05, ReligiousMult: 1.20},
	"2024-08-26": {Label: "Janmashtami", NonReligiousMult: 1.05, ReligiousMult: 1.25},
	"2024-09-14": {Label: "Nuakhai", NonReligiousMult: 1.20, ReligiousMult: 1.35},
	"2024-10-02": {Label: "Gandhi Jayanti", NonReligiousMult: 1.10, ReligiousMult: 1.10},
	"2024-10-31": {Label: "Diwali", NonReligiousMult: 1.08, ReligiousMult: 1.20},
	"2024-11-01": {Label: "Diwali", NonReligiousMult: 1.10, ReligiousMult: 1.22},
	"2024-11-02": {Label: "Diwali", NonReligiousMult: 1.08, ReligiousMult: 1.20},
	"2024-12-25": {Label: "Christmas", NonReligiousMult: 1.12, ReligiousMult: 1.10},
	"2025-01-26": {Label: "Republic Day", NonReligiousMult: 1.12, ReligiousMult: 1.12},
	"2025-07-07": {Label: "Rath Yatra", NonReligiousMult: 1.20, ReligiousMult: 1.40},
	"2025-08-09": {Label: "Raksha Bandhan", NonReligiousMult: 1.05, ReligiousMult: 1.20},
	"2025-08-15": {Label: "Independence Day", NonReligiousMult: 1.15, ReligiousMult: 1.15},
}

var seasonByMonth = map[int]string{
	1: "winter2", 2: "winter2", 3: "summer0", 4: "summer1", 5: "summer1",
	6: "monsoon0", 7: "monsoon1", 8: "monsoon2", 9: "post-monsoon",
	10: "post-monsoon", 11: "winter0", 12: "winter1",
}

var outdoorCategories = map[models.Category]bool{
	models.CategoryLakeDam:       true,
	models.CategoryMemorialPark:  true,
	models.CategoryWaterfall:     true,
	models.CategoryNaturalScenic: true,
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Catalog is the immutable place reference data. Every external reference
// (id or title) resolves to one canonical place at lookup time; the core only
// ever sees canonical places. Safe for concurrent reads after construction.
type Catalog struct {
	places []models.Place
	byKey  map[string]int // id and title both map into places
}

// NewCatalog builds a catalog from the given places. Both the id and the
// title of each place become lookup keys for the same canonical entry.
func NewCatalog(places []models.Place) *Catalog {
	c := &Catalog{
		places: make([]models.Place, len(places)),
		byKey:  make(map[string]int, len(places)*2),
	}
	copy(c.places, places)
	for i, p := range c.places {
		if p.ID != "" {
			c.byKey[p.ID] = i
		}
		if p.Title != "" {
			c.byKey[p.Title] = i
		}
	}
	return c
}

// NewDefaultCatalog returns a catalog with the built-in Rourkela attractions.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(DefaultPlaces())
}

// Resolve maps a place id or title to its canonical catalog entry.
func (c *Catalog) Resolve(ref string) (models.Place, error) {
	i, ok := c.byKey[ref]
	if !ok {
		return models.Place{}, &models.UnknownPlaceError{Ref: ref}
	}
	return c.places[i], nil
}

// Places returns the catalog entries in their load order.
func (c *Catalog) Places() []models.Place {
	out := make([]models.Place, len(c.places))
	copy(out, c.places)
	return out
}

// Titles returns every canonical place title, sorted.
func (c *Catalog) Titles() []string {
	titles := make([]string, 0, len(c.places))
	for _, p := range c.places {
		titles = append(titles, p.Title)
	}
	sort.Strings(titles)
	return titles
}

// Categories returns the fixed category universe, sorted.
func (c *Catalog) Categories() []string {
	cats := make([]string, 0, len(categoryBase))
	for cat := range categoryBase {
		cats = append(cats, string(cat))
	}
	sort.Strings(cats)
	return cats
}

// WeekdayNames returns the weekday label universe, Monday first.
func (c *Catalog) WeekdayNames() []string {
	return weekdayNames[:]
}

// HolidayLabels returns every holiday label plus the two fallback
// classifications, deduplicated.
func (c *Catalog) HolidayLabels() []string {
	seen := map[string]bool{"Not a holiday": true, "Weekend": true}
	labels := []string{"Not a holiday", "Weekend"}
	for _, rule := range holidayRules {
		if !seen[rule.Label] {
			seen[rule.Label] = true
			labels = append(labels, rule.Label)
		}
	}
	return labels
}

// Seasons returns the season bucket universe.
func (c *Catalog) Seasons() []string {
	seen := map[string]bool{}
	seasons := []string{}
	for _, s := range seasonByMonth {
		if !seen[s] {
			seen[s] = true
			seasons = append(seasons, s)
		}
	}
	sort.Strings(seasons)
	return seasons
}

// CategoryBase returns the intrinsic popularity weight for a category.
func (c *Catalog) CategoryBase(cat models.Category) float64 {
	return categoryBase[cat]
}

// WeekdayFactor returns the multiplier for a weekday (Monday=0 .. Sunday=6).
func (c *Catalog) WeekdayFactor(weekday int) float64 {
	return weeklyFactor[weekday]
}

// MonthFactor returns the multiplier for a month (1..12).
func (c *Catalog) MonthFactor(month int) float64 {
	return monthFactor[month]
}

// HourlyMultiplier returns the category curve value at the given hour.
// The curve is undefined outside [OperatingHourStart, OperatingHourEnd];
// callers must clamp before lookup.
func (c *Catalog) HourlyMultiplier(cat models.Category, hour int) (float64, bool) {
	curve, ok := hourCurve[cat]
	if !ok {
		return 0, false
	}
	m, ok := curve[hour]
	return m, ok
}

// IsOutdoor reports whether a category is weather-sensitive.
func (c *Catalog) IsOutdoor(cat models.Category) bool {
	return outdoorCategories[cat]
}

// IsReligious reports whether a category takes the religious holiday
// multiplier.
func (c *Catalog) IsReligious(cat models.Category) bool {
	return cat == models.CategoryTemple
}

// SeasonFor returns the season bucket for a month (1..12).
func (c *Catalog) SeasonFor(month int) string {
	return seasonByMonth[month]
}

// HolidayInfo classifies a date: exact-date holiday rule, else weekend, else
// an ordinary day with neutral multipliers.
func (c *Catalog) HolidayInfo(dateStr string, weekday int) models.HolidayRule {
	if rule, ok := holidayRules[dateStr]; ok {
		return rule
	}
	if weekday == 5 || weekday == 6 {
		return models.HolidayRule{Label: "Weekend", NonReligiousMult: 1.0, ReligiousMult: 1.0}
	}
	return models.HolidayRule{Label: "Not a holiday", NonReligiousMult: 1.0, ReligiousMult: 1.0}
}

// HolidayMultiplier resolves the effective multiplier for a date and
// category. Exact-date rules win; weekends get a mild boost (1.2 religious,
// 1.1 otherwise); ordinary weekdays are neutral.
func (c *Catalog) HolidayMultiplier(dateStr string, cat models.Category, weekday int) float64 {
	if rule, ok := holidayRules[dateStr]; ok {
		if c.IsReligious(cat) {
			return rule.ReligiousMult
		}
		return rule.NonReligiousMult
	}
	if weekday == 5 || weekday == 6 {
		if c.IsReligious(cat) {
			return 1.2
		}
		return 1.1
	}
	return 1.0
}

// CalendarFor derives the calendar context for a timestamp.
func (c *Catalog) CalendarFor(t time.Time) models.CalendarContext {
	weekday := (int(t.Weekday()) + 6) % 7 // time.Weekday is Sunday=0; we use Monday=0
	dateStr := t.Format("2006-01-02")
	rule := c.HolidayInfo(dateStr, weekday)
	return models.CalendarContext{
		Weekday:      weekday,
		WeekdayName:  weekdayNames[weekday],
		Month:        int(t.Month()),
		DayOfYear:    t.YearDay(),
		Season:       seasonByMonth[int(t.Month())],
		HolidayLabel: rule.Label,
	}
}
