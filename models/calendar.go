package models

// HolidayRule carries the crowd multipliers for a named holiday date.
// Religious-category places get a separate multiplier from everything else.
type HolidayRule struct {
	Label            string
	NonReligiousMult float64
	ReligiousMult    float64
}

// CalendarContext is everything the feature builder derives from a date.
type CalendarContext struct {
	Weekday      int    // Monday=0 .. Sunday=6
	WeekdayName  string // "Monday" .. "Sunday"
	Month        int    // 1..12
	DayOfYear    int
	Season       string
	HolidayLabel string // named holiday, "Weekend" or "Not a holiday"
}
