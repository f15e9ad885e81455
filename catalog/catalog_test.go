package catalog

import (
	"testing"
	"time"

	"trip-server/models"
)

func TestCatalog_Resolve_ByIDAndTitle(t *testing.T) {
	// Setup
	cat := NewDefaultCatalog()

	// Act
	byID, errID := cat.Resolve("religious_1")
	byTitle, errTitle := cat.Resolve("Hanuman Vatika")

	// Assert
	if errID != nil {
		t.Fatalf("Expected no error resolving by id, got %v", errID)
	}
	if errTitle != nil {
		t.Fatalf("Expected no error resolving by title, got %v", errTitle)
	}
	if byID.ID != byTitle.ID {
		t.Errorf("Expected id and title to resolve the same place, got %s and %s", byID.ID, byTitle.ID)
	}
	if byID.Category != models.CategoryTemple {
		t.Errorf("Expected category temple, got %s", byID.Category)
	}
}

func TestCatalog_Resolve_Unknown(t *testing.T) {
	// Setup
	cat := NewDefaultCatalog()

	// Act
	_, err := cat.Resolve("Atlantis")

	// Assert
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}
	if _, ok := err.(*models.UnknownPlaceError); !ok {
		t.Errorf("Expected UnknownPlaceError, got %T", err)
	}
}

func TestCatalog_HolidayMultiplier(t *testing.T) {
	cat := NewDefaultCatalog()

	tests := []struct {
		name     string
		date     string
		category models.Category
		weekday  int
		expected float64
	}{
		// Exact-date rules win over the weekend fallback.
		{"Republic Day religious", "2025-01-26", models.CategoryTemple, 6, 1.12},
		{"Republic Day non-religious", "2025-01-26", models.CategoryMemorialPark, 6, 1.12},
		{"Nuakhai religious", "2024-09-14", models.CategoryTemple, 5, 1.35},
		{"Nuakhai non-religious", "2024-09-14", models.CategoryLakeDam, 5, 1.20},
		{"Plain Saturday religious", "2025-03-01", models.CategoryTemple, 5, 1.2},
		{"Plain Saturday non-religious", "2025-03-01", models.CategoryMemorialPark, 5, 1.1},
		{"Ordinary weekday", "2025-03-05", models.CategoryTemple, 2, 1.0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := cat.HolidayMultiplier(test.date, test.category, test.weekday)
			if got != test.expected {
				t.Errorf("Expected multiplier %v, got %v", test.expected, got)
			}
		})
	}
}

func TestCatalog_HolidayInfo_WeekendIsNeutral(t *testing.T) {
	cat := NewDefaultCatalog()

	// Act
	rule := cat.HolidayInfo("2025-03-01", 5)

	// Assert
	if rule.Label != "Weekend" {
		t.Errorf("Expected label 'Weekend', got %s", rule.Label)
	}
	if rule.NonReligiousMult != 1.0 || rule.ReligiousMult != 1.0 {
		t.Errorf("Expected neutral multipliers, got %v and %v", rule.NonReligiousMult, rule.ReligiousMult)
	}
}

func TestCatalog_CalendarFor(t *testing.T) {
	cat := NewDefaultCatalog()

	// 2025-01-26 is a Sunday and an exact-date holiday.
	ts := time.Date(2025, 1, 26, 18, 0, 0, 0, time.UTC)

	// Act
	cal := cat.CalendarFor(ts)

	// Assert
	if cal.Weekday != 6 {
		t.Errorf("Expected weekday 6 (Sunday), got %d", cal.Weekday)
	}
	if cal.WeekdayName != "Sunday" {
		t.Errorf("Expected weekday name Sunday, got %s", cal.WeekdayName)
	}
	if cal.Month != 1 {
		t.Errorf("Expected month 1, got %d", cal.Month)
	}
	if cal.DayOfYear != 26 {
		t.Errorf("Expected day of year 26, got %d", cal.DayOfYear)
	}
	if cal.Season != "winter2" {
		t.Errorf("Expected season winter2, got %s", cal.Season)
	}
	if cal.HolidayLabel != "Republic Day" {
		t.Errorf("Expected holiday label 'Republic Day', got %s", cal.HolidayLabel)
	}
}

func TestCatalog_HourlyMultiplier_OutsideOperatingWindow(t *testing.T) {
	cat := NewDefaultCatalog()

	if _, ok := cat.HourlyMultiplier(models.CategoryTemple, 3); ok {
		t.Errorf("Expected no curve value at hour 3")
	}
	if m, ok := cat.HourlyMultiplier(models.CategoryTemple, 18); !ok || m != 1.00 {
		t.Errorf("Expected temple curve 1.00 at hour 18, got %v (ok=%v)", m, ok)
	}
}

func TestCatalog_CategoryClassification(t *testing.T) {
	cat := NewDefaultCatalog()

	if cat.IsOutdoor(models.CategoryTemple) {
		t.Errorf("Expected temple to be indoor")
	}
	for _, c := range []models.Category{
		models.CategoryLakeDam, models.CategoryMemorialPark,
		models.CategoryWaterfall, models.CategoryNaturalScenic,
	} {
		if !cat.IsOutdoor(c) {
			t.Errorf("Expected %s to be outdoor", c)
		}
	}
	if !cat.IsReligious(models.CategoryTemple) {
		t.Errorf("Expected temple to be religious")
	}
	if cat.IsReligious(models.CategoryLakeDam) {
		t.Errorf("Expected lake_dam to be non-religious")
	}
}
