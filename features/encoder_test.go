package features

import (
	"testing"

	"trip-server/catalog"
)

func TestLabelEncoder_CodesFollowAlphabeticalOrder(t *testing.T) {
	// Setup
	enc := NewLabelEncoder([]string{"waterfall", "temple", "lake_dam", "temple"})

	// Assert
	expected := []string{"lake_dam", "temple", "waterfall"}
	classes := enc.Classes()
	if len(classes) != len(expected) {
		t.Fatalf("Expected %d classes, got %d", len(expected), len(classes))
	}
	for i, want := range expected {
		if classes[i] != want {
			t.Errorf("Expected class %d to be %s, got %s", i, want, classes[i])
		}
		code, err := enc.Transform(want)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if code != i {
			t.Errorf("Expected code %d for %s, got %d", i, want, code)
		}
	}
}

func TestLabelEncoder_StableAcrossInputOrder(t *testing.T) {
	// Setup: same universe, different input order
	a := NewLabelEncoder([]string{"Monday", "Sunday", "Friday"})
	b := NewLabelEncoder([]string{"Friday", "Monday", "Sunday"})

	for _, label := range []string{"Friday", "Monday", "Sunday"} {
		codeA, _ := a.Transform(label)
		codeB, _ := b.Transform(label)
		if codeA != codeB {
			t.Errorf("Expected stable code for %s, got %d and %d", label, codeA, codeB)
		}
	}
}

func TestLabelEncoder_UnknownLabel(t *testing.T) {
	enc := NewLabelEncoder([]string{"temple"})

	if _, err := enc.Transform("castle"); err == nil {
		t.Fatalf("Expected an error for an unknown label, got nil")
	}
}

func TestNewEncoders_UniversesFromCatalog(t *testing.T) {
	// Setup
	cat := catalog.NewDefaultCatalog()
	encoders := NewEncoders(cat)

	// Assert: category universe is the fixed five labels
	expectedCategories := []string{"lake_dam", "memorial_park", "natural_scenic", "temple", "waterfall"}
	got := encoders.Category.Classes()
	if len(got) != len(expectedCategories) {
		t.Fatalf("Expected %d categories, got %d", len(expectedCategories), len(got))
	}
	for i, want := range expectedCategories {
		if got[i] != want {
			t.Errorf("Expected category %d to be %s, got %s", i, want, got[i])
		}
	}

	// Weekday universe holds all seven names
	if len(encoders.Weekday.Classes()) != 7 {
		t.Errorf("Expected 7 weekday classes, got %d", len(encoders.Weekday.Classes()))
	}

	// Every catalog title is encodable
	for _, title := range cat.Titles() {
		if _, err := encoders.Place.Transform(title); err != nil {
			t.Errorf("Expected title %q to be encodable, got %v", title, err)
		}
	}

	// Holiday universe includes the fallback classifications
	for _, label := range []string{"Not a holiday", "Weekend", "Republic Day"} {
		if _, err := encoders.Holiday.Transform(label); err != nil {
			t.Errorf("Expected holiday label %q to be encodable, got %v", label, err)
		}
	}
}
