package features

import (
	"fmt"
	"sort"

	"trip-server/catalog"
)

// LabelEncoder assigns stable integer codes to a fixed label universe.
// Codes follow the alphabetical order of the universe and are frozen at
// construction: the same universe always yields the same codes, and nothing
// renumbers a code once assigned. Safe for concurrent reads.
type LabelEncoder struct {
	codes   map[string]int
	classes []string
}

// NewLabelEncoder fits an encoder over the given labels. Duplicates are
// collapsed; ordering of the input does not matter.
func NewLabelEncoder(labels []string) *LabelEncoder {
	seen := make(map[string]bool, len(labels))
	classes := make([]string, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	return &LabelEncoder{codes: codes, classes: classes}
}

// Transform returns the code for a label.
func (e *LabelEncoder) Transform(label string) (int, error) {
	code, ok := e.codes[label]
	if !ok {
		return 0, fmt.Errorf("label %q not in encoder universe", label)
	}
	return code, nil
}

// Classes returns the encoded universe in code order.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Encoders bundles the categorical encoders used by the feature builder.
type Encoders struct {
	Place    *LabelEncoder
	Category *LabelEncoder
	Weekday  *LabelEncoder
	Holiday  *LabelEncoder
	Season   *LabelEncoder
}

// NewEncoders fits all categorical encoders from the catalog's universes.
func NewEncoders(cat *catalog.Catalog) *Encoders {
	return &Encoders{
		Place:    NewLabelEncoder(cat.Titles()),
		Category: NewLabelEncoder(cat.Categories()),
		Weekday:  NewLabelEncoder(cat.WeekdayNames()),
		Holiday:  NewLabelEncoder(cat.HolidayLabels()),
		Season:   NewLabelEncoder(cat.Seasons()),
	}
}
