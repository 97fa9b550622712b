// Package listing defines the property fact sheet submitted for description
// generation and its normalization rules. Defaults are applied once here, at
// the intake boundary, nowhere else.
package listing

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Defaults applied during Normalize when a field is absent.
const (
	DefaultPropertyType = "Apartment"
	DefaultBedrooms     = 2
	DefaultTone         = "Sachlich"
	DefaultAudience     = "Käufer"
	DefaultLanguage     = "de"
)

// Listing is a property fact sheet. Optional numeric fields are pointers so
// that an absent field can be told apart from an explicit zero.
type Listing struct {
	PropertyType string      `json:"property_type"`
	AreaM2       float64     `json:"area_m2"`
	Bedrooms     *int        `json:"bedrooms"`
	Bathrooms    *int        `json:"bathrooms"`
	City         string      `json:"city"`
	YearBuilt    *int        `json:"year_built"`
	Features     FeatureList `json:"features"`
	Highlights   string      `json:"highlights"`
	Tone         string      `json:"tone"`
	Audience     string      `json:"audience"`
	Language     string      `json:"language"`
}

// FeatureList accepts either a JSON array of strings or a single
// comma-separated string ("a, b ,c" and ["a","b","c"] normalize identically).
type FeatureList []string

func (f *FeatureList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*f = splitFeatures(items...)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*f = splitFeatures(joined)
		return nil
	}

	return fmt.Errorf("features must be a string or an array of strings")
}

// splitFeatures splits each value on commas, trims whitespace and drops
// empty entries. Duplicates are kept; order is preserved.
func splitFeatures(values ...string) []string {
	var out []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Normalize returns a copy with defaults applied for absent fields.
func (l Listing) Normalize() Listing {
	if strings.TrimSpace(l.PropertyType) == "" {
		l.PropertyType = DefaultPropertyType
	}
	if l.Bedrooms == nil {
		bedrooms := DefaultBedrooms
		l.Bedrooms = &bedrooms
	}
	if strings.TrimSpace(l.Tone) == "" {
		l.Tone = DefaultTone
	}
	if strings.TrimSpace(l.Audience) == "" {
		l.Audience = DefaultAudience
	}
	if strings.TrimSpace(l.Language) == "" {
		l.Language = DefaultLanguage
	}
	l.City = strings.TrimSpace(l.City)
	l.Highlights = strings.TrimSpace(l.Highlights)
	return l
}

// Validate checks the invariants that must hold before any external call:
// a finite positive area and a non-empty city. Call after Normalize.
func (l Listing) Validate() error {
	if math.IsNaN(l.AreaM2) || math.IsInf(l.AreaM2, 0) || l.AreaM2 <= 0 {
		return &FieldError{Field: "area_m2", Reason: "must be a finite number greater than 0"}
	}
	if l.City == "" {
		return &FieldError{Field: "city", Reason: "must not be empty"}
	}
	if l.PropertyType == "" {
		return &FieldError{Field: "property_type", Reason: "must not be empty"}
	}
	return nil
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
