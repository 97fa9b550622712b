// Package history shapes stored description records for listing, searching
// and CSV export. Filtering works on an already-fetched recent window, never
// against the store.
package history

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yourhome24/expose/internal/listing"
	"github.com/yourhome24/expose/internal/store"
)

// fold lowercases a string and strips diacritical marks so that "Köln"
// matches "koln". German input makes plain ToLower insufficient.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, s)
	return strings.ToLower(folded)
}

// payload decodes a record's stored fact sheet. Malformed payloads yield a
// zero listing rather than an error; export and search treat every field as
// optional.
func payload(rec store.Record) listing.Listing {
	var l listing.Listing
	if len(rec.Payload) == 0 {
		return l
	}
	if err := json.Unmarshal(rec.Payload, &l); err != nil {
		return listing.Listing{}
	}
	return l
}

// haystack concatenates the searchable fields of a record.
func haystack(rec store.Record) string {
	p := payload(rec)
	parts := []string{
		rec.Text,
		p.City,
		p.PropertyType,
		formatFloat(p.AreaM2),
		formatInt(p.Bedrooms),
		formatInt(p.Bathrooms),
		formatInt(p.YearBuilt),
	}
	return fold(strings.Join(parts, " "))
}

// Search returns the records whose haystack contains needle,
// case- and diacritic-insensitively. An empty needle matches everything.
func Search(records []store.Record, needle string) []store.Record {
	needle = fold(strings.TrimSpace(needle))
	if needle == "" {
		return records
	}
	var out []store.Record
	for _, rec := range records {
		if strings.Contains(haystack(rec), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterBy keeps records whose payload matches city and propertyType
// exactly. Empty filter values match everything.
func FilterBy(records []store.Record, city, propertyType string) []store.Record {
	if city == "" && propertyType == "" {
		return records
	}
	var out []store.Record
	for _, rec := range records {
		p := payload(rec)
		if city != "" && p.City != city {
			continue
		}
		if propertyType != "" && p.PropertyType != propertyType {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// formatFloat renders a positive number without trailing zeros; zero means
// the field was absent and renders empty.
func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
