package history

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yourhome24/expose/internal/store"
)

// splitCSVRow splits one row on unescaped semicolons and unescapes quoted
// fields, so tests can verify the round trip.
func splitCSVRow(t *testing.T, row string) []string {
	t.Helper()
	var fields []string
	var field strings.Builder
	inQuotes := false
	for i := 0; i < len(row); i++ {
		c := row[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(row) && row[i+1] == '"':
			field.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ';' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}

func TestExportCSV_HeaderAndColumns(t *testing.T) {
	out := ExportCSV(nil)

	want := "id;created_at;city;property_type;area_m2;bedrooms;bathrooms;year_built;features;text"
	if out != want {
		t.Errorf("expected bare header for no records, got %q", out)
	}
}

func TestExportCSV_RoundTripWithEscaping(t *testing.T) {
	rec := store.Record{
		ID:        "rec-1",
		CreatedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		Text:      `Top-Lage; direkt am "Finikoudes"-Strand`,
		Payload: json.RawMessage(`{
			"city":"Larnaca","property_type":"Apartment","area_m2":85.5,
			"bedrooms":2,"bathrooms":1,"year_built":2005,
			"features":["balcony","sea view"]
		}`),
	}

	out := ExportCSV([]store.Record{rec})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}

	row := lines[1]
	if !strings.Contains(row, `"Top-Lage; direkt am ""Finikoudes""-Strand"`) {
		t.Errorf("expected quoted field with doubled quotes, got %q", row)
	}

	fields := splitCSVRow(t, row)
	want := []string{
		"rec-1",
		"2025-03-01T10:30:00Z",
		"Larnaca",
		"Apartment",
		"85.5",
		"2",
		"1",
		"2005",
		"balcony | sea view",
		`Top-Lage; direkt am "Finikoudes"-Strand`,
	}
	if len(fields) != len(want) {
		t.Fatalf("expected %d logical fields, got %d: %v", len(want), len(fields), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d: expected %q, got %q", i, want[i], fields[i])
		}
	}
}

func TestExportCSV_MissingFieldsRenderEmpty(t *testing.T) {
	rec := store.Record{
		ID:        "rec-2",
		CreatedAt: time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
		Text:      "kurzer Text",
		Payload:   json.RawMessage(`{"city":"Larnaca"}`),
	}

	out := ExportCSV([]store.Record{rec})
	row := strings.Split(out, "\n")[1]
	fields := splitCSVRow(t, row)

	// area, bedrooms, bathrooms, year_built, features are absent: empty
	// strings, never the prompt placeholder.
	for _, idx := range []int{4, 5, 6, 7, 8} {
		if fields[idx] != "" {
			t.Errorf("field %d: expected empty string, got %q", idx, fields[idx])
		}
	}
	if strings.Contains(out, "—") {
		t.Error("CSV must not contain the prompt placeholder")
	}
}

func TestExportCSV_NewlineInText(t *testing.T) {
	rec := store.Record{
		ID:        "rec-3",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Text:      "Zeile eins\nZeile zwei",
		Payload:   json.RawMessage(`{}`),
	}

	out := ExportCSV([]store.Record{rec})
	if !strings.Contains(out, "\"Zeile eins\nZeile zwei\"") {
		t.Errorf("expected newline-containing field to be quoted, got %q", out)
	}
}
