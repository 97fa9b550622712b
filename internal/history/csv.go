package history

import (
	"strings"
	"time"

	"github.com/yourhome24/expose/internal/store"
)

// CSVFilename is the download name offered by the export endpoint.
const CSVFilename = "yourhome24-history.csv"

// csvHeader is the fixed 10-column projection of a description record.
var csvHeader = []string{
	"id",
	"created_at",
	"city",
	"property_type",
	"area_m2",
	"bedrooms",
	"bathrooms",
	"year_built",
	"features",
	"text",
}

// The delimiter is a semicolon: German spreadsheet locales treat the comma
// as a decimal separator.
const csvDelimiter = ";"

// ExportCSV renders records as a semicolon-delimited CSV document, header
// first, one row per record, rows joined by \n. Absent payload fields render
// as empty strings, not the prompt placeholder.
func ExportCSV(records []store.Record) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(csvHeader, csvDelimiter))

	for _, rec := range records {
		p := payload(rec)
		fields := []string{
			rec.ID,
			rec.CreatedAt.UTC().Format(time.RFC3339),
			p.City,
			p.PropertyType,
			formatFloat(p.AreaM2),
			formatInt(p.Bedrooms),
			formatInt(p.Bathrooms),
			formatInt(p.YearBuilt),
			strings.Join(p.Features, " | "),
			rec.Text,
		}
		for i, f := range fields {
			fields[i] = escapeCSVField(f)
		}
		lines = append(lines, strings.Join(fields, csvDelimiter))
	}

	return strings.Join(lines, "\n")
}

// escapeCSVField wraps a field in double quotes and doubles embedded quotes
// whenever the field contains a quote, the delimiter or a newline.
func escapeCSVField(s string) string {
	if !strings.ContainsAny(s, `";`+"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
