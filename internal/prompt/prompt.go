// Package prompt turns a normalized listing into the system and user
// instructions for the model. Pure string building, no I/O.
package prompt

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourhome24/expose/internal/listing"
)

//go:embed prompts/system.txt
var systemPrompt string

// Placeholder rendered for absent optional facts. The model is instructed to
// omit missing fields, so this never reaches the generated text.
const missing = "—"

// Build returns the (system, user) instruction pair for a listing.
// Tone, audience and language are interpolated verbatim; no sanitization
// happens here.
func Build(l listing.Listing) (string, string) {
	var b strings.Builder

	fmt.Fprintf(&b, "SPRACHE: %s\n", l.Language)
	fmt.Fprintf(&b, "TON: %s\n", l.Tone)
	fmt.Fprintf(&b, "ZIELGRUPPE: %s\n\n", l.Audience)

	b.WriteString("FAKTEN:\n")
	fmt.Fprintf(&b, "- Immobilientyp: %s\n", l.PropertyType)
	fmt.Fprintf(&b, "- Stadt/Region: %s\n", l.City)
	fmt.Fprintf(&b, "- Wohnfläche: %s m²\n", formatArea(l.AreaM2))
	fmt.Fprintf(&b, "- Schlafzimmer: %s\n", formatOptionalInt(l.Bedrooms))
	fmt.Fprintf(&b, "- Badezimmer: %s\n", formatOptionalInt(l.Bathrooms))
	fmt.Fprintf(&b, "- Baujahr: %s\n", formatOptionalInt(l.YearBuilt))
	fmt.Fprintf(&b, "- Features: %s\n", formatFeatures(l.Features))
	fmt.Fprintf(&b, "- Highlights (Stichpunkte): %s\n", orMissing(l.Highlights))

	b.WriteString("\nAUFGABE:\n")
	b.WriteString("Erstelle eine ansprechende Exposé-Beschreibung (120–180 Wörter) in der angegebenen SPRACHE und im angegebenen TON.\n")
	b.WriteString("Struktur:\n")
	b.WriteString("- 1–2 Sätze Einleitung\n")
	b.WriteString("- 3–5 Bullet Points\n")
	b.WriteString("- 1 kurzer Abschluss mit Call-to-Action\n")
	b.WriteString("Keine Fakten erfinden. Fehlende Angaben weglassen.")

	return strings.TrimSpace(systemPrompt), b.String()
}

func formatArea(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

func formatFeatures(features []string) string {
	if len(features) == 0 {
		return missing
	}
	return strings.Join(features, ", ")
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}
