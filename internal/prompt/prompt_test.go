package prompt

import (
	"strings"
	"testing"

	"github.com/yourhome24/expose/internal/listing"
)

func intPtr(v int) *int { return &v }

func TestBuild_ContainsAllSuppliedFacts(t *testing.T) {
	l := listing.Listing{
		PropertyType: "Villa",
		AreaM2:       142.5,
		Bedrooms:     intPtr(4),
		Bathrooms:    intPtr(2),
		City:         "Limassol",
		YearBuilt:    intPtr(2019),
		Features:     listing.FeatureList{"pool", "sea view"},
		Highlights:   "frisch renoviert",
		Tone:         "Emotional",
		Audience:     "Käufer",
		Language:     "de",
	}

	system, user := Build(l)

	if system == "" {
		t.Fatal("expected non-empty system prompt")
	}
	for _, want := range []string{
		"Villa", "142.5 m²", "4", "2", "Limassol", "2019",
		"pool, sea view", "frisch renoviert",
		"SPRACHE: de", "TON: Emotional", "ZIELGRUPPE: Käufer",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q\n%s", want, user)
		}
	}
}

func TestBuild_PlaceholderForAbsentOptionalFields(t *testing.T) {
	l := listing.Listing{AreaM2: 85, City: "Larnaca"}.Normalize()

	_, user := Build(l)

	for _, line := range []string{
		"- Badezimmer: —",
		"- Baujahr: —",
		"- Features: —",
		"- Highlights (Stichpunkte): —",
	} {
		if !strings.Contains(user, line) {
			t.Errorf("user prompt missing placeholder line %q\n%s", line, user)
		}
	}
}

func TestBuild_InstructionContract(t *testing.T) {
	system, user := Build(listing.Listing{AreaM2: 85, City: "Larnaca"}.Normalize())

	for _, want := range []string{"Keine Angaben erfinden", "Keine Preise nennen"} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	for _, want := range []string{"120–180 Wörter", "3–5 Bullet Points", "Call-to-Action", "Fehlende Angaben weglassen"} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	l := listing.Listing{AreaM2: 85, City: "Larnaca", Features: listing.FeatureList{"balcony"}}.Normalize()

	s1, u1 := Build(l)
	s2, u2 := Build(l)
	if s1 != s2 || u1 != u2 {
		t.Error("expected identical output for identical input")
	}
}

func TestBuild_ToneInterpolatedVerbatim(t *testing.T) {
	l := listing.Listing{AreaM2: 85, City: "Larnaca", Tone: "sehr <locker>"}.Normalize()

	_, user := Build(l)
	if !strings.Contains(user, "TON: sehr <locker>") {
		t.Error("tone must pass through unchanged")
	}
}
