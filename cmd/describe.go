package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/yourhome24/expose/internal/ai"
	"github.com/yourhome24/expose/internal/config"
	"github.com/yourhome24/expose/internal/describe"
	"github.com/yourhome24/expose/internal/listing"
	"github.com/yourhome24/expose/internal/store"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Generate one listing description from flags",
	Long: `Generate a single listing description without the web server.
The result is printed to stdout and, when DATABASE_URL is set, persisted
to the history like a web request.`,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().String("property-type", "", "Property type (default Apartment)")
	describeCmd.Flags().Float64("area", 0, "Living area in m² (required)")
	describeCmd.Flags().Int("bedrooms", -1, "Number of bedrooms (default 2)")
	describeCmd.Flags().Int("bathrooms", -1, "Number of bathrooms")
	describeCmd.Flags().String("city", "", "City or region (required)")
	describeCmd.Flags().Int("year-built", -1, "Year of construction")
	describeCmd.Flags().StringSlice("features", nil, "Features (repeatable or comma-separated)")
	describeCmd.Flags().String("highlights", "", "Free-text highlights")
	describeCmd.Flags().String("tone", "", "Tone (default Sachlich)")
	describeCmd.Flags().String("audience", "", "Audience (default Käufer)")
	describeCmd.Flags().String("language", "", "Output language (default de)")
}

func optionalIntFlag(cmd *cobra.Command, name string) *int {
	v := mustGetInt(cmd, name)
	if v < 0 {
		return nil
	}
	return &v
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	l := listing.Listing{
		PropertyType: mustGetString(cmd, "property-type"),
		AreaM2:       mustGetFloat64(cmd, "area"),
		Bedrooms:     optionalIntFlag(cmd, "bedrooms"),
		Bathrooms:    optionalIntFlag(cmd, "bathrooms"),
		City:         mustGetString(cmd, "city"),
		YearBuilt:    optionalIntFlag(cmd, "year-built"),
		Features:     listing.FeatureList(mustGetStringSlice(cmd, "features")),
		Highlights:   mustGetString(cmd, "highlights"),
		Tone:         mustGetString(cmd, "tone"),
		Audience:     mustGetString(cmd, "audience"),
		Language:     mustGetString(cmd, "language"),
	}

	client, err := ai.NewClient(cfg.Model, nil)
	if err != nil {
		return err
	}

	// Persistence is optional on the CLI: without DATABASE_URL the text is
	// only printed.
	var st store.Store
	if cfg.Store.URL != "" {
		st, err = openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize record store: %w", err)
		}
		defer st.Close()
	} else {
		log.Println("DATABASE_URL not set, skipping history persistence")
	}

	service := describe.NewService(cfg.Model, client, st)
	text, err := service.Generate(cmd.Context(), l, nil)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
