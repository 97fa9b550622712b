package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourhome24/expose/internal/config"
	"github.com/yourhome24/expose/internal/history"
	"github.com/yourhome24/expose/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the description history as CSV",
	Long: `Export the most recent description records as a semicolon separated
CSV file, the same format served by the web export endpoint.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.Store.URL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize record store: %w", err)
	}
	defer st.Close()

	records, err := st.ListRecent(cmd.Context(), store.ExportLimit)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	csv := history.ExportCSV(records)
	if path := mustGetString(cmd, "output"); path != "" {
		if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}

	fmt.Println(csv)
	return nil
}
