package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourhome24/expose/internal/ai"
	"github.com/yourhome24/expose/internal/config"
	"github.com/yourhome24/expose/internal/describe"
	"github.com/yourhome24/expose/internal/store"
	"github.com/yourhome24/expose/internal/store/mariadb"
	"github.com/yourhome24/expose/internal/store/postgres"
	"github.com/yourhome24/expose/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the expose web server. It serves the description generation
endpoint, the history listing with search and CSV export, and the form
preset configuration.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides WEB_PORT)")
	serveCmd.Flags().String("host", "", "Host to bind to (overrides WEB_HOST)")
}

// openStore opens the record store selected by STORE_DRIVER.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return postgres.New(&cfg.Store)
	case "mysql", "mariadb":
		return mariadb.New(&cfg.Store)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (use postgres or mysql)", cfg.Store.Driver)
	}
}

// newGenerator builds the model client if the model configuration is
// complete. An incomplete configuration is not fatal at startup: each
// describe request re-checks it and fails with the missing variable's name.
func newGenerator(cfg *config.Config) describe.Generator {
	client, err := ai.NewClient(cfg.Model, nil)
	if err != nil {
		log.Printf("model configuration incomplete: %v (describe requests will fail until set)", err)
		return nil
	}
	return client
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if port := mustGetInt(cmd, "port"); port > 0 {
		cfg.Web.Port = port
	}
	if host := mustGetString(cmd, "host"); host != "" {
		cfg.Web.Host = host
	}

	// Store credentials are a process-start precondition, unlike the model
	// configuration which is checked per request.
	if cfg.Store.URL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}

	log.Printf("Connecting to %s record store...", cfg.Store.Driver)
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize record store: %w", err)
	}
	defer st.Close()

	service := describe.NewService(cfg.Model, newGenerator(cfg), st)
	server := web.NewServer(cfg, service, st)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Starting expose on http://%s:%d", cfg.Web.Host, cfg.Web.Port)

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
