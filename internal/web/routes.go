package web

import "github.com/yourhome24/expose/internal/web/handlers"

func (s *Server) setupRoutes() {
	describeHandler := handlers.NewDescribeHandler(s.service)
	historyHandler := handlers.NewHistoryHandler(s.store)
	configHandler := handlers.NewConfigHandler(s.config.Presets)

	s.router.Get("/health", handlers.HealthCheck)
	s.router.Get("/db-test", historyHandler.DBTest)
	s.router.Get("/config", configHandler.Get)

	s.router.Post("/describe", describeHandler.Describe)

	s.router.Get("/history", historyHandler.List)
	s.router.Get("/history/csv", historyHandler.ExportCSV)
	s.router.Delete("/history/{id}", historyHandler.Delete)
}
