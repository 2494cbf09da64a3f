// Package server wires the application together: storage, stores, services,
// handlers, routes, and the HTTP server lifecycle.
//
// This is the composition root — every dependency is constructed here, in one
// place, and each layer receives only what it needs. The stores are built once
// at startup and passed down by reference; nothing in the application reaches
// for a global.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/codepocket/internal/assist"
	"github.com/sakif/codepocket/internal/handler"
	"github.com/sakif/codepocket/internal/middleware"
	"github.com/sakif/codepocket/internal/service"
	"github.com/sakif/codepocket/internal/storage"
	sqlitestorage "github.com/sakif/codepocket/internal/storage/sqlite"
	"github.com/sakif/codepocket/internal/store"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port         int
	DBPath       string // path to the SQLite storage file
	GeminiAPIKey string // empty means AI assist is disabled
}

// Server owns the router and the storage backend. Storage is closed during
// graceful shutdown, after in-flight requests drain.
type Server struct {
	router  *chi.Mux
	config  Config
	logger  *slog.Logger
	storage storage.Storage
}

// New builds the full dependency chain:
//
//	sqlite storage → SnippetStore + SettingsStore → services → handlers → routes
//
// Both stores load their persisted state here, synchronously, before the
// server accepts a single request — a load failure (which only an
// infrastructure error can cause; bad data just falls back to defaults) aborts
// startup.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	st, err := sqlitestorage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	s := &Server{
		router:  chi.NewRouter(),
		config:  cfg,
		logger:  logger,
		storage: st,
	}

	if err := s.setupRoutes(); err != nil {
		st.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}
	return s, nil
}

// setupRoutes configures middleware and the API routes.
//
// ROUTES:
//
//	GET    /api/snippets            → filtered/sorted/paged list + allTags
//	GET    /api/snippets/{id}       → single snippet
//	POST   /api/snippets            → save (create-or-update)
//	DELETE /api/snippets/{id}       → delete (requires ?confirm=true)
//	GET    /api/settings            → full settings record
//	PATCH  /api/settings            → merge partial record
//	PUT    /api/settings/{key}      → replace one field
//	POST   /api/settings/reset      → restore defaults
//	GET    /api/meta                → language/folder catalogs
//	POST   /api/assist/explain      → AI description draft (503 if unconfigured)
//	POST   /api/assist/tags         → AI tag suggestions   (503 if unconfigured)
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	snippetStore, err := store.NewSnippetStore(s.storage, s.logger)
	if err != nil {
		return fmt.Errorf("creating snippet store: %w", err)
	}
	settingsStore, err := store.NewSettingsStore(s.storage, s.logger)
	if err != nil {
		return fmt.Errorf("creating settings store: %w", err)
	}

	snippetService := service.NewSnippetService(snippetStore, settingsStore, s.logger)
	settingsService := service.NewSettingsService(settingsStore, s.logger)

	// The assistant is optional: without an API key the Disabled
	// implementation answers every call with "unavailable" and the rest of
	// the app is unaffected.
	assistant := assist.NewGemini(s.config.GeminiAPIKey)
	if s.config.GeminiAPIKey == "" {
		s.logger.Warn("GEMINI_API_KEY not set — AI assist is disabled")
	}

	snippetHandler := handler.NewSnippetHandler(snippetService, s.logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, s.logger)
	assistHandler := handler.NewAssistHandler(assistant, s.logger)
	metaHandler := handler.NewMetaHandler()

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/snippets", snippetHandler.HandleList)
		r.Get("/snippets/{id}", snippetHandler.HandleGet)
		r.Post("/snippets", snippetHandler.HandleSave)
		r.Delete("/snippets/{id}", snippetHandler.HandleDelete)

		r.Get("/settings", settingsHandler.HandleGet)
		r.Patch("/settings", settingsHandler.HandleUpdate)
		r.Post("/settings/reset", settingsHandler.HandleReset)
		r.Put("/settings/{key}", settingsHandler.HandleUpdateField)

		r.Get("/meta", metaHandler.HandleMeta)

		r.Post("/assist/explain", assistHandler.HandleExplain)
		r.Post("/assist/tags", assistHandler.HandleSuggestTags)
	})

	return nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down gracefully:
// stop accepting connections, give in-flight requests 30 seconds to finish,
// close storage (flushes the WAL and releases the file lock).
func (s *Server) Start() error {
	defer s.storage.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
