package main

import (
	"log"
	"net/http"

	"github.com/fadzzz/timesheet/config"
	"github.com/fadzzz/timesheet/database"
	"github.com/fadzzz/timesheet/handlers"
	"github.com/fadzzz/timesheet/kv"
	"github.com/fadzzz/timesheet/middleware"
	"github.com/fadzzz/timesheet/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Connect the remote store when one is configured; otherwise the
	// process runs local-only for its whole lifetime.
	var db *gorm.DB
	if cfg.RemoteConfigured() {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
	} else {
		log.Println("No DATABASE_URL configured, running in local-only mode")
	}

	// The fallback store is file-backed so local data survives restarts.
	fileKV, err := kv.NewFile(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize fallback store: %v", err)
	}
	st := store.New(db, store.NewFallback(fileKV))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, st)
	entriesHandler := handlers.NewEntriesHandler(st)
	clientsHandler := handlers.NewClientsHandler(st)
	reportHandler := handlers.NewReportHandler(st)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Get("/health", handlers.Health)
	router.Get("/auth/google", authHandler.Login)
	router.Get("/auth/google/callback", authHandler.Callback)
	router.Get("/auth/me", authHandler.Me)
	router.Post("/auth/logout", authHandler.Logout)

	// Protected routes
	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/entries", entriesHandler.List)
		r.Post("/entries", entriesHandler.Create)
		r.Delete("/entries/{id}", entriesHandler.Delete)

		r.Get("/clients", clientsHandler.List)
		r.Post("/clients", clientsHandler.Create)
		r.Delete("/clients/{id}", clientsHandler.Delete)

		r.Get("/report/week", reportHandler.Week)
		r.Get("/export/csv", reportHandler.ExportCSV)
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
