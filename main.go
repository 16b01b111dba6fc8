package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"greeter/activities"
	"greeter/config"
	"greeter/db"
	"greeter/handlers"
	"greeter/temporal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Worker shut down")
}

func run() error {
	// Load Env Vars (.env fills in anything unset)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := config.FromEnv()

	// Init Database
	database, err := db.InitDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	store := db.NewStore(database)

	// Init Temporal Client
	temporalClient, err := temporal.NewClient(cfg)
	if err != nil {
		return err
	}
	defer temporalClient.Close()

	// Init Router and Handlers
	r := chi.NewRouter()
	r.Use(middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	handler := handlers.NewHandler(temporalClient, store, cfg.TaskQueue)
	handler.RegisterRoutes(r)

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r}
	go func() {
		log.Printf("Starting HTTP server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server failed: %v", err)
		}
	}()

	// Run Worker (blocks until interrupt or fatal error)
	greetActivities := activities.NewGreetActivities(store)
	workerErr := temporal.StartWorker(temporalClient, cfg, greetActivities)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown: %v", err)
	}

	return workerErr
}
