package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"survey-app/internal/config"
	"survey-app/internal/httpapi"
	"survey-app/internal/metrics"
	"survey-app/internal/seed"
	"survey-app/internal/survey"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	dbPath := flag.String("db", cfg.DBPath, "path to the sqlite database file")
	surveyFile := flag.String("survey-file", cfg.SurveyFile, "YAML survey definition (built-in survey when empty)")
	flag.Parse()

	def, err := seed.Load(*surveyFile)
	if err != nil {
		log.Fatalf("load survey definition: %v", err)
	}

	store, err := survey.NewSQLiteStore(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	recorder := metrics.NewRecorder()
	service := survey.NewService(store, store, def, recorder)
	if err := service.Bootstrap(context.Background()); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(service, recorder.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("survey-service listening on %s", *addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
