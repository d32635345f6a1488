package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"survey-app/internal/cli"
	"survey-app/internal/config"
	"survey-app/internal/seed"
	"survey-app/internal/survey"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DBPath, "path to the sqlite database file")
	surveyFile := flag.String("survey-file", cfg.SurveyFile, "YAML survey definition (built-in survey when empty)")
	flag.Parse()

	if err := run(context.Background(), *dbPath, *surveyFile); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dbPath, surveyFile string) error {
	def, err := seed.Load(surveyFile)
	if err != nil {
		return err
	}

	store, err := survey.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	service := survey.NewService(store, store, def, nil)
	if err := service.Bootstrap(ctx); err != nil {
		return err
	}

	return cli.Run(ctx, os.Stdin, os.Stdout, service)
}
