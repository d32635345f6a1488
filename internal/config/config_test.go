package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SURVEY_DB_PATH", "")
	t.Setenv("ADDR", "")
	t.Setenv("SURVEY_FILE", "")

	cfg := Load()
	if cfg.DBPath != "survey.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "survey.db")
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.SurveyFile != "" {
		t.Fatalf("SurveyFile = %q, want empty", cfg.SurveyFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SURVEY_DB_PATH", "/tmp/other.db")
	t.Setenv("ADDR", ":9090")
	t.Setenv("SURVEY_FILE", "surveys/clinic.yaml")

	cfg := Load()
	if cfg.DBPath != "/tmp/other.db" || cfg.Addr != ":9090" || cfg.SurveyFile != "surveys/clinic.yaml" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
