package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"survey-app/internal/survey"
)

func TestDefaultDefinitionIsValid(t *testing.T) {
	def := Default()
	if err := def.Validate(); err != nil {
		t.Fatalf("default definition invalid: %v", err)
	}
	if def.Title != "Patient Experience Survey" {
		t.Fatalf("unexpected title %q", def.Title)
	}
	if len(def.Questions) != 7 {
		t.Fatalf("expected 7 seed questions, got %d", len(def.Questions))
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	def, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if def.Title != Default().Title {
		t.Fatalf("expected default definition, got %q", def.Title)
	}
}

func TestLoadFileParsesYAML(t *testing.T) {
	content := strings.Join([]string{
		`title: Clinic Feedback`,
		`description: Short feedback form`,
		`questions:`,
		`  - text: Date of visit?`,
		`    type: text`,
		`    required: true`,
		`  - text: Which site did you visit?`,
		`    type: multiple_choice`,
		`    required: true`,
		`    options: ["A", "B"]`,
		`  - text: Rate your visit`,
		`    type: scale`,
		`    required: true`,
	}, "\n")

	path := filepath.Join(t.TempDir(), "survey.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	def, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if def.Title != "Clinic Feedback" || len(def.Questions) != 3 {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if def.Questions[1].Type != survey.TypeMultipleChoice || len(def.Questions[1].Options) != 2 {
		t.Fatalf("options not parsed: %+v", def.Questions[1])
	}
	if def.Questions[2].Type != survey.TypeScale || len(def.Questions[2].Options) != 0 {
		t.Fatalf("scale question parsed wrong: %+v", def.Questions[2])
	}
}

func TestLoadFileRejectsInvalidDefinition(t *testing.T) {
	content := strings.Join([]string{
		`title: Broken`,
		`questions:`,
		`  - text: Pick one`,
		`    type: multiple_choice`,
		`    required: true`,
	}, "\n")

	path := filepath.Join(t.TempDir(), "survey.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected validation error for choice question without options")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
