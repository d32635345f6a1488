package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"survey-app/internal/survey"
)

func newTestService(t *testing.T) *survey.Service {
	t.Helper()

	store, err := survey.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	def := survey.Definition{
		Title:       "Patient Experience Survey",
		Description: "Survey to collect feedback",
		Questions: []survey.QuestionDefinition{
			{Text: "Date?", Type: survey.TypeText, Required: true},
			{Text: "Site?", Type: survey.TypeMultipleChoice, Required: true, Options: []string{"A", "B"}},
		},
	}

	service := survey.NewService(store, store, def, nil)
	if err := service.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	return service
}

func TestRunConductViewExit(t *testing.T) {
	service := newTestService(t)

	in := strings.NewReader("1\n2023-01-01\n2\n2\n3\n")
	var out bytes.Buffer

	if err := Run(context.Background(), in, &out, service); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{
		"=== Patient Experience Survey ===",
		"Thank you for your feedback!",
		"=== SURVEY RESPONSES (1 total) ===",
		"Q: Date?",
		"A: 2023-01-01",
		"Q: Site?",
		"A: B",
		"Goodbye!",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected output to contain %q, output was:\n%s", want, rendered)
		}
	}
}

func TestRunViewResponsesEmpty(t *testing.T) {
	service := newTestService(t)

	in := strings.NewReader("2\n3\n")
	var out bytes.Buffer

	if err := Run(context.Background(), in, &out, service); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "No responses found in the database.") {
		t.Fatalf("expected empty-responses message, output was:\n%s", out.String())
	}
}

func TestRunRejectsUnknownMenuChoice(t *testing.T) {
	service := newTestService(t)

	in := strings.NewReader("9\n3\n")
	var out bytes.Buffer

	if err := Run(context.Background(), in, &out, service); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Please enter a number between 1 and 3") {
		t.Fatalf("expected menu validation message, output was:\n%s", out.String())
	}
}

func TestRunExitsCleanlyOnEOF(t *testing.T) {
	service := newTestService(t)

	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader(""), &out, service); err != nil {
		t.Fatalf("Run should treat EOF at the menu as a clean exit, got %v", err)
	}
}
