package kiosk

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"survey-app/internal/survey"
)

func newTestServer(t *testing.T) (*httptest.Server, *[]survey.AnswerDraft) {
	t.Helper()

	var submitted []survey.AnswerDraft

	mux := http.NewServeMux()
	mux.HandleFunc("/questions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(questionsPayload{
			SurveyID: 1,
			Title:    "Patient Experience Survey",
			Questions: []survey.Question{
				{QuestionID: 10, Text: "Date?", Type: survey.TypeText, Required: true},
				{QuestionID: 11, Text: "Site?", Type: survey.TypeMultipleChoice, Required: true, Options: []string{"A", "B"}},
			},
		})
	})
	mux.HandleFunc("/responses", func(w http.ResponseWriter, r *http.Request) {
		var payload submitPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		submitted = payload.Answers
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(submitResult{Message: "Survey submitted successfully", ResponseID: 5})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &submitted
}

func TestRunConductsAndSubmits(t *testing.T) {
	server, submitted := newTestServer(t)

	in := strings.NewReader("2023-01-01\n2\n")
	var out bytes.Buffer

	err := Run(context.Background(), in, &out, Config{ServerURL: server.URL})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []survey.AnswerDraft{
		{QuestionID: 10, Value: "2023-01-01"},
		{QuestionID: 11, Value: "B"},
	}
	if len(*submitted) != len(want) {
		t.Fatalf("expected %d submitted answers, got %d", len(want), len(*submitted))
	}
	for idx := range want {
		if (*submitted)[idx] != want[idx] {
			t.Fatalf("submitted[%d] = %+v, want %+v", idx, (*submitted)[idx], want[idx])
		}
	}
	if !strings.Contains(out.String(), "Response recorded (ID: 5)") {
		t.Fatalf("expected confirmation with response id, output was:\n%s", out.String())
	}
}

func TestRunSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorPayload{Error: "request failed"})
	}))
	t.Cleanup(server.Close)

	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader(""), &out, Config{ServerURL: server.URL})
	if err == nil || !strings.Contains(err.Error(), "request failed") {
		t.Fatalf("expected server error to surface, got %v", err)
	}
}

func TestRunRequiresServerURL(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader(""), &out, Config{}); err == nil {
		t.Fatalf("expected error for missing server URL")
	}
}
