package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	recorder := NewRecorder()

	recorder.SurveyInitialized(7)
	recorder.ResponsePersisted()
	recorder.ResponsePersisted()
	recorder.PersistFailed()

	if got := testutil.ToFloat64(recorder.surveysActive); got != 1 {
		t.Fatalf("active_surveys_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(recorder.questionsSeeded); got != 7 {
		t.Fatalf("survey_questions_total = %v, want 7", got)
	}
	if got := testutil.ToFloat64(recorder.submissions); got != 2 {
		t.Fatalf("patient_survey_submissions_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(recorder.failures); got != 1 {
		t.Fatalf("patient_survey_failures_total = %v, want 1", got)
	}
}

func TestHandlerServesCounters(t *testing.T) {
	recorder := NewRecorder()
	recorder.ResponsePersisted()

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "patient_survey_submissions_total 1") {
		t.Fatalf("expected submissions counter in exposition, got:\n%s", body)
	}
}
