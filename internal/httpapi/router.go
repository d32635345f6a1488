package httpapi

import (
	"net/http"

	"survey-app/internal/survey"
)

// NewRouter wires the survey endpoints. metricsHandler may be nil when the
// deployment does not expose Prometheus metrics.
func NewRouter(service *survey.Service, metricsHandler http.Handler) http.Handler {
	api := NewAPI(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/questions", api.HandleQuestions)
	mux.HandleFunc("/responses", api.HandleResponses)
	mux.HandleFunc("/healthz", api.HandleHealth)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	return withRequestID(mux)
}
