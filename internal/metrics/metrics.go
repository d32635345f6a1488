// Package metrics implements the survey.Observer side channel with Prometheus
// counters and serves them over HTTP.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Recorder struct {
	registry *prometheus.Registry

	submissions     prometheus.Counter
	failures        prometheus.Counter
	surveysActive   prometheus.Counter
	questionsSeeded prometheus.Counter
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		submissions: factory.NewCounter(prometheus.CounterOpts{
			Name: "patient_survey_submissions_total",
			Help: "Total number of patient surveys submitted",
		}),
		failures: factory.NewCounter(prometheus.CounterOpts{
			Name: "patient_survey_failures_total",
			Help: "Total failed survey submissions",
		}),
		surveysActive: factory.NewCounter(prometheus.CounterOpts{
			Name: "active_surveys_total",
			Help: "Number of active surveys initialized",
		}),
		questionsSeeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "survey_questions_total",
			Help: "Total number of questions initialized",
		}),
	}
}

func (r *Recorder) SurveyInitialized(questionCount int) {
	r.surveysActive.Inc()
	r.questionsSeeded.Add(float64(questionCount))
}

func (r *Recorder) ResponsePersisted() {
	r.submissions.Inc()
}

func (r *Recorder) PersistFailed() {
	r.failures.Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
