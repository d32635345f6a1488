package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"survey-app/internal/survey"
)

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, survey.ErrSurveyNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "survey not found"})
	case errors.Is(err, survey.ErrQuestionNotInSurvey):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "answer references an unknown question"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
