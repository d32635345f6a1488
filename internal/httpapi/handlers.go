package httpapi

import (
	"encoding/json"
	"net/http"
)

func (a *API) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	item, err := a.service.Survey(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	questions, err := a.service.Questions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{
		SurveyID:  item.SurveyID,
		Title:     item.Title,
		Questions: questions,
	})
}

func (a *API) HandleResponses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.handleSubmit(w, r)
	case http.MethodGet:
		a.handleList(w, r)
	default:
		writeMethodNotAllowed(w, http.MethodGet+", "+http.MethodPost)
	}
}

func (a *API) handleSubmit(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request submitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if len(request.Answers) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "answers is required"})
		return
	}

	responseID, err := a.service.Submit(r.Context(), request.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Message:    "Survey submitted successfully",
		ResponseID: responseID,
	})
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	groups, err := a.service.Responses(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Zero responses is an ordinary outcome, not an error.
	writeJSON(w, http.StatusOK, responsesResponse{
		Count:     len(groups),
		Responses: groups,
	})
}

func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
