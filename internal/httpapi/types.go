package httpapi

import "survey-app/internal/survey"

type questionsResponse struct {
	SurveyID  int64             `json:"survey_id"`
	Title     string            `json:"title"`
	Questions []survey.Question `json:"questions"`
}

type submitRequest struct {
	Answers []survey.AnswerDraft `json:"answers"`
}

type submitResponse struct {
	Message    string `json:"message"`
	ResponseID int64  `json:"response_id"`
}

type responsesResponse struct {
	Count     int                    `json:"count"`
	Responses []survey.ResponseGroup `json:"responses"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}
