package kiosk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"survey-app/internal/survey"
)

// HTTPClient talks to the survey-service HTTP API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type questionsPayload struct {
	SurveyID  int64             `json:"survey_id"`
	Title     string            `json:"title"`
	Questions []survey.Question `json:"questions"`
}

type submitPayload struct {
	Answers []survey.AnswerDraft `json:"answers"`
}

type submitResult struct {
	Message    string `json:"message"`
	ResponseID int64  `json:"response_id"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func (c *HTTPClient) GetQuestions(ctx context.Context) (questionsPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/questions", nil)
	if err != nil {
		return questionsPayload{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return questionsPayload{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return questionsPayload{}, decodeError(resp)
	}

	var payload questionsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return questionsPayload{}, err
	}
	return payload, nil
}

func (c *HTTPClient) SubmitAnswers(ctx context.Context, drafts []survey.AnswerDraft) (int64, error) {
	body, err := json.Marshal(submitPayload{Answers: drafts})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, decodeError(resp)
	}

	var result submitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	return result.ResponseID, nil
}

func decodeError(resp *http.Response) error {
	var payload errorPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
