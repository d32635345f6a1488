// Package kiosk is the patient-facing remote client: it fetches the survey
// over HTTP, runs the question flow locally, and submits the answers back.
package kiosk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"survey-app/internal/survey"
)

const defaultHTTPTimeout = 5 * time.Second

type Config struct {
	ServerURL   string
	HTTPTimeout time.Duration
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		return errors.New("server URL is required")
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := NewHTTPClient(serverURL, &http.Client{Timeout: timeout})

	payload, err := client.GetQuestions(ctx)
	if err != nil {
		return describeClientError(err, serverURL)
	}
	if len(payload.Questions) == 0 {
		fmt.Fprintln(out, "This survey has no questions.")
		return nil
	}

	fmt.Fprintf(out, "\n=== %s ===\n", payload.Title)

	reader := bufio.NewReader(in)
	drafts, err := survey.Conduct(payload.Questions, reader, out)
	if err != nil {
		return err
	}

	responseID, err := client.SubmitAnswers(ctx, drafts)
	if err != nil {
		return describeClientError(err, serverURL)
	}

	fmt.Fprintln(out, "\nThank you for your feedback!")
	fmt.Fprintf(out, "Response recorded (ID: %d)\n", responseID)
	return nil
}

func describeClientError(err error, serverURL string) error {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("survey service at %s timed out: %w", serverURL, err)
	}
	return err
}
