package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"survey-app/internal/survey"
)

// Run drives the interactive menu until the user exits or the input stream
// closes. The service must already be bootstrapped.
func Run(ctx context.Context, in io.Reader, out io.Writer, service *survey.Service) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out, "\nMain Menu:")
		fmt.Fprintln(out, "1. Conduct Survey")
		fmt.Fprintln(out, "2. View Responses")
		fmt.Fprintln(out, "3. Exit")
		fmt.Fprint(out, "Your choice (1-3): ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		switch strings.TrimSpace(line) {
		case "1":
			if err := conductSurvey(ctx, reader, out, service); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "2":
			if err := viewResponses(ctx, out, service); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "3":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Please enter a number between 1 and 3")
		}
	}
}

func conductSurvey(ctx context.Context, reader *bufio.Reader, out io.Writer, service *survey.Service) error {
	item, err := service.Survey(ctx)
	if err != nil {
		return err
	}
	questions, err := service.Questions(ctx)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		fmt.Fprintln(out, "This survey has no questions")
		return nil
	}

	fmt.Fprintf(out, "\n=== %s ===\n", item.Title)
	if item.Description != "" {
		fmt.Fprintln(out, item.Description)
	}

	drafts, err := survey.Conduct(questions, reader, out)
	if err != nil {
		return err
	}

	responseID, err := service.Submit(ctx, drafts)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nThank you for your feedback!")
	fmt.Fprintf(out, "Response recorded (ID: %d)\n", responseID)
	return nil
}

func viewResponses(ctx context.Context, out io.Writer, service *survey.Service) error {
	groups, err := service.Responses(ctx)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		fmt.Fprintln(out, "\nNo responses found in the database.")
		return nil
	}

	fmt.Fprintf(out, "\n=== SURVEY RESPONSES (%d total) ===\n", len(groups))
	for _, group := range groups {
		fmt.Fprintf(out, "\nResponse ID: %d | Date: %s\n", group.ResponseID, group.SubmittedAt.Format("2006-01-02 15:04"))
		fmt.Fprintln(out, strings.Repeat("-", 50))
		for _, qa := range group.Answers {
			fmt.Fprintf(out, "Q: %s\n", qa.QuestionText)
			fmt.Fprintf(out, "A: %s\n\n", qa.AnswerValue)
		}
		fmt.Fprintln(out, strings.Repeat("-", 50))
	}
	return nil
}
