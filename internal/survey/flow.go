package survey

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Conduct walks the questions strictly in order, collecting one validated
// answer per question from in and writing prompts and validation messages to
// out. Invalid input re-prompts the same question; a question is never skipped
// or defaulted. Errors from the streams themselves abort the whole session
// with no partial result.
func Conduct(questions []Question, in io.Reader, out io.Writer) ([]AnswerDraft, error) {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}

	drafts := make([]AnswerDraft, 0, len(questions))
	for _, question := range questions {
		printQuestion(out, question)

		value, err := collectAnswer(reader, out, question)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, AnswerDraft{QuestionID: question.QuestionID, Value: value})
	}

	return drafts, nil
}

func printQuestion(out io.Writer, question Question) {
	fmt.Fprintln(out)
	if question.Required {
		fmt.Fprintf(out, "%s (required)\n", question.Text)
	} else {
		fmt.Fprintln(out, question.Text)
	}
	for idx, option := range question.Options {
		fmt.Fprintf(out, "%d. %s\n", idx+1, option)
	}
}

func collectAnswer(reader *bufio.Reader, out io.Writer, question Question) (string, error) {
	switch question.Type {
	case TypeMultipleChoice:
		return collectChoice(reader, out, question.Options)
	case TypeScale:
		if len(question.Options) > 0 {
			return collectChoice(reader, out, question.Options)
		}
		return collectScale(reader, out)
	default:
		return collectText(reader, out, question.Required)
	}
}

func collectText(reader *bufio.Reader, out io.Writer, required bool) (string, error) {
	for {
		fmt.Fprint(out, "Your response: ")
		answer, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		if !required {
			return NoResponse, nil
		}
		fmt.Fprintln(out, "This field is required")
	}
}

func collectChoice(reader *bufio.Reader, out io.Writer, options []string) (string, error) {
	for {
		fmt.Fprint(out, "Your choice (number): ")
		raw, err := readLine(reader)
		if err != nil {
			return "", err
		}
		choice, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintln(out, "Please enter a valid number")
			continue
		}
		if choice < 1 || choice > len(options) {
			fmt.Fprintf(out, "Please enter a number between 1 and %d\n", len(options))
			continue
		}
		return options[choice-1], nil
	}
}

func collectScale(reader *bufio.Reader, out io.Writer) (string, error) {
	for {
		fmt.Fprintf(out, "Rate from %d-%d: ", ScaleMin, ScaleMax)
		raw, err := readLine(reader)
		if err != nil {
			return "", err
		}
		rating, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintln(out, "Please enter a valid number")
			continue
		}
		if rating < ScaleMin || rating > ScaleMax {
			fmt.Fprintf(out, "Please enter a number between %d and %d\n", ScaleMin, ScaleMax)
			continue
		}
		return strconv.Itoa(rating), nil
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still a usable answer.
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
