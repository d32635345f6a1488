// Package seed supplies the survey definition inserted at bootstrap: a
// built-in patient experience survey, or an operator-provided YAML file.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"survey-app/internal/survey"
)

func defaultDefinition() survey.Definition {
	return survey.Definition{
		Title:       "Patient Experience Survey",
		Description: "Survey to collect feedback",
		Questions: []survey.QuestionDefinition{
			{Text: "Date of visit?", Type: survey.TypeText, Required: true},
			{Text: "Which site did you visit?", Type: survey.TypeMultipleChoice, Required: true,
				Options: []string{"Princess Alexandra Hospital", "St Margaret's Hospital", "Herts & Essex Hospital"}},
			{Text: "Patient name?", Type: survey.TypeText, Required: true},
			{Text: "How easy was it to get an appointment?", Type: survey.TypeMultipleChoice, Required: true,
				Options: []string{"Very difficult", "Somewhat difficult", "Neutral", "Easy", "Very easy"}},
			{Text: "Were you properly informed about your procedure?", Type: survey.TypeMultipleChoice, Required: true,
				Options: []string{"Yes", "No", "Partially"}},
			{Text: "What went well during your visit?", Type: survey.TypeText, Required: false},
			{Text: "Overall satisfaction (1-5)", Type: survey.TypeMultipleChoice, Required: true,
				Options: []string{"1", "2", "3", "4", "5"}},
		},
	}
}

// Default returns the built-in patient experience survey definition.
func Default() survey.Definition {
	return defaultDefinition()
}

// Load returns the definition from the YAML file at path, or the built-in
// default when path is empty.
func Load(path string) (survey.Definition, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (survey.Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return survey.Definition{}, fmt.Errorf("read survey definition: %w", err)
	}

	var def survey.Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return survey.Definition{}, fmt.Errorf("parse survey definition %s: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return survey.Definition{}, err
	}
	return def, nil
}
