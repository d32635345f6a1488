package survey

import (
	"fmt"
	"time"
)

const (
	TypeText           = "text"
	TypeMultipleChoice = "multiple_choice"
	TypeScale          = "scale"
)

// NoResponse is stored for optional text questions the respondent skipped, so
// every question of a submitted response always has exactly one answer row.
const NoResponse = "[No response]"

// Scale questions without an explicit options list use this fixed range.
const (
	ScaleMin = 1
	ScaleMax = 10
)

type Survey struct {
	SurveyID    int64     `json:"survey_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}

type Question struct {
	QuestionID int64    `json:"question_id"`
	SurveyID   int64    `json:"-"`
	Text       string   `json:"question_text"`
	Type       string   `json:"question_type"`
	Required   bool     `json:"is_required"`
	Options    []string `json:"options,omitempty"`
}

// AnswerDraft is one collected answer before persistence. Drafts are produced
// by Conduct in question order and written as a unit by PersistResponse.
type AnswerDraft struct {
	QuestionID int64  `json:"question_id"`
	Value      string `json:"answer_value"`
}

type QA struct {
	QuestionText string `json:"question"`
	AnswerValue  string `json:"answer"`
}

type ResponseGroup struct {
	ResponseID  int64     `json:"response_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Answers     []QA      `json:"answers"`
}

// Definition is the seed configuration for one survey: inserted once at
// bootstrap if the titled survey is absent, immutable afterwards.
type Definition struct {
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	Questions   []QuestionDefinition `yaml:"questions"`
}

type QuestionDefinition struct {
	Text     string   `yaml:"text"`
	Type     string   `yaml:"type"`
	Required bool     `yaml:"required"`
	Options  []string `yaml:"options,omitempty"`
}

func (d Definition) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("survey definition: title is required")
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("survey definition %q: at least one question is required", d.Title)
	}
	for idx, q := range d.Questions {
		if q.Text == "" {
			return fmt.Errorf("survey definition %q: question %d has no text", d.Title, idx+1)
		}
		switch q.Type {
		case TypeText:
			if len(q.Options) != 0 {
				return fmt.Errorf("survey definition %q: question %q is text but has options", d.Title, q.Text)
			}
		case TypeMultipleChoice:
			if len(q.Options) == 0 {
				return fmt.Errorf("survey definition %q: question %q needs options", d.Title, q.Text)
			}
		case TypeScale:
			// Options are optional for scale questions; without them the
			// fixed ScaleMin..ScaleMax range applies.
		default:
			return fmt.Errorf("survey definition %q: question %q has unknown type %q", d.Title, q.Text, q.Type)
		}
	}
	return nil
}
