package survey

import (
	"context"
	"errors"
)

var (
	ErrSurveyNotFound = errors.New("survey not found")

	// ErrIdentityUnresolved means neither the driver's last-insert-id nor the
	// engine-global fallback query produced a usable identifier after an
	// insert. The surrounding transaction must be rolled back.
	ErrIdentityUnresolved = errors.New("could not resolve last inserted id")

	// ErrQuestionNotInSurvey flags an answer draft whose question belongs to
	// a different survey than the response being persisted.
	ErrQuestionNotInSurvey = errors.New("answer references a question outside the survey")
)

type SurveyRepository interface {
	EnsureSchema(ctx context.Context, def Definition) error
	SurveyByTitle(ctx context.Context, title string) (Survey, error)
	SurveyQuestions(ctx context.Context, surveyID int64) ([]Question, error)
}

type ResponseRepository interface {
	PersistResponse(ctx context.Context, surveyID int64, drafts []AnswerDraft) (int64, error)
	AggregateResponses(ctx context.Context) ([]ResponseGroup, error)
}

// Observer receives persistence outcomes as a side channel. Implementations
// must be safe for concurrent use; the metrics recorder is the production one.
type Observer interface {
	SurveyInitialized(questionCount int)
	ResponsePersisted()
	PersistFailed()
}

type nopObserver struct{}

func (nopObserver) SurveyInitialized(int) {}
func (nopObserver) ResponsePersisted()    {}
func (nopObserver) PersistFailed()        {}
