package survey

import (
	"context"
	"fmt"
)

// Service fronts the repositories for the CLI and HTTP layers. Bootstrap must
// complete before any other method is called; after it the survey and its
// questions are immutable, so the cache below is written once and then only
// read, which keeps the service safe for concurrent request handlers.
type Service struct {
	surveys   SurveyRepository
	responses ResponseRepository
	observer  Observer
	def       Definition

	cachedSurvey    *Survey
	cachedQuestions []Question
}

func NewService(surveys SurveyRepository, responses ResponseRepository, def Definition, observer Observer) *Service {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Service{
		surveys:   surveys,
		responses: responses,
		observer:  observer,
		def:       def,
	}
}

// Bootstrap runs the idempotent schema/seed pass and warms the survey cache.
// A bootstrap failure is fatal to the process; nothing should serve traffic
// against a partially initialized schema.
func (s *Service) Bootstrap(ctx context.Context) error {
	if err := s.surveys.EnsureSchema(ctx, s.def); err != nil {
		return fmt.Errorf("initialize survey schema: %w", err)
	}

	item, err := s.surveys.SurveyByTitle(ctx, s.def.Title)
	if err != nil {
		return fmt.Errorf("load seeded survey: %w", err)
	}
	questions, err := s.surveys.SurveyQuestions(ctx, item.SurveyID)
	if err != nil {
		return fmt.Errorf("load seeded questions: %w", err)
	}

	s.setCachedSurvey(item, questions)
	s.observer.SurveyInitialized(len(questions))
	return nil
}

func (s *Service) Survey(ctx context.Context) (Survey, error) {
	if item, ok := s.getCachedSurvey(); ok {
		return item, nil
	}
	return s.surveys.SurveyByTitle(ctx, s.def.Title)
}

func (s *Service) Questions(ctx context.Context) ([]Question, error) {
	if questions, ok := s.getCachedQuestions(); ok {
		return questions, nil
	}

	item, err := s.Survey(ctx)
	if err != nil {
		return nil, err
	}
	return s.surveys.SurveyQuestions(ctx, item.SurveyID)
}

// Submit persists one completed answer set atomically and reports the outcome
// to the observer.
func (s *Service) Submit(ctx context.Context, drafts []AnswerDraft) (int64, error) {
	item, err := s.Survey(ctx)
	if err != nil {
		return 0, err
	}

	responseID, err := s.responses.PersistResponse(ctx, item.SurveyID, drafts)
	if err != nil {
		s.observer.PersistFailed()
		return 0, err
	}

	s.observer.ResponsePersisted()
	return responseID, nil
}

func (s *Service) Responses(ctx context.Context) ([]ResponseGroup, error) {
	return s.responses.AggregateResponses(ctx)
}
