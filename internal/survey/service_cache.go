package survey

// Cache-specific helpers are isolated here so service.go can focus on
// orchestration. The cache never invalidates: surveys and questions are
// created once at bootstrap and read-only afterwards.

func (s *Service) getCachedSurvey() (Survey, bool) {
	if s.cachedSurvey == nil {
		return Survey{}, false
	}
	return *s.cachedSurvey, true
}

func (s *Service) getCachedQuestions() ([]Question, bool) {
	if s.cachedQuestions == nil {
		return nil, false
	}
	// Return direct cached memory for simplicity; callers treat the slice as
	// read-only.
	return s.cachedQuestions, true
}

func (s *Service) setCachedSurvey(item Survey, questions []Question) {
	copied := item
	s.cachedSurvey = &copied
	s.cachedQuestions = questions
}
