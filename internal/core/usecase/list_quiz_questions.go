package usecase

import (
	"context"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
)

type ListQuizQuestionsUseCase struct {
	repo port.QuizQuestionRepositoryPort
}

func NewListQuizQuestionsUseCase(repo port.QuizQuestionRepositoryPort) *ListQuizQuestionsUseCase {
	return &ListQuizQuestionsUseCase{repo: repo}
}

func (uc *ListQuizQuestionsUseCase) Execute(ctx context.Context) ([]domain.QuizQuestion, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ListQuizQuestions"})

	questions, err := uc.repo.ListActive(ctx)
	if err != nil {
		logger.Error("Failed to load quiz questions", err, nil)
		return nil, err
	}
	if len(questions) == 0 {
		logger.Warn("No active quiz questions configured", nil)
	}
	return questions, nil
}
