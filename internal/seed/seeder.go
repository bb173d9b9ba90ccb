package seed

import (
	"context"
	"errors"
	"fmt"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"land-catalog/internal/core/port/usecases_port"
)

// Summary - сколько записей записал seed.
type Summary struct {
	Plots     int
	Questions int
	Contact   bool
}

// Seeder заполняет хранилище демонстрационными данными через те же use cases, что и API.
type Seeder struct {
	savePlot   usecases_port.SavePlotUseCase
	questions  port.QuizQuestionRepositoryPort
	putContact usecases_port.PutContactUseCase
}

func NewSeeder(savePlot usecases_port.SavePlotUseCase, questions port.QuizQuestionRepositoryPort, putContact usecases_port.PutContactUseCase) *Seeder {
	return &Seeder{savePlot: savePlot, questions: questions, putContact: putContact}
}

// Run идемпотентен: участки и вопросы перезаписываются по фиксированным ID,
// контакты добавляются новой записью и становятся актуальными.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "Seeder"})
	var summary Summary

	for _, plot := range Plots() {
		if _, err := s.savePlot.Execute(ctx, plot); err != nil {
			return summary, fmt.Errorf("failed to seed plot %q: %w", plot.Title, err)
		}
		summary.Plots++
	}
	logger.Info("Plots seeded", port.Fields{"count": summary.Plots})

	for _, q := range QuizQuestions() {
		if err := s.questions.Save(ctx, &q); err != nil {
			return summary, fmt.Errorf("failed to seed quiz question %d: %w", q.Order, err)
		}
		summary.Questions++
	}
	logger.Info("Quiz questions seeded", port.Fields{"count": summary.Questions})

	if _, err := s.putContact.Execute(ctx, DefaultContact()); err != nil {
		// Контакты уже записаны, старое значение в кэше истечет по TTL
		if !errors.Is(err, domain.ErrCacheUnavailable) {
			return summary, fmt.Errorf("failed to seed contacts: %w", err)
		}
		logger.Warn("Contacts seeded but cache was not invalidated", port.Fields{"error": err.Error()})
	}
	summary.Contact = true
	logger.Info("Contacts seeded", nil)

	return summary, nil
}
