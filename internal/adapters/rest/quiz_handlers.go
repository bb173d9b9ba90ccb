package rest

import (
	"encoding/json"
	"land-catalog/internal/constants"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/contracts"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"land-catalog/internal/core/port/usecases_port"
	"net/http"
)

const (
	messageQuizSaved         = "Ответы успешно сохранены"
	messageQuizAlreadyPassed = "Вы уже проходили квиз ранее"
)

type QuizHandler struct {
	listQuestionsUC usecases_port.ListQuizQuestionsUseCase
	submitQuizUC    usecases_port.SubmitQuizUseCase
}

func NewQuizHandler(listQuestionsUC usecases_port.ListQuizQuestionsUseCase, submitQuizUC usecases_port.SubmitQuizUseCase) *QuizHandler {
	return &QuizHandler{
		listQuestionsUC: listQuestionsUC,
		submitQuizUC:    submitQuizUC,
	}
}

// ListQuestions обрабатывает GET /api/v1/quiz/questions
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.listQuestionsUC.Execute(r.Context())
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "ListQuestions"})
		WriteUseCaseError(w, err)
		return
	}

	resp := QuizQuestionsResponse{Questions: make([]QuizQuestionResponse, 0, len(questions))}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, QuizQuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  nonNilStrings(q.Options),
			Order:    q.Order,
		})
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// Submit обрабатывает POST /api/v1/quiz/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "SubmitQuiz",
	})

	body, err := readBody(w, r)
	if err != nil {
		writeQuizError(w, err)
		return
	}
	if err := contracts.ValidateRequest(constants.RequestQuizSubmission, constants.EventVersionV1, body); err != nil {
		handlerLogger.Debug("Request does not match schema", port.Fields{"error": err.Error()})
		writeQuizError(w, domain.NewValidationError("invalid quiz submission", contracts.ValidationDetails(err)...))
		return
	}

	var req QuizSubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeQuizError(w, domain.NewValidationError("invalid quiz submission", "body must be a JSON object"))
		return
	}

	submission := domain.QuizSubmission{
		Name:    req.Name,
		Phone:   req.Phone,
		Answers: req.Answers,
	}
	if req.Email != nil {
		submission.Email = *req.Email
	}

	issuance, err := h.submitQuizUC.Execute(r.Context(), submission)
	if err != nil {
		if domain.KindOf(err) != domain.KindInvalidInput {
			handlerLogger.Error("Use case failed", err, nil)
		}
		writeQuizError(w, err)
		return
	}

	message := messageQuizSaved
	if !issuance.Created {
		message = messageQuizAlreadyPassed
	}
	RespondWithJSON(w, http.StatusOK, QuizSubmitResponse{
		Success:       true,
		Created:       issuance.Created,
		AlreadyExists: !issuance.Created,
		Message:       message,
		ResponseID:    issuance.Response.ID,
		PromoCode:     issuance.Promo.Code,
	})
}

// writeQuizError: 400 для некорректного ввода, 503 при недоступном хранилище, иначе 500
func writeQuizError(w http.ResponseWriter, err error) {
	resp := errorResponseFor(err)
	status := http.StatusInternalServerError
	switch resp.Kind {
	case domain.KindInvalidInput:
		status = http.StatusBadRequest
	case domain.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	default:
		resp.Kind = domain.KindInternal
		resp.Error = publicMessages[domain.KindInternal]
	}
	RespondWithJSON(w, status, resp)
}
