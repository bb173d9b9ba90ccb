package rest

import (
	"encoding/json"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"land-catalog/internal/core/port/usecases_port"
	"net/http"
)

type ContactRequestHandler struct {
	createRequestUC usecases_port.CreateContactRequestUseCase
}

func NewContactRequestHandler(createRequestUC usecases_port.CreateContactRequestUseCase) *ContactRequestHandler {
	return &ContactRequestHandler{createRequestUC: createRequestUC}
}

// Create обрабатывает POST /api/v1/requests
func (h *ContactRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		WriteUseCaseError(w, err)
		return
	}
	var req ContactRequestRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteUseCaseError(w, domain.NewValidationError("invalid contact request", "body must be a request object"))
		return
	}

	created, err := h.createRequestUC.Execute(r.Context(), domain.ContactRequest{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		if domain.KindOf(err) != domain.KindInvalidInput {
			contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "CreateContactRequest"})
		}
		WriteUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, ContactRequestResponse{
		ID:        created.ID,
		Name:      created.Name,
		Phone:     created.Phone,
		Email:     created.Email,
		Message:   created.Message,
		Type:      created.Type,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	})
}
