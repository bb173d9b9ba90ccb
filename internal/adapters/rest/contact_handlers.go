package rest

import (
	"encoding/json"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"land-catalog/internal/core/port/usecases_port"
	"net/http"
)

type ContactHandler struct {
	getContactUC usecases_port.GetContactUseCase
	putContactUC usecases_port.PutContactUseCase
}

func NewContactHandler(getContactUC usecases_port.GetContactUseCase, putContactUC usecases_port.PutContactUseCase) *ContactHandler {
	return &ContactHandler{
		getContactUC: getContactUC,
		putContactUC: putContactUC,
	}
}

// GetContact обрабатывает GET /api/v1/contacts
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.getContactUC.Execute(r.Context())
	if err != nil {
		if domain.KindOf(err) != domain.KindNotFound {
			contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "GetContact"})
		}
		WriteUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toContactDTO(contact))
}

// PutContact обрабатывает PUT /api/v1/contacts.
// Если запись сохранена, но кэш не сброшен, отвечает 503 с видом CacheUnavailable: повтор запроса безопасен.
func (h *ContactHandler) PutContact(w http.ResponseWriter, r *http.Request) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "PutContact",
	})

	body, err := readBody(w, r)
	if err != nil {
		WriteUseCaseError(w, err)
		return
	}
	var req ContactDTO
	if err := json.Unmarshal(body, &req); err != nil {
		WriteUseCaseError(w, domain.NewValidationError("invalid contact", "body must be a contact object"))
		return
	}

	contact, err := h.putContactUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toContactDTO(contact))
}
