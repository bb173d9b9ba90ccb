package rest

import (
	"encoding/json"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"land-catalog/internal/core/port/usecases_port"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type InquiryHandler struct {
	createInquiryUC usecases_port.CreateInquiryUseCase
}

func NewInquiryHandler(createInquiryUC usecases_port.CreateInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{createInquiryUC: createInquiryUC}
}

// CreateInquiry обрабатывает POST /api/v1/inquiries
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		WriteUseCaseError(w, err)
		return
	}
	var req InquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteUseCaseError(w, domain.NewValidationError("invalid inquiry", "body must be an inquiry object"))
		return
	}

	inquiry := domain.Inquiry{
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
		Source:  req.Source,
	}
	if req.PlotID != nil && strings.TrimSpace(*req.PlotID) != "" {
		plotID, err := uuid.Parse(strings.TrimSpace(*req.PlotID))
		if err != nil {
			WriteUseCaseError(w, domain.NewValidationError("invalid inquiry", "plotId must be a UUID"))
			return
		}
		inquiry.PlotID = &plotID
	}

	created, err := h.createInquiryUC.Execute(r.Context(), inquiry)
	if err != nil {
		if domain.KindOf(err) != domain.KindInvalidInput {
			contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "CreateInquiry"})
		}
		WriteUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InquiryResponse{Success: true, InquiryID: created.ID})
}
