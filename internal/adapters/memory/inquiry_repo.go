package memory

import (
	"context"
	"land-catalog/internal/core/domain"
	"sync"
)

type InquiryRepo struct {
	mu        sync.RWMutex
	inquiries []domain.Inquiry
	plots     *PlotRepo
}

// NewInquiryRepo создает хранилище заявок; plots (может быть nil) проверяет ссылку на участок.
func NewInquiryRepo(plots *PlotRepo) *InquiryRepo {
	return &InquiryRepo{plots: plots}
}

func (r *InquiryRepo) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	if inquiry.PlotID != nil && r.plots != nil {
		if _, err := r.plots.GetByID(ctx, *inquiry.PlotID); err != nil {
			return domain.NewValidationError("invalid inquiry", "plot does not exist")
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries = append(r.inquiries, *inquiry)
	return nil
}

func (r *InquiryRepo) List() []domain.Inquiry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.Inquiry, len(r.inquiries))
	copy(res, r.inquiries)
	return res
}
