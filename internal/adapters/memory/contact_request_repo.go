package memory

import (
	"context"
	"land-catalog/internal/core/domain"
	"sync"
)

type ContactRequestRepo struct {
	mu       sync.RWMutex
	requests []domain.ContactRequest
}

func NewContactRequestRepo() *ContactRequestRepo {
	return &ContactRequestRepo{}
}

func (r *ContactRequestRepo) Create(ctx context.Context, request *domain.ContactRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, *request)
	return nil
}

func (r *ContactRequestRepo) List() []domain.ContactRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.ContactRequest, len(r.requests))
	copy(res, r.requests)
	return res
}
