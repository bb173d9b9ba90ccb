package domain

import (
	"errors"
	"strings"
)

// Ошибки, которые use cases возвращают наружу.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("identity already has a quiz response")
	ErrPromoCodeTaken   = errors.New("promo code already issued")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// ErrorKind - машиночитаемый вид ошибки для слоя представления.
type ErrorKind string

const (
	KindInvalidInput     ErrorKind = "InvalidInput"
	KindNotFound         ErrorKind = "NotFound"
	KindConflict         ErrorKind = "Conflict"
	KindStoreUnavailable ErrorKind = "StoreUnavailable"
	KindCacheUnavailable ErrorKind = "CacheUnavailable"
	KindInternal         ErrorKind = "Internal"
)

// ValidationError - ошибка входных данных с деталями по полям.
type ValidationError struct {
	Message string
	Details []string
}

func NewValidationError(msg string, details ...string) *ValidationError {
	return &ValidationError{Message: msg, Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// KindOf определяет вид ошибки по цепочке обёрток.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrPromoCodeTaken):
		return KindConflict
	case errors.Is(err, ErrStoreUnavailable):
		return KindStoreUnavailable
	case errors.Is(err, ErrCacheUnavailable):
		return KindCacheUnavailable
	}
	return KindInternal
}
