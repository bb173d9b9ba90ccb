package rest

import (
	"encoding/json"
	"errors"
	"land-catalog/internal/core/domain"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error   string           `json:"error"`
	Kind    domain.ErrorKind `json:"kind,omitempty"`
	Details []string         `json:"details,omitempty"`
}

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// statusForKind - единая таблица соответствия вида ошибки и HTTP-статуса
func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindStoreUnavailable, domain.KindCacheUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var publicMessages = map[domain.ErrorKind]string{
	domain.KindInvalidInput:     "Invalid request",
	domain.KindNotFound:         "Not found",
	domain.KindConflict:         "Conflict",
	domain.KindStoreUnavailable: "Storage is temporarily unavailable",
	domain.KindCacheUnavailable: "Cache is temporarily unavailable",
	domain.KindInternal:         "Internal server error",
}

// errorResponseFor строит тело ответа. Текст внутренних ошибок наружу не отдается.
func errorResponseFor(err error) ErrorResponse {
	kind := domain.KindOf(err)
	resp := ErrorResponse{Error: publicMessages[kind], Kind: kind}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Error = verr.Message
		resp.Details = verr.Details
	}
	return resp
}

// WriteUseCaseError отвечает ошибкой use case со статусом по ее виду
func WriteUseCaseError(w http.ResponseWriter, err error) {
	resp := errorResponseFor(err)
	RespondWithJSON(w, statusForKind(resp.Kind), resp)
}

func parseString(query url.Values, key string) string {
	return strings.TrimSpace(query.Get(key))
}

// parseFloat возвращает nil для отсутствующих и некорректных значений
func parseFloat(query url.Values, key string) *float64 {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseInt возвращает 0 для отсутствующих и некорректных значений
func parseInt(query url.Values, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(query.Get(key)))
	if err != nil {
		return 0
	}
	return v
}

const maxBodyBytes = 1 << 20

// readBody читает JSON-тело целиком; некорректный JSON - ValidationError
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, domain.NewValidationError("invalid request body", "body must be a JSON object")
	}
	return body, nil
}
