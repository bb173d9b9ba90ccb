package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

type QuizQuestion struct {
	ID       uuid.UUID
	Question string
	Options  []string
	Order    int
	IsActive bool
}

// QuizResponseStatus - статус обработки заявки менеджером.
type QuizResponseStatus string

const (
	QuizStatusNew       QuizResponseStatus = "new"
	QuizStatusProcessed QuizResponseStatus = "processed"
	QuizStatusRejected  QuizResponseStatus = "rejected"
)

// QuizAnswers - ответы: идентификатор вопроса -> текст ответа или выбранный вариант.
type QuizAnswers map[string]string

type QuizResponse struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     *string
	Answers   QuizAnswers
	Completed bool
	Status    QuizResponseStatus
	CreatedAt time.Time
}

type PromoCode struct {
	ID              uuid.UUID
	Code            string
	DiscountPercent int
	IsActive        bool
	ExpiresAt       time.Time
	MaxUsages       int
	UsageCount      int
	QuizResponseID  uuid.UUID
	CreatedAt       time.Time
}

// QuizSubmission - входные данные квиза.
type QuizSubmission struct {
	Name    string
	Phone   string
	Email   string
	Answers QuizAnswers
}

// Validate проверяет обязательные поля до любого обращения к хранилищу.
func (s QuizSubmission) Validate() error {
	var details []string
	if strings.TrimSpace(s.Name) == "" {
		details = append(details, "name is required")
	}
	if strings.TrimSpace(s.Phone) == "" {
		details = append(details, "phone is required")
	} else if NormalizePhone(s.Phone) == "" {
		details = append(details, "phone must contain digits")
	}
	if len(s.Answers) == 0 {
		details = append(details, "answers must be a non-empty mapping")
	}
	if len(details) > 0 {
		return NewValidationError("invalid quiz submission", details...)
	}
	return nil
}

// Identity - нормализованная пара (телефон, email) для дедупликации.
type Identity struct {
	Phone string
	Email string // пустая строка - email не указан
}

// IdentityOf строит нормализованную идентичность из заявки.
func IdentityOf(s QuizSubmission) Identity {
	return Identity{
		Phone: NormalizePhone(s.Phone),
		Email: NormalizeEmail(s.Email),
	}
}

// NormalizePhone оставляет только цифры: "+7 (999) 123-45-67" -> "79991234567".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var emailFolder = cases.Fold()

// NormalizeEmail обрезает пробелы и приводит регистр.
func NormalizeEmail(email string) string {
	return emailFolder.String(strings.TrimSpace(email))
}

// Issuance - результат квиза: созданная (или ранее выданная) заявка и промокод.
type Issuance struct {
	Created  bool
	Response QuizResponse
	Promo    PromoCode
}
