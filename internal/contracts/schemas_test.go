package contracts

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"events/quiz-submitted/v1.json", "QuizSubmittedEvent/1.0.0"},
		{"events/inquiry-created/v2.json", "InquiryCreatedEvent/2.0.0"},
		{"requests/quiz-submission/v1.json", "QuizSubmissionRequest/1.0.0"},
		{"commands/quiz-submitted/v1.json", ""},
		{"events/v1.json", ""},
		{"events/a/b/v1.json", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, generateKeyFromPath(tt.path))
		})
	}
}

func TestCompileSchemas_EmbeddedSet(t *testing.T) {
	compiled, err := loadSchemas()
	require.NoError(t, err)

	assert.Contains(t, compiled, "QuizSubmittedEvent/1.0.0")
	assert.Contains(t, compiled, "InquiryCreatedEvent/1.0.0")
	assert.Contains(t, compiled, "ContactRequestCreatedEvent/1.0.0")
	assert.Contains(t, compiled, "QuizSubmissionRequest/1.0.0")
}

func TestCompileSchemas_BrokenSchema(t *testing.T) {
	fsys := fstest.MapFS{
		"events/broken/v1.json": {Data: []byte(`{"type": 12}`)},
		"requests/.keep":        {Data: nil},
	}
	_, err := compileSchemas(fsys)
	require.Error(t, err)
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		body := []byte(`{"name":"Иван","phone":"+7 999 123-45-67","email":null,"answers":{"q1":"ИЖС"}}`)
		require.NoError(t, ValidateRequest("quiz-submission", "v1", body))
	})

	t.Run("wrong types", func(t *testing.T) {
		body := []byte(`{"name":42,"phone":"79991234567","answers":{"q1":3}}`)
		err := ValidateRequest("quiz-submission", "v1", body)
		require.Error(t, err)

		details := ValidationDetails(err)
		require.NotEmpty(t, details)
		joined := strings.Join(details, "\n")
		assert.Contains(t, joined, "name: ")
		assert.Contains(t, joined, "answers/q1: ")
	})

	t.Run("not json", func(t *testing.T) {
		err := ValidateRequest("quiz-submission", "v1", []byte(`{`))
		require.Error(t, err)
		assert.Equal(t, []string{err.Error()}, ValidationDetails(err))
	})
}

func TestValidateEvent(t *testing.T) {
	valid := []byte(`{
		"response_id": "0b1c2d3e-4f50-4a6b-8c7d-9e0f1a2b3c4d",
		"name": "Иван",
		"phone": "79991234567",
		"promo_code": "ИВА123AB5",
		"discount_percent": 5,
		"expires_at": "2026-11-15T10:00:00Z",
		"submitted_at": "2026-10-16T10:00:00Z"
	}`)
	require.NoError(t, ValidateEvent("quiz-submitted", "v1", valid))

	invalid := []byte(`{
		"response_id": "not-a-uuid",
		"name": "Иван",
		"phone": "79991234567",
		"promo_code": "ИВА123AB5",
		"discount_percent": 500,
		"expires_at": "2026-11-15T10:00:00Z",
		"submitted_at": "2026-10-16T10:00:00Z"
	}`)
	err := ValidateEvent("quiz-submitted", "v1", invalid)
	require.Error(t, err)
	details := strings.Join(ValidationDetails(err), "\n")
	assert.Contains(t, details, "response_id: ")
	assert.Contains(t, details, "discount_percent: ")
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("NopeEvent/1.0.0", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
