package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRequest_Validate(t *testing.T) {
	valid := ContactRequest{Name: "Мария", Phone: "+7 999 000-00-00", Email: "m@example.com", Message: "Перезвоните"}
	require.NoError(t, valid.Validate())

	err := ContactRequest{Phone: "---", Message: "  "}.Validate()
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"name is required",
		"phone must contain digits",
		"email is required",
		"message is required",
	}, verr.Details)
}

func TestContactRequest_Normalize(t *testing.T) {
	r := ContactRequest{Name: " Мария ", Email: " m@example.com", Type: "  "}
	r.Normalize()
	assert.Equal(t, "Мария", r.Name)
	assert.Equal(t, "m@example.com", r.Email)
	assert.Equal(t, DefaultContactRequestType, r.Type)

	r = ContactRequest{Type: "callback"}
	r.Normalize()
	assert.Equal(t, "callback", r.Type)
}
