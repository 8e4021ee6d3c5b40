package validators

import (
	"errors"
	"testing"

	"github.com/recipebox/server/internal/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorsUseJSONNames(t *testing.T) {
	v := New()

	err := v.Struct(types.RegisterAccountRequest{Email: "not-an-email", Password: "1234"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "enter a valid email address", fields["email"])
	assert.Equal(t, "ensure this field has at least 5 characters", fields["password"])
	assert.NotContains(t, fields, "Email", "Go field names must not leak")
}

func TestFieldErrorsRequired(t *testing.T) {
	v := New()

	err := v.Struct(types.CreateAttributeRequest{})
	require.Error(t, err)
	assert.Equal(t, "this field is required", FieldErrors(err)["name"])
}

func TestFieldErrorsNonValidatorError(t *testing.T) {
	fields := FieldErrors(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"non_field_errors": "unexpected EOF"}, fields)
}
