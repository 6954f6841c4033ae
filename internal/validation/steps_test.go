package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_AggregatesOnlyStepFields(t *testing.T) {
	values := map[string]string{
		"email":    "bad",
		"password": "",
		"phone":    "also bad", // not part of this step
	}

	errs := Step([]string{"email", "password"}, values)
	require.Len(t, errs, 2)
	assert.Equal(t, "Email is invalid", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
	assert.NotContains(t, errs, "phone")
}

func TestStep_SatisfiedWhenEmpty(t *testing.T) {
	values := map[string]string{
		"email":           "w@x.com",
		"password":        "Strong123",
		"confirmPassword": "Strong123",
	}
	errs := Step([]string{"email", "password", "confirmPassword"}, values)
	assert.Empty(t, errs)
}

func TestStep_MissingValuesTreatedAsEmpty(t *testing.T) {
	errs := Step([]string{"email"}, map[string]string{})
	require.Equal(t, map[string]string{"email": "Email is required"}, errs)
}

func TestStep_IdempotentAndNonMutating(t *testing.T) {
	values := map[string]string{"email": "nope", "password": "Strong123"}
	fields := []string{"email", "password"}

	first := Step(fields, values)
	second := Step(fields, values)

	require.Equal(t, first, second)
	// Inputs survive untouched.
	assert.Equal(t, map[string]string{"email": "nope", "password": "Strong123"}, values)
	assert.Equal(t, []string{"email", "password"}, fields)
}
