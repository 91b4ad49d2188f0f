package validation_test

import (
	"testing"

	"go-workerconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestAdvisoryHints(t *testing.T) {
	v := newValidate()

	t.Run("Conventional values produce no hints", func(t *testing.T) {
		hints := validation.Hints(v, validation.AdvisoryInput{
			Name:         "Asha Patel",
			Phone:        "+91 98765 43210",
			AadharNumber: "1234-5678-9012",
		})
		assert.Empty(t, hints)
	})

	t.Run("Empty fields produce no hints", func(t *testing.T) {
		hints := validation.Hints(v, validation.AdvisoryInput{})
		assert.Empty(t, hints)
	})

	t.Run("Unconventional values produce one hint per field", func(t *testing.T) {
		hints := validation.Hints(v, validation.AdvisoryInput{
			Name:         "Asha @ Patel",
			Phone:        "call me after 6pm",
			AadharNumber: "12-34",
		})
		assert.Len(t, hints, 3)
		assert.Contains(t, hints, "Full Name contains invalid characters")
		assert.Contains(t, hints, "Phone Number is not a valid phone number")
		assert.Contains(t, hints, "Aadhar Number must be a 12 digit number")
	})
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidate()

	type roleOnly struct {
		Role string `validate:"omitempty,oneof=customer worker"`
	}

	err := v.Struct(roleOnly{Role: "admin"})
	assert.Error(t, err)
	messages := validation.FormatValidationErrors(err)
	assert.Equal(t, []string{"Account Type must be one of: customer worker"}, messages)
}
