package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, spaces, and common name punctuation: . ' -
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// E164-like phone with optional spaces: optional +, digits/spaces 7-16 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ]{6,15}$`)

	// Aadhar style: 12 digits, optionally grouped as XXXX-XXXX-XXXX
	aadharRegex = regexp.MustCompile(`^[0-9]{4}-?[0-9]{4}-?[0-9]{4}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("valid_aadhar", ValidAadhar)
}

// AdvisoryInput carries the free-text fields that have a conventional shape.
// Registration accepts these as-is; the tags here only feed Hints.
type AdvisoryInput struct {
	Name         string `validate:"omitempty,valid_name"`
	Phone        string `validate:"omitempty,valid_phone"`
	AadharNumber string `validate:"omitempty,valid_aadhar"`
}

// Hints returns user-facing notes for fields that do not match their
// conventional format. It never blocks: callers surface the messages and
// accept the values regardless.
func Hints(v *validator.Validate, in AdvisoryInput) []string {
	if err := v.Struct(in); err != nil {
		return FormatValidationErrors(err)
	}
	return nil
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// ValidAadhar validates the 12-digit Aadhar number format
func ValidAadhar(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return aadharRegex.MatchString(val)
}
