package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Name":            "Full Name",
	"Email":           "Email",
	"Phone":           "Phone Number",
	"Location":        "Location",
	"Password":        "Password",
	"ConfirmPassword": "Confirm Password",
	"Profession":      "Profession",
	"Experience":      "Years of Experience",
	"Bio":             "Bio",
	"Skills":          "Skills",
	"AadharNumber":    "Aadhar Number",
	"Role":            "Account Type",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	case "valid_phone":
		return fmt.Sprintf("%s is not a valid phone number", label)
	case "valid_aadhar":
		return fmt.Sprintf("%s must be a 12 digit number", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
