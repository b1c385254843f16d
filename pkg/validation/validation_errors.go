package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, FormatFieldError(e.Field(), e.Tag(), e.Param()))
	}
	return messages
}

// Message joins FormatValidationErrors into a single line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// FormatFieldError renders one failed rule. field is the JSON name of the field.
func FormatFieldError(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("Field %q is required", field)

	case "not_blank":
		return fmt.Sprintf("Field %q must not be empty", field)

	case "level":
		return fmt.Sprintf("Level must be between %d and %d", MinLevel, MaxLevel)

	case "gt":
		return fmt.Sprintf("Field %q must be greater than %s", field, param)

	case "min":
		return fmt.Sprintf("Field %q must be at least %s", field, param)

	case "max":
		return fmt.Sprintf("Field %q must be at most %s", field, param)

	default:
		return fmt.Sprintf("Field %q failed validation (%s)", field, tag)
	}
}

// RequiredFields renders the message for a set of missing fields, e.g.
// `Fields "skill", "level", and "theme_id" are required`.
func RequiredFields(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	switch len(quoted) {
	case 0:
		return "Required fields are missing"
	case 1:
		return fmt.Sprintf("Field %s is required", quoted[0])
	case 2:
		return fmt.Sprintf("Fields %s and %s are required", quoted[0], quoted[1])
	default:
		return fmt.Sprintf("Fields %s, and %s are required",
			strings.Join(quoted[:len(quoted)-1], ", "), quoted[len(quoted)-1])
	}
}
