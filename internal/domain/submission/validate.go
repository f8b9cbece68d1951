package submission

import (
	"strings"

	"github.com/ngobridge/platform-go/internal/domain/opportunity"
)

// MissingFieldError names the first required field without an answer, in
// schema order.
type MissingFieldError struct {
	Label string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Label
}

// ValidateAnswers checks an answer set against the opportunity's field
// schema. Only presence of required answers is checked; answer shape is not
// validated against the field type (numbers and dates are accepted as free
// text). Answers for unknown labels pass through untouched.
func ValidateAnswers(fields []opportunity.FieldDefinition, answers map[string]interface{}) error {
	for _, f := range fields {
		if !f.Required {
			continue
		}
		v, ok := answers[f.Label]
		if !ok || isBlank(v) {
			return &MissingFieldError{Label: f.Label}
		}
	}
	return nil
}

func isBlank(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
