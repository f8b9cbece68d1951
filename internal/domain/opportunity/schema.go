package opportunity

import (
	"encoding/json"
	"fmt"
	"strings"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeURL      FieldType = "url"
)

// FieldDefinition is one custom question a funder attaches to an
// opportunity. Labels double as the answer keys on submissions.
type FieldDefinition struct {
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}

// SchemaError reports a malformed field-schema payload.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "invalid integrated application fields: " + e.Reason
}

// rawField keeps required loose so "required": 1 / "true" style payloads
// coming from form builders still coerce instead of failing the decode.
type rawField struct {
	Label    string          `json:"label"`
	Type     string          `json:"type"`
	Required json.RawMessage `json:"required"`
}

// ParseFieldSchema validates and normalizes a funder-supplied field list.
// Order is preserved; it defines the rendering and review order downstream.
// Labels are trimmed and must be non-empty. Type defaults to text, and
// unknown types fall back to text rather than failing. Duplicate labels are
// accepted: answers are keyed by label, so duplicates collide (last one
// wins), matching the legacy behavior until product tightens the rule.
func ParseFieldSchema(raw json.RawMessage) ([]FieldDefinition, error) {
	if len(raw) == 0 {
		return nil, &SchemaError{Reason: "empty payload"}
	}

	var rawFields []rawField
	if err := json.Unmarshal(raw, &rawFields); err != nil {
		return nil, &SchemaError{Reason: "must be an array of field objects"}
	}

	fields := make([]FieldDefinition, 0, len(rawFields))
	for i, rf := range rawFields {
		label := strings.TrimSpace(rf.Label)
		if label == "" {
			return nil, &SchemaError{Reason: fmt.Sprintf("field %d has an empty label", i)}
		}
		fields = append(fields, FieldDefinition{
			Label:    label,
			Type:     normalizeFieldType(rf.Type),
			Required: coerceBool(rf.Required),
		})
	}
	return fields, nil
}

func normalizeFieldType(s string) FieldType {
	switch FieldType(s) {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeDate, FieldTypeURL:
		return FieldType(s)
	default:
		return FieldTypeText
	}
}

func coerceBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "true" || s == "1"
	}
	return false
}
