package submission

import (
	"testing"

	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/stretchr/testify/assert"
)

func TestValidateAnswers_AllRequiredPresent(t *testing.T) {
	fields := []opportunity.FieldDefinition{
		{Label: "Budget", Type: opportunity.FieldTypeNumber, Required: true},
		{Label: "Notes", Type: opportunity.FieldTypeTextarea},
	}

	err := ValidateAnswers(fields, map[string]interface{}{"Budget": "5000"})
	assert.NoError(t, err)
}

func TestValidateAnswers_FirstMissingInSchemaOrder(t *testing.T) {
	fields := []opportunity.FieldDefinition{
		{Label: "Budget", Required: true},
		{Label: "Timeline", Required: true},
	}

	err := ValidateAnswers(fields, map[string]interface{}{"Timeline": "6 months"})
	var missing *MissingFieldError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "Budget", missing.Label)

	err = ValidateAnswers(fields, map[string]interface{}{})
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "Budget", missing.Label)
}

func TestValidateAnswers_BlankCountsAsMissing(t *testing.T) {
	fields := []opportunity.FieldDefinition{{Label: "Budget", Required: true}}

	var missing *MissingFieldError
	assert.ErrorAs(t, ValidateAnswers(fields, map[string]interface{}{"Budget": "   "}), &missing)
	assert.ErrorAs(t, ValidateAnswers(fields, map[string]interface{}{"Budget": nil}), &missing)

	// non-string values are never blank
	assert.NoError(t, ValidateAnswers(fields, map[string]interface{}{"Budget": 0}))
	assert.NoError(t, ValidateAnswers(fields, map[string]interface{}{"Budget": false}))
}

func TestValidateAnswers_UnknownKeysPassThrough(t *testing.T) {
	fields := []opportunity.FieldDefinition{{Label: "Budget", Required: true}}

	err := ValidateAnswers(fields, map[string]interface{}{
		"Budget":  "5000",
		"Extra":   "not in the schema",
		"Another": 42,
	})
	assert.NoError(t, err)
}

func TestValidateAnswers_NoSchema(t *testing.T) {
	assert.NoError(t, ValidateAnswers(nil, map[string]interface{}{"anything": "goes"}))
}
