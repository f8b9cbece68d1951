package opportunity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldSchema_Normalizes(t *testing.T) {
	raw := json.RawMessage(`[
		{"label": "  Project Budget ", "type": "number", "required": true},
		{"label": "Notes", "type": "textarea"},
		{"label": "Website", "type": "hyperlink", "required": false}
	]`)

	fields, err := ParseFieldSchema(raw)
	assert.NoError(t, err)
	assert.Len(t, fields, 3)

	assert.Equal(t, "Project Budget", fields[0].Label)
	assert.Equal(t, FieldTypeNumber, fields[0].Type)
	assert.True(t, fields[0].Required)

	assert.Equal(t, FieldTypeTextarea, fields[1].Type)
	assert.False(t, fields[1].Required)

	// unknown types fall back to text
	assert.Equal(t, FieldTypeText, fields[2].Type)
}

func TestParseFieldSchema_RequiredCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"true"`, true},
		{`"1"`, true},
		{`"yes"`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		raw := json.RawMessage(`[{"label": "Q", "required": ` + tc.raw + `}]`)
		fields, err := ParseFieldSchema(raw)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, fields[0].Required, "required=%s", tc.raw)
	}
}

func TestParseFieldSchema_EmptyLabel(t *testing.T) {
	raw := json.RawMessage(`[{"label": "   ", "type": "text"}]`)

	_, err := ParseFieldSchema(raw)
	var serr *SchemaError
	assert.ErrorAs(t, err, &serr)
}

func TestParseFieldSchema_NotAnArray(t *testing.T) {
	_, err := ParseFieldSchema(json.RawMessage(`{"label": "Q"}`))
	var serr *SchemaError
	assert.ErrorAs(t, err, &serr)

	_, err = ParseFieldSchema(nil)
	assert.ErrorAs(t, err, &serr)
}

func TestParseFieldSchema_PreservesOrderAndDuplicates(t *testing.T) {
	raw := json.RawMessage(`[
		{"label": "B"},
		{"label": "A"},
		{"label": "B", "required": true}
	]`)

	fields, err := ParseFieldSchema(raw)
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "B"}, []string{fields[0].Label, fields[1].Label, fields[2].Label})
}

func TestFieldsRoundTrip(t *testing.T) {
	o := &FundingOpportunity{}

	assert.NoError(t, o.SetFields([]FieldDefinition{{Label: "Q", Type: FieldTypeText, Required: true}}))
	fields, err := o.Fields()
	assert.NoError(t, err)
	assert.Len(t, fields, 1)
	assert.Equal(t, "Q", fields[0].Label)

	assert.NoError(t, o.SetFields(nil))
	assert.Nil(t, o.IntegratedAppFields)
	fields, err = o.Fields()
	assert.NoError(t, err)
	assert.Nil(t, fields)
}
