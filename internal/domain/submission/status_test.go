package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, ValidStatus(string(s)), "%s", s)
	}
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Approved"))
}

func TestCanTransition_AllEdgesAllowed(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_UnknownStatusRejected(t *testing.T) {
	assert.False(t, CanTransition(StatusSubmitted, Status("archived")))
	assert.False(t, CanTransition(Status("archived"), StatusSubmitted))
}
