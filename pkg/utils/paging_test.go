package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	limit, offset := Pagination(1, 10)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	limit, offset = Pagination(3, 25)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)

	// zero and negative params fall back to page 1, 10 per page
	limit, offset = Pagination(0, 0)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	limit, offset = Pagination(-2, -5)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(100, 0))
}
