package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	data := []string{"a", "b", "c"}

	resp := NewPaginatedResponse(data, 2, 10, 21)

	assert.Equal(t, data, resp.Data)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 10, resp.Pagination.PerPage)
	assert.Equal(t, int64(21), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestNewPaginatedResponse_Empty(t *testing.T) {
	resp := NewPaginatedResponse([]string{}, 1, 10, 0)

	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
}
