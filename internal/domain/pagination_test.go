package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"union-portal/internal/domain"
)

func TestPaginationValidate(t *testing.T) {
	cases := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"defaults out of zero values", 0, 0, 1, 20},
		{"negative page clamps to first", -3, 10, 1, 10},
		{"oversized page size clamps", 2, 500, 2, 100},
		{"valid values untouched", 3, 50, 3, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := domain.PaginationParams{Page: tc.page, PageSize: tc.size}
			params.Validate()
			assert.Equal(t, tc.wantPage, params.Page)
			assert.Equal(t, tc.wantPageSize, params.PageSize)
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := domain.NewPaginatedResponse([]string{"a", "b"}, 2, 2, 5)

	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
	assert.Equal(t, int64(5), resp.TotalItems)
}

func TestPaginationOffset(t *testing.T) {
	params := domain.PaginationParams{Page: 3, PageSize: 20}
	assert.Equal(t, 40, params.Offset())
}
