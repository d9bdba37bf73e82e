package pagination_test

import (
	"testing"

	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNewPaged_TotalPages(t *testing.T) {
	testCases := []struct {
		name       string
		totalCount int
		pageSize   pagination.PageSize
		expected   int
	}{
		{"exact multiple", 20, pagination.Ten, 2},
		{"partial last page", 21, pagination.Ten, 3},
		{"single item", 1, pagination.Hundred, 1},
		{"empty", 0, pagination.Five, 0},
		{"smaller than page", 3, pagination.Five, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := pagination.NewPaged([]int{}, 1, tc.pageSize, tc.totalCount)
			assert.Equal(t, tc.expected, p.TotalPages)
		})
	}
}

func TestNewPaged_NilItems(t *testing.T) {
	p := pagination.NewPaged[string](nil, 1, pagination.Five, 0)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

func TestPageSize_IsValid(t *testing.T) {
	for _, valid := range []pagination.PageSize{pagination.Two, pagination.Five, pagination.Ten, pagination.Hundred} {
		assert.True(t, valid.IsValid())
	}
	for _, invalid := range []pagination.PageSize{0, 1, 3, 50, -5} {
		assert.False(t, invalid.IsValid(), "page size %d should be invalid", invalid)
	}
}

func TestMapPaged_KeepsMetadata(t *testing.T) {
	src := pagination.NewPaged([]int{1, 2, 3}, 2, pagination.Five, 13)
	dst := pagination.MapPaged(src, func(i int) int { return i * 2 })

	assert.Equal(t, []int{2, 4, 6}, dst.Items)
	assert.Equal(t, src.CurrentPage, dst.CurrentPage)
	assert.Equal(t, src.TotalPages, dst.TotalPages)
	assert.Equal(t, src.PageSize, dst.PageSize)
	assert.Equal(t, src.TotalCount, dst.TotalCount)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Offset(1, pagination.Ten))
	assert.Equal(t, 10, pagination.Offset(2, pagination.Ten))
	assert.Equal(t, 200, pagination.Offset(3, pagination.Hundred))
}
