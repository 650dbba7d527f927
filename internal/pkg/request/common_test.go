package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPageParamsDefaults(t *testing.T) {
	p := PageParams{}.Page()
	assert.Equal(t, Page{From: 0, Size: DefaultPageSize}, p)

	p = PageParams{From: intPtr(20), Size: intPtr(5)}.Page()
	assert.Equal(t, Page{From: 20, Size: 5}, p)
}

func TestPageOffsets(t *testing.T) {
	tests := []struct {
		name   string
		page   Page
		index  int
		limit  uint64
		offset uint64
	}{
		{name: "first page", page: Page{From: 0, Size: 10}, index: 0, limit: 10, offset: 0},
		{name: "aligned", page: Page{From: 20, Size: 10}, index: 2, limit: 10, offset: 20},
		{name: "rounded down", page: Page{From: 15, Size: 10}, index: 1, limit: 10, offset: 10},
		{name: "from below size", page: Page{From: 3, Size: 10}, index: 0, limit: 10, offset: 0},
		{name: "zero size guarded", page: Page{From: 7, Size: 0}, index: 0, limit: DefaultPageSize, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.index, tt.page.Index())
			assert.Equal(t, tt.limit, tt.page.Limit())
			assert.Equal(t, tt.offset, tt.page.Offset())
		})
	}
}
