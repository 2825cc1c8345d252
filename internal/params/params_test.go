package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"defaults", "", DefaultLimit, 1, 0},
		{"explicit window", "page=3&limit=10", 10, 3, 20},
		{"limit capped", "limit=500", MaxLimit, 1, 0},
		{"zero limit falls back", "limit=0", DefaultLimit, 1, 0},
		{"negative limit falls back", "limit=-5", DefaultLimit, 1, 0},
		{"zero page falls back", "page=0", DefaultLimit, 1, 0},
		{"garbage values fall back", "page=abc&limit=xyz", DefaultLimit, 1, 0},
		{"whitespace tolerated", "page=%202%20&limit=%2010%20", 10, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			p := ParsePagination(q)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestComputeMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"empty result", 1, 20, 0, 0, false, false},
		{"single page", 1, 20, 5, 1, false, false},
		{"first of many", 1, 20, 45, 3, true, false},
		{"middle page", 2, 20, 45, 3, true, true},
		{"last page", 3, 20, 45, 3, false, true},
		{"past the end", 9, 20, 45, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, Limit: tt.limit, Offset: (tt.page - 1) * tt.limit}
			p.ComputeMeta(tt.total)

			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
		})
	}
}
