package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	model "blog-service/internal/domain/models"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int
		wantPage       int
		wantLimit      int
		wantTotalPages int
		wantOffset     int
	}{
		{name: "defaults", page: 0, limit: 0, total: 0, wantPage: 1, wantLimit: 10, wantTotalPages: 0, wantOffset: 0},
		{name: "negative values", page: -3, limit: -1, total: 25, wantPage: 1, wantLimit: 10, wantTotalPages: 3, wantOffset: 0},
		{name: "limit capped", page: 2, limit: 500, total: 250, wantPage: 2, wantLimit: 100, wantTotalPages: 3, wantOffset: 100},
		{name: "exact pages", page: 3, limit: 5, total: 15, wantPage: 3, wantLimit: 5, wantTotalPages: 3, wantOffset: 10},
		{name: "past the end", page: 9, limit: 5, total: 15, wantPage: 9, wantLimit: 5, wantTotalPages: 3, wantOffset: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

func TestNormalizePage_OffsetNeverOverflows(t *testing.T) {
	for _, limit := range []int{1, 2, 3, 7, 10, 100, math.MaxInt} {
		page, normalized := model.NormalizePage(math.MaxInt, limit)
		p := &model.Pagination{Page: page, Limit: normalized}

		assert.Positive(t, page)
		assert.GreaterOrEqual(t, p.Offset(), 0, "limit %d", limit)
	}
}
