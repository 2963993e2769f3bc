package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSort(t *testing.T) {
	tests := []struct {
		mode string
		want SortSpec
	}{
		{SortPriceAsc, SortSpec{{Field: "price"}}},
		{SortPriceDesc, SortSpec{{Field: "price", Desc: true}}},
		{SortNewest, SortSpec{{Field: "createdAt", Desc: true}}},
		{SortPopular, SortSpec{{Field: "views", Desc: true}}},
		{SortRating, SortSpec{{Field: "stars", Desc: true}}},
		{"", nil},
		{"unknown_mode", nil},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSort(tt.mode))
		})
	}
}
