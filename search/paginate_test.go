package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		raw      string
		wantPage int
		wantSkip int64
	}{
		{"", 1, 0},
		{"abc", 1, 0},
		{"0", 1, 0},
		{"-5", 1, 0},
		{"1", 1, 0},
		{"2", 2, 50},
		{"3", 3, 100},
	}
	for _, tt := range tests {
		t.Run("page "+tt.raw, func(t *testing.T) {
			window := Paginate(tt.raw)
			assert.Equal(t, tt.wantPage, window.Page)
			assert.Equal(t, tt.wantSkip, window.Skip)
			assert.Equal(t, int64(PageSize), window.Limit)
		})
	}
}
