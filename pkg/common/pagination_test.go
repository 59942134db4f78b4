package common

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Page
	}{
		{"explicit page", "/product/all?page=3", Page{Number: 3, Size: 8}},
		{"missing page defaults to first", "/product/all", Page{Number: 1, Size: 8}},
		{"non-numeric page defaults to first", "/product/all?page=abc", Page{Number: 1, Size: 8}},
		{"zero page defaults to first", "/product/all?page=0", Page{Number: 1, Size: 8}},
		{"negative page defaults to first", "/product/all?page=-2", Page{Number: 1, Size: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, PageFromRequest(r, 8))
		})
	}
}

func TestPage_Skip(t *testing.T) {
	assert.Equal(t, int64(0), Page{Number: 1, Size: 8}.Skip())
	assert.Equal(t, int64(16), Page{Number: 3, Size: 8}.Skip())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 8))
	assert.Equal(t, 1, TotalPages(8, 8))
	assert.Equal(t, 2, TotalPages(9, 8))
	assert.Equal(t, 3, TotalPages(17, 8))
	assert.Equal(t, 0, TotalPages(10, 0))
}
