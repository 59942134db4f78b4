package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"growth from zero baseline", 50, 0, 5000},
		{"fifty percent up", 150, 100, 50},
		{"fifty percent down", 50, 100, -50},
		{"doubling", 200, 100, 100},
		{"drop to zero", 0, 80, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentChange(tt.current, tt.previous))
		})
	}
}
