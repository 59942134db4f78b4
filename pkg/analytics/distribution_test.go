package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryShares(t *testing.T) {
	shares := CategoryShares(map[string]int64{"laptop": 3, "mobile": 1}, 4)

	assert.Equal(t, map[string]int{"laptop": 75, "mobile": 25}, shares)
}

func TestCategoryShares_ZeroTotal(t *testing.T) {
	shares := CategoryShares(map[string]int64{"laptop": 0, "mobile": 0}, 0)

	assert.Equal(t, map[string]int{"laptop": 0, "mobile": 0}, shares)
}

func TestCategoryShares_EmptyInput(t *testing.T) {
	assert.Empty(t, CategoryShares(map[string]int64{}, 0))
}

func TestCategoryShares_ZeroCountCategoriesIncluded(t *testing.T) {
	shares := CategoryShares(map[string]int64{"laptop": 4, "camera": 0}, 4)

	assert.Equal(t, 100, shares["laptop"])
	share, ok := shares["camera"]
	assert.True(t, ok)
	assert.Zero(t, share)
}

func TestCategoryShares_IndependentRoundingMayNotSumTo100(t *testing.T) {
	// 1/3 each rounds to 33; the distribution is intentionally not
	// normalized to make the parts sum to 100.
	shares := CategoryShares(map[string]int64{"a": 1, "b": 1, "c": 1}, 3)

	sum := shares["a"] + shares["b"] + shares["c"]
	assert.Equal(t, 99, sum)
}
