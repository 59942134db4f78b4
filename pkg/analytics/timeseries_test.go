package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyCounts_OnePerMonthRoundTrip(t *testing.T) {
	anchor := date(2024, time.March, 15)

	// One record in each of the 12 window months, at awkward days on purpose.
	var times []time.Time
	for i := 0; i < 12; i++ {
		times = append(times, anchor.AddDate(0, -i, -10))
	}

	series := MonthlyCounts(times, 12, anchor)

	assert.Len(t, series, 12)
	for i, v := range series {
		assert.Equalf(t, 1.0, v, "bucket %d", i)
	}
}

func TestMonthlyCounts_AnchorMonthIsLastIndex(t *testing.T) {
	anchor := date(2024, time.March, 1)

	series := MonthlyCounts([]time.Time{date(2024, time.March, 31)}, 12, anchor)

	assert.Equal(t, 1.0, series[11])
	for i := 0; i < 11; i++ {
		assert.Zero(t, series[i])
	}
}

func TestMonthlyCounts_CrossesYearBoundary(t *testing.T) {
	// October of the previous year is five months before March.
	anchor := date(2024, time.March, 10)

	series := MonthlyCounts([]time.Time{date(2023, time.October, 2)}, 6, anchor)

	assert.Equal(t, []float64{1, 0, 0, 0, 0, 0}, series)
}

func TestMonthlySums_OutOfWindowAndZeroTimestampsExcluded(t *testing.T) {
	anchor := date(2024, time.June, 20)

	samples := []Sample{
		{At: date(2024, time.June, 1), Value: 40},
		{At: date(2024, time.May, 30), Value: 2},
		{At: date(2023, time.December, 1), Value: 99}, // before the window
		{At: date(2024, time.July, 1), Value: 99},     // after the anchor month
		{At: time.Time{}, Value: 99},                  // malformed
	}

	series := MonthlySums(samples, 6, anchor)

	assert.Equal(t, []float64{0, 0, 0, 0, 2, 40}, series)
}

func TestMonthlySums_AccumulatesWithinMonth(t *testing.T) {
	anchor := date(2024, time.January, 31)

	samples := []Sample{
		{At: date(2024, time.January, 1), Value: 10},
		{At: date(2024, time.January, 15), Value: 5},
		{At: date(2023, time.December, 31), Value: 7},
	}

	series := MonthlySums(samples, 2, anchor)

	assert.Equal(t, []float64{7, 15}, series)
}

func TestMonthlyCounts_EmptyInputStaysZeroFilled(t *testing.T) {
	series := MonthlyCounts(nil, 6, date(2024, time.March, 1))
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, series)
}
