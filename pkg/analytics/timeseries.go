// Package analytics holds the pure calculations behind the admin dashboard:
// calendar-month bucketing, percent change and category distribution.
package analytics

import "time"

// Sample is a timestamped contribution to a monthly series.
type Sample struct {
	At    time.Time
	Value float64
}

// monthIndex flattens a date to a single month count so that window
// arithmetic crosses year boundaries correctly. Bucketing works on
// (year, month) pairs only; day-of-month and timezone never shift a record
// into a neighbouring bucket.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// MonthlySums buckets samples into the trailing `length` calendar months
// ending at anchor's month and sums their values per bucket. The result is
// oldest first: index 0 is the earliest month of the window, index length-1
// is the anchor's own month. Months without samples stay zero; samples
// outside the window or with a zero timestamp are ignored.
func MonthlySums(samples []Sample, length int, anchor time.Time) []float64 {
	series := make([]float64, length)
	anchorIdx := monthIndex(anchor)

	for _, s := range samples {
		if s.At.IsZero() {
			continue
		}
		monthsAgo := anchorIdx - monthIndex(s.At)
		if monthsAgo < 0 || monthsAgo >= length {
			continue
		}
		series[length-1-monthsAgo] += s.Value
	}

	return series
}

// MonthlyCounts buckets timestamps into the trailing `length` calendar
// months, counting one per record. Same window and ordering as MonthlySums.
func MonthlyCounts(times []time.Time, length int, anchor time.Time) []float64 {
	samples := make([]Sample, len(times))
	for i, t := range times {
		samples[i] = Sample{At: t, Value: 1}
	}
	return MonthlySums(samples, length, anchor)
}
