package analytics

import "math"

// CategoryShares converts raw per-category counts into integer percentages
// of total. Every category in counts appears in the result, zero-count ones
// included. Each share is rounded independently, so the values may not sum
// to exactly 100; consumers rely on per-category rounding, not a normalized
// distribution. A non-positive total yields all zeros.
func CategoryShares(counts map[string]int64, total int64) map[string]int {
	shares := make(map[string]int, len(counts))
	for category, count := range counts {
		if total <= 0 {
			shares[category] = 0
			continue
		}
		shares[category] = int(math.Round(float64(count) / float64(total) * 100))
	}
	return shares
}
