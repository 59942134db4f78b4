package analytics

// PercentChange returns the relative change from previous to current, in
// percent. A zero previous period has no ratio to report against, so growth
// from a zero baseline is signalled as current*100 (and 0 when current is
// also zero) instead of dividing by zero. The result is not clamped and is
// negative when current is below previous.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return current * 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
