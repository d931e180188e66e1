package dashboard

import "math"

// Trend is the percentage change from previous to current, rounded to the
// nearest integer with halves going up (-62.5 becomes -62). Growth from
// nothing counts as 100; nothing to nothing is 0.
func Trend(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Floor(float64(current-previous)/float64(previous)*100 + 0.5))
}
