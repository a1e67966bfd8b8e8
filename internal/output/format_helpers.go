package output

import (
	"math"
	"strconv"
)

// InfiniteTime is shown when a refill never completes, e.g. a zero refill rate.
const InfiniteTime = "infinite time"

// formatTime renders a duration in seconds for display. Under a minute it shows seconds,
// under an hour (with more than five minutes to go) whole minutes, otherwise hours plus
// minutes rounded to the nearest five.
func formatTime(seconds float64) string {
	const (
		minute = 60.0
		hour   = 3600.0
	)

	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return InfiniteTime
	}

	if seconds < minute {
		return quantity(seconds, "second")
	}
	if seconds < hour && hour-seconds > 300 {
		return quantity(math.Round(seconds/minute), "minute")
	}

	hours := math.Floor(seconds / hour)
	minutes := math.Round(math.Mod(seconds, hour)/minute/5) * 5
	if minutes == 60 {
		hours++
		minutes = 0
	}
	if minutes > 0 {
		return quantity(hours, "hour") + " and " + quantity(minutes, "minute")
	}
	return quantity(hours, "hour")
}

// quantity pluralizes unit for every value except exactly 1, including 0.
func quantity(n float64, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return strconv.FormatFloat(n, 'f', -1, 64) + " " + unit
}
