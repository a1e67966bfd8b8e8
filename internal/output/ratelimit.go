package output

import (
	"github.com/ccipdocs/networkfees/internal/domain"
	"github.com/ccipdocs/networkfees/pkg/decimal"
)

// DefaultDecimals is used when a token's decimals are unknown.
const DefaultDecimals int32 = 18

// NotAvailable is shown for a lane without an enabled rate limiter.
const NotAvailable = "N/A"

// RateDisplay is the display form of a token bucket's refill rate
type RateDisplay struct {
	RateSecond    string `json:"rate_second" yaml:"rate_second"`
	MaxThroughput string `json:"max_throughput" yaml:"max_throughput"`
}

// DisplayCapacity formats a rate limiter's capacity, e.g. "1,500 LINK".
// A missing or disabled limiter yields "N/A".
func DisplayCapacity(decimals int32, token string, cfg *domain.RateLimiterConfig) string {
	if cfg == nil || !cfg.IsEnabled {
		return NotAvailable
	}
	capacity := cfg.Capacity
	if capacity == "" {
		capacity = "0"
	}
	return amountOrZero(capacity, decimals).Grouped() + " " + token
}

// DisplayRate formats the per-second refill rate and the time to refill an empty bucket.
func DisplayRate(capacity, rate, symbol string, decimals int32) RateDisplay {
	capacityAmount := amountOrZero(capacity, decimals)
	rateAmount := amountOrZero(rate, decimals)

	// float division: a zero rate gives +Inf (or NaN for 0/0), which formatTime handles
	refill := capacityAmount.Float64() / rateAmount.Float64()

	return RateDisplay{
		RateSecond:    rateAmount.Grouped() + " " + symbol + "/second",
		MaxThroughput: "Refills from 0 to " + capacityAmount.Grouped() + " " + symbol + " in " + formatTime(refill),
	}
}

// amountOrZero converts a fixed-point string, degrading unparsable input to zero.
func amountOrZero(raw string, decimals int32) decimal.Amount {
	a, err := decimal.FromUnits(raw, decimals)
	if err != nil {
		return decimal.Zero()
	}
	return a
}
