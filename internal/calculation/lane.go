package calculation

import (
	"github.com/ccipdocs/networkfees/internal/domain"
	"github.com/ccipdocs/networkfees/internal/output"
)

// LaneRequest describes one token on one lane.
type LaneRequest struct {
	SourceChain      string
	DestinationChain string
	Token            string
	SourcePool       domain.PoolType
	DestinationPool  domain.PoolType
	Outbound         *domain.RateLimiterConfig
	Inbound          *domain.RateLimiterConfig

	// Decimals of the token. Zero falls back to output.DefaultDecimals unless ExactDecimals is set.
	Decimals      int32
	ExactDecimals bool
}

// LaneReporter assembles the display values for a lane page
type LaneReporter struct {
	Fees *FeeCalculator
}

// NewLaneReporter creates a lane reporter backed by the given fee calculator
func NewLaneReporter(fees *FeeCalculator) *LaneReporter {
	return &LaneReporter{Fees: fees}
}

// Build classifies the lane, resolves its fees and formats its rate limits.
func (lr *LaneReporter) Build(req LaneRequest) *domain.LaneReport {
	decimals := req.Decimals
	if decimals == 0 && !req.ExactDecimals {
		decimals = output.DefaultDecimals
	}

	mechanism := DetermineTokenMechanism(req.SourcePool, req.DestinationPool)
	report := &domain.LaneReport{
		SourceChain:       req.SourceChain,
		DestinationChain:  req.DestinationChain,
		Token:             req.Token,
		SourcePool:        TokenPoolDisplay(req.SourcePool),
		DestinationPool:   TokenPoolDisplay(req.DestinationPool),
		Mechanism:         mechanism,
		TokenTransferFees: lr.Fees.NetworkFeesForTokenMechanism(mechanism, req.SourceChain, req.DestinationChain),
		MessagingFees:     lr.Fees.MessagingNetworkFees(req.SourceChain, req.DestinationChain),
		OutboundCapacity:  output.DisplayCapacity(decimals, req.Token, req.Outbound),
		InboundCapacity:   output.DisplayCapacity(decimals, req.Token, req.Inbound),
	}

	if hasRate(req.Outbound) {
		rate := output.DisplayRate(req.Outbound.Capacity, req.Outbound.Rate, req.Token, decimals)
		report.OutboundRate, report.OutboundRefill = rate.RateSecond, rate.MaxThroughput
	}
	if hasRate(req.Inbound) {
		rate := output.DisplayRate(req.Inbound.Capacity, req.Inbound.Rate, req.Token, decimals)
		report.InboundRate, report.InboundRefill = rate.RateSecond, rate.MaxThroughput
	}
	return report
}

func hasRate(cfg *domain.RateLimiterConfig) bool {
	return cfg != nil && cfg.IsEnabled && cfg.Rate != ""
}
