package calculation

import "github.com/ccipdocs/networkfees/internal/domain"

// FeeCalculator resolves static network fees for lanes.
// Lookups never fail: missing data is logged and reported as zero fees.
type FeeCalculator struct {
	Fees   *domain.NetworkFees
	Chains domain.ChainTechnologies
	Logger Logger
}

// NewFeeCalculator creates a fee calculator over the given tables
func NewFeeCalculator(fees *domain.NetworkFees, chains domain.ChainTechnologies, logger Logger) *FeeCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	if fees == nil {
		fees = &domain.NetworkFees{}
	}
	return &FeeCalculator{Fees: fees, Chains: chains, Logger: logger}
}

// NetworkFeesForTokenMechanismDirect looks up the token transfer fee for a mechanism and lane key.
func (fc *FeeCalculator) NetworkFeesForTokenMechanismDirect(mechanism domain.TokenMechanism, key domain.LaneSpecificFeeKey) domain.NetworkFeeStructure {
	if fee, ok := fc.Fees.TokenTransfers[mechanism][key]; ok {
		return fee
	}
	fc.Logger.Errorf("No fees defined for mechanism: %s and lane key: %s", mechanism, key)
	return domain.ZeroFees
}

// NetworkFeesForTokenMechanism resolves the token transfer fee for a lane.
// A mechanism-wide allLanes entry wins; otherwise the most specific Ethereum key present is used.
func (fc *FeeCalculator) NetworkFeesForTokenMechanism(mechanism domain.TokenMechanism, sourceChain, destinationChain string) domain.NetworkFeeStructure {
	mechanismFees := fc.Fees.TokenTransfers[mechanism]
	if fee, ok := mechanismFees[domain.AllLanes]; ok {
		return fee
	}

	fromEthereum := fc.Chains.IsEthereum(sourceChain)
	toEthereum := fc.Chains.IsEthereum(destinationChain)
	has := func(key domain.LaneSpecificFeeKey) bool {
		_, ok := mechanismFees[key]
		return ok
	}

	key := domain.NonEthereum
	switch {
	case (fromEthereum || toEthereum) && has(domain.FromToEthereum):
		key = domain.FromToEthereum
	case fromEthereum && has(domain.FromEthereum):
		key = domain.FromEthereum
	case toEthereum && has(domain.ToEthereum):
		key = domain.ToEthereum
	}
	fc.Logger.Debugf("token fees for %s on %s -> %s use lane key %s", mechanism, sourceChain, destinationChain, key)

	return fc.NetworkFeesForTokenMechanismDirect(mechanism, key)
}

// MessagingNetworkFeesDirect looks up the messaging fee for a lane key.
func (fc *FeeCalculator) MessagingNetworkFeesDirect(key domain.LaneSpecificFeeKey) domain.NetworkFeeStructure {
	if fee, ok := fc.Fees.Messaging[key]; ok {
		return fee
	}
	fc.Logger.Errorf("No fees defined for lane key: %s", key)
	return domain.ZeroFees
}

// MessagingNetworkFees resolves the messaging fee for a lane: fromToEthereum when
// either side is Ethereum, nonEthereum otherwise.
func (fc *FeeCalculator) MessagingNetworkFees(sourceChain, destinationChain string) domain.NetworkFeeStructure {
	key := domain.NonEthereum
	if fc.Chains.IsEthereum(sourceChain) || fc.Chains.IsEthereum(destinationChain) {
		key = domain.FromToEthereum
	}
	return fc.MessagingNetworkFeesDirect(key)
}
