package calculation

import "github.com/ccipdocs/networkfees/internal/domain"

// poolMechanisms maps "source:destination" pool type pairs to their mechanism.
var poolMechanisms = map[string]domain.TokenMechanism{
	"lockRelease:burnMint":    domain.LockAndMint,
	"burnMint:lockRelease":    domain.BurnAndUnlock,
	"lockRelease:lockRelease": domain.LockAndUnlock,
	"burnMint:burnMint":       domain.BurnAndMint,
	"usdc:usdc":               domain.BurnAndMint,
	"usdc:burnMint":           domain.BurnAndMint,
	"burnMint:usdc":           domain.BurnAndMint,
}

var poolLabels = map[domain.PoolType]string{
	domain.PoolLockRelease:  "Lock/Release",
	domain.PoolBurnMint:     "Burn/Mint",
	domain.PoolUSDC:         "Burn/Mint",
	domain.PoolFeeTokenOnly: "Fee Token Only",
}

// DetermineTokenMechanism classifies a lane from the pool types on each side.
// An empty pool type means no pool exists on that chain.
func DetermineTokenMechanism(source, destination domain.PoolType) domain.TokenMechanism {
	switch {
	case source == "" && destination == "":
		return domain.NoPoolsOnBothChains
	case source == "":
		return domain.NoPoolSourceChain
	case destination == "":
		return domain.NoPoolDestinationChain
	}

	if mechanism, ok := poolMechanisms[string(source)+":"+string(destination)]; ok {
		return mechanism
	}
	return domain.Unsupported
}

// TokenPoolDisplay returns the human label for a pool type, or "Unsupported".
func TokenPoolDisplay(poolType domain.PoolType) string {
	if label, ok := poolLabels[poolType]; ok {
		return label
	}
	return "Unsupported"
}
