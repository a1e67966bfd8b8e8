package calculation

import (
	"testing"

	"github.com/ccipdocs/networkfees/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetermineTokenMechanism(t *testing.T) {
	tests := []struct {
		name        string
		source      domain.PoolType
		destination domain.PoolType
		expected    domain.TokenMechanism
	}{
		{"lock release to burn mint", domain.PoolLockRelease, domain.PoolBurnMint, domain.LockAndMint},
		{"burn mint to lock release", domain.PoolBurnMint, domain.PoolLockRelease, domain.BurnAndUnlock},
		{"lock release both sides", domain.PoolLockRelease, domain.PoolLockRelease, domain.LockAndUnlock},
		{"burn mint both sides", domain.PoolBurnMint, domain.PoolBurnMint, domain.BurnAndMint},
		{"usdc both sides", domain.PoolUSDC, domain.PoolUSDC, domain.BurnAndMint},
		{"usdc to burn mint", domain.PoolUSDC, domain.PoolBurnMint, domain.BurnAndMint},
		{"burn mint to usdc", domain.PoolBurnMint, domain.PoolUSDC, domain.BurnAndMint},
		{"no pools", "", "", domain.NoPoolsOnBothChains},
		{"no source pool", "", domain.PoolBurnMint, domain.NoPoolSourceChain},
		{"no source pool, fee token destination", "", domain.PoolFeeTokenOnly, domain.NoPoolSourceChain},
		{"no destination pool", domain.PoolLockRelease, "", domain.NoPoolDestinationChain},
		{"lock release to fee token only", domain.PoolLockRelease, domain.PoolFeeTokenOnly, domain.Unsupported},
		{"usdc to lock release", domain.PoolUSDC, domain.PoolLockRelease, domain.Unsupported},
		{"unknown pool type", "wrapped", domain.PoolBurnMint, domain.Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineTokenMechanism(tt.source, tt.destination))
		})
	}
}

func TestDetermineTokenMechanism_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.LockAndMint, DetermineTokenMechanism(domain.PoolLockRelease, domain.PoolBurnMint))
	}
}

func TestTokenPoolDisplay(t *testing.T) {
	assert.Equal(t, "Lock/Release", TokenPoolDisplay(domain.PoolLockRelease))
	assert.Equal(t, "Burn/Mint", TokenPoolDisplay(domain.PoolBurnMint))
	assert.Equal(t, "Burn/Mint", TokenPoolDisplay(domain.PoolUSDC))
	assert.Equal(t, "Fee Token Only", TokenPoolDisplay(domain.PoolFeeTokenOnly))
	assert.Equal(t, "Unsupported", TokenPoolDisplay(""))
	assert.Equal(t, "Unsupported", TokenPoolDisplay("somethingElse"))
}
