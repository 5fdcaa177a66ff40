package clmm_simulator

import (
	"math/big"

	bigmath "github.com/ethereum/go-ethereum/common/math"
)

// Tick bounds supported by the 1.0001 discretization base.
const (
	MIN_TICK = -887272
	MAX_TICK = -MIN_TICK
)

var (
	Q96  = bigmath.BigPow(2, 96)
	Q192 = bigmath.BigPow(2, 192)
	E18  = bigmath.BigPow(10, 18)

	// sqrt price domain implied by the tick bounds
	MIN_SQRT_RATIO *big.Int
	MAX_SQRT_RATIO *big.Int
)

func init() {
	MIN_SQRT_RATIO, _ = TickToSqrtPriceX96(MIN_TICK)
	MAX_SQRT_RATIO, _ = TickToSqrtPriceX96(MAX_TICK)
}
