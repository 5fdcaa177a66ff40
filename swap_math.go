package clmm_simulator

import (
	"errors"
	"math/big"
)

var (
	RANGE_EXCEEDED    = errors.New("RANGE_EXCEEDED")
	INVALID_DIRECTION = errors.New("INVALID_DIRECTION")
)

// SwapDirection identifies which asset enters the pool on an exact-input
// swap step.
type SwapDirection int

const (
	// SellAsset0 trades token0 in for token1 out; the price falls.
	SellAsset0 SwapDirection = iota
	// SellAsset1 trades token1 in for token0 out; the price rises.
	SellAsset1
)

func (d SwapDirection) String() string {
	switch d {
	case SellAsset0:
		return "sell_asset0"
	case SellAsset1:
		return "sell_asset1"
	default:
		return "unknown"
	}
}

// SwapStep is the outcome of a single exact-input swap step. AmountIn and
// AmountOut are the exact settled quantities re-derived from the realized
// price delta, so they are always consistent with the constant-liquidity
// invariant. AmountIn may undershoot the requested input by truncation
// dust.
type SwapStep struct {
	SqrtPriceNextX96 *big.Int
	AmountIn         *big.Int
	AmountOut        *big.Int
}

// SimulateSwapStep moves the sqrt price by an exact input amount at
// constant liquidity and reports the settled amounts.
//
// Selling token1 shifts the sqrt price additively:
//
//	next = current + floor(amountIn * 2^96 / L)
//
// Selling token0 enters the curve multiplicatively:
//
//	next = floor(L * 2^96 * current / (L * 2^96 + amountIn * current))
//
// The step assumes the whole trade is absorbed without crossing a tick
// range boundary; the result stays within the global sqrt price domain or
// the call fails with RANGE_EXCEEDED. Use SimulateSwapStepInRange to also
// enforce a position's own bounds.
func SimulateSwapStep(liquidity, sqrtPriceCurrentX96, amountIn *big.Int, direction SwapDirection) (*SwapStep, error) {
	if sqrtPriceCurrentX96 == nil || sqrtPriceCurrentX96.Sign() <= 0 {
		return nil, INVALID_PRICE
	}
	if liquidity == nil || liquidity.Sign() <= 0 {
		return nil, INVALID_LIQUIDITY
	}
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, INVALID_AMOUNT
	}

	var sqrtPriceNextX96 *big.Int
	switch direction {
	case SellAsset1:
		sqrtPriceNextX96 = new(big.Int).Add(sqrtPriceCurrentX96, MulDiv(amountIn, Q96, liquidity))
	case SellAsset0:
		numerator := new(big.Int).Lsh(liquidity, 96)
		denominator := new(big.Int).Mul(amountIn, sqrtPriceCurrentX96)
		denominator.Add(denominator, numerator)
		sqrtPriceNextX96 = MulDiv(numerator, sqrtPriceCurrentX96, denominator)
	default:
		return nil, INVALID_DIRECTION
	}

	if sqrtPriceNextX96.Cmp(MIN_SQRT_RATIO) < 0 || sqrtPriceNextX96.Cmp(MAX_SQRT_RATIO) > 0 {
		return nil, RANGE_EXCEEDED
	}
	// input too small to move the fixed-point price at this liquidity
	if sqrtPriceNextX96.Cmp(sqrtPriceCurrentX96) == 0 {
		return nil, ZERO_RANGE
	}

	// Re-derive the settled amounts from the realized price delta. The
	// calculus normalizes the pair, so argument order is irrelevant.
	amount0, err := Amount0FromLiquidity(liquidity, sqrtPriceNextX96, sqrtPriceCurrentX96)
	if err != nil {
		return nil, err
	}
	amount1, err := Amount1FromLiquidity(liquidity, sqrtPriceNextX96, sqrtPriceCurrentX96)
	if err != nil {
		return nil, err
	}

	step := &SwapStep{SqrtPriceNextX96: sqrtPriceNextX96}
	if direction == SellAsset1 {
		step.AmountIn = amount1
		step.AmountOut = amount0
	} else {
		step.AmountIn = amount0
		step.AmountOut = amount1
	}
	return step, nil
}

// SimulateSwapStepInRange runs a swap step against a position and fails
// with RANGE_EXCEEDED when the resulting price leaves the position's
// bounds. Splitting a trade across adjacent ranges is the caller's
// problem; this core models a single range only.
func SimulateSwapStepInRange(position *Position, sqrtPriceCurrentX96, amountIn *big.Int, direction SwapDirection) (*SwapStep, error) {
	if position == nil {
		return nil, INVALID_LIQUIDITY
	}
	step, err := SimulateSwapStep(position.Liquidity, sqrtPriceCurrentX96, amountIn, direction)
	if err != nil {
		return nil, err
	}
	if !position.Contains(step.SqrtPriceNextX96) {
		return nil, RANGE_EXCEEDED
	}
	return step, nil
}
