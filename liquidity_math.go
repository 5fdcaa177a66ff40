package clmm_simulator

import (
	"errors"
	"math/big"
)

var (
	ZERO_RANGE        = errors.New("ZERO_RANGE")
	INVALID_AMOUNT    = errors.New("INVALID_AMOUNT")
	INVALID_LIQUIDITY = errors.New("INVALID_LIQUIDITY")
)

// normalizeRange orders a sqrt price pair so the lower bound comes first.
// Both bounds must be positive; a zero-width range has no meaningful
// liquidity and is rejected.
func normalizeRange(sqrtPriceAX96, sqrtPriceBX96 *big.Int) (lower, upper *big.Int, err error) {
	if sqrtPriceAX96 == nil || sqrtPriceBX96 == nil ||
		sqrtPriceAX96.Sign() <= 0 || sqrtPriceBX96.Sign() <= 0 {
		return nil, nil, INVALID_PRICE
	}
	if sqrtPriceAX96.Cmp(sqrtPriceBX96) > 0 {
		sqrtPriceAX96, sqrtPriceBX96 = sqrtPriceBX96, sqrtPriceAX96
	}
	if sqrtPriceAX96.Cmp(sqrtPriceBX96) == 0 {
		return nil, nil, ZERO_RANGE
	}
	return sqrtPriceAX96, sqrtPriceBX96, nil
}

// LiquidityFromAmount0 returns the liquidity supported by amount0 of
// token0 over the given range:
//
//	L = amount0 * (sqrtA * sqrtB / 2^96) / (sqrtB - sqrtA)
//
// Argument order of the bounds does not matter.
func LiquidityFromAmount0(amount0, sqrtPriceAX96, sqrtPriceBX96 *big.Int) (*big.Int, error) {
	lower, upper, err := normalizeRange(sqrtPriceAX96, sqrtPriceBX96)
	if err != nil {
		return nil, err
	}
	if amount0 == nil || amount0.Sign() < 0 {
		return nil, INVALID_AMOUNT
	}
	intermediate := MulDiv(lower, upper, Q96)
	return MulDiv(amount0, intermediate, new(big.Int).Sub(upper, lower)), nil
}

// LiquidityFromAmount1 returns the liquidity supported by amount1 of
// token1 over the given range:
//
//	L = amount1 * 2^96 / (sqrtB - sqrtA)
func LiquidityFromAmount1(amount1, sqrtPriceAX96, sqrtPriceBX96 *big.Int) (*big.Int, error) {
	lower, upper, err := normalizeRange(sqrtPriceAX96, sqrtPriceBX96)
	if err != nil {
		return nil, err
	}
	if amount1 == nil || amount1.Sign() < 0 {
		return nil, INVALID_AMOUNT
	}
	return MulDiv(amount1, Q96, new(big.Int).Sub(upper, lower)), nil
}

// Amount0FromLiquidity returns floor(L * 2^96 * (sqrtB - sqrtA) / sqrtB / sqrtA),
// the token0 amount deliverable by the liquidity over the range. Truncation
// makes this a conservative estimate: it never overstates the deliverable
// amount.
func Amount0FromLiquidity(liquidity, sqrtPriceAX96, sqrtPriceBX96 *big.Int) (*big.Int, error) {
	lower, upper, err := normalizeRange(sqrtPriceAX96, sqrtPriceBX96)
	if err != nil {
		return nil, err
	}
	if liquidity == nil || liquidity.Sign() < 0 {
		return nil, INVALID_LIQUIDITY
	}
	numerator := new(big.Int).Lsh(liquidity, 96)
	amount0 := MulDiv(numerator, new(big.Int).Sub(upper, lower), upper)
	return amount0.Div(amount0, lower), nil
}

// Amount1FromLiquidity returns floor(L * (sqrtB - sqrtA) / 2^96), the
// token1 amount deliverable by the liquidity over the range.
func Amount1FromLiquidity(liquidity, sqrtPriceAX96, sqrtPriceBX96 *big.Int) (*big.Int, error) {
	lower, upper, err := normalizeRange(sqrtPriceAX96, sqrtPriceBX96)
	if err != nil {
		return nil, err
	}
	if liquidity == nil || liquidity.Sign() < 0 {
		return nil, INVALID_LIQUIDITY
	}
	return MulDiv(liquidity, new(big.Int).Sub(upper, lower), Q96), nil
}
