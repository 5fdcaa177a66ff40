package clmm_simulator

import "math/big"

// Position is a liquidity deposit concentrated over a sqrt price range.
// Bounds are stored normalized (lower < upper). The value is immutable;
// swap steps read it but never modify it.
type Position struct {
	SqrtPriceLowerX96 *big.Int
	SqrtPriceUpperX96 *big.Int
	Liquidity         *big.Int
}

func NewPosition(sqrtPriceAX96, sqrtPriceBX96, liquidity *big.Int) (*Position, error) {
	lower, upper, err := normalizeRange(sqrtPriceAX96, sqrtPriceBX96)
	if err != nil {
		return nil, err
	}
	if liquidity == nil || liquidity.Sign() < 0 {
		return nil, INVALID_LIQUIDITY
	}
	return &Position{
		SqrtPriceLowerX96: new(big.Int).Set(lower),
		SqrtPriceUpperX96: new(big.Int).Set(upper),
		Liquidity:         new(big.Int).Set(liquidity),
	}, nil
}

// NewPositionFromAmounts sizes a position for a dual-asset deposit. The
// liquidity is the minimum of what each asset supports on its side of the
// current price, so the position never requires more of either asset than
// was deposited. When the current price sits outside the range only the
// relevant single asset binds.
func NewPositionFromAmounts(sqrtPriceCurrentX96, sqrtPriceAX96, sqrtPriceBX96, amount0, amount1 *big.Int) (*Position, error) {
	lower, upper, err := normalizeRange(sqrtPriceAX96, sqrtPriceBX96)
	if err != nil {
		return nil, err
	}
	if sqrtPriceCurrentX96 == nil || sqrtPriceCurrentX96.Sign() <= 0 {
		return nil, INVALID_PRICE
	}

	var liquidity *big.Int
	switch {
	case sqrtPriceCurrentX96.Cmp(lower) <= 0:
		liquidity, err = LiquidityFromAmount0(amount0, lower, upper)
		if err != nil {
			return nil, err
		}
	case sqrtPriceCurrentX96.Cmp(upper) >= 0:
		liquidity, err = LiquidityFromAmount1(amount1, lower, upper)
		if err != nil {
			return nil, err
		}
	default:
		liquidity0, err := LiquidityFromAmount0(amount0, sqrtPriceCurrentX96, upper)
		if err != nil {
			return nil, err
		}
		liquidity1, err := LiquidityFromAmount1(amount1, lower, sqrtPriceCurrentX96)
		if err != nil {
			return nil, err
		}
		liquidity = liquidity0
		if liquidity1.Cmp(liquidity0) < 0 {
			liquidity = liquidity1
		}
	}
	return NewPosition(lower, upper, liquidity)
}

// Contains reports whether the sqrt price lies inside the position range,
// bounds inclusive.
func (p *Position) Contains(sqrtPriceX96 *big.Int) bool {
	if sqrtPriceX96 == nil {
		return false
	}
	return sqrtPriceX96.Cmp(p.SqrtPriceLowerX96) >= 0 &&
		sqrtPriceX96.Cmp(p.SqrtPriceUpperX96) <= 0
}

// Amounts returns the token amounts the position holds at the given
// current sqrt price. Below the range the deposit is entirely token0,
// above it entirely token1, inside it a mix split at the current price.
func (p *Position) Amounts(sqrtPriceCurrentX96 *big.Int) (amount0, amount1 *big.Int, err error) {
	if sqrtPriceCurrentX96 == nil || sqrtPriceCurrentX96.Sign() <= 0 {
		return nil, nil, INVALID_PRICE
	}
	amount0 = new(big.Int)
	amount1 = new(big.Int)
	switch {
	case sqrtPriceCurrentX96.Cmp(p.SqrtPriceLowerX96) <= 0:
		amount0, err = Amount0FromLiquidity(p.Liquidity, p.SqrtPriceLowerX96, p.SqrtPriceUpperX96)
		if err != nil {
			return nil, nil, err
		}
	case sqrtPriceCurrentX96.Cmp(p.SqrtPriceUpperX96) >= 0:
		amount1, err = Amount1FromLiquidity(p.Liquidity, p.SqrtPriceLowerX96, p.SqrtPriceUpperX96)
		if err != nil {
			return nil, nil, err
		}
	default:
		amount0, err = Amount0FromLiquidity(p.Liquidity, sqrtPriceCurrentX96, p.SqrtPriceUpperX96)
		if err != nil {
			return nil, nil, err
		}
		amount1, err = Amount1FromLiquidity(p.Liquidity, p.SqrtPriceLowerX96, sqrtPriceCurrentX96)
		if err != nil {
			return nil, nil, err
		}
	}
	return amount0, amount1, nil
}

func (p *Position) Clone() *Position {
	return &Position{
		SqrtPriceLowerX96: new(big.Int).Set(p.SqrtPriceLowerX96),
		SqrtPriceUpperX96: new(big.Int).Set(p.SqrtPriceUpperX96),
		Liquidity:         new(big.Int).Set(p.Liquidity),
	}
}
