package clmm_simulator

import (
	"errors"
	"math"
	"math/big"
)

var (
	INVALID_TICK  = errors.New("INVALID_TICK")
	INVALID_PRICE = errors.New("INVALID_PRICE")
)

// tickBase is the price ratio between adjacent ticks.
const tickBase = 1.0001

// PriceToTick returns floor(log_1.0001(price)). The floor convention is
// required: a tick identifies the price bucket at or below the true price.
func PriceToTick(price float64) (int, error) {
	if !(price > 0) || math.IsInf(price, 1) {
		return 0, INVALID_PRICE
	}
	tick := int(math.Floor(math.Log(price) / math.Log(tickBase)))
	if tick < MIN_TICK || tick > MAX_TICK {
		return 0, INVALID_TICK
	}
	return tick, nil
}

// PriceToSqrtPriceX96 returns floor(sqrt(price) * 2^96).
func PriceToSqrtPriceX96(price float64) (*big.Int, error) {
	if !(price > 0) || math.IsInf(price, 1) {
		return nil, INVALID_PRICE
	}
	return scaleToX96(math.Sqrt(price)), nil
}

// SqrtPriceX96ToPrice returns (sqrtPriceX96 / 2^96)^2. Round-tripping
// through PriceToSqrtPriceX96 is approximate because the forward
// direction truncates; relative error stays below 1e-9 for typical
// magnitudes.
func SqrtPriceX96ToPrice(sqrtPriceX96 *big.Int) (float64, error) {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return 0, INVALID_PRICE
	}
	ratio, _ := new(big.Float).Quo(
		new(big.Float).SetInt(sqrtPriceX96),
		new(big.Float).SetInt(Q96),
	).Float64()
	return ratio * ratio, nil
}

// TickToSqrtPriceX96 returns floor(1.0001^(tick/2) * 2^96). Halving the
// tick exponent goes straight from tick space to sqrt-price space without
// materializing an intermediate price, so only one rounding step applies.
func TickToSqrtPriceX96(tick int) (*big.Int, error) {
	if tick < MIN_TICK || tick > MAX_TICK {
		return nil, INVALID_TICK
	}
	return scaleToX96(math.Pow(tickBase, float64(tick)/2)), nil
}

// scaleToX96 multiplies by 2^96 and truncates toward zero. Scaling by a
// power of two only shifts the float exponent, so no rounding happens
// between the float argument and the returned integer.
func scaleToX96(x float64) *big.Int {
	f := new(big.Float).SetPrec(256).SetFloat64(x)
	f.Mul(f, new(big.Float).SetPrec(256).SetInt(Q96))
	i, _ := f.Int(nil)
	return i
}
