package clmm_simulator

import "math/big"

var one = big.NewInt(1)

// MulDiv returns floor(a * b / denominator). The product is carried at
// full width, so intermediates beyond 256 bits do not truncate.
func MulDiv(a, b, denominator *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	return product.Div(product, denominator)
}

// MulDivRoundingUp returns ceil(a * b / denominator).
func MulDivRoundingUp(a, b, denominator *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	quotient, rem := new(big.Int).DivMod(product, denominator, new(big.Int))
	if rem.Sign() > 0 {
		quotient.Add(quotient, one)
	}
	return quotient
}

// DivRoundingUp returns ceil(a / b).
func DivRoundingUp(a, b *big.Int) *big.Int {
	quotient, rem := new(big.Int).DivMod(a, b, new(big.Int))
	if rem.Sign() > 0 {
		quotient.Add(quotient, one)
	}
	return quotient
}
