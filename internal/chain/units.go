package chain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToBaseUnits converts a human-readable token amount into base units using
// the token's fixed decimal precision.
func ToBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Round(0).BigInt()
}

// FromBaseUnits converts base units back into a human-readable amount.
func FromBaseUnits(base *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(base, -decimals)
}
