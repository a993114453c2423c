package chain

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/shopspring/decimal"
)

// TokenRef is the minimal token descriptor the chain layer needs.
type TokenRef struct {
	Symbol   string
	Contract string // empty for the native token
	Native   bool
	Decimals int32
	PriceUSD decimal.Decimal
}

type Balance struct {
	Symbol    string
	Amount    decimal.Decimal
	AmountUSD decimal.Decimal
}

type balanceResult struct {
	Balance Balance
	Error   error
}

// GasQuote is a gas price sample. Fallback marks a conservative guess used
// when the node could not be reached in time.
type GasQuote struct {
	PriceWei *big.Int
	Fallback bool
}

type NativeTransferParams struct {
	To          string
	AmountWei   *big.Int
	Nonce       uint64
	GasLimit    uint64
	GasPriceWei *big.Int
	Key         *ecdsa.PrivateKey
}

type TokenTransferParams struct {
	Contract    string
	To          string
	AmountBase  *big.Int // base units of the token
	Nonce       uint64
	GasLimit    uint64
	GasPriceWei *big.Int
	Key         *ecdsa.PrivateKey
}
