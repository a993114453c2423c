package relay

import (
	"context"
	"math/big"

	"sendr/internal/chain"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Chain . Chain
type Chain interface {
	NativeBalance(ctx context.Context, address string) (*big.Int, error)
	GasPrice(ctx context.Context) chain.GasQuote
	PendingNonce(ctx context.Context, address string) (uint64, error)
	SignNativeTransfer(p chain.NativeTransferParams) (*types.Transaction, error)
	SignTokenTransfer(p chain.TokenTransferParams) (*types.Transaction, error)
	Submit(ctx context.Context, tx *types.Transaction) (string, error)
}

//counterfeiter:generate -o fake -fake-name KeyStore . KeyStore
type KeyStore interface {
	Decrypt(ciphertext string) ([]byte, error)
}
