package core

import (
	"context"

	"sendr/internal/chain"
	"sendr/internal/relay"
	"sendr/internal/repository"
	"sendr/internal/resolver"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	OpenTransaction(ctx context.Context, tx repository.Transaction) (repository.Transaction, error)
	AttachChainID(ctx context.Context, id string, chainTxID string) error
	AttachAdvanceID(ctx context.Context, id string, advanceTxID string) error
	Finalize(ctx context.Context, id string, status string, chainTxID *string) error
	FinalizeFailed(ctx context.Context, id string, reason string) error
	MarkReconciling(ctx context.Context, id string, reason string) error
	GetTransaction(ctx context.Context, id string) (repository.Transaction, error)
	GetTransactionByChainID(ctx context.Context, chainTxID string) (repository.Transaction, error)
	GetWalletByAccountID(ctx context.Context, accountID string) (repository.Wallet, error)
	GetAccountByID(ctx context.Context, id string) (repository.Account, error)
	GetTokenBySymbol(ctx context.Context, symbol string) (repository.Token, error)
	GetActiveTokens(ctx context.Context) ([]repository.Token, error)
}

//counterfeiter:generate -o fake -fake-name RecipientResolver . RecipientResolver
type RecipientResolver interface {
	Resolve(ctx context.Context, identifier string) (resolver.Resolved, error)
}

//counterfeiter:generate -o fake -fake-name Relayer . Relayer
type Relayer interface {
	Send(ctx context.Context, req relay.Request) (relay.Result, error)
}

//counterfeiter:generate -o fake -fake-name PriceFeed . PriceFeed
type PriceFeed interface {
	PriceUSD(ctx context.Context, symbol string) (decimal.Decimal, error)
}

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	GasPrice(ctx context.Context) chain.GasQuote
	Balances(ctx context.Context, address string, tokens []chain.TokenRef) ([]chain.Balance, error)
}

// Notifier is the boundary to the notification collaborators. Failures are
// logged and dropped: they must never alter a ledger transition.
//
//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	TransactionFinalized(ctx context.Context, tx repository.Transaction) error
}

// NopNotifier is the default wiring when no notification collaborator is
// configured.
type NopNotifier struct{}

func (NopNotifier) TransactionFinalized(context.Context, repository.Transaction) error {
	return nil
}
