package handler

import (
	"context"
	"net/http"

	"sendr/internal/chain"
	"sendr/internal/core"
	"sendr/internal/repository"
	"sendr/internal/resolver"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Send(ctx context.Context, msg core.SendMessage) (core.SendReceipt, error)
	EstimateFee(ctx context.Context, msg core.EstimateMessage) (core.FeeEstimate, error)
	ResolveRecipient(ctx context.Context, identifier string) (resolver.Resolved, error)
	Balances(ctx context.Context, address string) ([]chain.Balance, error)
	GetTransaction(ctx context.Context, accountID string, id string) (repository.Transaction, error)
	FinalizeFromChain(ctx context.Context, chainTxID string, success bool) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
