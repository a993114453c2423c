package resolver

import (
	"context"

	"sendr/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetAliasByHandle(ctx context.Context, handle string) (repository.AddressAlias, error)
	GetAccountByPhone(ctx context.Context, phone string) (repository.Account, error)
	GetAccountByID(ctx context.Context, id string) (repository.Account, error)
	GetWalletByAccountID(ctx context.Context, accountID string) (repository.Wallet, error)
	GetWalletByAddress(ctx context.Context, address string) (repository.Wallet, error)
}
