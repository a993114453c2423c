package prices

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Cache is an injectable TTL cache. Implementations must treat a missing key
// as ErrCacheMiss, never as an empty value.
//
//counterfeiter:generate -o fake -fake-name Cache . Cache
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

//counterfeiter:generate -o fake -fake-name Source . Source
type Source interface {
	TokenPricesUSD(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}
