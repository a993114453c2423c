package prices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrCacheMiss error = errors.New("price not cached")
var ErrPriceUnavailable error = errors.New("price unavailable")

// Feed serves USD token prices through an injectable TTL cache. Lookup order:
// cache, then source (refreshing the cache), then the static fallback table.
// The fee engine stays correct-but-conservative when the price source is down.
type Feed struct {
	logs     *zap.SugaredLogger
	cache    Cache
	source   Source
	ttl      time.Duration
	fallback map[string]decimal.Decimal
}

func NewFeed(logger *zap.SugaredLogger, cache Cache, source Source, ttl time.Duration, fallback map[string]decimal.Decimal) *Feed {
	return &Feed{
		logs:     logger,
		cache:    cache,
		source:   source,
		ttl:      ttl,
		fallback: fallback,
	}
}

// DefaultFallbackPrices mirrors the launch asset set. Stable tokens pin to
// one dollar; the native token uses a deliberately low conservative price.
func DefaultFallbackPrices() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"POL":  decimal.RequireFromString("0.50"),
		"USDC": decimal.RequireFromString("1.00"),
		"USDT": decimal.RequireFromString("1.00"),
	}
}

func (f *Feed) PriceUSD(ctx context.Context, symbol string) (decimal.Decimal, error) {
	cached, err := f.cache.Get(ctx, symbol)
	if err == nil {
		price, parseErr := decimal.NewFromString(cached)
		if parseErr == nil {
			return price, nil
		}
		f.logs.Warnw("discarding unparsable cached price", "symbol", symbol, "value", cached)
	} else if !errors.Is(err, ErrCacheMiss) {
		f.logs.Warnw("price cache read failed", "symbol", symbol, "error", err)
	}

	fetched, err := f.source.TokenPricesUSD(ctx, []string{symbol})
	if err == nil {
		if price, ok := fetched[symbol]; ok {
			if cacheErr := f.cache.Set(ctx, symbol, price.String(), f.ttl); cacheErr != nil {
				f.logs.Warnw("price cache write failed", "symbol", symbol, "error", cacheErr)
			}
			return price, nil
		}
	} else {
		f.logs.Warnw("price source fetch failed", "symbol", symbol, "error", err)
	}

	if price, ok := f.fallback[symbol]; ok {
		f.logs.Infow("serving fallback price", "symbol", symbol, "price", price)
		return price, nil
	}

	return decimal.Zero, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
}

// Invalidate drops a cached price so the next read refetches. The hook exists
// so operators and the price refresh task can force staleness out.
func (f *Feed) Invalidate(ctx context.Context, symbol string) error {
	if err := f.cache.Invalidate(ctx, symbol); err != nil {
		return fmt.Errorf("invalidate price: %w", err)
	}
	return nil
}
