package prices_test

import (
	"context"
	"errors"
	"time"

	"sendr/internal/prices"
	"sendr/internal/prices/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Feed", func() {
	var (
		feed       *prices.Feed
		fakeCache  *fake.Cache
		fakeSource *fake.Source
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		fakeCache = new(fake.Cache)
		fakeSource = new(fake.Source)
		ctx = context.Background()
		testErr = errors.New("test error")
		feed = prices.NewFeed(zap.NewNop().Sugar(), fakeCache, fakeSource, 5*time.Minute, prices.DefaultFallbackPrices())
	})

	Describe("PriceUSD", func() {
		When("the price is cached", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("0.47", nil)
			})

			It("serves it without hitting the source", func() {
				price, err := feed.PriceUSD(ctx, "POL")
				Expect(err).NotTo(HaveOccurred())
				Expect(price.Equal(decimal.RequireFromString("0.47"))).To(BeTrue())
				Expect(fakeSource.TokenPricesUSDCallCount()).To(BeZero())
			})
		})

		When("the cache misses", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("", prices.ErrCacheMiss)
				fakeSource.TokenPricesUSDReturns(map[string]decimal.Decimal{
					"POL": decimal.RequireFromString("0.52"),
				}, nil)
			})

			It("fetches from the source and refreshes the cache", func() {
				price, err := feed.PriceUSD(ctx, "POL")
				Expect(err).NotTo(HaveOccurred())
				Expect(price.Equal(decimal.RequireFromString("0.52"))).To(BeTrue())

				Expect(fakeSource.TokenPricesUSDCallCount()).To(Equal(1))
				_, symbols := fakeSource.TokenPricesUSDArgsForCall(0)
				Expect(symbols).To(Equal([]string{"POL"}))

				Expect(fakeCache.SetCallCount()).To(Equal(1))
				_, key, value, ttl := fakeCache.SetArgsForCall(0)
				Expect(key).To(Equal("POL"))
				Expect(value).To(Equal("0.52"))
				Expect(ttl).To(Equal(5 * time.Minute))
			})

			It("still returns the fetched price when the cache write fails", func() {
				fakeCache.SetReturns(testErr)

				price, err := feed.PriceUSD(ctx, "POL")
				Expect(err).NotTo(HaveOccurred())
				Expect(price.Equal(decimal.RequireFromString("0.52"))).To(BeTrue())
			})
		})

		When("a cached value does not parse", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("not-a-number", nil)
				fakeSource.TokenPricesUSDReturns(map[string]decimal.Decimal{
					"POL": decimal.RequireFromString("0.52"),
				}, nil)
			})

			It("discards it and refetches", func() {
				price, err := feed.PriceUSD(ctx, "POL")
				Expect(err).NotTo(HaveOccurred())
				Expect(price.Equal(decimal.RequireFromString("0.52"))).To(BeTrue())
				Expect(fakeSource.TokenPricesUSDCallCount()).To(Equal(1))
			})
		})

		When("the source is down", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("", prices.ErrCacheMiss)
				fakeSource.TokenPricesUSDReturns(nil, testErr)
			})

			It("serves the static fallback", func() {
				price, err := feed.PriceUSD(ctx, "POL")
				Expect(err).NotTo(HaveOccurred())
				Expect(price.Equal(decimal.RequireFromString("0.50"))).To(BeTrue())
			})

			It("fails for symbols without a fallback", func() {
				_, err := feed.PriceUSD(ctx, "DOGE")
				Expect(err).To(MatchError(prices.ErrPriceUnavailable))
			})
		})

		When("the source omits the requested symbol", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("", prices.ErrCacheMiss)
				fakeSource.TokenPricesUSDReturns(map[string]decimal.Decimal{}, nil)
			})

			It("falls back", func() {
				price, err := feed.PriceUSD(ctx, "USDT")
				Expect(err).NotTo(HaveOccurred())
				Expect(price.Equal(decimal.NewFromInt(1))).To(BeTrue())
				Expect(fakeCache.SetCallCount()).To(BeZero())
			})
		})
	})

	Describe("Invalidate", func() {
		It("drops the cached entry", func() {
			Expect(feed.Invalidate(ctx, "POL")).To(Succeed())
			Expect(fakeCache.InvalidateCallCount()).To(Equal(1))
			_, key := fakeCache.InvalidateArgsForCall(0)
			Expect(key).To(Equal("POL"))
		})

		It("wraps cache errors", func() {
			fakeCache.InvalidateReturns(testErr)
			Expect(feed.Invalidate(ctx, "POL")).To(MatchError(testErr))
		})
	})
})
