package prices_test

import (
	"context"
	"time"

	"sendr/internal/prices"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	goredis "github.com/redis/go-redis/v9"
)

var _ = Describe("RedisCache", func() {
	var (
		server *miniredis.Miniredis
		cache  *prices.RedisCache
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		server, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())

		cache = prices.NewRedisCache(goredis.NewClient(&goredis.Options{Addr: server.Addr()}))
		ctx = context.Background()
	})

	AfterEach(func() {
		server.Close()
	})

	It("stores and retrieves a value", func() {
		Expect(cache.Set(ctx, "POL", "0.52", time.Minute)).To(Succeed())

		val, err := cache.Get(ctx, "POL")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal("0.52"))
	})

	It("namespaces keys under the price prefix", func() {
		Expect(cache.Set(ctx, "POL", "0.52", time.Minute)).To(Succeed())

		stored, err := server.Get("price:POL")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal("0.52"))
	})

	It("reports a miss for unknown keys", func() {
		_, err := cache.Get(ctx, "POL")
		Expect(err).To(MatchError(prices.ErrCacheMiss))
	})

	It("expires entries after the TTL", func() {
		Expect(cache.Set(ctx, "POL", "0.52", time.Minute)).To(Succeed())
		server.FastForward(2 * time.Minute)

		_, err := cache.Get(ctx, "POL")
		Expect(err).To(MatchError(prices.ErrCacheMiss))
	})

	It("invalidates entries on demand", func() {
		Expect(cache.Set(ctx, "POL", "0.52", time.Minute)).To(Succeed())
		Expect(cache.Invalidate(ctx, "POL")).To(Succeed())

		_, err := cache.Get(ctx, "POL")
		Expect(err).To(MatchError(prices.ErrCacheMiss))
	})
})
