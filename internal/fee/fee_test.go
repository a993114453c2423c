package fee_test

import (
	"sendr/internal/fee"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Engine", func() {
	var (
		engine *fee.Engine
		policy fee.Policy
	)

	BeforeEach(func() {
		policy = fee.Policy{
			DomesticRate:      decimal.RequireFromString("0.01"),
			InternationalRate: decimal.RequireFromString("0.02"),
			MinPlatformFeeUSD: decimal.RequireFromString("0.10"),
			MaxPlatformFeeUSD: decimal.RequireFromString("50.00"),
			FreeThresholdUSD:  decimal.RequireFromString("1.00"),
			NativeTransferGas: 21000,
			TokenTransferGas:  100000,
			SponsorGas:        true,
		}
	})

	JustBeforeEach(func() {
		engine = fee.NewEngine(policy)
	})

	Describe("IsInternational", func() {
		It("treats matching countries as domestic", func() {
			Expect(fee.IsInternational("US", "US")).To(BeFalse())
		})

		It("treats differing countries as international", func() {
			Expect(fee.IsInternational("US", "NG")).To(BeTrue())
		})

		It("compares countries case-insensitively", func() {
			Expect(fee.IsInternational("us", "US")).To(BeFalse())
		})

		It("falls back to domestic when either country is unknown", func() {
			Expect(fee.IsInternational("", "NG")).To(BeFalse())
			Expect(fee.IsInternational("US", "")).To(BeFalse())
			Expect(fee.IsInternational("", "")).To(BeFalse())
		})
	})

	Describe("PlatformFee", func() {
		var usdcPrice decimal.Decimal

		BeforeEach(func() {
			usdcPrice = decimal.NewFromInt(1)
		})

		It("charges nothing below the free threshold", func() {
			charged := engine.PlatformFee(decimal.RequireFromString("0.99"), false, usdcPrice, 6)
			Expect(charged.IsZero()).To(BeTrue())
		})

		It("charges the domestic rate for a domestic transfer", func() {
			charged := engine.PlatformFee(decimal.NewFromInt(500), false, usdcPrice, 6)
			Expect(charged.Equal(decimal.NewFromInt(5))).To(BeTrue())
		})

		It("charges the international rate for an international transfer", func() {
			charged := engine.PlatformFee(decimal.NewFromInt(500), true, usdcPrice, 6)
			Expect(charged.Equal(decimal.NewFromInt(10))).To(BeTrue())
		})

		It("clamps the fee up to the minimum", func() {
			// 1% of $5 is $0.05, under the $0.10 floor
			charged := engine.PlatformFee(decimal.NewFromInt(5), false, usdcPrice, 6)
			Expect(charged.Equal(decimal.RequireFromString("0.10"))).To(BeTrue())
		})

		It("clamps the fee down to the maximum", func() {
			// 2% of $10000 is $200, over the $50 ceiling
			charged := engine.PlatformFee(decimal.NewFromInt(10000), true, usdcPrice, 6)
			Expect(charged.Equal(decimal.NewFromInt(50))).To(BeTrue())
		})

		It("converts the USD fee into token units", func() {
			// token priced at $0.50: a $5 fee is 10 tokens
			charged := engine.PlatformFee(decimal.NewFromInt(1000), false, decimal.RequireFromString("0.50"), 18)
			Expect(charged.Equal(decimal.NewFromInt(10))).To(BeTrue())
		})

		It("rounds half away from zero capped at six places", func() {
			// $0.10 floor at a $0.07 token is 1.4285714..., rounded to 1.428571
			charged := engine.PlatformFee(decimal.NewFromInt(100), false, decimal.RequireFromString("0.07"), 18)
			Expect(charged.Equal(decimal.RequireFromString("1.428571"))).To(BeTrue())
		})

		It("never decreases when the amount increases", func() {
			small := engine.PlatformFee(decimal.NewFromInt(100), false, usdcPrice, 6)
			large := engine.PlatformFee(decimal.NewFromInt(200), false, usdcPrice, 6)
			Expect(large.GreaterThanOrEqual(small)).To(BeTrue())
		})
	})

	Describe("EstimateGas", func() {
		var (
			gasPrice    decimal.Decimal
			nativePrice decimal.Decimal
		)

		BeforeEach(func() {
			gasPrice = decimal.NewFromInt(30_000_000_000) // 30 gwei
			nativePrice = decimal.RequireFromString("0.50")
		})

		It("uses the smaller gas unit count for native transfers", func() {
			estimate := engine.EstimateGas(true, gasPrice, nativePrice)
			Expect(estimate.Units).To(Equal(uint64(21000)))
		})

		It("uses the token gas unit count for token transfers", func() {
			estimate := engine.EstimateGas(false, gasPrice, nativePrice)
			Expect(estimate.Units).To(Equal(uint64(100000)))

			// 100000 * 30 gwei = 0.003 native = $0.0015
			Expect(estimate.CostNative.Equal(decimal.RequireFromString("0.003"))).To(BeTrue())
			Expect(estimate.CostUSD.Equal(decimal.RequireFromString("0.0015"))).To(BeTrue())
		})
	})

	Describe("CalculateTotalFee", func() {
		var params fee.CalculateParams

		BeforeEach(func() {
			params = fee.CalculateParams{
				Amount:         decimal.NewFromInt(500),
				NativeTransfer: false,
				TokenDecimals:  6,
				International:  false,
				TokenPriceUSD:  decimal.NewFromInt(1),
				NativePriceUSD: decimal.RequireFromString("0.50"),
				GasPriceWei:    decimal.NewFromInt(30_000_000_000),
			}
		})

		When("gas is sponsored", func() {
			It("zeroes the user gas fee and reports the subsidy", func() {
				breakdown := engine.CalculateTotalFee(params)

				Expect(breakdown.Sponsored).To(BeTrue())
				Expect(breakdown.GasFee.IsZero()).To(BeTrue())
				Expect(breakdown.TotalFee.Equal(breakdown.PlatformFee)).To(BeTrue())
				Expect(breakdown.SubsidyUSD.Equal(breakdown.GasFeeUSD)).To(BeTrue())
				Expect(breakdown.ActualGasFee.IsPositive()).To(BeTrue())
			})

			It("still reports the platform fee", func() {
				breakdown := engine.CalculateTotalFee(params)

				Expect(breakdown.PlatformFee.Equal(decimal.NewFromInt(5))).To(BeTrue())
				Expect(breakdown.PlatformFeeUSD.Equal(decimal.NewFromInt(5))).To(BeTrue())
			})
		})

		When("gas is not sponsored", func() {
			BeforeEach(func() {
				policy.SponsorGas = false
			})

			It("charges the user the actual gas cost", func() {
				breakdown := engine.CalculateTotalFee(params)

				Expect(breakdown.Sponsored).To(BeFalse())
				Expect(breakdown.GasFee.Equal(breakdown.ActualGasFee)).To(BeTrue())
				Expect(breakdown.TotalFee.Equal(breakdown.PlatformFee.Add(breakdown.GasFee))).To(BeTrue())
				Expect(breakdown.SubsidyUSD.IsZero()).To(BeTrue())
			})
		})

		When("the transfer is native", func() {
			BeforeEach(func() {
				params.NativeTransfer = true
				params.TokenDecimals = 18
				params.TokenPriceUSD = decimal.RequireFromString("0.50")
			})

			It("estimates with the native gas unit count", func() {
				breakdown := engine.CalculateTotalFee(params)
				Expect(breakdown.EstimatedGas).To(Equal(uint64(21000)))
			})
		})
	})
})
