package chain_test

import (
	"math/big"

	"sendr/internal/chain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("unit conversion", func() {
	DescribeTable("ToBaseUnits",
		func(amount string, decimals int32, expected string) {
			base := chain.ToBaseUnits(decimal.RequireFromString(amount), decimals)
			want, ok := new(big.Int).SetString(expected, 10)
			Expect(ok).To(BeTrue())
			Expect(base).To(Equal(want))
		},
		Entry("whole native amount", "2", int32(18), "2000000000000000000"),
		Entry("fractional native amount", "0.5", int32(18), "500000000000000000"),
		Entry("six-decimal stable token", "12.34", int32(6), "12340000"),
		Entry("sub-precision remainder is rounded", "1.0000005", int32(6), "1000001"),
		Entry("zero", "0", int32(18), "0"),
	)

	DescribeTable("FromBaseUnits",
		func(base string, decimals int32, expected string) {
			raw, ok := new(big.Int).SetString(base, 10)
			Expect(ok).To(BeTrue())
			amount := chain.FromBaseUnits(raw, decimals)
			Expect(amount.Equal(decimal.RequireFromString(expected))).To(BeTrue())
		},
		Entry("wei to native", "1500000000000000000", int32(18), "1.5"),
		Entry("stable token base units", "25000000", int32(6), "25"),
		Entry("single base unit", "1", int32(18), "0.000000000000000001"),
	)

	It("round-trips through base units", func() {
		amount := decimal.RequireFromString("3.141592")
		Expect(chain.FromBaseUnits(chain.ToBaseUnits(amount, 6), 6).Equal(amount)).To(BeTrue())
	})
})
