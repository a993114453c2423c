package fee

import (
	"strings"

	"github.com/shopspring/decimal"
)

// displayDecimals caps fee rounding so quoted fees never carry more precision
// than the smallest stable-token unit.
const displayDecimals int32 = 6

var weiPerNative = decimal.New(1, 18)

// Policy carries the business constants of the fee schedule. All values come
// from configuration; nothing here is an engineering choice.
type Policy struct {
	DomesticRate      decimal.Decimal
	InternationalRate decimal.Decimal
	MinPlatformFeeUSD decimal.Decimal
	MaxPlatformFeeUSD decimal.Decimal
	FreeThresholdUSD  decimal.Decimal
	NativeTransferGas uint64
	TokenTransferGas  uint64
	SponsorGas        bool
}

// Breakdown is the full fee picture for one send. Token-unit amounts are in
// units of the transferred token; the USD mirror is for display and internal
// accounting.
type Breakdown struct {
	PlatformFee  decimal.Decimal // token units
	GasFee       decimal.Decimal // token units, what the user pays for gas
	ActualGasFee decimal.Decimal // token units, what the gas really costs
	TotalFee     decimal.Decimal // token units, user-facing total

	EstimatedGas uint64
	GasPriceWei  decimal.Decimal
	Sponsored    bool

	PlatformFeeUSD decimal.Decimal
	GasFeeUSD      decimal.Decimal // actual gas cost
	SubsidyUSD     decimal.Decimal // platform-covered portion, zero when not sponsored
}

type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{
		policy: policy,
	}
}

// IsInternational classifies a country pair. Unknown codes fail open toward
// domestic so missing data never over-charges.
func IsInternational(fromCountry, toCountry string) bool {
	if fromCountry == "" || toCountry == "" {
		return false
	}
	return !strings.EqualFold(fromCountry, toCountry)
}

// PlatformFee computes the tiered platform fee in token units. Transactions
// below the free threshold cost nothing; above it the fee is a percentage of
// the USD value clamped to the [min, max] band.
func (e *Engine) PlatformFee(amount decimal.Decimal, international bool, tokenPriceUSD decimal.Decimal, tokenDecimals int32) decimal.Decimal {
	amountUSD := amount.Mul(tokenPriceUSD)

	if amountUSD.LessThan(e.policy.FreeThresholdUSD) {
		return decimal.Zero
	}

	rate := e.policy.DomesticRate
	if international {
		rate = e.policy.InternationalRate
	}

	feeUSD := amountUSD.Mul(rate)
	if feeUSD.LessThan(e.policy.MinPlatformFeeUSD) {
		feeUSD = e.policy.MinPlatformFeeUSD
	}
	if feeUSD.GreaterThan(e.policy.MaxPlatformFeeUSD) {
		feeUSD = e.policy.MaxPlatformFeeUSD
	}

	if !tokenPriceUSD.IsPositive() {
		return decimal.Zero
	}

	return roundToken(feeUSD.Div(tokenPriceUSD), tokenDecimals)
}

// GasEstimate holds the projected gas cost of one transfer.
type GasEstimate struct {
	Units         uint64
	GasPriceWei   decimal.Decimal
	CostNative    decimal.Decimal
	CostUSD       decimal.Decimal
}

// EstimateGas projects the gas cost of a transfer at the sampled gas price.
// Token transfers burn more gas than native ones.
func (e *Engine) EstimateGas(nativeTransfer bool, gasPriceWei decimal.Decimal, nativePriceUSD decimal.Decimal) GasEstimate {
	units := e.policy.TokenTransferGas
	if nativeTransfer {
		units = e.policy.NativeTransferGas
	}

	costNative := decimal.NewFromUint64(units).Mul(gasPriceWei).Div(weiPerNative)

	return GasEstimate{
		Units:       units,
		GasPriceWei: gasPriceWei,
		CostNative:  costNative,
		CostUSD:     costNative.Mul(nativePriceUSD),
	}
}

// CalculateParams are the inputs for one full fee calculation.
type CalculateParams struct {
	Amount         decimal.Decimal
	NativeTransfer bool
	TokenDecimals  int32
	International  bool
	TokenPriceUSD  decimal.Decimal
	NativePriceUSD decimal.Decimal
	GasPriceWei    decimal.Decimal
}

// CalculateTotalFee derives the complete breakdown for one send. Deterministic
// given its inputs; performs no I/O.
func (e *Engine) CalculateTotalFee(p CalculateParams) Breakdown {
	platformFee := e.PlatformFee(p.Amount, p.International, p.TokenPriceUSD, p.TokenDecimals)
	gas := e.EstimateGas(p.NativeTransfer, p.GasPriceWei, p.NativePriceUSD)

	var actualGasFee decimal.Decimal
	if p.NativeTransfer {
		actualGasFee = gas.CostNative
	} else if p.TokenPriceUSD.IsPositive() {
		actualGasFee = gas.CostUSD.Div(p.TokenPriceUSD)
	}
	actualGasFee = roundToken(actualGasFee, p.TokenDecimals)

	userGasFee := actualGasFee
	subsidyUSD := decimal.Zero
	if e.policy.SponsorGas {
		userGasFee = decimal.Zero
		subsidyUSD = gas.CostUSD
	}

	return Breakdown{
		PlatformFee:  platformFee,
		GasFee:       userGasFee,
		ActualGasFee: actualGasFee,
		TotalFee:     platformFee.Add(userGasFee),
		EstimatedGas: gas.Units,
		GasPriceWei:  p.GasPriceWei,
		Sponsored:    e.policy.SponsorGas,

		PlatformFeeUSD: platformFee.Mul(p.TokenPriceUSD),
		GasFeeUSD:      gas.CostUSD,
		SubsidyUSD:     subsidyUSD,
	}
}

// roundToken rounds half away from zero to the token's representable
// precision, capped at the display precision. Truncation would silently
// shave user-owed amounts.
func roundToken(d decimal.Decimal, tokenDecimals int32) decimal.Decimal {
	places := tokenDecimals
	if places > displayDecimals {
		places = displayDecimals
	}
	return d.Round(places)
}
