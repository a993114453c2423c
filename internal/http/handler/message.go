package handler

import (
	"time"

	"sendr/internal/chain"
	"sendr/internal/core"
	"sendr/internal/repository"
	"sendr/internal/resolver"

	"github.com/shopspring/decimal"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type FeeView struct {
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	GasFee         decimal.Decimal `json:"gas_fee"`
	TotalFee       decimal.Decimal `json:"total_fee"`
	PlatformFeeUSD decimal.Decimal `json:"platform_fee_usd"`
	GasFeeUSD      decimal.Decimal `json:"gas_fee_usd"`
	SubsidyUSD     decimal.Decimal `json:"subsidy_usd"`
	EstimatedGas   uint64          `json:"estimated_gas"`
	Sponsored      bool            `json:"sponsored"`
}

type SendResponse struct {
	TransactionID    string  `json:"transaction_id"`
	ChainTxID        string  `json:"chain_tx_id,omitempty"`
	AdvanceTxID      string  `json:"advance_tx_id,omitempty"`
	Status           string  `json:"status"`
	Sponsored        bool    `json:"sponsored"`
	RecipientAddress string  `json:"recipient_address"`
	TransferMethod   string  `json:"transfer_method"`
	Fees             FeeView `json:"fees"`
}

type EstimateResponse struct {
	RecipientAddress string  `json:"recipient_address"`
	TransferMethod   string  `json:"transfer_method"`
	International    bool    `json:"international"`
	Fees             FeeView `json:"fees"`
}

type ResolveResponse struct {
	Address string `json:"address"`
	Method  string `json:"method"`
	Country string `json:"country,omitempty"`
}

type BalanceView struct {
	Symbol    string          `json:"symbol"`
	Amount    decimal.Decimal `json:"amount"`
	AmountUSD decimal.Decimal `json:"amount_usd"`
}

type TransactionView struct {
	ID            string          `json:"id"`
	FromAddress   string          `json:"from_address"`
	ToAddress     string          `json:"to_address"`
	Amount        decimal.Decimal `json:"amount"`
	Token         string          `json:"token"`
	ChainTxID     string          `json:"chain_tx_id,omitempty"`
	Status        string          `json:"status"`
	Sponsored     bool            `json:"sponsored"`
	TotalFee      decimal.Decimal `json:"total_fee"`
	International bool            `json:"international"`
	FailureReason string          `json:"failure_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ConfirmedAt   *time.Time      `json:"confirmed_at,omitempty"`
}

func toFeeView(fees core.SendReceipt) FeeView {
	return feeView(fees.Fees.PlatformFee, fees.Fees.GasFee, fees.Fees.TotalFee,
		fees.Fees.PlatformFeeUSD, fees.Fees.GasFeeUSD, fees.Fees.SubsidyUSD,
		fees.Fees.EstimatedGas, fees.Fees.Sponsored)
}

func feeView(platform, gas, total, platformUSD, gasUSD, subsidyUSD decimal.Decimal, estimatedGas uint64, sponsored bool) FeeView {
	return FeeView{
		PlatformFee:    platform,
		GasFee:         gas,
		TotalFee:       total,
		PlatformFeeUSD: platformUSD,
		GasFeeUSD:      gasUSD,
		SubsidyUSD:     subsidyUSD,
		EstimatedGas:   estimatedGas,
		Sponsored:      sponsored,
	}
}

func toSendResponse(receipt core.SendReceipt) SendResponse {
	return SendResponse{
		TransactionID:    receipt.TransactionID,
		ChainTxID:        receipt.ChainTxID,
		AdvanceTxID:      receipt.AdvanceTxID,
		Status:           receipt.Status,
		Sponsored:        receipt.Sponsored,
		RecipientAddress: receipt.RecipientAddress,
		TransferMethod:   receipt.TransferMethod,
		Fees:             toFeeView(receipt),
	}
}

func toEstimateResponse(estimate core.FeeEstimate) EstimateResponse {
	return EstimateResponse{
		RecipientAddress: estimate.RecipientAddress,
		TransferMethod:   estimate.TransferMethod,
		International:    estimate.International,
		Fees: feeView(estimate.Fees.PlatformFee, estimate.Fees.GasFee, estimate.Fees.TotalFee,
			estimate.Fees.PlatformFeeUSD, estimate.Fees.GasFeeUSD, estimate.Fees.SubsidyUSD,
			estimate.Fees.EstimatedGas, estimate.Fees.Sponsored),
	}
}

func toResolveResponse(resolved resolver.Resolved) ResolveResponse {
	return ResolveResponse{
		Address: resolved.Address,
		Method:  resolved.Method.String(),
		Country: resolved.Country,
	}
}

func toBalanceViews(balances []chain.Balance) []BalanceView {
	views := make([]BalanceView, 0, len(balances))
	for _, b := range balances {
		views = append(views, BalanceView{
			Symbol:    b.Symbol,
			Amount:    b.Amount,
			AmountUSD: b.AmountUSD,
		})
	}
	return views
}

func toTransactionView(tx repository.Transaction) TransactionView {
	view := TransactionView{
		ID:            tx.ID,
		FromAddress:   tx.FromAddress,
		ToAddress:     tx.ToAddress,
		Amount:        tx.Amount,
		Token:         tx.TokenSymbol,
		Status:        tx.Status,
		Sponsored:     tx.Sponsored,
		TotalFee:      tx.TotalFee,
		International: tx.International,
		CreatedAt:     tx.CreatedAt,
		ConfirmedAt:   tx.ConfirmedAt,
	}
	if tx.ChainTxID != nil {
		view.ChainTxID = *tx.ChainTxID
	}
	if tx.FailureReason != nil {
		view.FailureReason = *tx.FailureReason
	}
	return view
}
