package core

import (
	"sendr/internal/fee"

	"github.com/shopspring/decimal"
)

type SendMessage struct {
	AccountID   string
	Recipient   string
	Amount      decimal.Decimal
	TokenSymbol string
}

type SendReceipt struct {
	TransactionID    string
	ChainTxID        string
	AdvanceTxID      string
	Status           string
	Sponsored        bool
	RecipientAddress string
	TransferMethod   string
	Fees             fee.Breakdown
}

type EstimateMessage struct {
	AccountID   string
	Recipient   string
	Amount      decimal.Decimal
	TokenSymbol string
}

type FeeEstimate struct {
	RecipientAddress string
	TransferMethod   string
	International    bool
	Fees             fee.Breakdown
}
