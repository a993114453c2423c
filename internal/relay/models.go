package relay

import (
	"context"

	"github.com/shopspring/decimal"
)

// State names one step of a send attempt. Transitions are logged so a stuck
// attempt can be located from its last recorded state.
type State string

const (
	StateChecking        State = "CHECKING"
	StateDirectSubmit    State = "DIRECT_SUBMIT"
	StateSponsorAdvance  State = "SPONSOR_ADVANCE"
	StateSponsoredSubmit State = "SPONSORED_SUBMIT"
	StateSucceeded       State = "SUCCEEDED"
	StateFailed          State = "FAILED"
)

// TokenInfo describes the asset being moved.
type TokenInfo struct {
	Symbol   string
	Contract string
	Native   bool
	Decimals int32
}

// Request is one send attempt. RecordAdvance, when set, is invoked with the
// advance hash after the gas advance is accepted but before the value
// transfer is submitted, so a crash in between leaves a reconcilable trail.
type Request struct {
	SenderAddress    string
	EncryptedKey     string
	RecipientAddress string
	Amount           decimal.Decimal
	Token            TokenInfo
	RecordAdvance    func(ctx context.Context, advanceTxID string) error
}

type Result struct {
	ChainTxID   string
	AdvanceTxID string
	Sponsored   bool
	State       State
}
