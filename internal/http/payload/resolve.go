package payload

import (
	"github.com/jellydator/validation"
)

type ResolveRequest struct {
	Recipient string `json:"recipient"`
}

func (r ResolveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Recipient, validation.Required),
	)
}

// ConfirmationRequest is the callback body delivered by the confirmation
// source once a submitted transaction settles.
type ConfirmationRequest struct {
	ChainTxID string `json:"chain_tx_id"`
	Success   *bool  `json:"success"`
}

func (c ConfirmationRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ChainTxID, validation.Required),
		validation.Field(&c.Success, validation.NotNil),
	)
}
