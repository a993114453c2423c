package payload

import (
	"fmt"

	"sendr/internal/core"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type SendRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Token     string `json:"token"`
}

func (s SendRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Recipient, validation.Required),
		validation.Field(&s.Amount, validation.Required, validation.By(positiveDecimal)),
		validation.Field(&s.Token, validation.Required),
	)
}

func (s SendRequest) ToMessage(accountID string) core.SendMessage {
	// Validate has already proven Amount parses
	amount, _ := decimal.NewFromString(s.Amount)
	return core.SendMessage{
		AccountID:   accountID,
		Recipient:   s.Recipient,
		Amount:      amount,
		TokenSymbol: s.Token,
	}
}

type EstimateRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Token     string `json:"token"`
}

func (e EstimateRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Recipient, validation.Required),
		validation.Field(&e.Amount, validation.Required, validation.By(positiveDecimal)),
		validation.Field(&e.Token, validation.Required),
	)
}

func (e EstimateRequest) ToMessage(accountID string) core.EstimateMessage {
	amount, _ := decimal.NewFromString(e.Amount)
	return core.EstimateMessage{
		AccountID:   accountID,
		Recipient:   e.Recipient,
		Amount:      amount,
		TokenSymbol: e.Token,
	}
}

func positiveDecimal(value any) error {
	raw, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("must be a decimal number")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}
