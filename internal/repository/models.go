package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the owning user of a wallet. Authentication and KYC live in
// external collaborators; only the fields the send path reads are kept here.
type Account struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	Phone     string `gorm:"size:20;uniqueIndex"`
	Country   string `gorm:"size:2"` // ISO 3166-1 alpha-2
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Wallet struct {
	ID           uint   `gorm:"primaryKey"`
	AccountID    string `gorm:"size:36;uniqueIndex;not null"`
	Address      string `gorm:"size:42;uniqueIndex;not null"` // Ethereum address (0x + 40 hex)
	EncryptedKey string `gorm:"type:text;not null"`           // never stored or logged in plaintext
	Chain        string `gorm:"size:20;not null;default:polygon"`
	Disabled     bool   `gorm:"not null;default:false"` // wallets are soft-disabled, never deleted
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Token struct {
	ID              uint            `gorm:"primaryKey"`
	Symbol          string          `gorm:"size:10;uniqueIndex;not null"`
	Name            string          `gorm:"size:100;not null"`
	ContractAddress string          `gorm:"size:42;index"` // empty for the native token
	Native          bool            `gorm:"not null;default:false"`
	Decimals        int32           `gorm:"not null"` // fixed at creation, never changes
	PriceUSD        decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`
	Active          bool            `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AddressAlias maps a human-readable handle to exactly one wallet address.
type AddressAlias struct {
	ID            uint   `gorm:"primaryKey"`
	AccountID     string `gorm:"size:36;uniqueIndex;not null"`
	Handle        string `gorm:"size:50;uniqueIndex;not null"`  // case-normalized, without suffix
	FullHandle    string `gorm:"size:100;uniqueIndex;not null"` // handle + alias suffix
	WalletAddress string `gorm:"size:42;uniqueIndex;not null"`
	Active        bool   `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Transaction is the ledger row for one requested value movement.
// ChainTxID carries the uniqueness constraint that makes recording
// idempotent: the same on-chain identifier can never land on two rows.
type Transaction struct {
	ID          string          `gorm:"primaryKey;autoIncrement:false"` // uuid
	FromAddress string          `gorm:"size:42;not null;index"`
	ToAddress   string          `gorm:"size:42;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(36,18);not null"`
	TokenSymbol string          `gorm:"size:10;not null"`

	ChainTxID   *string `gorm:"size:66;uniqueIndex"` // nil until submitted, immutable once set
	AdvanceTxID *string `gorm:"size:66"`             // sponsorship advance hash, kept for reconciliation
	Status      string  `gorm:"size:12;not null;index"`
	Sponsored   bool    `gorm:"not null;default:false"`

	PlatformFee decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0"`
	GasFee      decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0"` // charged to the user
	TotalFee    decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0"`
	GasSubsidy  decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0"` // platform-covered gas, internal accounting

	FromCountry   string `gorm:"size:2"`
	ToCountry     string `gorm:"size:2"`
	International bool   `gorm:"not null;default:false"`

	RecipientPhone string  `gorm:"size:20"`
	TransferMethod string  `gorm:"size:10"` // alias, phone or address
	FailureReason  *string `gorm:"type:text"`

	CreatedAt   time.Time
	ConfirmedAt *time.Time
}
