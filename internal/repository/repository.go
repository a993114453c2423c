package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sendr/internal/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrAccountNotFound error = errors.New("account not found")
var ErrWalletNotFound error = errors.New("wallet not found")
var ErrAliasNotFound error = errors.New("alias not found")
var ErrTokenNotFound error = errors.New("token not found")
var ErrTransactionNotFound error = errors.New("transaction not found")

// ErrDuplicateChainID signals that an on-chain identifier is already recorded
// on a different ledger row. This is the idempotency guard against
// double-recording one on-chain event; hitting it is a severity-high anomaly.
var ErrDuplicateChainID error = errors.New("chain transaction id already recorded")

// ErrChainIDImmutable signals an attempt to overwrite an already-set
// on-chain identifier with a different one.
var ErrChainIDImmutable error = errors.New("chain transaction id is immutable once set")

type WalletRepository struct {
	db Storage
}

func NewWalletRepository(db Storage) *WalletRepository {
	return &WalletRepository{
		db: db,
	}
}

func (r *WalletRepository) MigrateAndSeed(ctx context.Context, tokens []Token) error {
	err := r.db.MigrateTables(
		&Account{},
		&Wallet{},
		&Token{},
		&AddressAlias{},
		&Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	if len(tokens) == 0 {
		tokens = DefaultTokens()
	}
	if err := r.db.Seed(ctx, &tokens); err != nil {
		return fmt.Errorf("seed token table: %w", err)
	}

	return nil
}

// DefaultTokens returns the asset set the system launches with. Contract
// addresses are the Polygon Amoy testnet deployments.
func DefaultTokens() []Token {
	return []Token{
		{
			Symbol:   "POL",
			Name:     "Polygon",
			Native:   true,
			Decimals: 18,
			PriceUSD: decimal.RequireFromString("0.50"),
			Active:   true,
		},
		{
			Symbol:          "USDC",
			Name:            "USD Coin",
			ContractAddress: "0x41E94Eb019C0762f9BFcf9Fb1E58725BfB0e7582",
			Decimals:        6,
			PriceUSD:        decimal.RequireFromString("1.00"),
			Active:          true,
		},
		{
			Symbol:          "USDT",
			Name:            "Tether USD",
			ContractAddress: "0x1616d425Cd540B256475cBfb604586C8598eC0FB",
			Decimals:        6,
			PriceUSD:        decimal.RequireFromString("1.00"),
			Active:          true,
		},
	}
}

// ---- ledger ----

// OpenTransaction persists the send intent as a PENDING row before anything
// touches the chain. The row id is generated here.
func (r *WalletRepository) OpenTransaction(ctx context.Context, tx Transaction) (Transaction, error) {
	tx.ID = uuid.NewString()
	tx.Status = StatusPending
	tx.CreatedAt = time.Now().UTC()

	if err := r.db.Create(ctx, &tx); err != nil {
		return Transaction{}, fmt.Errorf("open ledger row: %w", err)
	}

	return tx, nil
}

// AttachChainID records the on-chain identifier on an open row. The
// identifier is immutable once set and unique across all rows.
func (r *WalletRepository) AttachChainID(ctx context.Context, id string, chainTxID string) error {
	rows, err := r.db.UpdateWhere(ctx, &Transaction{},
		map[string]any{"chain_tx_id": chainTxID},
		"id = ? AND chain_tx_id IS NULL", id)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateChainID
		}
		return fmt.Errorf("attach chain tx id: %w", err)
	}
	if rows > 0 {
		return nil
	}

	existing, err := r.GetTransaction(ctx, id)
	if err != nil {
		return err
	}
	if existing.ChainTxID != nil && *existing.ChainTxID == chainTxID {
		// same id re-attached to the same row, nothing to do
		return nil
	}
	return ErrChainIDImmutable
}

// AttachAdvanceID records the sponsorship advance hash before the value
// transfer is submitted, so orphaned advances can be reconciled after a crash.
func (r *WalletRepository) AttachAdvanceID(ctx context.Context, id string, advanceTxID string) error {
	rows, err := r.db.UpdateWhere(ctx, &Transaction{},
		map[string]any{"advance_tx_id": advanceTxID, "sponsored": true},
		"id = ?", id)
	if err != nil {
		return fmt.Errorf("attach advance tx id: %w", err)
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Finalize moves an open row to a terminal status. Finalizing a row that is
// already terminal is a no-op: the confirmation source delivers at least once.
func (r *WalletRepository) Finalize(ctx context.Context, id string, status string, chainTxID *string) error {
	if status != StatusConfirmed && status != StatusFailed {
		return fmt.Errorf("finalize to non-terminal status %q", status)
	}

	existing, err := r.GetTransaction(ctx, id)
	if err != nil {
		return err
	}
	if !canTransition(existing.Status, status) {
		// terminal rows are immutable; redelivery is a no-op
		return nil
	}

	fields := map[string]any{"status": status}
	if status == StatusConfirmed {
		fields["confirmed_at"] = time.Now().UTC()
	}
	if chainTxID != nil {
		if existing.ChainTxID != nil && *existing.ChainTxID != *chainTxID {
			return ErrChainIDImmutable
		}
		fields["chain_tx_id"] = *chainTxID
	}

	rows, err := r.db.UpdateWhere(ctx, &Transaction{}, fields,
		"id = ? AND status IN ?", id, []string{StatusPending, StatusReconciling})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateChainID
		}
		return fmt.Errorf("finalize ledger row: %w", err)
	}
	if rows == 0 {
		// a concurrent finalize won the race; terminal states are immutable
		return nil
	}
	return nil
}

// FinalizeFailed marks an open row FAILED with the reason the attempt died.
func (r *WalletRepository) FinalizeFailed(ctx context.Context, id string, reason string) error {
	rows, err := r.db.UpdateWhere(ctx, &Transaction{},
		map[string]any{"status": StatusFailed, "failure_reason": reason},
		"id = ? AND status IN ?", id, []string{StatusPending, StatusReconciling})
	if err != nil {
		return fmt.Errorf("finalize failed ledger row: %w", err)
	}
	if rows == 0 {
		existing, err := r.GetTransaction(ctx, id)
		if err != nil {
			return err
		}
		if isTerminal(existing.Status) {
			return nil
		}
		return fmt.Errorf("ledger row %s not updated", id)
	}
	return nil
}

// MarkReconciling parks a row whose submission outcome is unknown. The row
// stays non-terminal until the confirmation source or an operator resolves it.
func (r *WalletRepository) MarkReconciling(ctx context.Context, id string, reason string) error {
	rows, err := r.db.UpdateWhere(ctx, &Transaction{},
		map[string]any{"status": StatusReconciling, "failure_reason": reason},
		"id = ? AND status = ?", id, StatusPending)
	if err != nil {
		return fmt.Errorf("mark ledger row reconciling: %w", err)
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *WalletRepository) GetTransaction(ctx context.Context, id string) (Transaction, error) {
	var tx Transaction
	err := r.db.GetOneBy(ctx, "id", id, &tx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}
	return tx, nil
}

// GetTransactionByChainID is the idempotent lookup used by the confirmation
// source and duplicate-webhook handling.
func (r *WalletRepository) GetTransactionByChainID(ctx context.Context, chainTxID string) (Transaction, error) {
	var tx Transaction
	err := r.db.GetOneBy(ctx, "chain_tx_id", chainTxID, &tx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by chain tx id: %w", err)
	}
	return tx, nil
}

// ---- lookups ----

func (r *WalletRepository) GetAccountByID(ctx context.Context, id string) (Account, error) {
	var account Account
	err := r.db.GetOneBy(ctx, "id", id, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by id: %w", err)
	}
	return account, nil
}

func (r *WalletRepository) GetAccountByPhone(ctx context.Context, phone string) (Account, error) {
	var account Account
	err := r.db.GetOneBy(ctx, "phone", phone, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by phone: %w", err)
	}
	return account, nil
}

func (r *WalletRepository) GetWalletByAccountID(ctx context.Context, accountID string) (Wallet, error) {
	var wallet Wallet
	err := r.db.GetOneBy(ctx, "account_id", accountID, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by account id: %w", err)
	}
	return wallet, nil
}

func (r *WalletRepository) GetWalletByAddress(ctx context.Context, address string) (Wallet, error) {
	var wallet Wallet
	err := r.db.GetOneBy(ctx, "address", address, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by address: %w", err)
	}
	return wallet, nil
}

func (r *WalletRepository) GetAliasByHandle(ctx context.Context, handle string) (AddressAlias, error) {
	var alias AddressAlias
	err := r.db.GetOneBy(ctx, "handle", handle, &alias)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return AddressAlias{}, ErrAliasNotFound
		}
		return AddressAlias{}, fmt.Errorf("get alias by handle: %w", err)
	}
	return alias, nil
}

func (r *WalletRepository) GetTokenBySymbol(ctx context.Context, symbol string) (Token, error) {
	var token Token
	err := r.db.GetOneBy(ctx, "symbol", symbol, &token)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Token{}, ErrTokenNotFound
		}
		return Token{}, fmt.Errorf("get token by symbol: %w", err)
	}
	return token, nil
}

func (r *WalletRepository) GetActiveTokens(ctx context.Context) ([]Token, error) {
	var tokens []Token
	err := r.db.GetAllBy(ctx, "active", []bool{true}, &tokens)
	if err != nil {
		return nil, fmt.Errorf("get active tokens: %w", err)
	}
	return tokens, nil
}
