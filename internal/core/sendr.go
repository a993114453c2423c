package core

import (
	"context"
	"errors"
	"fmt"

	"sendr/internal/chain"
	"sendr/internal/fee"
	"sendr/internal/observability"
	"sendr/internal/relay"
	"sendr/internal/repository"
	"sendr/internal/resolver"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrWalletDisabled error = errors.New("sender wallet is disabled")

var ErrTokenInactive error = errors.New("token is not active for transfers")

// Sendr is the send pipeline: it resolves the recipient, quotes fees, opens
// the ledger row and hands the attempt to the relay orchestrator. All
// user-input validation happens before any ledger write, so a rejected
// request leaves no trace.
type Sendr struct {
	logs         *zap.SugaredLogger
	repo         Repository
	recipients   RecipientResolver
	fees         *fee.Engine
	relayer      Relayer
	prices       PriceFeed
	reader       ChainReader
	notifier     Notifier
	nativeSymbol string
}

func NewSendr(
	logger *zap.SugaredLogger,
	repo Repository,
	recipients RecipientResolver,
	fees *fee.Engine,
	relayer Relayer,
	prices PriceFeed,
	reader ChainReader,
	notifier Notifier,
	nativeSymbol string,
) *Sendr {
	return &Sendr{
		logs:         logger,
		repo:         repo,
		recipients:   recipients,
		fees:         fees,
		relayer:      relayer,
		prices:       prices,
		reader:       reader,
		notifier:     notifier,
		nativeSymbol: nativeSymbol,
	}
}

// Send runs one transfer end to end up to mempool acceptance. The returned
// receipt reflects the ledger row; confirmation arrives later through
// FinalizeFromChain.
func (s *Sendr) Send(ctx context.Context, msg SendMessage) (SendReceipt, error) {
	wallet, err := s.repo.GetWalletByAccountID(ctx, msg.AccountID)
	if err != nil {
		return SendReceipt{}, fmt.Errorf("get sender wallet: %w", err)
	}
	if wallet.Disabled {
		return SendReceipt{}, ErrWalletDisabled
	}

	token, err := s.repo.GetTokenBySymbol(ctx, msg.TokenSymbol)
	if err != nil {
		return SendReceipt{}, fmt.Errorf("get token %q: %w", msg.TokenSymbol, err)
	}
	if !token.Active {
		return SendReceipt{}, ErrTokenInactive
	}

	resolved, err := s.recipients.Resolve(ctx, msg.Recipient)
	if err != nil {
		return SendReceipt{}, err
	}

	senderCountry := ""
	if account, accErr := s.repo.GetAccountByID(ctx, msg.AccountID); accErr == nil {
		senderCountry = account.Country
	}
	international := fee.IsInternational(senderCountry, resolved.Country)

	breakdown, err := s.quote(ctx, token, msg.Amount, international)
	if err != nil {
		return SendReceipt{}, err
	}

	row := repository.Transaction{
		FromAddress:    wallet.Address,
		ToAddress:      resolved.Address,
		Amount:         msg.Amount,
		TokenSymbol:    token.Symbol,
		PlatformFee:    breakdown.PlatformFee,
		GasFee:         breakdown.GasFee,
		TotalFee:       breakdown.TotalFee,
		FromCountry:    senderCountry,
		ToCountry:      resolved.Country,
		International:  international,
		RecipientPhone: resolved.Phone,
		TransferMethod: resolved.Method.String(),
	}
	if breakdown.Sponsored {
		row.GasSubsidy = breakdown.ActualGasFee
	}

	row, err = s.repo.OpenTransaction(ctx, row)
	if err != nil {
		return SendReceipt{}, fmt.Errorf("open ledger transaction: %w", err)
	}

	s.logs.Infow("ledger transaction opened",
		"transaction", row.ID,
		"token", token.Symbol,
		"method", row.TransferMethod,
		"international", international)

	result, sendErr := s.relayer.Send(ctx, relay.Request{
		SenderAddress:    wallet.Address,
		EncryptedKey:     wallet.EncryptedKey,
		RecipientAddress: resolved.Address,
		Amount:           msg.Amount,
		Token: relay.TokenInfo{
			Symbol:   token.Symbol,
			Contract: token.ContractAddress,
			Native:   token.Native,
			Decimals: token.Decimals,
		},
		RecordAdvance: func(ctx context.Context, advanceTxID string) error {
			return s.repo.AttachAdvanceID(ctx, row.ID, advanceTxID)
		},
	})
	if sendErr != nil {
		status := s.recordAttemptFailure(ctx, row.ID, sendErr)
		observability.IncrementSend("failed")
		return SendReceipt{
			TransactionID:    row.ID,
			AdvanceTxID:      result.AdvanceTxID,
			Status:           status,
			Sponsored:        result.Sponsored,
			RecipientAddress: resolved.Address,
			TransferMethod:   resolved.Method.String(),
			Fees:             breakdown,
		}, sendErr
	}

	if err := s.repo.AttachChainID(ctx, row.ID, result.ChainTxID); err != nil {
		if errors.Is(err, repository.ErrDuplicateChainID) {
			// the hash landed on another row: a double-submission upstream
			observability.IncrementAnomaly("duplicate_chain_id")
			s.logs.Errorw("chain tx id already recorded on another transaction",
				"severity", "high",
				"transaction", row.ID,
				"chain_tx", result.ChainTxID)
		} else {
			s.logs.Errorw("failed to attach chain tx id",
				"transaction", row.ID,
				"chain_tx", result.ChainTxID,
				"error", err)
		}
		return SendReceipt{}, fmt.Errorf("record chain tx id: %w", err)
	}

	observability.IncrementSend("submitted")
	return SendReceipt{
		TransactionID:    row.ID,
		ChainTxID:        result.ChainTxID,
		AdvanceTxID:      result.AdvanceTxID,
		Status:           repository.StatusPending,
		Sponsored:        result.Sponsored,
		RecipientAddress: resolved.Address,
		TransferMethod:   resolved.Method.String(),
		Fees:             breakdown,
	}, nil
}

// EstimateFee quotes a send without opening a ledger row or touching keys.
func (s *Sendr) EstimateFee(ctx context.Context, msg EstimateMessage) (FeeEstimate, error) {
	token, err := s.repo.GetTokenBySymbol(ctx, msg.TokenSymbol)
	if err != nil {
		return FeeEstimate{}, fmt.Errorf("get token %q: %w", msg.TokenSymbol, err)
	}
	if !token.Active {
		return FeeEstimate{}, ErrTokenInactive
	}

	resolved, err := s.recipients.Resolve(ctx, msg.Recipient)
	if err != nil {
		return FeeEstimate{}, err
	}

	senderCountry := ""
	if account, accErr := s.repo.GetAccountByID(ctx, msg.AccountID); accErr == nil {
		senderCountry = account.Country
	}
	international := fee.IsInternational(senderCountry, resolved.Country)

	breakdown, err := s.quote(ctx, token, msg.Amount, international)
	if err != nil {
		return FeeEstimate{}, err
	}

	return FeeEstimate{
		RecipientAddress: resolved.Address,
		TransferMethod:   resolved.Method.String(),
		International:    international,
		Fees:             breakdown,
	}, nil
}

// ResolveRecipient exposes recipient resolution as its own operation so
// clients can preview where an identifier leads before sending.
func (s *Sendr) ResolveRecipient(ctx context.Context, identifier string) (resolver.Resolved, error) {
	return s.recipients.Resolve(ctx, identifier)
}

// Balances reports an address's holdings across all active tokens.
func (s *Sendr) Balances(ctx context.Context, address string) ([]chain.Balance, error) {
	tokens, err := s.repo.GetActiveTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active tokens: %w", err)
	}

	refs := make([]chain.TokenRef, 0, len(tokens))
	for _, t := range tokens {
		refs = append(refs, chain.TokenRef{
			Symbol:   t.Symbol,
			Contract: t.ContractAddress,
			Native:   t.Native,
			Decimals: t.Decimals,
			PriceUSD: t.PriceUSD,
		})
	}

	return s.reader.Balances(ctx, address, refs)
}

// GetTransaction returns one ledger row owned by the account.
func (s *Sendr) GetTransaction(ctx context.Context, accountID string, id string) (repository.Transaction, error) {
	wallet, err := s.repo.GetWalletByAccountID(ctx, accountID)
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("get wallet: %w", err)
	}

	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return repository.Transaction{}, err
	}
	if tx.FromAddress != wallet.Address && tx.ToAddress != wallet.Address {
		return repository.Transaction{}, repository.ErrTransactionNotFound
	}
	return tx, nil
}

// FinalizeFromChain records the verdict of the external confirmation source.
// Repeated or late verdicts on a settled row are absorbed by the ledger's
// transition rules.
func (s *Sendr) FinalizeFromChain(ctx context.Context, chainTxID string, success bool) error {
	tx, err := s.repo.GetTransactionByChainID(ctx, chainTxID)
	if err != nil {
		return fmt.Errorf("find transaction for chain tx %s: %w", chainTxID, err)
	}

	status := repository.StatusConfirmed
	if !success {
		status = repository.StatusFailed
	}

	if err := s.repo.Finalize(ctx, tx.ID, status, &chainTxID); err != nil {
		return fmt.Errorf("finalize transaction %s: %w", tx.ID, err)
	}

	s.logs.Infow("transaction finalized", "transaction", tx.ID, "chain_tx", chainTxID, "status", status)

	settled, err := s.repo.GetTransaction(ctx, tx.ID)
	if err != nil {
		settled = tx
		settled.Status = status
	}
	if notifyErr := s.notifier.TransactionFinalized(ctx, settled); notifyErr != nil {
		s.logs.Errorw("notification delivery failed", "transaction", tx.ID, "error", notifyErr)
	}
	return nil
}

// quote assembles a fee breakdown from live prices and the current gas quote.
// Feed failures fall back to the last price recorded on the token row.
func (s *Sendr) quote(ctx context.Context, token repository.Token, amount decimal.Decimal, international bool) (fee.Breakdown, error) {
	tokenPrice, err := s.prices.PriceUSD(ctx, token.Symbol)
	if err != nil {
		s.logs.Warnw("price feed miss, using stored token price", "token", token.Symbol, "error", err)
		tokenPrice = token.PriceUSD
	}
	if !tokenPrice.IsPositive() {
		return fee.Breakdown{}, fmt.Errorf("no usable USD price for %s", token.Symbol)
	}

	nativePrice, err := s.prices.PriceUSD(ctx, s.nativeSymbol)
	if err != nil {
		return fee.Breakdown{}, fmt.Errorf("get native token price: %w", err)
	}

	gasQuote := s.reader.GasPrice(ctx)
	if gasQuote.Fallback {
		s.logs.Warnw("gas price quote fell back to configured default")
	}

	return s.fees.CalculateTotalFee(fee.CalculateParams{
		Amount:         amount,
		NativeTransfer: token.Native,
		TokenDecimals:  token.Decimals,
		International:  international,
		TokenPriceUSD:  tokenPrice,
		NativePriceUSD: nativePrice,
		GasPriceWei:    decimal.NewFromBigInt(gasQuote.PriceWei, 0),
	}), nil
}

// recordAttemptFailure maps an orchestrator error onto the ledger. A timeout
// means the submission outcome is unknown, so the row is parked for
// reconciliation rather than declared failed.
func (s *Sendr) recordAttemptFailure(ctx context.Context, id string, sendErr error) string {
	if errors.Is(sendErr, chain.ErrSubmissionTimeout) {
		if err := s.repo.MarkReconciling(ctx, id, sendErr.Error()); err != nil {
			s.logs.Errorw("failed to mark transaction reconciling", "transaction", id, "error", err)
		}
		observability.IncrementAnomaly("ambiguous_submission")
		return repository.StatusReconciling
	}

	if errors.Is(sendErr, relay.ErrRelayerUnderfunded) {
		s.logs.Errorw("relayer underfunded, sponsored sends unavailable",
			"severity", "high",
			"transaction", id)
	}

	if err := s.repo.FinalizeFailed(ctx, id, sendErr.Error()); err != nil {
		s.logs.Errorw("failed to record transaction failure", "transaction", id, "error", err)
	}
	return repository.StatusFailed
}
