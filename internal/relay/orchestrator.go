package relay

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"sendr/internal/chain"
	"sendr/internal/keystore"
	"sendr/internal/observability"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrRelayerUnderfunded is operationally fatal: no sponsored send can succeed
// until the relayer account is topped up. Surfaced to callers as a server
// fault, never as a user retry prompt.
var ErrRelayerUnderfunded error = errors.New("relayer account underfunded")

var ErrSelfTransfer error = errors.New("recipient address equals sender address")

// Config carries the orchestrator's operational constants.
type Config struct {
	RelayerKeyHex     string
	GasMargin         decimal.Decimal // multiplier on the advance, e.g. 1.3
	NativeTransferGas uint64
	TokenTransferGas  uint64
}

// Orchestrator decides per send whether the sender pays their own gas or the
// relayer advances it, and submits the value transfer with correct ordering.
//
// The relayer's nonce sequence has a single writer: nonce fetch and advance
// submission happen under one mutex. Sends from the same sender are
// serialized with a per-sender lock so two transfers never race for one
// nonce sequence; sends from different senders proceed fully in parallel.
type Orchestrator struct {
	logs           *zap.SugaredLogger
	chain          Chain
	keys           KeyStore
	relayerKey     *ecdsa.PrivateKey
	relayerAddress string
	margin         decimal.Decimal
	nativeGas      uint64
	tokenGas       uint64

	relayerNonceMu sync.Mutex
	sendersMu      sync.Mutex
	senders        map[string]*sync.Mutex
}

func NewOrchestrator(logger *zap.SugaredLogger, chainService Chain, keys KeyStore, cfg Config) (*Orchestrator, error) {
	relayerKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.RelayerKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse relayer key: %w", err)
	}

	return &Orchestrator{
		logs:           logger,
		chain:          chainService,
		keys:           keys,
		relayerKey:     relayerKey,
		relayerAddress: crypto.PubkeyToAddress(relayerKey.PublicKey).Hex(),
		margin:         cfg.GasMargin,
		nativeGas:      cfg.NativeTransferGas,
		tokenGas:       cfg.TokenTransferGas,
		senders:        make(map[string]*sync.Mutex),
	}, nil
}

func (o *Orchestrator) RelayerAddress() string {
	return o.relayerAddress
}

// Send runs one attempt through the state machine:
// CHECKING -> DIRECT_SUBMIT | (SPONSOR_ADVANCE -> SPONSORED_SUBMIT) -> SUCCEEDED | FAILED.
// It returns as soon as the value transfer is accepted into the mempool;
// confirmation is observed by the external confirmation source. Attempts are
// never retried here: re-submitting a nonce-sequenced operation without
// re-deriving the nonce risks a duplicate transfer.
func (o *Orchestrator) Send(ctx context.Context, req Request) (Result, error) {
	lock := o.senderLock(req.SenderAddress)
	lock.Lock()
	defer lock.Unlock()

	if strings.EqualFold(req.SenderAddress, req.RecipientAddress) {
		return Result{State: StateFailed}, ErrSelfTransfer
	}

	o.logs.Infow("send attempt started",
		"state", StateChecking,
		"sender", req.SenderAddress,
		"token", req.Token.Symbol)

	quote := o.chain.GasPrice(ctx)
	transferGas := o.tokenGas
	if req.Token.Native {
		transferGas = o.nativeGas
	}
	transferCost := new(big.Int).Mul(quote.PriceWei, new(big.Int).SetUint64(transferGas))

	balance, err := o.chain.NativeBalance(ctx, req.SenderAddress)
	if err != nil {
		// conservative guess: an unreadable balance is treated as empty so
		// the attempt proceeds through sponsorship instead of blocking
		o.logs.Warnw("sender balance query failed, assuming empty", "sender", req.SenderAddress, "error", err)
		balance = big.NewInt(0)
	}

	res := Result{}
	if balance.Cmp(transferCost) >= 0 {
		res.State = StateDirectSubmit
		o.logs.Infow("sender covers own gas", "state", res.State, "sender", req.SenderAddress)
	} else {
		res.State = StateSponsorAdvance
		o.logs.Infow("sponsoring gas", "state", res.State, "sender", req.SenderAddress, "relayer", o.relayerAddress)

		advanceTxID, err := o.advanceGas(ctx, req.SenderAddress, quote.PriceWei, transferGas)
		if err != nil {
			return Result{State: StateFailed}, err
		}
		res.AdvanceTxID = advanceTxID
		res.Sponsored = true
		observability.IncrementSponsoredSend()

		if req.RecordAdvance != nil {
			if recErr := req.RecordAdvance(ctx, advanceTxID); recErr != nil {
				// the advance is already on chain; abandoning the transfer
				// now would strand it, so log and continue
				o.logs.Errorw("failed to record sponsorship advance", "advance_tx", advanceTxID, "error", recErr)
			}
		}
		res.State = StateSponsoredSubmit
	}

	chainTxID, err := o.submitTransfer(ctx, req, quote.PriceWei, transferGas)
	if err != nil {
		res.State = StateFailed
		return res, err
	}

	res.ChainTxID = chainTxID
	res.State = StateSucceeded
	o.logs.Infow("send attempt submitted",
		"state", res.State,
		"chain_tx", chainTxID,
		"sponsored", res.Sponsored)
	return res, nil
}

// advanceGas moves exactly the advance amount of native currency from the
// relayer to the sender. Mempool acceptance is enough to proceed: the
// transfer that follows uses the sender's own nonce sequence, which is
// unaffected by the relayer's pending state.
func (o *Orchestrator) advanceGas(ctx context.Context, sender string, gasPrice *big.Int, transferGas uint64) (string, error) {
	totalGas := new(big.Int).SetUint64(o.nativeGas + transferGas)
	needed := new(big.Int).Mul(gasPrice, totalGas)
	advance := decimal.NewFromBigInt(needed, 0).Mul(o.margin).Ceil().BigInt()

	relayerBalance, err := o.chain.NativeBalance(ctx, o.relayerAddress)
	if err != nil {
		return "", fmt.Errorf("query relayer balance: %w", err)
	}
	observability.SetRelayerBalance(relayerBalance)

	if relayerBalance.Cmp(advance) < 0 {
		return "", fmt.Errorf("%w: has %s wei, needs %s wei", ErrRelayerUnderfunded, relayerBalance, advance)
	}

	o.relayerNonceMu.Lock()
	defer o.relayerNonceMu.Unlock()

	nonce, err := o.chain.PendingNonce(ctx, o.relayerAddress)
	if err != nil {
		return "", fmt.Errorf("get relayer nonce: %w", err)
	}

	tx, err := o.chain.SignNativeTransfer(chain.NativeTransferParams{
		To:          sender,
		AmountWei:   advance,
		Nonce:       nonce,
		GasLimit:    o.nativeGas,
		GasPriceWei: gasPrice,
		Key:         o.relayerKey,
	})
	if err != nil {
		return "", fmt.Errorf("sign gas advance: %w", err)
	}

	hash, err := o.chain.Submit(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("submit gas advance: %w", err)
	}

	o.logs.Infow("gas advance submitted", "advance_tx", hash, "amount_wei", advance, "sender", sender)
	return hash, nil
}

// submitTransfer builds, signs and submits the value transfer with the
// sender's next pending nonce. The decrypted key lives only for the duration
// of the signature.
func (o *Orchestrator) submitTransfer(ctx context.Context, req Request, gasPrice *big.Int, gasLimit uint64) (string, error) {
	keyBytes, err := o.keys.Decrypt(req.EncryptedKey)
	if err != nil {
		return "", fmt.Errorf("decrypt sender key: %w", err)
	}
	senderKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(string(keyBytes)), "0x"))
	keystore.Zero(keyBytes)
	if err != nil {
		return "", fmt.Errorf("parse sender key: %w", err)
	}
	defer zeroKey(senderKey)

	// pending nonce: the sponsorship advance may still be in the mempool and
	// the transfer must sequence after any of the sender's own pending txs
	nonce, err := o.chain.PendingNonce(ctx, req.SenderAddress)
	if err != nil {
		return "", fmt.Errorf("get sender nonce: %w", err)
	}

	var tx *types.Transaction
	if req.Token.Native {
		tx, err = o.chain.SignNativeTransfer(chain.NativeTransferParams{
			To:          req.RecipientAddress,
			AmountWei:   chain.ToBaseUnits(req.Amount, req.Token.Decimals),
			Nonce:       nonce,
			GasLimit:    gasLimit,
			GasPriceWei: gasPrice,
			Key:         senderKey,
		})
	} else {
		tx, err = o.chain.SignTokenTransfer(chain.TokenTransferParams{
			Contract:    req.Token.Contract,
			To:          req.RecipientAddress,
			AmountBase:  chain.ToBaseUnits(req.Amount, req.Token.Decimals),
			Nonce:       nonce,
			GasLimit:    gasLimit,
			GasPriceWei: gasPrice,
			Key:         senderKey,
		})
	}
	if err != nil {
		return "", fmt.Errorf("sign transfer: %w", err)
	}

	return o.chain.Submit(ctx, tx)
}

// senderLock returns the mutex serializing sends for one address. Entries are
// never evicted: the map is bounded by the number of wallets that ever send
// through this process, one mutex each.
func (o *Orchestrator) senderLock(address string) *sync.Mutex {
	o.sendersMu.Lock()
	defer o.sendersMu.Unlock()

	key := strings.ToLower(address)
	lock, ok := o.senders[key]
	if !ok {
		lock = &sync.Mutex{}
		o.senders[key] = lock
	}
	return lock
}

func zeroKey(k *ecdsa.PrivateKey) {
	k.D.SetInt64(0)
}
