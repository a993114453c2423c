package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var ErrSubmissionTimeout error = errors.New("submission timed out")
var ErrSubmissionRejected error = errors.New("submission rejected by node")

// Minimal ERC-20 surface: balance reads and transfers.
const erc20ABIJSON = `[
	{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"balance","type":"uint256"}],"type":"function"},
	{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"}
]`

var erc20ABI = mustParseABI(erc20ABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse erc20 abi: %s", err))
	}
	return parsed
}

// NodeService wraps the raw node client with the balance, gas, nonce and
// submission primitives the send path needs. All network calls are bounded
// by timeouts; gas price queries degrade to a configured fallback.
type NodeService struct {
	client           EthClient
	signer           types.Signer
	fallbackGasPrice *big.Int
	callTimeout      time.Duration
	submitTimeout    time.Duration
	logs             *zap.SugaredLogger
}

func NewNodeService(logger *zap.SugaredLogger, client EthClient, chainID int64, fallbackGasPriceWei int64, callTimeout, submitTimeout time.Duration) *NodeService {
	return &NodeService{
		client:           client,
		signer:           types.LatestSignerForChainID(big.NewInt(chainID)),
		fallbackGasPrice: big.NewInt(fallbackGasPriceWei),
		callTimeout:      callTimeout,
		submitTimeout:    submitTimeout,
		logs:             logger,
	}
}

func (s *NodeService) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	balance, err := s.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("get native balance: %w", err)
	}
	return balance, nil
}

func (s *NodeService) TokenBalance(ctx context.Context, contract, address string) (*big.Int, error) {
	data, err := erc20ABI.Pack("balanceOf", common.HexToAddress(address))
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf call: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	contractAddr := common.HexToAddress(contract)
	out, err := s.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call balanceOf: %w", err)
	}

	results, err := erc20ABI.Unpack("balanceOf", out)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf result: %w", err)
	}
	balance, ok := results[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf result type %T", results[0])
	}
	return balance, nil
}

// Balances fetches all token balances for an address concurrently.
func (s *NodeService) Balances(ctx context.Context, address string, tokens []TokenRef) ([]Balance, error) {
	resultsChan := make(chan balanceResult)

	var wg sync.WaitGroup
	for _, token := range tokens {
		wg.Add(1)
		go func(token TokenRef) {
			defer wg.Done()
			res := s.getBalance(ctx, address, token)
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching %s balance: %w", token.Symbol, res.Error)
			}
			resultsChan <- res
		}(token)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var balances []Balance
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		balances = append(balances, result.Balance)
	}

	return balances, aggrErr
}

func (s *NodeService) getBalance(ctx context.Context, address string, token TokenRef) balanceResult {
	var base *big.Int
	var err error
	if token.Native {
		base, err = s.NativeBalance(ctx, address)
	} else {
		base, err = s.TokenBalance(ctx, token.Contract, address)
	}
	if err != nil {
		return balanceResult{Error: err}
	}

	amount := FromBaseUnits(base, token.Decimals)
	return balanceResult{
		Balance: Balance{
			Symbol:    token.Symbol,
			Amount:    amount,
			AmountUSD: amount.Mul(token.PriceUSD),
		},
	}
}

// GasPrice samples the current gas price. On any failure it returns the
// configured fallback so a flaky node never blocks a send indefinitely.
func (s *NodeService) GasPrice(ctx context.Context) GasQuote {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	price, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		s.logs.Warnw("gas price query failed, using fallback", "error", err, "fallback_wei", s.fallbackGasPrice)
		return GasQuote{PriceWei: new(big.Int).Set(s.fallbackGasPrice), Fallback: true}
	}
	return GasQuote{PriceWei: price}
}

// PendingNonce returns the next nonce including not-yet-confirmed
// transactions, so dependent submissions can be interleaved without waiting
// for confirmations.
func (s *NodeService) PendingNonce(ctx context.Context, address string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	nonce, err := s.client.PendingNonceAt(ctx, common.HexToAddress(address))
	if err != nil {
		return 0, fmt.Errorf("get pending nonce: %w", err)
	}
	return nonce, nil
}

func (s *NodeService) Nonce(ctx context.Context, address string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	nonce, err := s.client.NonceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, fmt.Errorf("get nonce: %w", err)
	}
	return nonce, nil
}

func (s *NodeService) SignNativeTransfer(p NativeTransferParams) (*types.Transaction, error) {
	to := common.HexToAddress(p.To)
	tx, err := types.SignNewTx(p.Key, s.signer, &types.LegacyTx{
		Nonce:    p.Nonce,
		To:       &to,
		Value:    p.AmountWei,
		Gas:      p.GasLimit,
		GasPrice: p.GasPriceWei,
	})
	if err != nil {
		return nil, fmt.Errorf("sign native transfer: %w", err)
	}
	return tx, nil
}

func (s *NodeService) SignTokenTransfer(p TokenTransferParams) (*types.Transaction, error) {
	data, err := erc20ABI.Pack("transfer", common.HexToAddress(p.To), p.AmountBase)
	if err != nil {
		return nil, fmt.Errorf("pack transfer call: %w", err)
	}

	contract := common.HexToAddress(p.Contract)
	tx, err := types.SignNewTx(p.Key, s.signer, &types.LegacyTx{
		Nonce:    p.Nonce,
		To:       &contract,
		Value:    big.NewInt(0),
		Gas:      p.GasLimit,
		GasPrice: p.GasPriceWei,
		Data:     data,
	})
	if err != nil {
		return nil, fmt.Errorf("sign token transfer: %w", err)
	}
	return tx, nil
}

// Submit pushes a signed transaction into the mempool and returns its hash.
// Acceptance by the node is the success criterion here; confirmation is
// observed elsewhere. A timeout is ambiguous: the transaction may or may not
// have landed, so callers must not blindly resubmit.
func (s *NodeService) Submit(ctx context.Context, tx *types.Transaction) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	if err := s.client.SendTransaction(ctx, tx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", ErrSubmissionTimeout, err)
		}
		return "", fmt.Errorf("%w: %s", ErrSubmissionRejected, err)
	}

	return tx.Hash().Hex(), nil
}
