package relay_test

import (
	"context"
	"errors"
	"math/big"

	"sendr/internal/chain"
	"sendr/internal/relay"
	"sendr/internal/relay/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// well-known throwaway development keys, never funded anywhere real
const (
	relayerKeyHex = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	senderKeyHex  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	senderAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

var _ = Describe("Orchestrator", func() {
	var (
		fakeChain *fake.Chain
		fakeKeys  *fake.KeyStore
		orch      *relay.Orchestrator
		ctx       context.Context
		fakeErr   error

		req              relay.Request
		gasPrice         *big.Int
		recordedAdvances []string

		result relay.Result
		err    error
	)

	BeforeEach(func() {
		fakeChain = new(fake.Chain)
		fakeKeys = new(fake.KeyStore)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		recordedAdvances = nil

		var newErr error
		orch, newErr = relay.NewOrchestrator(zap.NewNop().Sugar(), fakeChain, fakeKeys, relay.Config{
			RelayerKeyHex:     relayerKeyHex,
			GasMargin:         decimal.RequireFromString("1.3"),
			NativeTransferGas: 21000,
			TokenTransferGas:  100000,
		})
		Expect(newErr).NotTo(HaveOccurred())

		gasPrice = big.NewInt(20_000_000_000) // 20 gwei
		fakeChain.GasPriceReturns(chain.GasQuote{PriceWei: gasPrice})
		fakeKeys.DecryptReturns([]byte(senderKeyHex), nil)

		dummyTx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, gasPrice, nil)
		fakeChain.SignNativeTransferReturns(dummyTx, nil)
		fakeChain.SignTokenTransferReturns(dummyTx, nil)

		req = relay.Request{
			SenderAddress:    senderAddress,
			EncryptedKey:     "sealed-key",
			RecipientAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
			Amount:           decimal.NewFromInt(25),
			Token: relay.TokenInfo{
				Symbol:   "USDC",
				Contract: "0x41E94Eb019C0762f9BFcf9Fb1E58725BfB0e7582",
				Decimals: 6,
			},
			RecordAdvance: func(_ context.Context, advanceTxID string) error {
				recordedAdvances = append(recordedAdvances, advanceTxID)
				return nil
			},
		}
	})

	JustBeforeEach(func() {
		result, err = orch.Send(ctx, req)
	})

	When("the sender can cover their own gas", func() {
		BeforeEach(func() {
			// token transfer cost: 100000 gas * 20 gwei = 2e15 wei, exactly covered
			fakeChain.NativeBalanceReturns(big.NewInt(2_000_000_000_000_000), nil)
			fakeChain.PendingNonceReturns(3, nil)
			fakeChain.SubmitReturns("0xtransfer", nil)
		})

		It("submits directly without an advance", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.State).To(Equal(relay.StateSucceeded))
			Expect(result.Sponsored).To(BeFalse())
			Expect(result.AdvanceTxID).To(BeEmpty())
			Expect(result.ChainTxID).To(Equal("0xtransfer"))

			Expect(fakeChain.SubmitCallCount()).To(Equal(1))
			Expect(fakeChain.SignNativeTransferCallCount()).To(Equal(0))
			Expect(recordedAdvances).To(BeEmpty())

			params := fakeChain.SignTokenTransferArgsForCall(0)
			Expect(params.Nonce).To(Equal(uint64(3)))
			Expect(params.AmountBase).To(Equal(big.NewInt(25_000_000)))
			Expect(params.Contract).To(Equal(req.Token.Contract))
		})
	})

	When("the sender balance falls short", func() {
		BeforeEach(func() {
			fakeChain.NativeBalanceReturnsOnCall(0, big.NewInt(0), nil)                         // sender
			fakeChain.NativeBalanceReturnsOnCall(1, big.NewInt(1_000_000_000_000_000_000), nil) // relayer
			fakeChain.PendingNonceReturnsOnCall(0, 7, nil)                                      // relayer
			fakeChain.PendingNonceReturnsOnCall(1, 3, nil)                                      // sender
			fakeChain.SubmitReturnsOnCall(0, "0xadvance", nil)
			fakeChain.SubmitReturnsOnCall(1, "0xtransfer", nil)
		})

		It("advances gas before submitting the transfer", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.State).To(Equal(relay.StateSucceeded))
			Expect(result.Sponsored).To(BeTrue())
			Expect(result.AdvanceTxID).To(Equal("0xadvance"))
			Expect(result.ChainTxID).To(Equal("0xtransfer"))

			Expect(fakeChain.SubmitCallCount()).To(Equal(2))

			// advance: (21000+100000) * 20 gwei * 1.3 margin
			advance := fakeChain.SignNativeTransferArgsForCall(0)
			Expect(advance.To).To(Equal(senderAddress))
			Expect(advance.AmountWei).To(Equal(big.NewInt(3_146_000_000_000_000)))
			Expect(advance.Nonce).To(Equal(uint64(7)))
			Expect(advance.GasLimit).To(Equal(uint64(21000)))

			transfer := fakeChain.SignTokenTransferArgsForCall(0)
			Expect(transfer.Nonce).To(Equal(uint64(3)))
		})

		It("records the advance before the transfer is submitted", func() {
			Expect(recordedAdvances).To(Equal([]string{"0xadvance"}))
		})

		When("the advance record callback fails", func() {
			BeforeEach(func() {
				req.RecordAdvance = func(context.Context, string) error {
					return fakeErr
				}
			})

			It("still submits the transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.SubmitCallCount()).To(Equal(2))
			})
		})

		When("the relayer is underfunded", func() {
			BeforeEach(func() {
				fakeChain.NativeBalanceReturnsOnCall(1, big.NewInt(1), nil)
			})

			It("fails before submitting anything", func() {
				Expect(err).To(MatchError(relay.ErrRelayerUnderfunded))
				Expect(result.State).To(Equal(relay.StateFailed))
				Expect(fakeChain.SubmitCallCount()).To(Equal(0))
			})
		})

		When("the advance submission fails", func() {
			BeforeEach(func() {
				fakeChain.SubmitReturnsOnCall(0, "", fakeErr)
			})

			It("fails without submitting the transfer", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(result.State).To(Equal(relay.StateFailed))
				Expect(fakeChain.SubmitCallCount()).To(Equal(1))
				Expect(recordedAdvances).To(BeEmpty())
			})
		})
	})

	When("the sender balance cannot be read", func() {
		BeforeEach(func() {
			fakeChain.NativeBalanceReturnsOnCall(0, nil, fakeErr)
			fakeChain.NativeBalanceReturnsOnCall(1, big.NewInt(1_000_000_000_000_000_000), nil)
			fakeChain.SubmitReturnsOnCall(0, "0xadvance", nil)
			fakeChain.SubmitReturnsOnCall(1, "0xtransfer", nil)
		})

		It("assumes an empty balance and sponsors the send", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Sponsored).To(BeTrue())
		})
	})

	When("the recipient equals the sender", func() {
		BeforeEach(func() {
			req.RecipientAddress = senderAddress
		})

		It("rejects the transfer untouched", func() {
			Expect(err).To(MatchError(relay.ErrSelfTransfer))
			Expect(fakeChain.GasPriceCallCount()).To(Equal(0))
			Expect(fakeChain.SubmitCallCount()).To(Equal(0))
		})
	})

	When("the sender key cannot be decrypted", func() {
		BeforeEach(func() {
			fakeChain.NativeBalanceReturns(big.NewInt(2_000_000_000_000_000), nil)
			fakeKeys.DecryptReturns(nil, fakeErr)
		})

		It("fails without submitting", func() {
			Expect(err).To(MatchError(fakeErr))
			Expect(fakeChain.SubmitCallCount()).To(Equal(0))
		})
	})

	When("the transfer submission times out", func() {
		BeforeEach(func() {
			fakeChain.NativeBalanceReturns(big.NewInt(2_000_000_000_000_000), nil)
			fakeChain.SubmitReturns("", chain.ErrSubmissionTimeout)
		})

		It("propagates the ambiguous outcome", func() {
			Expect(err).To(MatchError(chain.ErrSubmissionTimeout))
			Expect(result.State).To(Equal(relay.StateFailed))
		})
	})

	When("the transfer is native", func() {
		BeforeEach(func() {
			req.Token = relay.TokenInfo{Symbol: "POL", Native: true, Decimals: 18}
			req.Amount = decimal.RequireFromString("0.5")
			// native transfer cost: 21000 * 20 gwei
			fakeChain.NativeBalanceReturns(big.NewInt(420_000_000_000_000), nil)
			fakeChain.PendingNonceReturns(3, nil)
			fakeChain.SubmitReturns("0xtransfer", nil)
		})

		It("signs a native transfer in wei", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeChain.SignTokenTransferCallCount()).To(Equal(0))

			params := fakeChain.SignNativeTransferArgsForCall(0)
			Expect(params.To).To(Equal(req.RecipientAddress))
			Expect(params.AmountWei).To(Equal(big.NewInt(500_000_000_000_000_000)))
			Expect(params.GasLimit).To(Equal(uint64(21000)))
		})
	})
})
