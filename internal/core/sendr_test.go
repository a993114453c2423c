package core_test

import (
	"context"
	"errors"
	"math/big"

	"sendr/internal/chain"
	"sendr/internal/core"
	"sendr/internal/core/fake"
	"sendr/internal/fee"
	"sendr/internal/relay"
	"sendr/internal/repository"
	"sendr/internal/resolver"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Sendr", func() {
	var (
		fakeRepo     *fake.Repository
		fakeResolver *fake.RecipientResolver
		fakeRelayer  *fake.Relayer
		fakePrices   *fake.PriceFeed
		fakeReader   *fake.ChainReader
		fakeNotifier *fake.Notifier
		service      *core.Sendr
		ctx          context.Context
		fakeErr      error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeResolver = new(fake.RecipientResolver)
		fakeRelayer = new(fake.Relayer)
		fakePrices = new(fake.PriceFeed)
		fakeReader = new(fake.ChainReader)
		fakeNotifier = new(fake.Notifier)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		engine := fee.NewEngine(fee.Policy{
			DomesticRate:      decimal.RequireFromString("0.01"),
			InternationalRate: decimal.RequireFromString("0.02"),
			MinPlatformFeeUSD: decimal.RequireFromString("0.10"),
			MaxPlatformFeeUSD: decimal.RequireFromString("50.00"),
			FreeThresholdUSD:  decimal.RequireFromString("1.00"),
			NativeTransferGas: 21000,
			TokenTransferGas:  100000,
			SponsorGas:        true,
		})

		service = core.NewSendr(
			zap.NewNop().Sugar(),
			fakeRepo,
			fakeResolver,
			engine,
			fakeRelayer,
			fakePrices,
			fakeReader,
			fakeNotifier,
			"POL")
	})

	Describe("Send", func() {
		var (
			msg     core.SendMessage
			receipt core.SendReceipt
			err     error
		)

		BeforeEach(func() {
			msg = core.SendMessage{
				AccountID:   "acc-1",
				Recipient:   "maria@sendr",
				Amount:      decimal.NewFromInt(500),
				TokenSymbol: "USDC",
			}

			fakeRepo.GetWalletByAccountIDReturns(repository.Wallet{
				AccountID:    "acc-1",
				Address:      "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
				EncryptedKey: "sealed-key",
			}, nil)
			fakeRepo.GetTokenBySymbolReturns(repository.Token{
				Symbol:          "USDC",
				ContractAddress: "0x41E94Eb019C0762f9BFcf9Fb1E58725BfB0e7582",
				Decimals:        6,
				PriceUSD:        decimal.NewFromInt(1),
				Active:          true,
			}, nil)
			fakeRepo.GetAccountByIDReturns(repository.Account{
				ID:      "acc-1",
				Country: "US",
			}, nil)
			fakeResolver.ResolveReturns(resolver.Resolved{
				Address:   "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
				AccountID: "acc-2",
				Country:   "US",
				Method:    resolver.KindAlias,
			}, nil)
			fakePrices.PriceUSDReturnsOnCall(0, decimal.NewFromInt(1), nil)             // USDC
			fakePrices.PriceUSDReturnsOnCall(1, decimal.RequireFromString("0.50"), nil) // POL
			fakeReader.GasPriceReturns(chain.GasQuote{PriceWei: big.NewInt(20_000_000_000)})
			fakeRepo.OpenTransactionCalls(func(_ context.Context, tx repository.Transaction) (repository.Transaction, error) {
				tx.ID = "tx-1"
				tx.Status = repository.StatusPending
				return tx, nil
			})
			fakeRelayer.SendReturns(relay.Result{
				ChainTxID: "0xtransfer",
				Sponsored: true,
				State:     relay.StateSucceeded,
			}, nil)
			fakeRepo.AttachChainIDReturns(nil)
		})

		JustBeforeEach(func() {
			receipt, err = service.Send(ctx, msg)
		})

		When("everything succeeds", func() {
			It("opens a ledger row and hands off to the relayer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.TransactionID).To(Equal("tx-1"))
				Expect(receipt.ChainTxID).To(Equal("0xtransfer"))
				Expect(receipt.Status).To(Equal(repository.StatusPending))
				Expect(receipt.Sponsored).To(BeTrue())

				Expect(fakeRepo.OpenTransactionCallCount()).To(Equal(1))
				_, row := fakeRepo.OpenTransactionArgsForCall(0)
				Expect(row.FromAddress).To(Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
				Expect(row.ToAddress).To(Equal("0x8ba1f109551bD432803012645Ac136ddd64DBA72"))
				Expect(row.International).To(BeFalse())
				Expect(row.TransferMethod).To(Equal("alias"))
				// domestic 1% of $500
				Expect(row.PlatformFee.Equal(decimal.NewFromInt(5))).To(BeTrue())

				Expect(fakeRelayer.SendCallCount()).To(Equal(1))
				_, relayReq := fakeRelayer.SendArgsForCall(0)
				Expect(relayReq.SenderAddress).To(Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
				Expect(relayReq.Token.Symbol).To(Equal("USDC"))
				Expect(relayReq.RecordAdvance).NotTo(BeNil())

				Expect(fakeRepo.AttachChainIDCallCount()).To(Equal(1))
				_, id, chainTxID := fakeRepo.AttachChainIDArgsForCall(0)
				Expect(id).To(Equal("tx-1"))
				Expect(chainTxID).To(Equal("0xtransfer"))
			})

			It("wires the advance callback to the ledger", func() {
				_, relayReq := fakeRelayer.SendArgsForCall(0)
				Expect(relayReq.RecordAdvance(ctx, "0xadvance")).To(Succeed())

				Expect(fakeRepo.AttachAdvanceIDCallCount()).To(Equal(1))
				_, id, advanceTxID := fakeRepo.AttachAdvanceIDArgsForCall(0)
				Expect(id).To(Equal("tx-1"))
				Expect(advanceTxID).To(Equal("0xadvance"))
			})
		})

		When("the countries differ", func() {
			BeforeEach(func() {
				fakeResolver.ResolveReturns(resolver.Resolved{
					Address: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
					Country: "NG",
					Method:  resolver.KindPhone,
				}, nil)
			})

			It("charges the international rate", func() {
				Expect(err).NotTo(HaveOccurred())

				_, row := fakeRepo.OpenTransactionArgsForCall(0)
				Expect(row.International).To(BeTrue())
				// international 2% of $500
				Expect(row.PlatformFee.Equal(decimal.NewFromInt(10))).To(BeTrue())
			})
		})

		When("the recipient cannot be resolved", func() {
			BeforeEach(func() {
				fakeResolver.ResolveReturns(resolver.Resolved{}, resolver.ErrUnknownAlias)
			})

			It("fails before any ledger write", func() {
				Expect(err).To(MatchError(resolver.ErrUnknownAlias))
				Expect(fakeRepo.OpenTransactionCallCount()).To(Equal(0))
				Expect(fakeRelayer.SendCallCount()).To(Equal(0))
			})
		})

		When("the sender wallet is disabled", func() {
			BeforeEach(func() {
				fakeRepo.GetWalletByAccountIDReturns(repository.Wallet{
					AccountID: "acc-1",
					Disabled:  true,
				}, nil)
			})

			It("rejects the send", func() {
				Expect(err).To(MatchError(core.ErrWalletDisabled))
				Expect(fakeRepo.OpenTransactionCallCount()).To(Equal(0))
			})
		})

		When("the token is inactive", func() {
			BeforeEach(func() {
				fakeRepo.GetTokenBySymbolReturns(repository.Token{
					Symbol: "USDC",
					Active: false,
				}, nil)
			})

			It("rejects the send", func() {
				Expect(err).To(MatchError(core.ErrTokenInactive))
				Expect(fakeRepo.OpenTransactionCallCount()).To(Equal(0))
			})
		})

		When("the price feed misses", func() {
			BeforeEach(func() {
				fakePrices.PriceUSDReturnsOnCall(0, decimal.Decimal{}, fakeErr)
			})

			It("falls back to the stored token price", func() {
				Expect(err).NotTo(HaveOccurred())

				_, row := fakeRepo.OpenTransactionArgsForCall(0)
				Expect(row.PlatformFee.Equal(decimal.NewFromInt(5))).To(BeTrue())
			})
		})

		When("the relayer submission times out", func() {
			BeforeEach(func() {
				fakeRelayer.SendReturns(relay.Result{State: relay.StateFailed}, chain.ErrSubmissionTimeout)
			})

			It("parks the row for reconciliation instead of failing it", func() {
				Expect(err).To(MatchError(chain.ErrSubmissionTimeout))
				Expect(receipt.Status).To(Equal(repository.StatusReconciling))

				Expect(fakeRepo.MarkReconcilingCallCount()).To(Equal(1))
				_, id, _ := fakeRepo.MarkReconcilingArgsForCall(0)
				Expect(id).To(Equal("tx-1"))
				Expect(fakeRepo.FinalizeFailedCallCount()).To(Equal(0))
			})
		})

		When("the relayer is underfunded", func() {
			BeforeEach(func() {
				fakeRelayer.SendReturns(relay.Result{State: relay.StateFailed}, relay.ErrRelayerUnderfunded)
			})

			It("fails the row", func() {
				Expect(err).To(MatchError(relay.ErrRelayerUnderfunded))
				Expect(receipt.Status).To(Equal(repository.StatusFailed))

				Expect(fakeRepo.FinalizeFailedCallCount()).To(Equal(1))
				_, id, reason := fakeRepo.FinalizeFailedArgsForCall(0)
				Expect(id).To(Equal("tx-1"))
				Expect(reason).To(ContainSubstring("underfunded"))
			})
		})

		When("the chain tx id lands on another row", func() {
			BeforeEach(func() {
				fakeRepo.AttachChainIDReturns(repository.ErrDuplicateChainID)
			})

			It("surfaces the anomaly", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateChainID))
			})
		})
	})

	Describe("EstimateFee", func() {
		var (
			estimate core.FeeEstimate
			err      error
		)

		BeforeEach(func() {
			fakeRepo.GetTokenBySymbolReturns(repository.Token{
				Symbol:   "USDC",
				Decimals: 6,
				PriceUSD: decimal.NewFromInt(1),
				Active:   true,
			}, nil)
			fakeRepo.GetAccountByIDReturns(repository.Account{ID: "acc-1", Country: "US"}, nil)
			fakeResolver.ResolveReturns(resolver.Resolved{
				Address: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
				Country: "US",
				Method:  resolver.KindAddress,
			}, nil)
			fakePrices.PriceUSDReturnsOnCall(0, decimal.NewFromInt(1), nil)
			fakePrices.PriceUSDReturnsOnCall(1, decimal.RequireFromString("0.50"), nil)
			fakeReader.GasPriceReturns(chain.GasQuote{PriceWei: big.NewInt(20_000_000_000)})
		})

		JustBeforeEach(func() {
			estimate, err = service.EstimateFee(ctx, core.EstimateMessage{
				AccountID:   "acc-1",
				Recipient:   "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
				Amount:      decimal.NewFromInt(500),
				TokenSymbol: "USDC",
			})
		})

		It("quotes without opening a ledger row", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(estimate.Fees.PlatformFee.Equal(decimal.NewFromInt(5))).To(BeTrue())
			Expect(estimate.Fees.Sponsored).To(BeTrue())
			Expect(estimate.Fees.GasFee.IsZero()).To(BeTrue())

			Expect(fakeRepo.OpenTransactionCallCount()).To(Equal(0))
			Expect(fakeRelayer.SendCallCount()).To(Equal(0))
		})
	})

	Describe("FinalizeFromChain", func() {
		var err error

		BeforeEach(func() {
			fakeRepo.GetTransactionByChainIDReturns(repository.Transaction{
				ID:     "tx-1",
				Status: repository.StatusPending,
			}, nil)
			fakeRepo.FinalizeReturns(nil)
			fakeRepo.GetTransactionReturns(repository.Transaction{
				ID:     "tx-1",
				Status: repository.StatusConfirmed,
			}, nil)
		})

		JustBeforeEach(func() {
			err = service.FinalizeFromChain(ctx, "0xtransfer", true)
		})

		It("confirms the row and notifies", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.FinalizeCallCount()).To(Equal(1))
			_, id, status, chainTxID := fakeRepo.FinalizeArgsForCall(0)
			Expect(id).To(Equal("tx-1"))
			Expect(status).To(Equal(repository.StatusConfirmed))
			Expect(*chainTxID).To(Equal("0xtransfer"))

			Expect(fakeNotifier.TransactionFinalizedCallCount()).To(Equal(1))
			_, notified := fakeNotifier.TransactionFinalizedArgsForCall(0)
			Expect(notified.Status).To(Equal(repository.StatusConfirmed))
		})

		When("the notifier fails", func() {
			BeforeEach(func() {
				fakeNotifier.TransactionFinalizedReturns(fakeErr)
			})

			It("never affects the finalization", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("no row carries the chain tx id", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionByChainIDReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("returns transaction not found", func() {
				Expect(err).To(MatchError(repository.ErrTransactionNotFound))
				Expect(fakeRepo.FinalizeCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetTransaction", func() {
		BeforeEach(func() {
			fakeRepo.GetWalletByAccountIDReturns(repository.Wallet{
				AccountID: "acc-1",
				Address:   "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
			}, nil)
		})

		It("returns a row the account participates in", func() {
			fakeRepo.GetTransactionReturns(repository.Transaction{
				ID:          "tx-1",
				FromAddress: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
			}, nil)

			tx, err := service.GetTransaction(ctx, "acc-1", "tx-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.ID).To(Equal("tx-1"))
		})

		It("hides rows belonging to other wallets", func() {
			fakeRepo.GetTransactionReturns(repository.Transaction{
				ID:          "tx-1",
				FromAddress: "0xother",
				ToAddress:   "0xsomeone",
			}, nil)

			_, err := service.GetTransaction(ctx, "acc-1", "tx-1")
			Expect(err).To(MatchError(repository.ErrTransactionNotFound))
		})
	})

	Describe("Balances", func() {
		BeforeEach(func() {
			fakeRepo.GetActiveTokensReturns([]repository.Token{
				{Symbol: "POL", Native: true, Decimals: 18, PriceUSD: decimal.RequireFromString("0.50")},
				{Symbol: "USDC", ContractAddress: "0x41E94Eb019C0762f9BFcf9Fb1E58725BfB0e7582", Decimals: 6, PriceUSD: decimal.NewFromInt(1)},
			}, nil)
			fakeReader.BalancesReturns([]chain.Balance{
				{Symbol: "POL", Amount: decimal.NewFromInt(2), AmountUSD: decimal.NewFromInt(1)},
			}, nil)
		})

		It("queries all active tokens for the address", func() {
			balances, err := service.Balances(ctx, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
			Expect(err).NotTo(HaveOccurred())
			Expect(balances).To(HaveLen(1))

			_, address, refs := fakeReader.BalancesArgsForCall(0)
			Expect(address).To(Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
			Expect(refs).To(HaveLen(2))
			Expect(refs[0].Native).To(BeTrue())
		})
	})
})
