package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"sendr/internal/chain"
	"sendr/internal/core"
	"sendr/internal/http/handler"
	"sendr/internal/http/handler/fake"
	"sendr/internal/http/handler/middleware"
	"sendr/internal/http/payload"
	"sendr/internal/relay"
	"sendr/internal/repository"
	"sendr/internal/resolver"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("WalletHandler", func() {
	var (
		wh            *handler.WalletHandler
		fakeService   *fake.WalletService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	authenticated := func(r *http.Request, accountID string) *http.Request {
		ctx := context.WithValue(r.Context(), middleware.AccountIDKey, accountID)
		ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-1")
		return r.WithContext(ctx)
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.WalletService)
		fakeValidator = new(fake.RequestValidator)

		w = httptest.NewRecorder()
		wh = handler.NewWalletHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleSend", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"recipient":"@alice.sendr","amount":"25","token":"USDC"}`)
			req = authenticated(httptest.NewRequest("POST", "/wallet/send", body), "acc-1")
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			wh.HandleSend(w, req)
		})

		When("the transfer is submitted", func() {
			BeforeEach(func() {
				fakeService.SendReturns(core.SendReceipt{
					TransactionID:    "tx-1",
					ChainTxID:        "0xchain",
					Status:           repository.StatusPending,
					Sponsored:        true,
					RecipientAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
					TransferMethod:   "alias",
				}, nil)
			})

			It("should return 202 with the receipt", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))
				Expect(w.Body.String()).To(ContainSubstring("tx-1"))
				Expect(w.Body.String()).To(ContainSubstring("0xchain"))

				Expect(fakeService.SendCallCount()).To(Equal(1))
				_, msg := fakeService.SendArgsForCall(0)
				Expect(msg.AccountID).To(Equal("acc-1"))
				Expect(msg.Recipient).To(Equal("@alice.sendr"))
				Expect(msg.TokenSymbol).To(Equal("USDC"))
				Expect(msg.Amount.Equal(decimal.NewFromInt(25))).To(BeTrue())
			})
		})

		When("no account is authenticated", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/wallet/send", strings.NewReader(`{}`))
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.SendCallCount()).To(Equal(0))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.SendCallCount()).To(Equal(0))
			})
		})

		When("the recipient cannot be resolved", func() {
			BeforeEach(func() {
				fakeService.SendReturns(core.SendReceipt{}, resolver.ErrUnknownAlias)
			})

			It("should return 422 Unprocessable Entity", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			})
		})

		When("the wallet is disabled", func() {
			BeforeEach(func() {
				fakeService.SendReturns(core.SendReceipt{}, core.ErrWalletDisabled)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the relayer is underfunded", func() {
			BeforeEach(func() {
				fakeService.SendReturns(core.SendReceipt{
					TransactionID: "tx-1",
					Status:        repository.StatusFailed,
				}, relay.ErrRelayerUnderfunded)
			})

			It("should return 503 with the ledger row attached", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(w.Body.String()).To(ContainSubstring("temporarily unavailable"))
				Expect(w.Body.String()).To(ContainSubstring("tx-1"))
			})
		})

		When("the submission outcome is unknown", func() {
			BeforeEach(func() {
				fakeService.SendReturns(core.SendReceipt{
					TransactionID: "tx-1",
					Status:        repository.StatusReconciling,
				}, chain.ErrSubmissionTimeout)
			})

			It("should return 504 and point at reconciliation", func() {
				Expect(w.Code).To(Equal(http.StatusGatewayTimeout))
				Expect(w.Body.String()).To(ContainSubstring("being reconciled"))
				Expect(w.Body.String()).To(ContainSubstring(repository.StatusReconciling))
			})
		})

		When("the node rejects the transaction", func() {
			BeforeEach(func() {
				fakeService.SendReturns(core.SendReceipt{TransactionID: "tx-1"}, chain.ErrSubmissionRejected)
			})

			It("should return 502 Bad Gateway", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.SendReturns(core.SendReceipt{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleEstimateFee", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"recipient":"+359888123456","amount":"100","token":"USDT"}`)
			req = authenticated(httptest.NewRequest("POST", "/wallet/estimate-fee", body), "acc-1")

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			wh.HandleEstimateFee(w, req)
		})

		When("the estimate succeeds", func() {
			BeforeEach(func() {
				fakeService.EstimateFeeReturns(core.FeeEstimate{
					RecipientAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
					TransferMethod:   "phone",
					International:    true,
				}, nil)
			})

			It("should return 200 with the quote", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response handler.Response
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				data, err := json.Marshal(response.Data)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(data)).To(ContainSubstring(`"international":true`))
				Expect(string(data)).To(ContainSubstring(`"transfer_method":"phone"`))
			})
		})

		When("no account is authenticated", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/wallet/estimate-fee", strings.NewReader(`{}`))
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.EstimateFeeCallCount()).To(Equal(0))
			})
		})

		When("the token is unknown", func() {
			BeforeEach(func() {
				fakeService.EstimateFeeReturns(core.FeeEstimate{}, repository.ErrTokenNotFound)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleResolveAddress", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"recipient":"@alice.sendr"}`)
			req = httptest.NewRequest("POST", "/address/resolve", body)

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			wh.HandleResolveAddress(w, req)
		})

		When("the recipient resolves", func() {
			BeforeEach(func() {
				fakeService.ResolveRecipientReturns(resolver.Resolved{
					Address: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
					Method:  resolver.KindAlias,
					Country: "BG",
				}, nil)
			})

			It("should return the address and method", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("0x8ba1f109551bD432803012645Ac136ddd64DBA72"))
				Expect(w.Body.String()).To(ContainSubstring("alias"))

				Expect(fakeService.ResolveRecipientCallCount()).To(Equal(1))
				_, recipient := fakeService.ResolveRecipientArgsForCall(0)
				Expect(recipient).To(Equal("@alice.sendr"))
			})
		})

		When("the recipient is malformed", func() {
			BeforeEach(func() {
				fakeService.ResolveRecipientReturns(resolver.Resolved{}, resolver.ErrInvalidRecipient)
			})

			It("should return 422 Unprocessable Entity", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			})
		})
	})

	Describe("HandleGetBalances", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/wallet/balances/0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", nil)
			req.SetPathValue("address", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
		})

		JustBeforeEach(func() {
			wh.HandleGetBalances(w, req)
		})

		When("balances are fetched successfully", func() {
			BeforeEach(func() {
				fakeService.BalancesReturns([]chain.Balance{
					{Symbol: "POL", Amount: decimal.NewFromInt(2), AmountUSD: decimal.NewFromInt(1)},
					{Symbol: "USDC", Amount: decimal.NewFromInt(50), AmountUSD: decimal.NewFromInt(50)},
				}, nil)
			})

			It("should return the balances", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]map[string][]handler.BalanceView
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["data"]["balances"]).To(HaveLen(2))

				_, address := fakeService.BalancesArgsForCall(0)
				Expect(address).To(Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
			})
		})

		When("the address parameter is empty", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/wallet/balances/", nil)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("address parameter is required"))
				Expect(fakeService.BalancesCallCount()).To(Equal(0))
			})
		})

		When("the chain read fails", func() {
			BeforeEach(func() {
				fakeService.BalancesReturns(nil, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetTransaction", func() {
		BeforeEach(func() {
			req = authenticated(httptest.NewRequest("GET", "/wallet/transactions/tx-1", nil), "acc-1")
			req.SetPathValue("id", "tx-1")
		})

		JustBeforeEach(func() {
			wh.HandleGetTransaction(w, req)
		})

		When("the transaction belongs to the caller", func() {
			BeforeEach(func() {
				confirmed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
				fakeService.GetTransactionReturns(repository.Transaction{
					ID:          "tx-1",
					Status:      repository.StatusConfirmed,
					TokenSymbol: "USDC",
					Amount:      decimal.NewFromInt(25),
					ConfirmedAt: &confirmed,
				}, nil)
			})

			It("should return the transaction", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("tx-1"))
				Expect(w.Body.String()).To(ContainSubstring(repository.StatusConfirmed))

				_, accountID, id := fakeService.GetTransactionArgsForCall(0)
				Expect(accountID).To(Equal("acc-1"))
				Expect(id).To(Equal("tx-1"))
			})
		})

		When("no account is authenticated", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/wallet/transactions/tx-1", nil)
				req.SetPathValue("id", "tx-1")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.GetTransactionCallCount()).To(Equal(0))
			})
		})

		When("the transaction is not found", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleConfirmDelivery", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"chain_tx_id":"0xchain","success":true}`)
			req = httptest.NewRequest("POST", "/internal/confirmations", body)

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			wh.HandleConfirmDelivery(w, req)
		})

		When("the confirmation lands", func() {
			It("should finalize the transaction", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.FinalizeFromChainCallCount()).To(Equal(1))
				_, chainTxID, success := fakeService.FinalizeFromChainArgsForCall(0)
				Expect(chainTxID).To(Equal("0xchain"))
				Expect(success).To(BeTrue())
			})
		})

		When("the verdict is a failure", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/internal/confirmations",
					strings.NewReader(`{"chain_tx_id":"0xchain","success":false}`))
			})

			It("should pass the failure through", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, success := fakeService.FinalizeFromChainArgsForCall(0)
				Expect(success).To(BeFalse())
			})
		})

		When("no ledger row matches the chain transaction", func() {
			BeforeEach(func() {
				fakeService.FinalizeFromChainReturns(repository.ErrTransactionNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.FinalizeFromChainCallCount()).To(Equal(0))
			})
		})
	})
})

var _ = Describe("payload round-trip", func() {
	It("keeps the send payload compatible with the wallet message", func() {
		var req payload.SendRequest
		raw := `{"recipient":"0x8ba1f109551bD432803012645Ac136ddd64DBA72","amount":"0.5","token":"POL"}`
		Expect(json.Unmarshal([]byte(raw), &req)).To(Succeed())
		Expect(req.Validate()).To(Succeed())

		msg := req.ToMessage("acc-9")
		Expect(msg.Amount.Equal(decimal.RequireFromString("0.5"))).To(BeTrue())
		Expect(msg.AccountID).To(Equal("acc-9"))
	})
})
