package payload_test

import (
	"net/http/httptest"
	"strings"

	"sendr/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("SendRequest", func() {
	var request payload.SendRequest

	BeforeEach(func() {
		request = payload.SendRequest{
			Recipient: "@alice.sendr",
			Amount:    "12.50",
			Token:     "USDC",
		}
	})

	It("accepts a complete request", func() {
		Expect(request.Validate()).To(Succeed())
	})

	It("requires a recipient", func() {
		request.Recipient = ""
		Expect(request.Validate()).To(MatchError(ContainSubstring("recipient")))
	})

	It("requires a token", func() {
		request.Token = ""
		Expect(request.Validate()).To(MatchError(ContainSubstring("token")))
	})

	DescribeTable("rejects bad amounts",
		func(amount string) {
			request.Amount = amount
			Expect(request.Validate()).To(MatchError(ContainSubstring("amount")))
		},
		Entry("empty", ""),
		Entry("not a number", "twelve"),
		Entry("zero", "0"),
		Entry("negative", "-3.50"),
	)

	Describe("ToMessage", func() {
		It("carries the parsed amount and account", func() {
			msg := request.ToMessage("acc-1")
			Expect(msg.AccountID).To(Equal("acc-1"))
			Expect(msg.Recipient).To(Equal("@alice.sendr"))
			Expect(msg.TokenSymbol).To(Equal("USDC"))
			Expect(msg.Amount.Equal(decimal.RequireFromString("12.50"))).To(BeTrue())
		})
	})
})

var _ = Describe("ConfirmationRequest", func() {
	It("accepts a settled callback", func() {
		success := true
		request := payload.ConfirmationRequest{ChainTxID: "0xabc", Success: &success}
		Expect(request.Validate()).To(Succeed())
	})

	It("requires the chain transaction id", func() {
		success := false
		request := payload.ConfirmationRequest{Success: &success}
		Expect(request.Validate()).To(MatchError(ContainSubstring("chain_tx_id")))
	})

	It("requires an explicit outcome", func() {
		request := payload.ConfirmationRequest{ChainTxID: "0xabc"}
		Expect(request.Validate()).To(MatchError(ContainSubstring("success")))
	})
})

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	It("decodes and validates a payload", func() {
		body := `{"recipient":"@alice.sendr","amount":"5","token":"POL"}`
		req := httptest.NewRequest("POST", "/wallet/send", strings.NewReader(body))

		var target payload.SendRequest
		Expect(decoder.DecodeAndValidateJSONPayload(req, &target)).To(Succeed())
		Expect(target.Recipient).To(Equal("@alice.sendr"))
	})

	It("rejects unknown fields", func() {
		body := `{"recipient":"@alice.sendr","amount":"5","token":"POL","memo":"hi"}`
		req := httptest.NewRequest("POST", "/wallet/send", strings.NewReader(body))

		var target payload.SendRequest
		err := decoder.DecodeAndValidateJSONPayload(req, &target)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("rejects malformed json", func() {
		req := httptest.NewRequest("POST", "/wallet/send", strings.NewReader("{"))

		var target payload.SendRequest
		err := decoder.DecodeAndValidateJSONPayload(req, &target)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("surfaces validation failures", func() {
		body := `{"recipient":"","amount":"5","token":"POL"}`
		req := httptest.NewRequest("POST", "/wallet/send", strings.NewReader(body))

		var target payload.SendRequest
		err := decoder.DecodeAndValidateJSONPayload(req, &target)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})
})
