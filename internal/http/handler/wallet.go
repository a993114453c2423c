package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sendr/internal/chain"
	"sendr/internal/core"
	"sendr/internal/http/handler/middleware"
	"sendr/internal/http/payload"
	"sendr/internal/relay"
	"sendr/internal/repository"
	"sendr/internal/resolver"

	"go.uber.org/zap"
)

var (
	Send            = "POST /wallet/send"
	EstimateFee     = "POST /wallet/estimate-fee"
	ResolveAddress  = "POST /address/resolve"
	GetBalances     = "GET /wallet/balances/{address}"
	GetTransaction  = "GET /wallet/transactions/{id}"
	ConfirmDelivery = "POST /internal/confirmations"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	wallet           WalletService
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		wallet:           walletService,
	}
}

func (h *WalletHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	accountID, ok := accountIDFrom(r)
	if !ok {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "no authenticated account",
		}, http.StatusUnauthorized, requestID)
		return
	}

	var req payload.SendRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not submit transfer",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Send,
			"request_id", requestID)
		return
	}

	h.logs.Infow("send request received",
		"account", accountID,
		"token", req.Token,
		"handler", Send,
		"request_id", requestID)

	receipt, err := h.wallet.Send(r.Context(), req.ToMessage(accountID))
	if err != nil {
		code, detail := sendErrorStatus(err)
		resp := Response{
			Message: "Could not submit transfer",
			Error:   detail,
		}
		// a receipt with a transaction id means a ledger row exists and the
		// client can poll it
		if receipt.TransactionID != "" {
			resp.Data = toSendResponse(receipt)
		}
		h.respond(w, resp, code, requestID)
		h.logs.Errorw("send failed",
			"error", err,
			"transaction", receipt.TransactionID,
			"handler", Send,
			"request_id", requestID)
		return
	}

	h.logs.Infow("transfer submitted",
		"transaction", receipt.TransactionID,
		"chain_tx", receipt.ChainTxID,
		"sponsored", receipt.Sponsored,
		"handler", Send,
		"request_id", requestID)

	h.respond(w, Response{
		Message: "Transfer submitted",
		Data:    toSendResponse(receipt),
	}, http.StatusAccepted, requestID)
}

func (h *WalletHandler) HandleEstimateFee(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	accountID, ok := accountIDFrom(r)
	if !ok {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "no authenticated account",
		}, http.StatusUnauthorized, requestID)
		return
	}

	var req payload.EstimateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not estimate fees",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", EstimateFee,
			"request_id", requestID)
		return
	}

	estimate, err := h.wallet.EstimateFee(r.Context(), req.ToMessage(accountID))
	if err != nil {
		code, detail := sendErrorStatus(err)
		h.respond(w, Response{
			Message: "Could not estimate fees",
			Error:   detail,
		}, code, requestID)
		h.logs.Errorw("fee estimation failed",
			"error", err,
			"handler", EstimateFee,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Data: toEstimateResponse(estimate)}, http.StatusOK, requestID)
}

func (h *WalletHandler) HandleResolveAddress(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var req payload.ResolveRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not resolve recipient",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ResolveAddress,
			"request_id", requestID)
		return
	}

	resolved, err := h.wallet.ResolveRecipient(r.Context(), req.Recipient)
	if err != nil {
		code, detail := sendErrorStatus(err)
		h.respond(w, Response{
			Message: "Could not resolve recipient",
			Error:   detail,
		}, code, requestID)
		h.logs.Errorw("recipient resolution failed",
			"error", err,
			"handler", ResolveAddress,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Data: toResolveResponse(resolved)}, http.StatusOK, requestID)
}

func (h *WalletHandler) HandleGetBalances(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	address := r.PathValue("address")
	if address == "" {
		h.respond(w, Response{
			Message: "Could not retrieve balances",
			Error:   "address parameter is required",
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("missing address parameter", "handler", GetBalances, "request_id", requestID)
		return
	}

	balances, err := h.wallet.Balances(r.Context(), address)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balances",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to get balances",
			"error", err,
			"address", address,
			"handler", GetBalances,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Data: map[string][]BalanceView{
		"balances": toBalanceViews(balances),
	}}, http.StatusOK, requestID)
}

func (h *WalletHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	accountID, ok := accountIDFrom(r)
	if !ok {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "no authenticated account",
		}, http.StatusUnauthorized, requestID)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.respond(w, Response{
			Message: "Could not retrieve transaction",
			Error:   "transaction id parameter is required",
		}, http.StatusBadRequest, requestID)
		return
	}

	tx, err := h.wallet.GetTransaction(r.Context(), accountID, id)
	if err != nil {
		code := http.StatusInternalServerError
		detail := "unexpected error occurred"
		if errors.Is(err, repository.ErrTransactionNotFound) || errors.Is(err, repository.ErrWalletNotFound) {
			code = http.StatusNotFound
			detail = repository.ErrTransactionNotFound.Error()
		}
		h.respond(w, Response{
			Message: "Could not retrieve transaction",
			Error:   detail,
		}, code, requestID)
		h.logs.Errorw("failed to get transaction",
			"error", err,
			"transaction", id,
			"handler", GetTransaction,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Data: toTransactionView(tx)}, http.StatusOK, requestID)
}

// HandleConfirmDelivery ingests verdicts from the confirmation source. The
// route is internal; it is not reachable through the public listener's auth
// chain.
func (h *WalletHandler) HandleConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var req payload.ConfirmationRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not record confirmation",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ConfirmDelivery,
			"request_id", requestID)
		return
	}

	if err := h.wallet.FinalizeFromChain(r.Context(), req.ChainTxID, *req.Success); err != nil {
		code := http.StatusInternalServerError
		detail := "unexpected error occurred"
		if errors.Is(err, repository.ErrTransactionNotFound) {
			code = http.StatusNotFound
			detail = repository.ErrTransactionNotFound.Error()
		}
		h.respond(w, Response{
			Message: "Could not record confirmation",
			Error:   detail,
		}, code, requestID)
		h.logs.Errorw("failed to finalize transaction",
			"error", err,
			"chain_tx", req.ChainTxID,
			"handler", ConfirmDelivery,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Message: "Confirmation recorded"}, http.StatusOK, requestID)
}

// sendErrorStatus maps pipeline sentinels onto HTTP statuses. Unknown errors
// stay opaque to the client.
func sendErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, resolver.ErrInvalidRecipient),
		errors.Is(err, resolver.ErrUnknownAlias),
		errors.Is(err, resolver.ErrNoAccountForPhone):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, repository.ErrTokenNotFound),
		errors.Is(err, core.ErrTokenInactive),
		errors.Is(err, relay.ErrSelfTransfer):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, repository.ErrWalletNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrWalletDisabled):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, relay.ErrRelayerUnderfunded):
		return http.StatusServiceUnavailable, "transfers are temporarily unavailable"
	case errors.Is(err, chain.ErrSubmissionTimeout):
		return http.StatusGatewayTimeout, "submission outcome unknown, transaction is being reconciled"
	case errors.Is(err, chain.ErrSubmissionRejected):
		return http.StatusBadGateway, "transaction rejected by the network"
	default:
		return http.StatusInternalServerError, "unexpected error occurred"
	}
}

func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func accountIDFrom(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(middleware.AccountIDKey).(string)
	return id, ok && id != ""
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp Response, code int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestID)
	}
}
