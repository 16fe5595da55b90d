package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
	apphttp "github.com/kanzfinance/kanz-middleware/pkg/app/http"
	"github.com/kanzfinance/kanz-middleware/pkg/auth"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the execution endpoints on the given chi router.
// The router must already carry the auth middleware.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/executions", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.create))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", apphttp.HandleError(h.get))
			r.Get("/bridge-payload", apphttp.HandleError(h.bridgePayload))
			r.Patch("/evm-tx", apphttp.HandleError(h.reportEVMTx))
			r.Get("/swap-payload", apphttp.HandleError(h.swapPayload))
			r.Post("/swap-tx", apphttp.HandleError(h.reportSwapTx))
			r.Post("/swap-sign-and-send", apphttp.HandleError(h.signAndSend))
			r.Get("/swap-signature-payload", apphttp.HandleError(h.signaturePayload))
			r.Post("/swap-sign-and-send-with-signature", apphttp.HandleError(h.signAndSendWithSignature))
			r.Post("/fail", apphttp.HandleError(h.fail))
		})
	})
}

func caller(r *http.Request) (string, error) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	return userID, nil
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	var req execution.CreateRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	resp, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) bridgePayload(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	provider := r.URL.Query().Get("bridge_provider")
	resp, err := h.service.BridgePayload(r.Context(), userID, chi.URLParam(r, "id"), provider)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) reportEVMTx(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	var req execution.ReportEVMTxRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.ReportEVMTx(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) swapPayload(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	resp, err := h.service.SwapPayload(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) reportSwapTx(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	var req execution.ReportSwapTxRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.ReportSwapTx(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) signAndSend(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	resp, err := h.service.SignAndSend(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) signaturePayload(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	resp, err := h.service.SignaturePayload(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) signAndSendWithSignature(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	var req execution.SignAndSendWithSignatureRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.SignAndSendWithSignature(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) fail(w http.ResponseWriter, r *http.Request) error {
	userID, err := caller(r)
	if err != nil {
		return err
	}

	var req execution.FailRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Fail(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
