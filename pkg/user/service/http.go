package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
	apphttp "github.com/kanzfinance/kanz-middleware/pkg/app/http"
	"github.com/kanzfinance/kanz-middleware/pkg/auth"
	"github.com/kanzfinance/kanz-middleware/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the identity sync endpoint on the given chi router.
// The router must already carry the auth middleware.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/auth/sync", apphttp.HandleError(h.sync))
}

func (h *HTTP) sync(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "not authenticated")
	}

	var req user.SyncRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Sync(r.Context(), userID, &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
