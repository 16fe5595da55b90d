package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
	apphttp "github.com/kanzfinance/kanz-middleware/pkg/app/http"
)

// Verifier verifies bearer access tokens
type Verifier interface {
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// Middleware authenticates requests with a bearer access token and stores the
// user id and token in the request context. Failures respond 401.
func Middleware(validator Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}

			claims, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("access token rejected", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid access token"))
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			ctx = WithAccessToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
