package http

import (
	"encoding/json"
	"io"
	"net/http"

	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
)

const maxBodySize = 1 << 20 // 1MB

// DecodeJSON reads a size-limited request body into v.
// An empty body leaves v untouched.
func DecodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}
