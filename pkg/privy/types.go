package privy

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kanzfinance/kanz-middleware/pkg/httpclient"
)

// Wallet is a custodial wallet as listed by the wallets API
type Wallet struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	ChainType string `json:"chain_type"`
	OwnerID   string `json:"owner_id,omitempty"`
}

type listWalletsResponse struct {
	Data       []Wallet `json:"data"`
	NextCursor *string  `json:"next_cursor"`
}

// Authorization selects how a wallet RPC is authorized: by the user's access
// token, or by a signature the client produced over the RPC request.
type Authorization struct {
	UserJWT   string
	Signature string
}

// TransactionParams carries the serialized transaction of an RPC
type TransactionParams struct {
	Transaction string `json:"transaction"`
	Encoding    string `json:"encoding"`
}

// RPCBody is the body of POST /v1/wallets/{id}/rpc. It is also the body the
// client signs in the authorization signature flow.
type RPCBody struct {
	Method    string            `json:"method"`
	ChainType string            `json:"chain_type"`
	Params    TransactionParams `json:"params"`
	CAIP2     string            `json:"caip2"`
}

type authorizationContext struct {
	UserJWTs []string `json:"user_jwts,omitempty"`
}

type rpcRequest struct {
	RPCBody
	AuthorizationContext *authorizationContext `json:"authorization_context,omitempty"`
}

// RPCRequest describes a wallet RPC call for the client to sign.
type RPCRequest struct {
	Method  string
	URL     string
	Body    *RPCBody
	Headers map[string]string
}

type rpcResponse struct {
	Method string `json:"method"`
	Data   struct {
		Hash          string `json:"hash"`
		TransactionID string `json:"transaction_id"`
		CAIP2         string `json:"caip2"`
	} `json:"data"`
	Hash          string `json:"hash"`
	TransactionID string `json:"transaction_id"`
}

func (r *rpcResponse) txHash() string {
	for _, h := range []string{r.Data.Hash, r.Data.TransactionID, r.Hash, r.TransactionID} {
		if h != "" {
			return h
		}
	}
	return ""
}

// APIError is a non-2xx answer from the custody API.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Code       string `json:"code"`
	Body       string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("privy API error (HTTP %d, %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("privy API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// JWTRejected reports whether custody refused the delegated user token while
// exchanging it for a signing key.
func (e *APIError) JWTRejected() bool {
	return e.StatusCode == 400 && e.Code == "invalid_data" && strings.Contains(strings.ToLower(e.Message), "jwt")
}

// asAPIError converts a transport StatusError into an APIError.
func asAPIError(err error) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	apiErr := &APIError{StatusCode: statusErr.StatusCode, Body: statusErr.Body}
	if jsonErr := json.Unmarshal([]byte(statusErr.Body), apiErr); jsonErr != nil || apiErr.Message == "" {
		apiErr.Message = statusErr.Body
	}
	return apiErr
}
