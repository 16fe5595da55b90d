// Package client is a typed Go client for the execution API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	apphttp "github.com/kanzfinance/kanz-middleware/pkg/app/http"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
	"github.com/kanzfinance/kanz-middleware/pkg/httpclient"
	"github.com/kanzfinance/kanz-middleware/pkg/user"
)

const providerName = "kanz_api"

// TokenSource returns the bearer access token for the next request
type TokenSource func(ctx context.Context) (string, error)

// StaticToken always returns token
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) {
		return token, nil
	}
}

// Config holds the client settings
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// APIError is a failed API call decoded from the error body
type APIError struct {
	StatusCode int
	apphttp.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("api error (HTTP %d, %s/%s): %s", e.StatusCode, e.Kind, e.Reason, e.ErrMsg)
	}
	return fmt.Sprintf("api error (HTTP %d, %s): %s", e.StatusCode, e.Kind, e.ErrMsg)
}

// Client calls the execution API on behalf of one user
type Client struct {
	baseURL string
	token   TokenSource
	http    *httpclient.Client
}

// New creates an API client
func New(cfg Config, token TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   token,
		http: httpclient.New(httpclient.Config{
			Provider:          providerName,
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
		}, logger),
	}
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, result any) error {
	token, err := c.token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	err = c.http.Do(ctx, httpclient.Request{
		Operation: operation,
		Method:    method,
		URL:       c.baseURL + path,
		Query:     query,
		Headers:   map[string]string{"Authorization": "Bearer " + token},
		Body:      body,
	}, result)
	if err != nil {
		return asAPIError(err)
	}
	return nil
}

func asAPIError(err error) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	apiErr := &APIError{StatusCode: statusErr.StatusCode}
	if jsonErr := json.Unmarshal([]byte(statusErr.Body), &apiErr.ErrorResponse); jsonErr != nil || apiErr.ErrMsg == "" {
		apiErr.ErrMsg = statusErr.Body
	}
	return apiErr
}

func executionPath(id string, suffix ...string) string {
	return "/executions/" + url.PathEscape(id) + strings.Join(suffix, "")
}

// Sync reports the user's linked wallets
func (c *Client) Sync(ctx context.Context, accounts []user.LinkedAccount) (*user.SyncResponse, error) {
	var resp user.SyncResponse
	err := c.do(ctx, "auth_sync", http.MethodPost, "/auth/sync", nil, &user.SyncRequest{LinkedAccounts: accounts}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateExecution starts a bridge-then-swap execution
func (c *Client) CreateExecution(ctx context.Context, req *execution.CreateRequest) (*execution.CreateResponse, error) {
	var resp execution.CreateResponse
	if err := c.do(ctx, "create_execution", http.MethodPost, "/executions", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetExecution returns the execution snapshot
func (c *Client) GetExecution(ctx context.Context, id string) (*execution.Response, error) {
	var resp execution.Response
	if err := c.do(ctx, "get_execution", http.MethodGet, executionPath(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BridgePayload returns the bridge leg transactions. An empty provider uses the server default.
func (c *Client) BridgePayload(ctx context.Context, id, provider string) (*execution.BridgePayload, error) {
	var query url.Values
	if provider != "" {
		query = url.Values{"bridge_provider": {provider}}
	}

	var resp execution.BridgePayload
	if err := c.do(ctx, "bridge_payload", http.MethodGet, executionPath(id, "/bridge-payload"), query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReportEVMTx reports the submitted bridge transaction hash
func (c *Client) ReportEVMTx(ctx context.Context, id string, req *execution.ReportEVMTxRequest) error {
	var resp execution.OKResponse
	return c.do(ctx, "report_evm_tx", http.MethodPatch, executionPath(id, "/evm-tx"), nil, req, &resp)
}

// SwapPayload returns the serialized swap transaction
func (c *Client) SwapPayload(ctx context.Context, id string) (*execution.SwapPayload, error) {
	var resp execution.SwapPayload
	if err := c.do(ctx, "swap_payload", http.MethodGet, executionPath(id, "/swap-payload"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReportSwapTx reports a swap the caller signed and sent itself
func (c *Client) ReportSwapTx(ctx context.Context, id, swapTxHash string) (string, error) {
	var resp execution.SwapTxResponse
	err := c.do(ctx, "report_swap_tx", http.MethodPost, executionPath(id, "/swap-tx"), nil,
		&execution.ReportSwapTxRequest{SwapTxHash: swapTxHash}, &resp)
	if err != nil {
		return "", err
	}
	return resp.SwapTxHash, nil
}

// SignAndSend has custody sign and send the swap with the caller's token
func (c *Client) SignAndSend(ctx context.Context, id string) (string, error) {
	var resp execution.SwapTxResponse
	if err := c.do(ctx, "swap_sign_and_send", http.MethodPost, executionPath(id, "/swap-sign-and-send"), nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.SwapTxHash, nil
}

// SignaturePayload returns the custody request to sign for SignAndSendWithSignature
func (c *Client) SignaturePayload(ctx context.Context, id string) (*execution.SignatureRequest, error) {
	var resp execution.SignaturePayloadResponse
	err := c.do(ctx, "swap_signature_payload", http.MethodGet, executionPath(id, "/swap-signature-payload"), nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Payload, nil
}

// SignAndSendWithSignature submits the swap authorized by signature
func (c *Client) SignAndSendWithSignature(ctx context.Context, id, signature string) (string, error) {
	var resp execution.SwapTxResponse
	err := c.do(ctx, "swap_sign_and_send_with_signature", http.MethodPost,
		executionPath(id, "/swap-sign-and-send-with-signature"), nil,
		&execution.SignAndSendWithSignatureRequest{Signature: signature}, &resp)
	if err != nil {
		return "", err
	}
	return resp.SwapTxHash, nil
}

// Fail marks the execution failed
func (c *Client) Fail(ctx context.Context, id string, req *execution.FailRequest) (*execution.Response, error) {
	var resp execution.Response
	if err := c.do(ctx, "fail_execution", http.MethodPost, executionPath(id, "/fail"), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
