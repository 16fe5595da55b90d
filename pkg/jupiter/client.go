// Package jupiter is a client for the Jupiter swap aggregator API.
package jupiter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/httpclient"
)

const providerName = "jupiter"

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("jupiter API key not configured")

// QuoteRequest holds the parameters of GET /swap/v1/quote
type QuoteRequest struct {
	InputMint  string
	OutputMint string
	// Amount is in the input mint's smallest unit.
	Amount      string
	SlippageBps int
}

// Quote is an opaque quote document. Only a summary is decoded; the raw
// document is posted back unchanged when building the swap.
type Quote struct {
	InputMint  string `json:"inputMint"`
	OutputMint string `json:"outputMint"`
	InAmount   string `json:"inAmount"`
	OutAmount  string `json:"outAmount"`

	raw json.RawMessage
}

type quoteFields Quote

// UnmarshalJSON decodes the summary and keeps the raw document.
func (q *Quote) UnmarshalJSON(data []byte) error {
	var fields quoteFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*q = Quote(fields)
	q.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the raw upstream document when available.
func (q Quote) MarshalJSON() ([]byte, error) {
	if len(q.raw) > 0 {
		return q.raw, nil
	}
	return json.Marshal(quoteFields(q))
}

// SwapResponse is the result of POST /swap/v1/swap
type SwapResponse struct {
	// SwapTransaction is the base64 serialized transaction.
	SwapTransaction      string `json:"swapTransaction"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight,omitempty"`
}

type swapRequest struct {
	QuoteResponse           *Quote `json:"quoteResponse"`
	UserPublicKey           string `json:"userPublicKey"`
	DynamicComputeUnitLimit bool   `json:"dynamicComputeUnitLimit"`
	DynamicSlippage         bool   `json:"dynamicSlippage"`
	AsLegacyTransaction     bool   `json:"asLegacyTransaction"`
}

// Client is the swap aggregator used to build the Solana leg
//
//go:generate mockery --name Client --output mocks --outpkg mocks --filename mock_client.go --with-expecter
type Client interface {
	// Configured reports whether an API key is available.
	Configured() bool
	Quote(ctx context.Context, req *QuoteRequest) (*Quote, error)
	BuildSwap(ctx context.Context, quote *Quote, userPublicKey string) (*SwapResponse, error)
}

type client struct {
	baseURL string
	apiKey  string
	http    *httpclient.Client
}

// NewClient creates a Jupiter client from configuration
func NewClient(cfg *config.JupiterConfig, logger *zap.Logger) Client {
	return &client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey(),
		http: httpclient.New(httpclient.Config{
			Provider:          providerName,
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
		}, logger),
	}
}

func (c *client) Configured() bool {
	return c.apiKey != ""
}

func (c *client) Quote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{
		"inputMint":                  {req.InputMint},
		"outputMint":                 {req.OutputMint},
		"amount":                     {req.Amount},
		"slippageBps":                {strconv.Itoa(req.SlippageBps)},
		"restrictIntermediateTokens": {"true"},
		"asLegacyTransaction":        {"true"},
	}

	quote := new(Quote)
	err := c.http.Do(ctx, httpclient.Request{
		Operation: "quote",
		Method:    http.MethodGet,
		URL:       c.baseURL + "/swap/v1/quote",
		Query:     params,
		Headers:   map[string]string{"x-api-key": c.apiKey},
	}, quote)
	if err != nil {
		return nil, fmt.Errorf("jupiter quote: %w", err)
	}
	return quote, nil
}

func (c *client) BuildSwap(ctx context.Context, quote *Quote, userPublicKey string) (*SwapResponse, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	resp := new(SwapResponse)
	err := c.http.Do(ctx, httpclient.Request{
		Operation: "swap",
		Method:    http.MethodPost,
		URL:       c.baseURL + "/swap/v1/swap",
		Headers:   map[string]string{"x-api-key": c.apiKey},
		Body: &swapRequest{
			QuoteResponse:           quote,
			UserPublicKey:           userPublicKey,
			DynamicComputeUnitLimit: true,
			DynamicSlippage:         true,
			AsLegacyTransaction:     true,
		},
	}, resp)
	if err != nil {
		return nil, fmt.Errorf("jupiter swap: %w", err)
	}
	return resp, nil
}
