// Package lifi is a client for the LiFi bridge aggregator API.
package lifi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/httpclient"
)

const providerName = "lifi"

// Client is the bridge aggregator used to build the EVM leg
//
//go:generate mockery --name Client --output mocks --outpkg mocks --filename mock_client.go --with-expecter
type Client interface {
	// Quote returns the best route step for req.
	Quote(ctx context.Context, req *QuoteRequest) (*Step, error)
	// StepTransaction materializes the transaction of a step returned without calldata.
	StepTransaction(ctx context.Context, step *Step) (*Step, error)
}

type client struct {
	baseURL    string
	apiKey     string
	integrator string
	slippage   string
	http       *httpclient.Client
}

// NewClient creates a LiFi client from configuration
func NewClient(cfg *config.LiFiConfig, logger *zap.Logger) Client {
	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey(),
		integrator: cfg.Integrator,
		slippage:   cfg.Slippage,
		http: httpclient.New(httpclient.Config{
			Provider:          providerName,
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
		}, logger),
	}
}

func (c *client) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"x-lifi-api-key": c.apiKey}
}

func (c *client) Quote(ctx context.Context, req *QuoteRequest) (*Step, error) {
	params := url.Values{
		"fromChain":   {strconv.FormatUint(req.FromChain, 10)},
		"toChain":     {strconv.FormatUint(req.ToChain, 10)},
		"fromToken":   {req.FromToken},
		"toToken":     {req.ToToken},
		"fromAddress": {req.FromAddress},
		"toAddress":   {req.ToAddress},
		"fromAmount":  {req.FromAmount},
		"slippage":    {c.slippage},
		"integrator":  {c.integrator},
	}

	step := new(Step)
	err := c.http.Do(ctx, httpclient.Request{
		Operation: "quote",
		Method:    http.MethodGet,
		URL:       c.baseURL + "/v1/quote",
		Query:     params,
		Headers:   c.headers(),
	}, step)
	if err != nil {
		return nil, fmt.Errorf("lifi quote: %w", err)
	}
	return step, nil
}

func (c *client) StepTransaction(ctx context.Context, step *Step) (*Step, error) {
	out := new(Step)
	err := c.http.Do(ctx, httpclient.Request{
		Operation: "step_transaction",
		Method:    http.MethodPost,
		URL:       c.baseURL + "/v1/advanced/stepTransaction",
		Headers:   c.headers(),
		Body:      step,
	}, out)
	if err != nil {
		return nil, fmt.Errorf("lifi step transaction: %w", err)
	}
	return out, nil
}
