// Package privy is a client for the Privy wallet custody API.
package privy

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/httpclient"
	"github.com/kanzfinance/kanz-middleware/pkg/solana"
)

const (
	providerName = "privy"

	methodSignAndSend = "signAndSendTransaction"
	chainTypeSolana   = "solana"
	encodingBase64    = "base64"

	headerAppID                  = "privy-app-id"
	headerAuthorizationSignature = "privy-authorization-signature"

	maxWalletPages = 50
)

var (
	// ErrWalletNotFound is returned when the user owns no custodial wallet at the address.
	ErrWalletNotFound = errors.New("solana wallet not found for user")
	// ErrMissingHash is returned when a sign-and-send answer carries no transaction hash.
	ErrMissingHash = errors.New("privy did not return transaction hash")
	// ErrNoAuthorization is returned when neither a user token nor a signature is supplied.
	ErrNoAuthorization = errors.New("no wallet authorization supplied")
)

// Client is the wallet custody API used to submit the swap leg
//
//go:generate mockery --name Client --output mocks --outpkg mocks --filename mock_client.go --with-expecter
type Client interface {
	// FindSolanaWallet returns the user's custodial Solana wallet at address,
	// matched case-insensitively.
	FindSolanaWallet(ctx context.Context, userID, address string) (*Wallet, error)
	// SignAndSend asks custody to sign and broadcast serializedTx and returns its hash.
	SignAndSend(ctx context.Context, walletID, serializedTx string, auth Authorization) (string, error)
	// SignAndSendRequest describes the RPC SignAndSend issues, for client side signing.
	SignAndSendRequest(walletID, serializedTx string) *RPCRequest
}

type client struct {
	appID     string
	appSecret string
	baseURL   string
	http      *httpclient.Client
}

// NewClient creates a Privy client from configuration
func NewClient(cfg *config.PrivyConfig, logger *zap.Logger) Client {
	return &client{
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret(),
		baseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		http: httpclient.New(httpclient.Config{
			Provider:          providerName,
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
		}, logger),
	}
}

func (c *client) headers() map[string]string {
	basic := base64.StdEncoding.EncodeToString([]byte(c.appID + ":" + c.appSecret))
	return map[string]string{
		"Authorization": "Basic " + basic,
		headerAppID:     c.appID,
	}
}

func (c *client) FindSolanaWallet(ctx context.Context, userID, address string) (*Wallet, error) {
	params := url.Values{
		"user_id":    {userID},
		"chain_type": {chainTypeSolana},
	}

	for page := 0; page < maxWalletPages; page++ {
		var resp listWalletsResponse
		err := c.http.Do(ctx, httpclient.Request{
			Operation: "list_wallets",
			Method:    http.MethodGet,
			URL:       c.baseURL + "/v1/wallets",
			Query:     params,
			Headers:   c.headers(),
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("privy list wallets: %w", asAPIError(err))
		}

		for i := range resp.Data {
			w := resp.Data[i]
			if w.ChainType == chainTypeSolana && solana.SameAddress(w.Address, address) {
				return &w, nil
			}
		}

		if resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		params.Set("cursor", *resp.NextCursor)
	}

	return nil, ErrWalletNotFound
}

func (c *client) rpcURL(walletID string) string {
	return fmt.Sprintf("%s/v1/wallets/%s/rpc", c.baseURL, url.PathEscape(walletID))
}

func newSignAndSendBody(serializedTx string) RPCBody {
	return RPCBody{
		Method:    methodSignAndSend,
		ChainType: chainTypeSolana,
		Params: TransactionParams{
			Transaction: serializedTx,
			Encoding:    encodingBase64,
		},
		CAIP2: solana.MainnetCAIP2,
	}
}

func (c *client) SignAndSendRequest(walletID, serializedTx string) *RPCRequest {
	body := newSignAndSendBody(serializedTx)
	return &RPCRequest{
		Method:  http.MethodPost,
		URL:     c.rpcURL(walletID),
		Body:    &body,
		Headers: map[string]string{headerAppID: c.appID},
	}
}

func (c *client) SignAndSend(ctx context.Context, walletID, serializedTx string, auth Authorization) (string, error) {
	headers := c.headers()
	req := &rpcRequest{RPCBody: newSignAndSendBody(serializedTx)}

	switch {
	case auth.Signature != "":
		headers[headerAuthorizationSignature] = auth.Signature
	case auth.UserJWT != "":
		req.AuthorizationContext = &authorizationContext{UserJWTs: []string{auth.UserJWT}}
	default:
		return "", ErrNoAuthorization
	}

	var resp rpcResponse
	err := c.http.Do(ctx, httpclient.Request{
		Operation: "sign_and_send",
		Method:    http.MethodPost,
		URL:       c.rpcURL(walletID),
		Headers:   headers,
		Body:      req,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("privy sign and send: %w", asAPIError(err))
	}

	hash := resp.txHash()
	if hash == "" {
		return "", ErrMissingHash
	}
	return hash, nil
}
