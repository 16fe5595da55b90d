package jupiter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
)

const testQuote = `{"inputMint":"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v","outputMint":"GoLDppdjB1vDTPSGxyMJFqdnj134yH6Prg9eqsGDiw6A","inAmount":"10000000","outAmount":"3150","routePlan":[{"percent":100}]}`

func newTestClient(t *testing.T, baseURL, apiKey string) Client {
	t.Helper()
	t.Setenv("JUPITER_TEST_API_KEY", apiKey)
	return NewClient(&config.JupiterConfig{
		BaseURL:   baseURL,
		APIKeyEnv: "JUPITER_TEST_API_KEY",
		Timeout:   5 * time.Second,
	}, zap.NewNop())
}

func TestClient_QuoteAndSwap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jup-key", r.Header.Get("x-api-key"))
		switch r.URL.Path {
		case "/swap/v1/quote":
			q := r.URL.Query()
			assert.Equal(t, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", q.Get("inputMint"))
			assert.Equal(t, "GoLDppdjB1vDTPSGxyMJFqdnj134yH6Prg9eqsGDiw6A", q.Get("outputMint"))
			assert.Equal(t, "10000000", q.Get("amount"))
			assert.Equal(t, "50", q.Get("slippageBps"))
			assert.Equal(t, "true", q.Get("restrictIntermediateTokens"))
			assert.Equal(t, "true", q.Get("asLegacyTransaction"))
			_, _ = w.Write([]byte(testQuote))
		case "/swap/v1/swap":
			raw, _ := io.ReadAll(r.Body)
			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, "SoUser", body["userPublicKey"])
			assert.Equal(t, true, body["dynamicComputeUnitLimit"])
			assert.Equal(t, true, body["dynamicSlippage"])
			assert.Equal(t, true, body["asLegacyTransaction"])
			quote, ok := body["quoteResponse"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, quote, "routePlan")
			_, _ = w.Write([]byte(`{"swapTransaction":"AQID","lastValidBlockHeight":42}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "jup-key")
	require.True(t, client.Configured())

	quote, err := client.Quote(context.Background(), &QuoteRequest{
		InputMint:   "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		OutputMint:  "GoLDppdjB1vDTPSGxyMJFqdnj134yH6Prg9eqsGDiw6A",
		Amount:      "10000000",
		SlippageBps: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "3150", quote.OutAmount)

	swap, err := client.BuildSwap(context.Background(), quote, "SoUser")
	require.NoError(t, err)
	assert.Equal(t, "AQID", swap.SwapTransaction)
	assert.Equal(t, uint64(42), swap.LastValidBlockHeight)
}

func TestClient_NotConfigured(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", "")
	require.False(t, client.Configured())

	_, err := client.Quote(context.Background(), &QuoteRequest{})
	require.ErrorIs(t, err, ErrNotConfigured)
	_, err = client.BuildSwap(context.Background(), &Quote{}, "SoUser")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_SwapError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid quote"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, "jup-key").BuildSwap(context.Background(), &Quote{}, "SoUser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jupiter swap")
}
