package client

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

type route struct {
	status int
	body   string
}

type fakeAPI struct {
	mu     sync.Mutex
	routes map[string]route
	calls  []string
}

func (f *fakeAPI) called(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == key {
			return true
		}
	}
	return false
}

func newFlowFixture(t *testing.T, overrides map[string]route) (*BuyFlow, *fakeAPI, *fakeBackend) {
	t.Helper()
	api := &fakeAPI{routes: map[string]route{
		"POST /executions":                         {http.StatusOK, `{"execution_id":"ex-1","status":"PENDING"}`},
		"GET /executions/ex-1/bridge-payload":      {http.StatusOK, `{"to":"0x1231DEB6f5749EF6cE6943a275A1D3E7486F4EaE","data":"0x01","value":"0x0","gasLimit":"0x30d40"}`},
		"PATCH /executions/ex-1/evm-tx":            {http.StatusOK, `{"ok":true}`},
		"POST /executions/ex-1/swap-sign-and-send": {http.StatusOK, `{"swap_tx_hash":"5sig"}`},
		"GET /executions/ex-1":                     {http.StatusOK, `{"id":"ex-1","status":"COMPLETED"}`},
		"POST /executions/ex-1/fail":               {http.StatusOK, `{"id":"ex-1","status":"FAILED"}`},
	}}
	for k, v := range overrides {
		api.routes[k] = v
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		api.mu.Lock()
		api.calls = append(api.calls, key)
		rt, ok := api.routes[key]
		api.mu.Unlock()
		if !ok {
			rt = route{http.StatusNotFound, `{"error":"not found","code":404,"kind":"not_found"}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rt.status)
		_, _ = w.Write([]byte(rt.body))
	}))
	t.Cleanup(srv.Close)

	backend := &fakeBackend{}
	sender, err := NewEVMSender(backend, testKey, zap.NewNop())
	require.NoError(t, err)

	receipts := &fakeReceipts{results: []func() (*types.Receipt, error){
		func() (*types.Receipt, error) { return &types.Receipt{BlockNumber: big.NewInt(1)}, nil },
	}}
	waiter := NewReceiptWaiter(receipts, time.Millisecond, 3, zap.NewNop())

	c := New(Config{BaseURL: srv.URL}, StaticToken("tok-1"), zap.NewNop())
	return NewBuyFlow(c, sender, waiter, zap.NewNop()), api, backend
}

func TestBuyFlow_Completes(t *testing.T) {
	flow, api, backend := newFlowFixture(t, nil)

	final, err := flow.Run(context.Background(), &execution.CreateRequest{AmountUSDC: "10"})
	require.NoError(t, err)

	assert.Equal(t, execution.StatusCompleted, final.Status)
	assert.NotNil(t, backend.sent)
	assert.True(t, api.called("PATCH /executions/ex-1/evm-tx"))
	assert.True(t, api.called("POST /executions/ex-1/swap-sign-and-send"))
	assert.False(t, api.called("POST /executions/ex-1/fail"))
}

func TestBuyFlow_FailsBeforeBroadcast(t *testing.T) {
	flow, api, backend := newFlowFixture(t, map[string]route{
		"GET /executions/ex-1/bridge-payload": {http.StatusBadGateway, `{"error":"quote failed","code":502,"kind":"upstream_failure"}`},
	})

	_, err := flow.Run(context.Background(), &execution.CreateRequest{AmountUSDC: "10"})
	require.Error(t, err)

	var submitted *SubmittedError
	assert.False(t, errors.As(err, &submitted))
	assert.Nil(t, backend.sent)
	assert.True(t, api.called("POST /executions/ex-1/fail"))
}

func TestBuyFlow_SendErrorMarksFailed(t *testing.T) {
	flow, api, backend := newFlowFixture(t, nil)
	backend.sendErr = errors.New("insufficient funds")

	_, err := flow.Run(context.Background(), &execution.CreateRequest{AmountUSDC: "10"})
	require.Error(t, err)
	assert.True(t, api.called("POST /executions/ex-1/fail"))
}

func TestBuyFlow_ReportErrorAfterBroadcastKeepsExecution(t *testing.T) {
	flow, api, backend := newFlowFixture(t, map[string]route{
		"PATCH /executions/ex-1/evm-tx": {http.StatusServiceUnavailable, `{"error":"try later","code":503,"kind":"unavailable"}`},
	})

	_, err := flow.Run(context.Background(), &execution.CreateRequest{AmountUSDC: "10"})

	var submitted *SubmittedError
	require.ErrorAs(t, err, &submitted)
	assert.Equal(t, StepReportEVMTx, submitted.Step)
	assert.Equal(t, backend.sent.Hash().Hex(), submitted.TxHash)
	assert.Equal(t, "ex-1", submitted.ExecutionID)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)

	assert.False(t, api.called("POST /executions/ex-1/fail"))
}

func TestBuyFlow_SwapErrorKeepsExecution(t *testing.T) {
	flow, api, _ := newFlowFixture(t, map[string]route{
		"POST /executions/ex-1/swap-sign-and-send": {http.StatusBadGateway, `{"error":"custody failed","code":502,"kind":"upstream_failure"}`},
	})

	_, err := flow.Run(context.Background(), &execution.CreateRequest{AmountUSDC: "10"})

	var submitted *SubmittedError
	require.ErrorAs(t, err, &submitted)
	assert.Equal(t, StepSwap, submitted.Step)
	assert.False(t, api.called("POST /executions/ex-1/fail"))
}

func TestBuyFlow_SkipSwap(t *testing.T) {
	flow, api, _ := newFlowFixture(t, map[string]route{
		"GET /executions/ex-1": {http.StatusOK, `{"id":"ex-1","status":"BRIDGED"}`},
	})
	flow.SkipSwap = true

	final, err := flow.Run(context.Background(), &execution.CreateRequest{AmountUSDC: "10"})
	require.NoError(t, err)
	assert.Equal(t, execution.StatusBridged, final.Status)
	assert.False(t, api.called("POST /executions/ex-1/swap-sign-and-send"))
}
