package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
	apphttp "github.com/kanzfinance/kanz-middleware/pkg/app/http"
	"github.com/kanzfinance/kanz-middleware/pkg/auth"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
	"github.com/kanzfinance/kanz-middleware/pkg/execution/service/mocks"
)

func newExecutionTestServer(svc Service, userID string) http.Handler {
	r := chi.NewRouter()
	if userID != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
			})
		})
	}
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apphttp.ErrorResponse {
	t.Helper()
	var got apphttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestExecutionHTTP_Create(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Create(mock.Anything, testUser, &execution.CreateRequest{AmountUSDC: "10", SourceChain: "base", SlippageBps: 100}).
		Return(&execution.CreateResponse{ExecutionID: "e1", Status: execution.StatusPending}, nil).Once()
	h := newExecutionTestServer(svc, testUser)

	rec := serve(t, h, http.MethodPost, "/executions", `{"amount_usdc":"10","source_chain":"base","slippage_bps":100}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"execution_id":"e1","status":"PENDING","is_duplicate":false}`, rec.Body.String())
}

func TestExecutionHTTP_Unauthenticated(t *testing.T) {
	h := newExecutionTestServer(mocks.NewService(t), "")

	rec := serve(t, h, http.MethodGet, "/executions/e1", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", decodeError(t, rec).Kind)
}

func TestExecutionHTTP_NotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Get(mock.Anything, testUser, "e1").
		Return(nil, apperrors.ResourceNotFoundError(ErrExecutionNotFound, "Not found")).Once()
	h := newExecutionTestServer(svc, testUser)

	rec := serve(t, h, http.MethodGet, "/executions/e1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "not_found", got.Kind)
	assert.Equal(t, "Not found", got.ErrMsg)
}

func TestExecutionHTTP_BridgePayloadPassesProvider(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().BridgePayload(mock.Anything, testUser, "e1", "lifi").
		Return(&execution.BridgePayload{To: "0xto", Data: "0xdata", Value: "0x0"}, nil).Once()
	h := newExecutionTestServer(svc, testUser)

	rec := serve(t, h, http.MethodGet, "/executions/e1/bridge-payload?bridge_provider=lifi", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"to":"0xto","data":"0xdata","value":"0x0"}`, rec.Body.String())
}

func TestExecutionHTTP_SwapPayloadInvalidState(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().SwapPayload(mock.Anything, testUser, "e1").
		Return(nil, apperrors.InvalidStateError(nil, "Execution must be bridged before swap", "PENDING", "BRIDGED", "BRIDGING")).Once()
	h := newExecutionTestServer(svc, testUser)

	rec := serve(t, h, http.MethodGet, "/executions/e1/swap-payload", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "invalid_state", got.Kind)
	assert.Equal(t, "PENDING", got.CurrentStatus)
	assert.Equal(t, []string{"BRIDGED", "BRIDGING"}, got.RequiredStatus)
}

func TestExecutionHTTP_WriteRoutes(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ReportEVMTx(mock.Anything, testUser, "e1", &execution.ReportEVMTxRequest{EVMTxHash: "0xabc"}).
		Return(&execution.OKResponse{OK: true}, nil).Once()
	svc.EXPECT().ReportSwapTx(mock.Anything, testUser, "e1", &execution.ReportSwapTxRequest{SwapTxHash: "sig"}).
		Return(&execution.SwapTxResponse{SwapTxHash: "sig"}, nil).Once()
	svc.EXPECT().SignAndSend(mock.Anything, testUser, "e1").
		Return(&execution.SwapTxResponse{SwapTxHash: "sig2"}, nil).Once()
	svc.EXPECT().SignAndSendWithSignature(mock.Anything, testUser, "e1", &execution.SignAndSendWithSignatureRequest{Signature: "s"}).
		Return(&execution.SwapTxResponse{SwapTxHash: "sig3"}, nil).Once()
	svc.EXPECT().Fail(mock.Anything, testUser, "e1", &execution.FailRequest{ErrorCode: "timeout"}).
		Return(&execution.Response{ID: "e1", Status: execution.StatusFailed}, nil).Once()
	h := newExecutionTestServer(svc, testUser)

	rec := serve(t, h, http.MethodPatch, "/executions/e1/evm-tx", `{"evm_tx_hash":"0xabc"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = serve(t, h, http.MethodPost, "/executions/e1/swap-tx", `{"swap_tx_hash":"sig"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"swap_tx_hash":"sig"}`, rec.Body.String())

	rec = serve(t, h, http.MethodPost, "/executions/e1/swap-sign-and-send", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"swap_tx_hash":"sig2"}`, rec.Body.String())

	rec = serve(t, h, http.MethodPost, "/executions/e1/swap-sign-and-send-with-signature", `{"signature":"s"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"swap_tx_hash":"sig3"}`, rec.Body.String())

	rec = serve(t, h, http.MethodPost, "/executions/e1/fail", `{"error_code":"timeout"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExecutionHTTP_InvalidJSON(t *testing.T) {
	h := newExecutionTestServer(mocks.NewService(t), testUser)

	rec := serve(t, h, http.MethodPatch, "/executions/e1/evm-tx", `{bad`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON", decodeError(t, rec).ErrMsg)
}
