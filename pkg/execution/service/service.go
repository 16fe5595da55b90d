package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/internal/metrics"
	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
	"github.com/kanzfinance/kanz-middleware/pkg/auth"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
	"github.com/kanzfinance/kanz-middleware/pkg/executionstore"
	"github.com/kanzfinance/kanz-middleware/pkg/httpclient"
	"github.com/kanzfinance/kanz-middleware/pkg/privy"
	"github.com/kanzfinance/kanz-middleware/pkg/txcache"
	"github.com/kanzfinance/kanz-middleware/pkg/user"
	"github.com/kanzfinance/kanz-middleware/pkg/userstore"
)

// Reasons reported alongside invalid input and upstream failures
const (
	ReasonUserNotSynced           = "user_not_synced"
	ReasonMissingEVMWallet        = "missing_evm_wallet"
	ReasonMissingSolanaWallet     = "missing_solana_wallet"
	ReasonInvalidAmount           = "invalid_amount"
	ReasonInvalidSourceChain      = "invalid_source_chain"
	ReasonMissingTxHash           = "missing_tx_hash"
	ReasonMissingSignature        = "missing_signature"
	ReasonMissingErrorCode        = "missing_error_code"
	ReasonSolanaWalletNotFound    = "solana_wallet_not_found"
	ReasonWalletJWTExchangeFailed = "wallet_jwt_exchange_failed"
	ReasonCustodyFailed           = "custody_request_failed"
	ReasonSwapTxHashMissing       = "swap_tx_hash_missing"
)

const signatureRequestVersion = 1

var (
	ErrExecutionNotFound   = errors.New("execution not found")
	ErrIdempotencyMismatch = errors.New("idempotency key reused with different inputs")
	ErrMissingTxHash       = errors.New("missing transaction hash")
	ErrMissingSignature    = errors.New("missing authorization signature")
	ErrMissingErrorCode    = errors.New("missing error code")
	ErrMissingAccessToken  = errors.New("missing access token")
)

// Store is the narrow data-access interface for the execution service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateExecution(ctx context.Context, e *execution.Execution) (*execution.Execution, bool, error)
	GetExecution(ctx context.Context, id string) (*execution.Execution, error)
	TransitionExecution(ctx context.Context, id string, from []execution.Status, u execution.Update) (*execution.Execution, error)
}

// UserStore resolves the synced wallets of the caller.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*user.User, error)
}

// PayloadBuilder builds the unsigned transactions of both legs.
//
//go:generate mockery --name PayloadBuilder --output mocks --outpkg mocks --filename mock_payload_builder.go --with-expecter
type PayloadBuilder interface {
	BridgePayload(ctx context.Context, e *execution.Execution, provider string) (*execution.BridgePayload, error)
	SwapTransaction(ctx context.Context, e *execution.Execution) (string, error)
}

// Service defines the interface for the execution business logic. Every
// method is scoped to the calling user; executions owned by someone else are
// reported as not found.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Create(ctx context.Context, userID string, req *execution.CreateRequest) (*execution.CreateResponse, error)
	Get(ctx context.Context, userID, id string) (*execution.Response, error)
	BridgePayload(ctx context.Context, userID, id, provider string) (*execution.BridgePayload, error)
	ReportEVMTx(ctx context.Context, userID, id string, req *execution.ReportEVMTxRequest) (*execution.OKResponse, error)
	SwapPayload(ctx context.Context, userID, id string) (*execution.SwapPayload, error)
	ReportSwapTx(ctx context.Context, userID, id string, req *execution.ReportSwapTxRequest) (*execution.SwapTxResponse, error)
	SignAndSend(ctx context.Context, userID, id string) (*execution.SwapTxResponse, error)
	SignaturePayload(ctx context.Context, userID, id string) (*execution.SignaturePayloadResponse, error)
	SignAndSendWithSignature(
		ctx context.Context,
		userID, id string,
		req *execution.SignAndSendWithSignatureRequest,
	) (*execution.SwapTxResponse, error)
	Fail(ctx context.Context, userID, id string, req *execution.FailRequest) (*execution.Response, error)
}

type executionService struct {
	store   Store
	users   UserStore
	builder PayloadBuilder
	custody privy.Client
	cache   txcache.Cache
	logger  *zap.Logger
}

// NewService creates a new execution service
func NewService(
	store Store,
	users UserStore,
	builder PayloadBuilder,
	custody privy.Client,
	cache txcache.Cache,
	logger *zap.Logger,
) Service {
	return &executionService{
		store:   store,
		users:   users,
		builder: builder,
		custody: custody,
		cache:   cache,
		logger:  logger,
	}
}

// Create snapshots the caller's synced wallets into a new PENDING execution.
// A repeated idempotency key with identical inputs returns the stored record.
func (s *executionService) Create(
	ctx context.Context,
	userID string,
	req *execution.CreateRequest,
) (*execution.CreateResponse, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.InvalidInputError(err, ReasonUserNotSynced,
				"Sync wallets first (login and let auth/sync run)")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	evmWallet, ok := u.FirstWallet(user.ChainTypeEthereum)
	if !ok {
		return nil, apperrors.InvalidInputError(nil, ReasonMissingEVMWallet, "missing_evm_wallet")
	}
	solanaWallet, ok := u.FirstWallet(user.ChainTypeSolana)
	if !ok {
		return nil, apperrors.InvalidInputError(nil, ReasonMissingSolanaWallet, "missing_solana_wallet")
	}

	amount := strings.TrimSpace(req.AmountUSDC)
	parsed, err := execution.ParseAmount(amount)
	if err != nil {
		return nil, apperrors.InvalidInputError(err, ReasonInvalidAmount, "Invalid amount_usdc")
	}
	chain, err := execution.ParseSourceChain(req.SourceChain)
	if err != nil {
		return nil, apperrors.InvalidInputError(err, ReasonInvalidSourceChain, "Invalid source_chain")
	}

	e := execution.New(userID, amount, chain, evmWallet.Address, solanaWallet.Address,
		strings.TrimSpace(req.IdempotencyKey))

	stored, duplicate, err := s.store.CreateExecution(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}
	if duplicate && !stored.SameInputs(amount, chain) {
		return nil, apperrors.ConflictError(ErrIdempotencyMismatch, "idempotency_key already used with different inputs")
	}

	metrics.ExecutionsCreated.WithLabelValues(string(chain), strconv.FormatBool(duplicate)).Inc()
	if !duplicate {
		metrics.ExecutionAmount.WithLabelValues(string(chain)).Observe(parsed.InexactFloat64())
	}

	return &execution.CreateResponse{
		ExecutionID: stored.ID,
		Status:      stored.Status,
		IsDuplicate: duplicate,
	}, nil
}

// Get returns the caller's execution snapshot
func (s *executionService) Get(ctx context.Context, userID, id string) (*execution.Response, error) {
	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return execution.ToResponse(e), nil
}

// BridgePayload returns the source chain transactions of the bridge leg
func (s *executionService) BridgePayload(
	ctx context.Context,
	userID, id, provider string,
) (*execution.BridgePayload, error) {
	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.builder.BridgePayload(ctx, e, provider)
}

// ReportEVMTx records the submitted bridge transaction and moves the execution to BRIDGED.
// Bridge settlement is not awaited.
func (s *executionService) ReportEVMTx(
	ctx context.Context,
	userID, id string,
	req *execution.ReportEVMTxRequest,
) (*execution.OKResponse, error) {
	hash := strings.TrimSpace(req.EVMTxHash)
	if hash == "" {
		return nil, apperrors.InvalidInputError(ErrMissingTxHash, ReasonMissingTxHash, "Missing or invalid evm_tx_hash")
	}

	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	update := execution.Update{EVMTxHash: &hash}
	if msgID := strings.TrimSpace(req.BridgeMessageID); msgID != "" {
		update.BridgeMessageID = &msgID
	}

	_, err = s.apply(ctx, e, execution.EventReportEVMTx, update,
		"Execution cannot accept an EVM transaction",
		func(cur *execution.Execution) bool { return cur.EVMTxHash == hash })
	if err != nil {
		return nil, err
	}
	return &execution.OKResponse{OK: true}, nil
}

// SwapPayload returns the serialized swap transaction for client side signing
func (s *executionService) SwapPayload(ctx context.Context, userID, id string) (*execution.SwapPayload, error) {
	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	tx, err := s.builder.SwapTransaction(ctx, e)
	if err != nil {
		return nil, err
	}
	return &execution.SwapPayload{SerializedTx: tx}, nil
}

// ReportSwapTx records a swap transaction the client signed and sent itself
func (s *executionService) ReportSwapTx(
	ctx context.Context,
	userID, id string,
	req *execution.ReportSwapTxRequest,
) (*execution.SwapTxResponse, error) {
	hash := strings.TrimSpace(req.SwapTxHash)
	if hash == "" {
		return nil, apperrors.InvalidInputError(ErrMissingTxHash, ReasonMissingTxHash, "Missing or invalid swap_tx_hash")
	}

	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.completeSwap(ctx, e, hash)
}

// SignAndSend has custody sign and broadcast the swap on behalf of the user,
// authorized by the user's own access token.
func (s *executionService) SignAndSend(ctx context.Context, userID, id string) (*execution.SwapTxResponse, error) {
	token, ok := auth.AccessTokenFromContext(ctx)
	if !ok {
		return nil, apperrors.UnAuthorizedError(ErrMissingAccessToken, "Not authenticated")
	}

	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.builder.SwapTransaction(ctx, e)
	if err != nil {
		return nil, err
	}
	wallet, err := s.findWallet(ctx, e)
	if err != nil {
		return nil, err
	}

	hash, err := s.custody.SignAndSend(ctx, wallet.ID, tx, privy.Authorization{UserJWT: token})
	if err != nil {
		return nil, custodyError(err)
	}
	return s.completeSwap(ctx, e, hash)
}

// SignaturePayload builds and caches the swap transaction and returns the
// custody RPC request the client must sign to authorize it.
func (s *executionService) SignaturePayload(
	ctx context.Context,
	userID, id string,
) (*execution.SignaturePayloadResponse, error) {
	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entry, err := s.buildEntry(ctx, e)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, e.ID, entry); err != nil {
		return nil, fmt.Errorf("failed to cache swap transaction: %w", err)
	}

	req := s.custody.SignAndSendRequest(entry.WalletID, entry.SerializedTx)
	return &execution.SignaturePayloadResponse{
		Payload: &execution.SignatureRequest{
			Version: signatureRequestVersion,
			Method:  req.Method,
			URL:     req.URL,
			Body:    req.Body,
			Headers: req.Headers,
		},
	}, nil
}

// SignAndSendWithSignature submits the swap with a client generated
// authorization signature. The transaction cached by SignaturePayload is used
// so the submitted body matches the signed one; an expired entry is rebuilt.
func (s *executionService) SignAndSendWithSignature(
	ctx context.Context,
	userID, id string,
	req *execution.SignAndSendWithSignatureRequest,
) (*execution.SwapTxResponse, error) {
	signature := strings.TrimSpace(req.Signature)
	if signature == "" {
		return nil, apperrors.InvalidInputError(ErrMissingSignature, ReasonMissingSignature, "Missing signature")
	}

	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !e.In(execution.SwapReady()...) {
		return nil, apperrors.InvalidStateError(nil, "Execution must be bridged before swap",
			string(e.Status), execution.StatusStrings(execution.SwapReady())...)
	}

	entry, err := s.cache.Get(ctx, e.ID)
	switch {
	case err == nil:
		metrics.TxCacheLookups.WithLabelValues("hit").Inc()
	case errors.Is(err, txcache.ErrMiss):
		metrics.TxCacheLookups.WithLabelValues("miss").Inc()
		entry, err = s.buildEntry(ctx, e)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to read cached swap transaction: %w", err)
	}

	hash, err := s.custody.SignAndSend(ctx, entry.WalletID, entry.SerializedTx, privy.Authorization{Signature: signature})
	if err != nil {
		return nil, custodyError(err)
	}

	if err := s.cache.Delete(ctx, e.ID); err != nil {
		s.logger.Warn("Failed to evict cached swap transaction",
			zap.String("execution_id", e.ID),
			zap.Error(err),
		)
	}
	return s.completeSwap(ctx, e, hash)
}

// Fail records a failure reported by the client and moves the execution to FAILED
func (s *executionService) Fail(
	ctx context.Context,
	userID, id string,
	req *execution.FailRequest,
) (*execution.Response, error) {
	code := strings.TrimSpace(req.ErrorCode)
	if code == "" {
		return nil, apperrors.InvalidInputError(ErrMissingErrorCode, ReasonMissingErrorCode, "Missing error_code")
	}
	message := apperrors.Truncate(strings.TrimSpace(req.ErrorMessage))

	e, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.apply(ctx, e, execution.EventFail,
		execution.Update{ErrorCode: &code, ErrorMessage: &message},
		"Execution is already finished",
		func(cur *execution.Execution) bool { return cur.ErrorCode == code })
	if err != nil {
		return nil, err
	}
	return execution.ToResponse(updated), nil
}

// load fetches an execution owned by userID. Foreign executions are reported as missing.
func (s *executionService) load(ctx context.Context, userID, id string) (*execution.Execution, error) {
	e, err := s.store.GetExecution(ctx, id)
	if err != nil {
		if errors.Is(err, executionstore.ErrExecutionNotFound) {
			return nil, apperrors.ResourceNotFoundError(ErrExecutionNotFound, "Not found")
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	if e.UserID != userID {
		return nil, apperrors.ResourceNotFoundError(ErrExecutionNotFound, "Not found")
	}
	return e, nil
}

func (s *executionService) completeSwap(
	ctx context.Context,
	e *execution.Execution,
	hash string,
) (*execution.SwapTxResponse, error) {
	updated, err := s.apply(ctx, e, execution.EventReportSwapTx,
		execution.Update{SwapTxHash: &hash},
		"Execution must be bridged before swap",
		func(cur *execution.Execution) bool { return cur.SwapTxHash == hash })
	if err != nil {
		return nil, err
	}
	return &execution.SwapTxResponse{SwapTxHash: updated.SwapTxHash}, nil
}

// apply moves e along event with a compare-and-swap on the accepted source
// statuses. A record already in the target state is accepted when applied
// reports the same payload was written before.
func (s *executionService) apply(
	ctx context.Context,
	e *execution.Execution,
	event execution.Event,
	update execution.Update,
	invalidMsg string,
	applied func(*execution.Execution) bool,
) (*execution.Execution, error) {
	from, to, err := execution.Transition(event)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	if e.Status == to && applied(e) {
		return e, nil
	}
	if !e.In(from...) {
		metrics.ExecutionTransitions.WithLabelValues(string(event), string(to), "invalid_state").Inc()
		return nil, apperrors.InvalidStateError(nil, invalidMsg, string(e.Status), execution.StatusStrings(from)...)
	}

	update.Status = to
	updated, err := s.store.TransitionExecution(ctx, e.ID, from, update)
	if err != nil {
		switch {
		case errors.Is(err, executionstore.ErrStatusConflict):
			if updated != nil && updated.Status == to && applied(updated) {
				return updated, nil
			}
			metrics.ExecutionTransitions.WithLabelValues(string(event), string(to), "conflict").Inc()
			return nil, apperrors.ConflictError(err, "Execution status changed concurrently")
		case errors.Is(err, executionstore.ErrExecutionNotFound):
			return nil, apperrors.ResourceNotFoundError(ErrExecutionNotFound, "Not found")
		default:
			return nil, fmt.Errorf("failed to transition execution: %w", err)
		}
	}

	metrics.ExecutionTransitions.WithLabelValues(string(event), string(to), "ok").Inc()
	if to.IsTerminal() {
		metrics.ExecutionDuration.WithLabelValues(string(to)).Observe(time.Since(updated.CreatedAt).Seconds())
	}
	return updated, nil
}

func (s *executionService) buildEntry(ctx context.Context, e *execution.Execution) (*txcache.Entry, error) {
	tx, err := s.builder.SwapTransaction(ctx, e)
	if err != nil {
		return nil, err
	}
	wallet, err := s.findWallet(ctx, e)
	if err != nil {
		return nil, err
	}
	return &txcache.Entry{WalletID: wallet.ID, SerializedTx: tx}, nil
}

func (s *executionService) findWallet(ctx context.Context, e *execution.Execution) (*privy.Wallet, error) {
	wallet, err := s.custody.FindSolanaWallet(ctx, e.UserID, e.SolanaAddress)
	if err != nil {
		if errors.Is(err, privy.ErrWalletNotFound) {
			return nil, apperrors.InvalidInputError(err, ReasonSolanaWalletNotFound, "Solana wallet not found for user")
		}
		return nil, custodyError(err)
	}
	return wallet, nil
}

// custodyError maps a custody API failure to an upstream failure.
func custodyError(err error) error {
	var apiErr *privy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.JWTRejected() {
			return apperrors.DependencyFailureError(err, ReasonWalletJWTExchangeFailed,
				"Privy rejected the token when signing the transaction (wallet JWT exchange failed)", apiErr.Body)
		}
		return apperrors.DependencyFailureError(err, ReasonCustodyFailed, "Privy request failed", apiErr.Body)
	}
	if errors.Is(err, privy.ErrMissingHash) {
		return apperrors.DependencyFailureError(err, ReasonSwapTxHashMissing, "Privy did not return transaction hash", "")
	}
	return apperrors.DependencyFailureError(err, ReasonCustodyFailed, "Privy request failed", httpclient.ErrorBody(err))
}
