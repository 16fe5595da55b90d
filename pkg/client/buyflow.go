package client

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

// ClientErrorCode is the error_code reported when the flow fails before funds move.
const ClientErrorCode = "client_error"

// failReportTimeout bounds the failure report so a cancelled run still reaches the server.
const failReportTimeout = 10 * time.Second

// TxSender submits an EVM transaction. *EVMSender satisfies it.
type TxSender interface {
	Send(ctx context.Context, to, data, value, gasLimit string) (common.Hash, error)
}

// SubmittedError is returned once a transaction may have been broadcast. The
// execution is left as is so the caller can retry the named step.
type SubmittedError struct {
	ExecutionID string
	Step        string
	TxHash      string
	Err         error
}

func (e *SubmittedError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("%s for execution %s (tx %s): %v", e.Step, e.ExecutionID, e.TxHash, e.Err)
	}
	return fmt.Sprintf("%s for execution %s: %v", e.Step, e.ExecutionID, e.Err)
}

func (e *SubmittedError) Unwrap() error {
	return e.Err
}

// Retry steps carried by SubmittedError
const (
	StepReportEVMTx = "report evm-tx"
	StepSwap        = "swap"
)

// BuyFlow drives one execution: create, approve and bridge from an EVM key,
// report the hash, then custody sign-and-send for the swap.
type BuyFlow struct {
	api    *Client
	sender TxSender
	waiter *ReceiptWaiter
	logger *zap.Logger

	BridgeProvider string
	SkipSwap       bool
}

// NewBuyFlow creates a BuyFlow
func NewBuyFlow(api *Client, sender TxSender, waiter *ReceiptWaiter, logger *zap.Logger) *BuyFlow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BuyFlow{api: api, sender: sender, waiter: waiter, logger: logger}
}

// Run executes the flow and returns the final execution view. Failures before
// the bridge transaction is broadcast mark the execution FAILED. Later
// failures return a *SubmittedError and leave the execution resumable.
func (f *BuyFlow) Run(ctx context.Context, req *execution.CreateRequest) (*execution.Response, error) {
	created, err := f.api.CreateExecution(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create execution: %w", err)
	}
	id := created.ExecutionID
	f.logger.Info("Execution created", zap.String("execution_id", id))

	txHash, err := f.sendBridge(ctx, id)
	if err != nil {
		f.fail(id, err)
		return nil, err
	}

	if err := f.api.ReportEVMTx(ctx, id, &execution.ReportEVMTxRequest{EVMTxHash: txHash.Hex()}); err != nil {
		f.logger.Error("Bridge transaction sent but not reported, retry evm-tx with this hash",
			zap.String("execution_id", id),
			zap.String("tx_hash", txHash.Hex()),
			zap.Error(err),
		)
		return nil, &SubmittedError{ExecutionID: id, Step: StepReportEVMTx, TxHash: txHash.Hex(), Err: err}
	}
	f.logger.Info("Bridge transaction reported", zap.String("tx_hash", txHash.Hex()))

	if !f.SkipSwap {
		sig, err := f.api.SignAndSend(ctx, id)
		if err != nil {
			f.logger.Error("Swap did not complete, execution stays bridged",
				zap.String("execution_id", id),
				zap.Error(err),
			)
			return nil, &SubmittedError{ExecutionID: id, Step: StepSwap, Err: err}
		}
		f.logger.Info("Swap submitted", zap.String("signature", sig))
	}

	final, err := f.api.GetExecution(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get execution: %w", err)
	}
	return final, nil
}

// sendBridge sends the optional approval and the bridge transaction. It only
// returns an error when the bridge transaction was not broadcast.
func (f *BuyFlow) sendBridge(ctx context.Context, id string) (common.Hash, error) {
	payload, err := f.api.BridgePayload(ctx, id, f.BridgeProvider)
	if err != nil {
		return common.Hash{}, fmt.Errorf("bridge payload: %w", err)
	}

	if payload.NeedsApproval() {
		approval, err := f.sender.Send(ctx, payload.ApprovalTo, payload.ApprovalData, payload.ApprovalValue, "")
		if err != nil {
			return common.Hash{}, fmt.Errorf("approval: %w", err)
		}
		if _, confirmed, err := f.waiter.Wait(ctx, approval); err != nil {
			return common.Hash{}, fmt.Errorf("approval receipt: %w", err)
		} else if !confirmed {
			f.logger.Warn("Approval not confirmed yet, sending bridge transaction anyway")
		}
	}

	txHash, err := f.sender.Send(ctx, payload.To, payload.Data, payload.Value, payload.GasLimit)
	if err != nil {
		return common.Hash{}, fmt.Errorf("bridge transaction: %w", err)
	}
	return txHash, nil
}

func (f *BuyFlow) fail(id string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), failReportTimeout)
	defer cancel()

	_, err := f.api.Fail(ctx, id, &execution.FailRequest{
		ErrorCode:    ClientErrorCode,
		ErrorMessage: cause.Error(),
	})
	if err != nil {
		f.logger.Warn("Failed to mark execution failed", zap.String("execution_id", id), zap.Error(err))
	}
}
