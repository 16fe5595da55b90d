package executionstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

// ExecutionDao is a data access object that maps directly to the 'executions' table in PostgreSQL.
type ExecutionDao struct {
	bun.BaseModel   `bun:"table:executions,alias:e"`
	ID              string    `bun:"id,pk,type:varchar(36)"`
	UserID          string    `bun:"user_id,notnull,type:varchar(255),unique:executions_user_idempotency"`
	IdempotencyKey  *string   `bun:"idempotency_key,type:varchar(255),unique:executions_user_idempotency"`
	Status          string    `bun:"status,notnull,type:varchar(16)"`
	AmountUSDC      string    `bun:"amount_usdc,notnull,type:varchar(78)"`
	SourceChain     string    `bun:"source_chain,notnull,type:varchar(16)"`
	EVMAddress      string    `bun:"evm_address,notnull,type:varchar(128)"`
	SolanaAddress   string    `bun:"solana_address,notnull,type:varchar(128)"`
	EVMTxHash       *string   `bun:"evm_tx_hash,type:varchar(128)"`
	BridgeMessageID *string   `bun:"bridge_message_id,type:varchar(255)"`
	SwapTxHash      *string   `bun:"swap_tx_hash,type:varchar(128)"`
	ErrorCode       *string   `bun:"error_code,type:varchar(64)"`
	ErrorMessage    *string   `bun:"error_message,type:text"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toExecutionDao converts an execution.Execution to ExecutionDao.
func toExecutionDao(e *execution.Execution) *ExecutionDao {
	return &ExecutionDao{
		ID:              e.ID,
		UserID:          e.UserID,
		IdempotencyKey:  optional(e.IdempotencyKey),
		Status:          string(e.Status),
		AmountUSDC:      e.AmountUSDC,
		SourceChain:     string(e.SourceChain),
		EVMAddress:      e.EVMAddress,
		SolanaAddress:   e.SolanaAddress,
		EVMTxHash:       optional(e.EVMTxHash),
		BridgeMessageID: optional(e.BridgeMessageID),
		SwapTxHash:      optional(e.SwapTxHash),
		ErrorCode:       optional(e.ErrorCode),
		ErrorMessage:    optional(e.ErrorMessage),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// toExecution converts an ExecutionDao to execution.Execution.
func toExecution(dao *ExecutionDao) *execution.Execution {
	return &execution.Execution{
		ID:              dao.ID,
		UserID:          dao.UserID,
		IdempotencyKey:  deref(dao.IdempotencyKey),
		Status:          execution.Status(dao.Status),
		AmountUSDC:      dao.AmountUSDC,
		SourceChain:     execution.SourceChain(dao.SourceChain),
		EVMAddress:      dao.EVMAddress,
		SolanaAddress:   dao.SolanaAddress,
		EVMTxHash:       deref(dao.EVMTxHash),
		BridgeMessageID: deref(dao.BridgeMessageID),
		SwapTxHash:      deref(dao.SwapTxHash),
		ErrorCode:       deref(dao.ErrorCode),
		ErrorMessage:    deref(dao.ErrorMessage),
		CreatedAt:       dao.CreatedAt.UTC(),
		UpdatedAt:       dao.UpdatedAt.UTC(),
	}
}
