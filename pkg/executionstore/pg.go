package executionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the execution store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateExecution(ctx context.Context, e *execution.Execution) (*execution.Execution, bool, error) {
	dao := toExecutionDao(e)

	query := s.db.NewInsert().
		Model(dao).
		Returning("NULL")
	if dao.IdempotencyKey != nil {
		query = query.On("CONFLICT (user_id, idempotency_key) DO NOTHING")
	}

	res, err := query.Exec(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create execution: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read insert result: %w", err)
	}
	if inserted == 1 {
		return toExecution(dao), false, nil
	}

	existing := new(ExecutionDao)
	err = s.db.NewSelect().
		Model(existing).
		Where("user_id = ?", dao.UserID).
		Where("idempotency_key = ?", *dao.IdempotencyKey).
		Scan(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load execution by idempotency key: %w", err)
	}
	return toExecution(existing), true, nil
}

func (s *pgStore) GetExecution(ctx context.Context, id string) (*execution.Execution, error) {
	dao := new(ExecutionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExecutionNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return toExecution(dao), nil
}

func (s *pgStore) TransitionExecution(
	ctx context.Context,
	id string,
	from []execution.Status,
	u execution.Update,
) (*execution.Execution, error) {
	if len(from) == 0 {
		return nil, fmt.Errorf("transition of %s needs at least one source status", id)
	}

	query := s.db.NewUpdate().
		Model((*ExecutionDao)(nil)).
		Set("status = ?", string(u.Status)).
		Set("updated_at = ?", time.Now().UTC())
	if u.EVMTxHash != nil {
		query = query.Set("evm_tx_hash = ?", *u.EVMTxHash)
	}
	if u.BridgeMessageID != nil {
		query = query.Set("bridge_message_id = ?", *u.BridgeMessageID)
	}
	if u.SwapTxHash != nil {
		query = query.Set("swap_tx_hash = ?", *u.SwapTxHash)
	}
	if u.ErrorCode != nil {
		query = query.Set("error_code = ?", *u.ErrorCode)
	}
	if u.ErrorMessage != nil {
		query = query.Set("error_message = ?", *u.ErrorMessage)
	}

	res, err := query.
		Where("id = ?", id).
		Where("status IN (?)", bun.In(execution.StatusStrings(from))).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition execution: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}

	current, err := s.GetExecution(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return current, ErrStatusConflict
	}
	return current, nil
}

func (s *pgStore) ListExecutions(ctx context.Context, opts ...QueryOption) ([]*execution.Execution, error) {
	options := buildQueryOptions(opts)

	var daos []ExecutionDao
	query := s.db.NewSelect().Model(&daos)

	if options.UserID != nil {
		query = query.Where("user_id = ?", *options.UserID)
	}
	if len(options.Statuses) > 0 {
		query = query.Where("status IN (?)", bun.In(execution.StatusStrings(options.Statuses)))
	}
	if options.UpdatedBefore != nil {
		query = query.Where("updated_at < ?", *options.UpdatedBefore)
	}
	if options.Limit > 0 {
		query = query.Limit(options.Limit)
	}

	if err := query.Order("created_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	executions := make([]*execution.Execution, len(daos))
	for i := range daos {
		executions[i] = toExecution(&daos[i])
	}
	return executions, nil
}
