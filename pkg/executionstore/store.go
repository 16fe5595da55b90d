// Package executionstore persists executions with compare-and-swap status transitions.
package executionstore

import (
	"context"
	"errors"
	"time"

	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

var (
	// ErrExecutionNotFound is returned when no execution has the requested id.
	ErrExecutionNotFound = errors.New("execution not found")
	// ErrStatusConflict is returned when a transition's expected status no longer holds.
	ErrStatusConflict = errors.New("execution status changed concurrently")
)

// Store defines the interface for execution persistence
type Store interface {
	// CreateExecution stores e. When e carries an idempotency key already used by
	// the same user, the stored execution is returned with duplicate set.
	CreateExecution(ctx context.Context, e *execution.Execution) (stored *execution.Execution, duplicate bool, err error)
	GetExecution(ctx context.Context, id string) (*execution.Execution, error)
	// TransitionExecution applies u only if the current status is one of from.
	TransitionExecution(ctx context.Context, id string, from []execution.Status, u execution.Update) (*execution.Execution, error)
	ListExecutions(ctx context.Context, opts ...QueryOption) ([]*execution.Execution, error)
}

// QueryOptions defines options for listing executions
type QueryOptions struct {
	UserID        *string
	Statuses      []execution.Status
	UpdatedBefore *time.Time
	Limit         int
}

// QueryOption is a functional option for listing executions
type QueryOption func(*QueryOptions)

// WithUserID restricts results to one owner
func WithUserID(userID string) QueryOption {
	return func(opts *QueryOptions) {
		opts.UserID = &userID
	}
}

// WithStatuses restricts results to the given statuses
func WithStatuses(statuses ...execution.Status) QueryOption {
	return func(opts *QueryOptions) {
		opts.Statuses = statuses
	}
}

// WithUpdatedBefore restricts results to executions not touched since t
func WithUpdatedBefore(t time.Time) QueryOption {
	return func(opts *QueryOptions) {
		opts.UpdatedBefore = &t
	}
}

// WithLimit caps the number of results
func WithLimit(limit int) QueryOption {
	return func(opts *QueryOptions) {
		opts.Limit = limit
	}
}

func buildQueryOptions(opts []QueryOption) *QueryOptions {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
