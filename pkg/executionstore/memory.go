package executionstore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

type memoryStore struct {
	mu          sync.RWMutex
	executions  map[string]*execution.Execution
	idempotency map[string]string
}

// NewMemoryStore creates an in-process execution store. State is lost on restart.
func NewMemoryStore() *memoryStore {
	return &memoryStore{
		executions:  make(map[string]*execution.Execution),
		idempotency: make(map[string]string),
	}
}

func idempotencyIndex(userID, key string) string {
	return userID + "\x00" + key
}

func clone(e *execution.Execution) *execution.Execution {
	c := *e
	return &c
}

func (s *memoryStore) CreateExecution(_ context.Context, e *execution.Execution) (*execution.Execution, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.IdempotencyKey != "" {
		idx := idempotencyIndex(e.UserID, e.IdempotencyKey)
		if id, ok := s.idempotency[idx]; ok {
			return clone(s.executions[id]), true, nil
		}
		s.idempotency[idx] = e.ID
	}

	if _, exists := s.executions[e.ID]; exists {
		return nil, false, fmt.Errorf("failed to create execution: duplicate id %s", e.ID)
	}
	s.executions[e.ID] = clone(e)
	return clone(e), false, nil
}

func (s *memoryStore) GetExecution(_ context.Context, id string) (*execution.Execution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.executions[id]
	if !ok {
		return nil, ErrExecutionNotFound
	}
	return clone(e), nil
}

func (s *memoryStore) TransitionExecution(
	_ context.Context,
	id string,
	from []execution.Status,
	u execution.Update,
) (*execution.Execution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.executions[id]
	if !ok {
		return nil, ErrExecutionNotFound
	}
	if !slices.Contains(from, e.Status) {
		return clone(e), ErrStatusConflict
	}

	e.Apply(u, time.Now().UTC())
	return clone(e), nil
}

func (s *memoryStore) ListExecutions(_ context.Context, opts ...QueryOption) ([]*execution.Execution, error) {
	options := buildQueryOptions(opts)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*execution.Execution
	for _, e := range s.executions {
		if options.UserID != nil && e.UserID != *options.UserID {
			continue
		}
		if len(options.Statuses) > 0 && !slices.Contains(options.Statuses, e.Status) {
			continue
		}
		if options.UpdatedBefore != nil && !e.UpdatedAt.Before(*options.UpdatedBefore) {
			continue
		}
		out = append(out, clone(e))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if options.Limit > 0 && len(out) > options.Limit {
		out = out[:options.Limit]
	}
	return out, nil
}
