// Package execution holds the Execution domain model and its transition graph.
package execution

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an Execution.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusBridging  Status = "BRIDGING"
	StatusBridged   Status = "BRIDGED"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// IsTerminal reports whether no further transition can leave s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// SourceChain is the EVM chain the bridge leg starts from.
type SourceChain string

const (
	ChainBase  SourceChain = "base"
	ChainMonad SourceChain = "monad"
)

var (
	ErrInvalidSourceChain = errors.New("invalid source chain")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// ParseSourceChain lower-cases s and defaults to base when empty.
func ParseSourceChain(s string) (SourceChain, error) {
	chain := SourceChain(strings.ToLower(strings.TrimSpace(s)))
	if chain == "" {
		return ChainBase, nil
	}
	switch chain {
	case ChainBase, ChainMonad:
		return chain, nil
	default:
		return "", ErrInvalidSourceChain
	}
}

// Event is an externally reported fact that moves an Execution forward.
type Event string

const (
	EventReportEVMTx  Event = "report_evm_tx"
	EventReportSwapTx Event = "report_swap_tx"
	EventFail         Event = "fail"
)

type transition struct {
	from []Status
	to   Status
}

// Reporting the EVM hash moves straight to BRIDGED; nothing here waits for
// bridge settlement. BRIDGING is accepted as a source so a future
// confirmation step can slot in without changing callers.
var transitions = map[Event]transition{
	EventReportEVMTx:  {from: []Status{StatusPending, StatusBridging}, to: StatusBridged},
	EventReportSwapTx: {from: []Status{StatusBridged, StatusBridging}, to: StatusCompleted},
	EventFail:         {from: []Status{StatusPending, StatusBridging, StatusBridged}, to: StatusFailed},
}

// Transition returns the source statuses that accept event and the target status.
func Transition(event Event) (from []Status, to Status, err error) {
	t, ok := transitions[event]
	if !ok {
		return nil, "", ErrInvalidTransition
	}
	return slices.Clone(t.from), t.to, nil
}

// SwapReady lists the statuses in which a swap payload may be built.
func SwapReady() []Status {
	return []Status{StatusBridged, StatusBridging}
}

// StatusStrings converts statuses for error payloads.
func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// Execution is one user-initiated bridge-then-swap record.
type Execution struct {
	ID             string
	UserID         string
	Status         Status
	AmountUSDC     string
	SourceChain    SourceChain
	EVMAddress     string
	SolanaAddress  string
	IdempotencyKey string

	EVMTxHash       string
	BridgeMessageID string
	SwapTxHash      string
	ErrorCode       string
	ErrorMessage    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a PENDING Execution snapshotting the given wallet addresses.
func New(userID, amountUSDC string, chain SourceChain, evmAddress, solanaAddress, idempotencyKey string) *Execution {
	now := time.Now().UTC()
	return &Execution{
		ID:             uuid.NewString(),
		UserID:         userID,
		Status:         StatusPending,
		AmountUSDC:     amountUSDC,
		SourceChain:    chain,
		EVMAddress:     evmAddress,
		SolanaAddress:  solanaAddress,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// In reports whether the execution status is one of statuses.
func (e *Execution) In(statuses ...Status) bool {
	return slices.Contains(statuses, e.Status)
}

// SameInputs reports whether e was created from the same request inputs.
func (e *Execution) SameInputs(amountUSDC string, chain SourceChain) bool {
	return e.AmountUSDC == amountUSDC && e.SourceChain == chain
}

// Update carries the fields a transition writes. Nil pointers are left untouched.
type Update struct {
	Status          Status
	EVMTxHash       *string
	BridgeMessageID *string
	SwapTxHash      *string
	ErrorCode       *string
	ErrorMessage    *string
}

// Apply writes u onto e and refreshes UpdatedAt.
func (e *Execution) Apply(u Update, now time.Time) {
	e.Status = u.Status
	if u.EVMTxHash != nil {
		e.EVMTxHash = *u.EVMTxHash
	}
	if u.BridgeMessageID != nil {
		e.BridgeMessageID = *u.BridgeMessageID
	}
	if u.SwapTxHash != nil {
		e.SwapTxHash = *u.SwapTxHash
	}
	if u.ErrorCode != nil {
		e.ErrorCode = *u.ErrorCode
	}
	if u.ErrorMessage != nil {
		e.ErrorMessage = *u.ErrorMessage
	}
	e.UpdatedAt = now
}
