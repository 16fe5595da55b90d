package execution

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceChain(t *testing.T) {
	cases := map[string]SourceChain{
		"":       ChainBase,
		"base":   ChainBase,
		"BASE":   ChainBase,
		" Monad": ChainMonad,
	}
	for in, want := range cases {
		got, err := ParseSourceChain(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSourceChain("ethereum")
	require.ErrorIs(t, err, ErrInvalidSourceChain)
}

func TestNew_SnapshotsInputs(t *testing.T) {
	e := New("did:privy:u1", "50", ChainBase, "0xabc", "So1", "key-1")

	require.NotEmpty(t, e.ID)
	assert.Equal(t, StatusPending, e.Status)
	assert.Equal(t, "50", e.AmountUSDC)
	assert.Equal(t, ChainBase, e.SourceChain)
	assert.Equal(t, "0xabc", e.EVMAddress)
	assert.Equal(t, "So1", e.SolanaAddress)
	assert.Equal(t, "key-1", e.IdempotencyKey)
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
	assert.Empty(t, e.SwapTxHash)

	other := New("did:privy:u1", "50", ChainBase, "0xabc", "So1", "")
	assert.NotEqual(t, e.ID, other.ID)
}

func TestTransition_Graph(t *testing.T) {
	from, to, err := Transition(EventReportEVMTx)
	require.NoError(t, err)
	assert.Equal(t, StatusBridged, to)
	assert.ElementsMatch(t, []Status{StatusPending, StatusBridging}, from)

	from, to, err = Transition(EventReportSwapTx)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, to)
	assert.ElementsMatch(t, []Status{StatusBridged, StatusBridging}, from)

	from, to, err = Transition(EventFail)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, to)
	for _, s := range from {
		assert.False(t, s.IsTerminal(), "terminal status %s must not be a source", s)
	}

	_, _, err = Transition("teleport")
	require.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestTransition_NeverLeavesTerminal(t *testing.T) {
	for _, event := range []Event{EventReportEVMTx, EventReportSwapTx, EventFail} {
		from, _, err := Transition(event)
		require.NoError(t, err)
		for _, s := range from {
			assert.NotEqual(t, StatusCompleted, s)
			assert.NotEqual(t, StatusFailed, s)
		}
	}
}

func TestExecution_Apply(t *testing.T) {
	e := New("u", "1", ChainBase, "0xabc", "So1", "")
	hash := "0xhash"
	now := e.CreatedAt.Add(time.Minute)

	e.Apply(Update{Status: StatusBridged, EVMTxHash: &hash}, now)

	assert.Equal(t, StatusBridged, e.Status)
	assert.Equal(t, hash, e.EVMTxHash)
	assert.Empty(t, e.SwapTxHash)
	assert.Equal(t, now, e.UpdatedAt)
	assert.True(t, e.In(SwapReady()...))
}

func TestToResponse_NullsEmptyFields(t *testing.T) {
	e := New("u", "1.5", ChainMonad, "0xabc", "So1", "")
	resp := ToResponse(e)

	assert.Nil(t, resp.EVMTxHash)
	assert.Nil(t, resp.SwapTxHash)
	assert.Nil(t, resp.ErrorCode)
	assert.Equal(t, "1.5", resp.AmountUSDC)
	assert.Equal(t, ChainMonad, resp.SourceChain)
}

func TestToSmallestUnit(t *testing.T) {
	cases := map[string]string{
		"1.2345675": "1234567",
		"50":        "50000000",
		"0.000001":  "1",
		"0.9999999": "999999",
		"100":       "100000000",
		" 2.5 ":     "2500000",
	}
	for in, want := range cases {
		got, err := ToSmallestUnit(in, USDCDecimals)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	for _, in := range []string{"", "abc", "0", "-1", "NaN"} {
		_, err := ToSmallestUnit(in, USDCDecimals)
		require.ErrorIs(t, err, ErrInvalidAmount, in)
	}

	_, err := ToSmallestUnit("0.0000001", USDCDecimals)
	require.ErrorIs(t, err, ErrAmountTooSmall)
}

func TestParseAmount_RejectsNonPlainDecimals(t *testing.T) {
	rejected := []string{
		"1e2",
		"1E2",
		"1e8000000",
		"1e-999999999",
		"+5",
		".5",
		"5.",
		"0x10",
		"1_000",
		"1,5",
		"0.0000000000000000001",
		strings.Repeat("9", MaxAmountLength+1),
	}
	for _, in := range rejected {
		start := time.Now()
		_, err := ParseAmount(in)
		require.ErrorIs(t, err, ErrInvalidAmount, in)
		assert.Less(t, time.Since(start), 100*time.Millisecond, in)
	}

	for _, in := range []string{"0.000000000000000001", strings.Repeat("9", MaxAmountLength)} {
		_, err := ParseAmount(in)
		require.NoError(t, err, in)
	}
}

func TestToSmallestUnit_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("never exceeds the scaled amount", prop.ForAll(
		func(whole uint32, frac uint32) bool {
			amount := decimal.New(int64(whole), 0).Add(decimal.New(int64(frac), -9))
			if !amount.IsPositive() {
				return true
			}
			raw, err := ToSmallestUnit(amount.String(), USDCDecimals)
			if err != nil {
				return errors.Is(err, ErrAmountTooSmall)
			}
			scaled := amount.Shift(USDCDecimals)
			rawDec := decimal.NewFromBigInt(raw, 0)
			return rawDec.LessThanOrEqual(scaled) && scaled.Sub(rawDec).LessThan(decimal.NewFromInt(1))
		},
		gen.UInt32Range(0, 1_000_000),
		gen.UInt32Range(0, 999_999_999),
	))

	properties.TestingRun(t)
}
