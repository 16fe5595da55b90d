package execution

import (
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// USDCDecimals is the decimal precision of USDC on both legs.
const USDCDecimals int32 = 6

const (
	// MaxAmountLength matches the amount_usdc column width.
	MaxAmountLength = 78
	// MaxAmountScale bounds the fractional digits accepted on input.
	MaxAmountScale = 18
)

var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrAmountTooSmall = errors.New("amount is below the smallest unit")
)

// ParseAmount parses a positive plain decimal amount such as "12.5".
// Exponent forms, signs and inputs wider than the stored column are rejected
// before any decimal arithmetic.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxAmountLength || !amountPattern.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > MaxAmountScale {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ToSmallestUnit scales amount by 10^decimals and truncates toward zero.
// "1.2345675" with 6 decimals yields 1234567.
func ToSmallestUnit(amount string, decimals int32) (*big.Int, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	raw := d.Shift(decimals).Truncate(0).BigInt()
	if raw.Sign() <= 0 {
		return nil, ErrAmountTooSmall
	}
	return raw, nil
}
