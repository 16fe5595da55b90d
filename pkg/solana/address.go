// Package solana holds Solana chain constants and address helpers.
package solana

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

// MainnetCAIP2 identifies Solana mainnet-beta in CAIP-2 form.
const MainnetCAIP2 = "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp"

const publicKeySize = 32

var (
	ErrEmptyAddress   = errors.New("empty solana address")
	ErrInvalidAddress = errors.New("invalid solana address")
)

// ValidateAddress checks that address is a base58 encoded 32 byte public key.
func ValidateAddress(address string) error {
	if address == "" {
		return ErrEmptyAddress
	}
	decoded := base58.Decode(address)
	if len(decoded) != publicKeySize {
		return ErrInvalidAddress
	}
	return nil
}

// IsAddress reports whether address is a valid Solana public key.
func IsAddress(address string) bool {
	return ValidateAddress(address) == nil
}

// SameAddress compares two addresses case-insensitively.
func SameAddress(a, b string) bool {
	return a != "" && strings.EqualFold(a, b)
}
