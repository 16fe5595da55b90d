package solana

import (
	"errors"
	"testing"
)

func TestValidateAddress(t *testing.T) {
	valid := []string{
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"GoLDppdjB1vDTPSGxyMJFqdnj134yH6Prg9eqsGDiw6A",
		"11111111111111111111111111111111",
	}
	for _, addr := range valid {
		if err := ValidateAddress(addr); err != nil {
			t.Fatalf("expected %s to be valid, got %v", addr, err)
		}
	}

	if err := ValidateAddress(""); !errors.Is(err, ErrEmptyAddress) {
		t.Fatalf("expected ErrEmptyAddress, got %v", err)
	}
	for _, addr := range []string{"0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", "abc", "0OIl"} {
		if IsAddress(addr) {
			t.Fatalf("expected %s to be invalid", addr)
		}
	}
}

func TestSameAddress(t *testing.T) {
	if !SameAddress("Abc", "aBC") {
		t.Fatal("expected case-insensitive match")
	}
	if SameAddress("", "") {
		t.Fatal("empty addresses never match")
	}
}
