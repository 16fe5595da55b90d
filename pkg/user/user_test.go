package user

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestToWallets_FiltersAndClassifies(t *testing.T) {
	wallets := ToWallets([]LinkedAccount{
		{ChainType: "ethereum", Address: "0xabc", WalletClientType: "metamask"},
		{ChainType: "solana", Address: "So1", WalletClientType: "privy"},
		{ChainType: "ethereum", Address: "0xdef", WalletClientType: "privy-v2"},
		{ChainType: "", Address: "0xmissing"},
		{ChainType: "solana", Address: ""},
	})

	want := []Wallet{
		{ChainType: "ethereum", Address: "0xabc", IsEmbedded: false},
		{ChainType: "solana", Address: "So1", IsEmbedded: true},
		{ChainType: "ethereum", Address: "0xdef", IsEmbedded: true},
	}
	if !reflect.DeepEqual(wallets, want) {
		t.Fatalf("unexpected wallets:\n got %+v\nwant %+v", wallets, want)
	}
}

func TestMergeWallets_LastWriteWinsAndRetainsExisting(t *testing.T) {
	existing := []Wallet{
		{ChainType: "ethereum", Address: "0xabc", IsEmbedded: false},
		{ChainType: "solana", Address: "So1", IsEmbedded: false},
	}
	incoming := []Wallet{
		{ChainType: "solana", Address: "So1", IsEmbedded: true},
		{ChainType: "solana", Address: "So2", IsEmbedded: true},
	}

	merged := MergeWallets(existing, incoming)
	want := []Wallet{
		{ChainType: "ethereum", Address: "0xabc", IsEmbedded: false},
		{ChainType: "solana", Address: "So1", IsEmbedded: true},
		{ChainType: "solana", Address: "So2", IsEmbedded: true},
	}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected merge:\n got %+v\nwant %+v", merged, want)
	}
}

func TestUser_FirstWallet(t *testing.T) {
	u := New("did:privy:1", []Wallet{
		{ChainType: "solana", Address: "So1"},
		{ChainType: "ethereum", Address: "0xabc"},
		{ChainType: "ethereum", Address: "0xdef"},
	})

	w, ok := u.FirstWallet(ChainTypeEthereum)
	if !ok || w.Address != "0xabc" {
		t.Fatalf("expected first ethereum wallet 0xabc, got %+v %v", w, ok)
	}
	if _, ok := New("u", nil).FirstWallet(ChainTypeSolana); ok {
		t.Fatal("expected no solana wallet")
	}
}

func genLinkedAccount() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("ethereum", "solana", ""),
		gen.OneConstOf("0xabc", "0xdef", "So1", "So2", ""),
		gen.OneConstOf("privy", "privy-v2", "metamask", "phantom", ""),
	).Map(func(values []any) LinkedAccount {
		return LinkedAccount{
			ChainType:        values[0].(string),
			Address:          values[1].(string),
			WalletClientType: values[2].(string),
		}
	})
}

func TestMergeWallets_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("syncing the same accounts twice equals syncing once", prop.ForAll(
		func(existing, accounts []LinkedAccount) bool {
			base := ToWallets(existing)
			once := MergeWallets(base, ToWallets(accounts))
			twice := MergeWallets(once, ToWallets(accounts))
			return reflect.DeepEqual(once, twice)
		},
		gen.SliceOf(genLinkedAccount()),
		gen.SliceOf(genLinkedAccount()),
	))

	properties.Property("existing keys are never dropped", prop.ForAll(
		func(existing, accounts []LinkedAccount) bool {
			base := ToWallets(existing)
			merged := MergeWallets(base, ToWallets(accounts))
			keys := make(map[string]bool, len(merged))
			for _, w := range merged {
				keys[w.key()] = true
			}
			for _, w := range base {
				if !keys[w.key()] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genLinkedAccount()),
		gen.SliceOf(genLinkedAccount()),
	))

	properties.Property("merged keys are unique", prop.ForAll(
		func(accounts []LinkedAccount) bool {
			merged := MergeWallets(nil, ToWallets(accounts))
			seen := make(map[string]bool, len(merged))
			for _, w := range merged {
				if seen[w.key()] {
					return false
				}
				seen[w.key()] = true
			}
			return true
		},
		gen.SliceOf(genLinkedAccount()),
	))

	properties.TestingRun(t)
}
