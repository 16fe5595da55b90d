package user

import "time"

// Chain types reported by the identity provider for linked wallets.
const (
	ChainTypeEthereum = "ethereum"
	ChainTypeSolana   = "solana"
)

// embeddedWalletClients are walletClientType values of provider-custodied wallets.
var embeddedWalletClients = map[string]struct{}{
	"privy":    {},
	"privy-v2": {},
}

// Wallet is a linked wallet of a synced user, keyed by (ChainType, Address).
type Wallet struct {
	ChainType  string `json:"chainType"`
	Address    string `json:"address"`
	IsEmbedded bool   `json:"isEmbedded"`
}

func (w Wallet) key() string {
	return w.ChainType + ":" + w.Address
}

// User represents the domain model for a synced user.
type User struct {
	UserID    string
	Wallets   []Wallet
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a User from the given parameters.
func New(userID string, wallets []Wallet) *User {
	now := time.Now().UTC()
	return &User{
		UserID:    userID,
		Wallets:   wallets,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FirstWallet returns the first wallet of the given chain type.
func (u *User) FirstWallet(chainType string) (Wallet, bool) {
	for _, w := range u.Wallets {
		if w.ChainType == chainType && w.Address != "" {
			return w, true
		}
	}
	return Wallet{}, false
}

// LinkedAccount is a wallet descriptor as reported by the client SDK.
type LinkedAccount struct {
	ChainType        string `json:"chainType,omitzero"`
	Address          string `json:"address,omitzero"`
	WalletClientType string `json:"walletClientType,omitzero"`
}

// ToWallets drops descriptors missing a chain type or address and classifies
// the rest as embedded or externally owned.
func ToWallets(accounts []LinkedAccount) []Wallet {
	wallets := make([]Wallet, 0, len(accounts))
	for _, a := range accounts {
		if a.ChainType == "" || a.Address == "" {
			continue
		}
		_, embedded := embeddedWalletClients[a.WalletClientType]
		wallets = append(wallets, Wallet{
			ChainType:  a.ChainType,
			Address:    a.Address,
			IsEmbedded: embedded,
		})
	}
	return wallets
}

// MergeWallets unions incoming into existing keyed on (ChainType, Address).
// Incoming entries replace existing ones with the same key in place; new keys
// are appended in arrival order.
func MergeWallets(existing, incoming []Wallet) []Wallet {
	merged := make([]Wallet, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing)+len(incoming))

	put := func(w Wallet) {
		if i, ok := index[w.key()]; ok {
			merged[i] = w
			return
		}
		index[w.key()] = len(merged)
		merged = append(merged, w)
	}

	for _, w := range existing {
		put(w)
	}
	for _, w := range incoming {
		put(w)
	}
	return merged
}

// SyncRequest represents an identity sync request
type SyncRequest struct {
	LinkedAccounts []LinkedAccount `json:"linkedAccounts"`
}

// SyncResponse represents an identity sync response
type SyncResponse struct {
	UserID  string   `json:"user_id"`
	Wallets []Wallet `json:"wallets"`
}
