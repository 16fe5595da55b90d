package lifi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Quantity is a numeric field LiFi renders either as a JSON string (decimal
// or 0x-hex) or as a JSON number. It keeps the textual form.
type Quantity string

// UnmarshalJSON accepts strings, numbers and null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("invalid quantity %s: %w", data, err)
	}
	*q = Quantity(n.String())
	return nil
}

// QuoteRequest holds the parameters of GET /v1/quote
type QuoteRequest struct {
	FromChain   uint64
	ToChain     uint64
	FromToken   string
	ToToken     string
	FromAddress string
	ToAddress   string
	// FromAmount is in the source token's smallest unit.
	FromAmount string
}

// Token is a token descriptor inside a step action
type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol,omitempty"`
	Decimals int    `json:"decimals,omitempty"`
	ChainID  uint64 `json:"chainId,omitempty"`
}

// Action describes what a step moves
type Action struct {
	FromChainID uint64 `json:"fromChainId,omitempty"`
	ToChainID   uint64 `json:"toChainId,omitempty"`
	FromToken   Token  `json:"fromToken"`
	ToToken     Token  `json:"toToken"`
	FromAmount  string `json:"fromAmount,omitempty"`
}

// Estimate carries the route estimate, including the allowance spender
type Estimate struct {
	ApprovalAddress string `json:"approvalAddress,omitempty"`
	ToAmount        string `json:"toAmount,omitempty"`
	ToAmountMin     string `json:"toAmountMin,omitempty"`
}

// TransactionRequest is the EVM transaction that executes a step
type TransactionRequest struct {
	To       string   `json:"to,omitempty"`
	Data     string   `json:"data,omitempty"`
	Value    Quantity `json:"value,omitempty"`
	GasLimit Quantity `json:"gasLimit,omitempty"`
	GasPrice Quantity `json:"gasPrice,omitempty"`
	ChainID  uint64   `json:"chainId,omitempty"`
	From     string   `json:"from,omitempty"`
}

// Step is a LiFi route step. The raw upstream document is retained so that
// it can be posted back unchanged to materialize the transaction.
type Step struct {
	ID                 string              `json:"id,omitempty"`
	Type               string              `json:"type,omitempty"`
	Tool               string              `json:"tool,omitempty"`
	Action             Action              `json:"action"`
	Estimate           Estimate            `json:"estimate"`
	TransactionRequest *TransactionRequest `json:"transactionRequest,omitempty"`

	raw json.RawMessage
}

type stepFields Step

// UnmarshalJSON decodes the typed fields and keeps the raw document.
func (s *Step) UnmarshalJSON(data []byte) error {
	var fields stepFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*s = Step(fields)
	s.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the raw upstream document when available.
func (s Step) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	return json.Marshal(stepFields(s))
}

// HasTransactionData reports whether the step carries executable calldata.
func (s *Step) HasTransactionData() bool {
	return s.TransactionRequest != nil && s.TransactionRequest.Data != ""
}
