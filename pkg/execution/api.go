package execution

import "time"

// CreateRequest represents an execution creation request
type CreateRequest struct {
	AmountUSDC     string `json:"amount_usdc"`
	SourceChain    string `json:"source_chain,omitzero"`
	IdempotencyKey string `json:"idempotency_key,omitzero"`
	// SlippageBps is accepted for client compatibility; slippage is fixed server side.
	SlippageBps int `json:"slippage_bps,omitzero"`
}

// CreateResponse represents an execution creation response
type CreateResponse struct {
	ExecutionID string `json:"execution_id"`
	Status      Status `json:"status"`
	IsDuplicate bool   `json:"is_duplicate"`
}

// Response is the full execution snapshot returned to its owner.
type Response struct {
	ID              string      `json:"id"`
	Status          Status      `json:"status"`
	EVMTxHash       *string     `json:"evm_tx_hash"`
	BridgeMessageID *string     `json:"bridge_message_id"`
	SwapTxHash      *string     `json:"swap_tx_hash"`
	ErrorCode       *string     `json:"error_code"`
	ErrorMessage    *string     `json:"error_message"`
	AmountUSDC      string      `json:"amount_usdc"`
	SourceChain     SourceChain `json:"source_chain"`
	EVMAddress      string      `json:"evm_address"`
	SolanaAddress   string      `json:"solana_address"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToResponse builds the client snapshot of e.
func ToResponse(e *Execution) *Response {
	return &Response{
		ID:              e.ID,
		Status:          e.Status,
		EVMTxHash:       nullable(e.EVMTxHash),
		BridgeMessageID: nullable(e.BridgeMessageID),
		SwapTxHash:      nullable(e.SwapTxHash),
		ErrorCode:       nullable(e.ErrorCode),
		ErrorMessage:    nullable(e.ErrorMessage),
		AmountUSDC:      e.AmountUSDC,
		SourceChain:     e.SourceChain,
		EVMAddress:      e.EVMAddress,
		SolanaAddress:   e.SolanaAddress,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ReportEVMTxRequest reports the submitted bridge transaction
type ReportEVMTxRequest struct {
	EVMTxHash       string `json:"evm_tx_hash"`
	BridgeMessageID string `json:"bridge_message_id,omitzero"`
}

// OKResponse acknowledges a write with no payload
type OKResponse struct {
	OK bool `json:"ok"`
}

// ReportSwapTxRequest reports the submitted swap transaction
type ReportSwapTxRequest struct {
	SwapTxHash string `json:"swap_tx_hash"`
}

// SwapTxResponse carries the swap transaction hash
type SwapTxResponse struct {
	SwapTxHash string `json:"swap_tx_hash"`
}

// FailRequest reports an unrecoverable failure observed by the client
type FailRequest struct {
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message,omitzero"`
}

// BridgePayload is the EVM transaction set the client signs for the bridge leg.
// Approval fields are set only when the route needs a prior allowance.
type BridgePayload struct {
	To            string `json:"to"`
	Data          string `json:"data"`
	Value         string `json:"value"`
	GasLimit      string `json:"gasLimit,omitempty"`
	ApprovalTo    string `json:"approval_to,omitempty"`
	ApprovalData  string `json:"approval_data,omitempty"`
	ApprovalValue string `json:"approval_value,omitempty"`
}

// NeedsApproval reports whether a separate approval transaction was emitted.
func (p *BridgePayload) NeedsApproval() bool {
	return p.ApprovalTo != ""
}

// SwapPayload is the serialized Solana transaction for the swap leg.
type SwapPayload struct {
	SerializedTx string `json:"serialized_tx"`
}

// SignAndSendWithSignatureRequest carries a client generated authorization signature
type SignAndSendWithSignatureRequest struct {
	Signature string `json:"signature"`
}

// SignatureRequest is the custody RPC request the client must sign.
type SignatureRequest struct {
	Version int               `json:"version"`
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Body    any               `json:"body"`
	Headers map[string]string `json:"headers"`
}

// SignaturePayloadResponse wraps SignatureRequest
type SignaturePayloadResponse struct {
	Payload *SignatureRequest `json:"payload"`
}
