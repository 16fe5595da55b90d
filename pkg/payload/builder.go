// Package payload builds the unsigned transactions of both execution legs:
// the EVM bridge transaction (with its optional allowance approval) and the
// serialized Solana swap transaction.
package payload

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
	"github.com/kanzfinance/kanz-middleware/pkg/httpclient"
	"github.com/kanzfinance/kanz-middleware/pkg/jupiter"
	"github.com/kanzfinance/kanz-middleware/pkg/lifi"
	"github.com/kanzfinance/kanz-middleware/pkg/solana"
)

// ProviderLiFi is the only supported bridge provider.
const ProviderLiFi = "lifi"

// Upstream failure reasons
const (
	ReasonBridgeQuoteFailed = "bridge_quote_failed"
	ReasonBridgeStepFailed  = "bridge_step_failed"
	ReasonBridgeTxMissing   = "bridge_tx_missing"
	ReasonBridgeTxInvalid   = "bridge_tx_invalid"
	ReasonSwapQuoteFailed   = "swap_quote_failed"
	ReasonSwapBuildFailed   = "swap_build_failed"
	ReasonSwapTxMissing     = "swap_tx_missing"
)

const erc20ApproveABI = `[{"constant":false,"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"type":"function"}]`

var erc20ABI = mustParseABI(erc20ApproveABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI: %v", err))
	}
	return parsed
}

// Builder turns an execution into signable payloads
type Builder struct {
	lifi       lifi.Client
	jupiter    jupiter.Client
	lifiCfg    config.LiFiConfig
	jupiterCfg config.JupiterConfig
}

// NewBuilder creates a payload builder
func NewBuilder(lifiClient lifi.Client, jupiterClient jupiter.Client, lifiCfg *config.LiFiConfig, jupiterCfg *config.JupiterConfig) *Builder {
	return &Builder{
		lifi:       lifiClient,
		jupiter:    jupiterClient,
		lifiCfg:    *lifiCfg,
		jupiterCfg: *jupiterCfg,
	}
}

// BridgePayload quotes the bridge leg of e and returns the transaction set the
// user signs on the source chain.
func (b *Builder) BridgePayload(ctx context.Context, e *execution.Execution, provider string) (*execution.BridgePayload, error) {
	if provider != "" && !strings.EqualFold(provider, ProviderLiFi) {
		return nil, apperrors.NotSupportedError(nil, "Only bridge_provider=lifi is supported")
	}
	if e.SourceChain != execution.ChainBase {
		return nil, apperrors.NotSupportedError(nil,
			fmt.Sprintf("Bridge payload only supported for source_chain=base, got %s", e.SourceChain))
	}

	amountRaw, err := execution.ToSmallestUnit(e.AmountUSDC, execution.USDCDecimals)
	if err != nil {
		return nil, apperrors.InvalidInputError(err, "invalid_amount", "amount_usdc is too small to bridge")
	}

	step, err := b.lifi.Quote(ctx, &lifi.QuoteRequest{
		FromChain:   b.lifiCfg.FromChainID,
		ToChain:     b.lifiCfg.ToChainID,
		FromToken:   b.lifiCfg.FromToken,
		ToToken:     b.lifiCfg.ToToken,
		FromAddress: e.EVMAddress,
		ToAddress:   e.SolanaAddress,
		FromAmount:  amountRaw.String(),
	})
	if err != nil {
		return nil, apperrors.DependencyFailureError(err, ReasonBridgeQuoteFailed, "LiFi quote failed", httpclient.ErrorBody(err))
	}

	if !step.HasTransactionData() {
		step, err = b.lifi.StepTransaction(ctx, step)
		if err != nil {
			return nil, apperrors.DependencyFailureError(err, ReasonBridgeStepFailed, "LiFi stepTransaction failed", httpclient.ErrorBody(err))
		}
	}

	tx := step.TransactionRequest
	if tx == nil || tx.To == "" || tx.Data == "" {
		return nil, apperrors.DependencyFailureError(nil, ReasonBridgeTxMissing, "LiFi did not return transaction data", "")
	}

	value, err := normalizeValue(tx.Value)
	if err != nil {
		return nil, apperrors.DependencyFailureError(err, ReasonBridgeTxInvalid, "LiFi returned an invalid transaction value", string(tx.Value))
	}

	payload := &execution.BridgePayload{
		To:       tx.To,
		Data:     tx.Data,
		Value:    value,
		GasLimit: string(tx.GasLimit),
	}

	if err := b.addApproval(payload, step, amountRaw); err != nil {
		return nil, err
	}
	return payload, nil
}

// addApproval emits a separate allowance transaction when the route spends an
// ERC-20 through a spender contract. It is never batched with the bridge call
// since the allowance owner must be the user.
func (b *Builder) addApproval(payload *execution.BridgePayload, step *lifi.Step, amountRaw *big.Int) error {
	spender := step.Estimate.ApprovalAddress
	token := step.Action.FromToken.Address
	if spender == "" || token == "" || isZeroAddress(token) {
		return nil
	}
	if !common.IsHexAddress(spender) || !common.IsHexAddress(token) {
		return apperrors.DependencyFailureError(nil, ReasonBridgeTxInvalid, "LiFi returned an invalid approval route",
			fmt.Sprintf("spender=%s token=%s", spender, token))
	}

	amount := amountRaw
	if step.Action.FromAmount != "" {
		parsed, ok := new(big.Int).SetString(step.Action.FromAmount, 0)
		if !ok || parsed.Sign() < 0 {
			return apperrors.DependencyFailureError(nil, ReasonBridgeTxInvalid, "LiFi returned an invalid approval amount", step.Action.FromAmount)
		}
		amount = parsed
	}

	data, err := encodeApprove(common.HexToAddress(spender), amount)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	payload.ApprovalTo = token
	payload.ApprovalData = data
	payload.ApprovalValue = "0x0"
	return nil
}

func encodeApprove(spender common.Address, amount *big.Int) (string, error) {
	data, err := erc20ABI.Pack("approve", spender, amount)
	if err != nil {
		return "", fmt.Errorf("failed to pack approve: %w", err)
	}
	return hexutil.Encode(data), nil
}

func isZeroAddress(addr string) bool {
	return common.IsHexAddress(addr) && common.HexToAddress(addr) == (common.Address{})
}

// normalizeValue renders a native value as 0x-prefixed hex, defaulting to 0x0.
func normalizeValue(v lifi.Quantity) (string, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return "0x0", nil
	}
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if len(s) == 2 {
			return "0x0", nil
		}
		base, digits = 16, s[2:]
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok || n.Sign() < 0 || n.BitLen() > 256 {
		return "", fmt.Errorf("invalid value %q", s)
	}
	return hexutil.EncodeBig(n), nil
}

// SwapTransaction quotes and builds the Solana swap of e and returns the
// base64 serialized transaction.
func (b *Builder) SwapTransaction(ctx context.Context, e *execution.Execution) (string, error) {
	if !e.In(execution.SwapReady()...) {
		return "", apperrors.InvalidStateError(nil, "Execution must be bridged before swap",
			string(e.Status), execution.StatusStrings(execution.SwapReady())...)
	}
	if !b.jupiter.Configured() {
		return "", apperrors.UnavailableError(jupiter.ErrNotConfigured, "Jupiter API key not configured")
	}
	if err := solana.ValidateAddress(e.SolanaAddress); err != nil {
		return "", apperrors.InvalidInputError(err, "invalid_solana_address", "execution Solana address is not a valid public key")
	}

	amountRaw, err := execution.ToSmallestUnit(e.AmountUSDC, execution.USDCDecimals)
	if err != nil {
		return "", apperrors.InvalidInputError(err, "invalid_amount", "amount_usdc is too small to swap")
	}

	quote, err := b.jupiter.Quote(ctx, &jupiter.QuoteRequest{
		InputMint:   b.jupiterCfg.InputMint,
		OutputMint:  b.jupiterCfg.OutputMint,
		Amount:      amountRaw.String(),
		SlippageBps: b.jupiterCfg.SlippageBps,
	})
	if err != nil {
		if errors.Is(err, jupiter.ErrNotConfigured) {
			return "", apperrors.UnavailableError(err, "Jupiter API key not configured")
		}
		return "", apperrors.DependencyFailureError(err, ReasonSwapQuoteFailed, "Jupiter quote failed", httpclient.ErrorBody(err))
	}

	swap, err := b.jupiter.BuildSwap(ctx, quote, e.SolanaAddress)
	if err != nil {
		if errors.Is(err, jupiter.ErrNotConfigured) {
			return "", apperrors.UnavailableError(err, "Jupiter API key not configured")
		}
		return "", apperrors.DependencyFailureError(err, ReasonSwapBuildFailed, "Jupiter swap build failed", httpclient.ErrorBody(err))
	}
	if swap.SwapTransaction == "" {
		return "", apperrors.DependencyFailureError(nil, ReasonSwapTxMissing, "Jupiter did not return swap transaction", "")
	}
	return swap.SwapTransaction, nil
}
