package client

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// EVMBackend is the subset of *ethclient.Client needed to submit transactions
type EVMBackend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// EVMSender signs and submits payload transactions from one key
type EVMSender struct {
	backend EVMBackend
	key     *ecdsa.PrivateKey
	from    common.Address
	logger  *zap.Logger
}

// NewEVMSender parses a hex private key, with or without 0x
func NewEVMSender(backend EVMBackend, keyHex string, logger *zap.Logger) (*EVMSender, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &EVMSender{
		backend: backend,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		logger:  logger,
	}, nil
}

// From returns the sending address
func (s *EVMSender) From() common.Address {
	return s.from
}

// parseQuantity accepts 0x hex or decimal; empty is zero
func parseQuantity(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("malformed quantity %q", s)
	}
	return n, nil
}

// Send signs and submits a transaction. An empty gasLimit is estimated.
func (s *EVMSender) Send(ctx context.Context, to, data, value, gasLimit string) (common.Hash, error) {
	if !common.IsHexAddress(to) {
		return common.Hash{}, fmt.Errorf("invalid recipient %q", to)
	}
	toAddr := common.HexToAddress(to)

	input, err := hexutil.Decode(data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid calldata: %w", err)
	}

	amount, err := parseQuantity(value)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid value: %w", err)
	}

	chainID, err := s.backend.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get chain id: %w", err)
	}
	nonce, err := s.backend.PendingNonceAt(ctx, s.from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}
	gasPrice, err := s.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get gas price: %w", err)
	}

	var gas uint64
	if gasLimit != "" {
		limit, err := parseQuantity(gasLimit)
		if err != nil || !limit.IsUint64() {
			return common.Hash{}, fmt.Errorf("invalid gas limit %q", gasLimit)
		}
		gas = limit.Uint64()
	} else {
		gas, err = s.backend.EstimateGas(ctx, ethereum.CallMsg{
			From:  s.from,
			To:    &toAddr,
			Value: amount,
			Data:  input,
		})
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &toAddr,
		Value:    amount,
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     input,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := s.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	s.logger.Info("Submitted transaction",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("to", toAddr.Hex()),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", gas),
	)
	return signed.Hash(), nil
}
