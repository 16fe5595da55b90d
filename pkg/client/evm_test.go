package client

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Well-known development key (anvil account 0)
const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

type fakeBackend struct {
	estimated bool
	sent      *types.Transaction
	sendErr   error
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) { return big.NewInt(8453), nil }

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) { return 7, nil }

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) { return big.NewInt(1_000_000), nil }

func (f *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	f.estimated = true
	return 90_000, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = tx
	return f.sendErr
}

func TestEVMSender_SignsWithPayloadGasLimit(t *testing.T) {
	backend := &fakeBackend{}
	s, err := NewEVMSender(backend, testKey, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), s.From())

	hash, err := s.Send(context.Background(), "0x1231DEB6f5749EF6cE6943a275A1D3E7486F4EaE", "0xdeadbeef", "0x10", "0x30d40")
	require.NoError(t, err)
	require.NotNil(t, backend.sent)

	assert.Equal(t, backend.sent.Hash(), hash)
	assert.False(t, backend.estimated)
	assert.Equal(t, uint64(200_000), backend.sent.Gas())
	assert.Equal(t, uint64(7), backend.sent.Nonce())
	assert.Equal(t, int64(16), backend.sent.Value().Int64())
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, backend.sent.Data())

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(8453)), backend.sent)
	require.NoError(t, err)
	assert.Equal(t, s.From(), sender)
}

func TestEVMSender_EstimatesMissingGasLimit(t *testing.T) {
	backend := &fakeBackend{}
	s, err := NewEVMSender(backend, testKey, zap.NewNop())
	require.NoError(t, err)

	_, err = s.Send(context.Background(), "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", "0x095ea7b3", "0x0", "")
	require.NoError(t, err)
	assert.True(t, backend.estimated)
	assert.Equal(t, uint64(90_000), backend.sent.Gas())
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]int64{"": 0, "0x0": 0, "0x30d40": 200_000, "200000": 200_000}
	for in, want := range cases {
		got, err := parseQuantity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.Int64(), in)
	}

	for _, in := range []string{"0x", "-5", "12abc"} {
		_, err := parseQuantity(in)
		assert.Error(t, err, in)
	}
}

func TestEVMSender_Errors(t *testing.T) {
	backend := &fakeBackend{sendErr: errors.New("nonce too low")}
	s, err := NewEVMSender(backend, testKey, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Send(ctx, "not-an-address", "0x", "0x0", "")
	require.ErrorContains(t, err, "invalid recipient")

	_, err = s.Send(ctx, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", "zz", "0x0", "")
	require.ErrorContains(t, err, "invalid calldata")

	_, err = s.Send(ctx, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", "0x", "0x0", "")
	require.ErrorContains(t, err, "nonce too low")

	_, err = NewEVMSender(backend, "0x1234", zap.NewNop())
	require.ErrorContains(t, err, "invalid private key")
}
