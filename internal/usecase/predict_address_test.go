package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// MockNonceReader is a mock implementation of NonceReader
type MockNonceReader struct {
	mock.Mock
}

func (m *MockNonceReader) NonceAt(ctx context.Context, account common.Address) (uint64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(uint64), args.Error(1)
}

func TestPredictAddress(t *testing.T) {
	ctx := context.Background()
	deployer := common.HexToAddress("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	first := common.HexToAddress("0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d")
	second := common.HexToAddress("0x343c43a37d37dff08ae8c4a11544c718abb4fcf8")

	t.Run("reads the nonce from the chain", func(t *testing.T) {
		nonces := new(MockNonceReader)
		nonces.On("NonceAt", ctx, deployer).Return(uint64(0), nil).Once()

		result, err := usecase.NewPredictAddress(nonces).Run(ctx, usecase.PredictAddressParams{Deployer: deployer, Count: 2})
		require.NoError(t, err)
		assert.Equal(t, deployer, result.Deployer)
		assert.Equal(t, []usecase.PredictedAddress{
			{Nonce: 0, Address: first},
			{Nonce: 1, Address: second},
		}, result.Addresses)
		nonces.AssertExpectations(t)
	})

	t.Run("explicit nonce", func(t *testing.T) {
		nonces := new(MockNonceReader)
		nonce := uint64(1)

		result, err := usecase.NewPredictAddress(nonces).Run(ctx, usecase.PredictAddressParams{Deployer: deployer, Nonce: &nonce})
		require.NoError(t, err)
		require.Len(t, result.Addresses, 1)
		assert.Equal(t, second, result.Addresses[0].Address)
		nonces.AssertNotCalled(t, "NonceAt", mock.Anything, mock.Anything)
	})

	t.Run("nonce read failure", func(t *testing.T) {
		nonces := new(MockNonceReader)
		nonces.On("NonceAt", ctx, deployer).Return(uint64(0), errors.New("connection refused"))

		_, err := usecase.NewPredictAddress(nonces).Run(ctx, usecase.PredictAddressParams{Deployer: deployer})
		assert.ErrorContains(t, err, "failed to read nonce of "+deployer.Hex())
		assert.ErrorContains(t, err, "connection refused")
	})
}
