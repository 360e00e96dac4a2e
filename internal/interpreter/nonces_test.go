package interpreter

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReader struct {
	nonce uint64
	reads int
	err   error
}

func (r *countingReader) NonceAt(ctx context.Context, account common.Address) (uint64, error) {
	r.reads++
	return r.nonce, r.err
}

func TestNonceTrackerReadsOnce(t *testing.T) {
	ctx := context.Background()
	reader := &countingReader{nonce: 7}
	tracker := NewNonceTracker(reader)
	kernel := common.HexToAddress("0x1000000000000000000000000000000000000001")

	_, ok := tracker.peek(kernel)
	assert.False(t, ok)

	for want := uint64(7); want < 10; want++ {
		got, err := tracker.Next(ctx, kernel)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 1, reader.reads)

	next, ok := tracker.peek(kernel)
	assert.True(t, ok)
	assert.Equal(t, uint64(10), next)
}

func TestNonceTrackerPerAddress(t *testing.T) {
	ctx := context.Background()
	reader := &countingReader{nonce: 3}
	tracker := NewNonceTracker(reader)
	a := common.HexToAddress("0x1000000000000000000000000000000000000001")
	b := common.HexToAddress("0x2000000000000000000000000000000000000002")

	na, err := tracker.Next(ctx, a)
	require.NoError(t, err)
	nb, err := tracker.Next(ctx, b)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), na)
	assert.Equal(t, uint64(3), nb)
	assert.Equal(t, 2, reader.reads)
}

func TestNonceTrackerErrors(t *testing.T) {
	ctx := context.Background()
	addr := common.HexToAddress("0x1000000000000000000000000000000000000001")

	_, err := NewNonceTracker(nil).Next(ctx, addr)
	assert.ErrorContains(t, err, "no chain client")

	tracker := NewNonceTracker(&countingReader{err: errors.New("rpc down")})
	_, err = tracker.Next(ctx, addr)
	assert.ErrorContains(t, err, "rpc down")
	_, ok := tracker.peek(addr)
	assert.False(t, ok)
}
