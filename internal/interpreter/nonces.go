package interpreter

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// NonceReader reads an account's current on-chain nonce.
type NonceReader interface {
	NonceAt(ctx context.Context, account common.Address) (uint64, error)
}

// NonceTracker hands out deployment nonces per address. The on-chain nonce
// is read on first use only; later calls increment in memory. Transactions
// sent by anyone else during the session are not accounted for.
type NonceTracker struct {
	reader NonceReader
	next   map[common.Address]uint64
}

func NewNonceTracker(reader NonceReader) *NonceTracker {
	return &NonceTracker{
		reader: reader,
		next:   map[common.Address]uint64{},
	}
}

// Next returns the nonce the next contract created by addr will use.
func (t *NonceTracker) Next(ctx context.Context, addr common.Address) (uint64, error) {
	n, ok := t.next[addr]
	if !ok {
		if t.reader == nil {
			return 0, fmt.Errorf("no chain client to read nonce of %s", addr.Hex())
		}
		onchain, err := t.reader.NonceAt(ctx, addr)
		if err != nil {
			return 0, fmt.Errorf("failed to read nonce of %s: %w", addr.Hex(), err)
		}
		n = onchain
	}
	t.next[addr] = n + 1
	return n, nil
}

// peek returns the nonce Next would return without consuming it. The boolean
// is false when addr has not been read yet.
func (t *NonceTracker) peek(addr common.Address) (uint64, bool) {
	n, ok := t.next[addr]
	return n, ok
}
