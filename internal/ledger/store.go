package ledger

import (
	"context"

	"academy/pkg/domain"
	dErrors "academy/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific not found errors consistent across
// store implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "account not found")

// Record is a stored account: a kind tag plus the account's fixed binary
// layout. The store never interprets Data; encoding lives with the models.
type Record struct {
	Address domain.Address
	Kind    Kind
	Data    []byte
}

// Store defines the persistence interface for ledger accounts.
// Error Contract:
//   - Get returns ErrNotFound when no account exists at the address.
//   - Delete returns ErrNotFound when no account exists at the address.
//   - Put overwrites unconditionally; create-vs-exists checks belong to the
//     transition engine, which reads before it writes.
type Store interface {
	Get(ctx context.Context, addr domain.Address) (Record, error)
	Put(ctx context.Context, rec Record) error
	Delete(ctx context.Context, addr domain.Address) error
	ListByKind(ctx context.Context, kind Kind) ([]Record, error)
}
