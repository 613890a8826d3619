// Package storage defines the read-only store port the report handlers
// depend on. Implementations live in the postgres, sqlite, and memory
// subpackages.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"rendiconto/internal/core"
)

// ErrStoreUnavailable signals the backing database cannot be reached.
var ErrStoreUnavailable = errors.New("storage: store unavailable")

// EntryStore provides the ledger queries behind the reporting endpoints.
// All reads are best-effort point-in-time: no snapshot is guaranteed across
// two calls.
type EntryStore interface {
	// CashFlowEntries returns the reconciled entries for the company whose
	// date falls inside [from, to] and which pass the cash-flow row filter
	// (cash debits and credits on the expense accounts), ordered by date
	// then id.
	CashFlowEntries(ctx context.Context, companyID string, from, to time.Time) ([]core.LedgerEntry, error)

	// OpeningBalance sums debit minus credit over all entries for the
	// company dated strictly before cutoff, regardless of reconciliation
	// state. An empty set sums to zero.
	OpeningBalance(ctx context.Context, companyID string, cutoff time.Time) (decimal.Decimal, error)

	// UnreconciledEntries returns the company's entries on the given bank
	// account whose reconciled flag is false or unknown, ordered by date
	// then id.
	UnreconciledEntries(ctx context.Context, companyID, bankAccount string) ([]core.LedgerEntry, error)

	// LedgerBalance sums debit minus credit over every entry of the company.
	LedgerBalance(ctx context.Context, companyID string) (decimal.Decimal, error)

	// Ping verifies connectivity to the backing store.
	Ping(ctx context.Context) error

	Close() error
}
