package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rendiconto/internal/core"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func seedStore() *Store {
	s := NewStore()
	s.Seed(
		core.LedgerEntry{
			CompanyID: "acme", Date: core.NewDate(2024, 1, 5),
			Account: "Cash", Party: "Investor",
			Debit: d(500), Reconciled: core.Bool(true),
		},
		core.LedgerEntry{
			CompanyID: "acme", Date: core.NewDate(2024, 2, 10),
			Account: "Cash", Debit: d(100), Reconciled: core.Bool(true),
		},
		core.LedgerEntry{
			CompanyID: "acme", Date: core.NewDate(2024, 2, 12),
			Account: "Office Rent", Credit: d(40), Reconciled: core.Bool(true),
		},
		// Unreconciled, must never reach the cash-flow report.
		core.LedgerEntry{
			CompanyID: "acme", Date: core.NewDate(2024, 2, 15),
			Account: "Cash", Debit: d(999), Reconciled: core.Bool(false),
			BankAccount: "Main", Reference: "CHQ102",
		},
		// Unknown reconciliation state.
		core.LedgerEntry{
			CompanyID: "acme", Date: core.NewDate(2024, 2, 16),
			Account: "Bank Charges", Credit: d(25),
			BankAccount: "Main", Reference: "TXN777",
		},
		// Different company.
		core.LedgerEntry{
			CompanyID: "other", Date: core.NewDate(2024, 2, 10),
			Account: "Cash", Debit: d(77), Reconciled: core.Bool(true),
			BankAccount: "Main",
		},
	)
	return s
}

func TestCashFlowEntries(t *testing.T) {
	s := seedStore()

	entries, err := s.CashFlowEntries(context.Background(),
		"acme", core.NewDate(2024, 2, 1), core.NewDate(2024, 2, 28))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Cash", entries[0].Account)
	assert.Equal(t, "Office Rent", entries[1].Account)
	for _, e := range entries {
		assert.True(t, e.IsReconciled(), "only reconciled entries may appear")
	}
}

func TestCashFlowEntriesRangeIsInclusive(t *testing.T) {
	s := seedStore()

	entries, err := s.CashFlowEntries(context.Background(),
		"acme", core.NewDate(2024, 2, 10), core.NewDate(2024, 2, 12))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "boundary dates are part of the range")
}

func TestOpeningBalance(t *testing.T) {
	s := seedStore()

	// Only the January investor entry (debit 500) predates Feb 1.
	balance, err := s.OpeningBalance(context.Background(), "acme", core.NewDate(2024, 2, 1))
	require.NoError(t, err)
	assert.True(t, balance.Equal(d(500)), "got %s", balance)
}

func TestOpeningBalanceIncludesUnreconciled(t *testing.T) {
	s := seedStore()

	// All entries count, regardless of reconciliation state.
	balance, err := s.OpeningBalance(context.Background(), "acme", core.NewDate(2024, 3, 1))
	require.NoError(t, err)
	// 500 + 100 - 40 + 999 - 25
	assert.True(t, balance.Equal(d(1534)), "got %s", balance)
}

func TestOpeningBalanceEmpty(t *testing.T) {
	s := seedStore()

	balance, err := s.OpeningBalance(context.Background(), "acme", core.NewDate(2020, 1, 1))
	require.NoError(t, err)
	assert.True(t, balance.IsZero(), "no entries before cutoff must sum to zero")
}

func TestUnreconciledEntries(t *testing.T) {
	s := seedStore()

	entries, err := s.UnreconciledEntries(context.Background(), "acme", "Main")
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "CHQ102", entries[0].Reference, "false reconciled flag included")
	assert.Equal(t, "TXN777", entries[1].Reference, "unknown reconciled flag included")
	for _, e := range entries {
		assert.False(t, e.IsReconciled(), "reconciled entries must never appear")
	}
}

func TestUnreconciledEntriesScopedToCompanyAndBank(t *testing.T) {
	s := seedStore()

	entries, err := s.UnreconciledEntries(context.Background(), "other", "Main")
	require.NoError(t, err)
	assert.Empty(t, entries, "other company has no unreconciled entries on Main")
}

func TestLedgerBalance(t *testing.T) {
	s := seedStore()

	balance, err := s.LedgerBalance(context.Background(), "other")
	require.NoError(t, err)
	assert.True(t, balance.Equal(d(77)))
}

func TestSeedAssignsIDs(t *testing.T) {
	s := NewStore()
	s.Seed(
		core.LedgerEntry{CompanyID: "acme", Date: core.NewDate(2024, 1, 1)},
		core.LedgerEntry{CompanyID: "acme", Date: core.NewDate(2024, 1, 1)},
	)

	entries, err := s.UnreconciledEntries(context.Background(), "acme", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, int64(2), entries[1].ID)
}
