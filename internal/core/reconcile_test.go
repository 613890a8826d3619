package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciliationBuilderDescriptions(t *testing.T) {
	b := NewReconciliationBuilder()

	entries := []LedgerEntry{
		{Reference: "CHQ102", Credit: d(150)},
		{Reference: "BCHG01", Credit: d(25)},
		{Reference: "TXN999", Debit: d(80)},
		{Debit: d(10)},
	}

	report := b.Build(entries, d(1000))

	require.Len(t, report.Items, 4)
	assert.Equal(t, "Cheque issued but not yet cleared by the bank", report.Items[0].Description)
	assert.Equal(t, "Bank charges not yet recorded in the ledger", report.Items[1].Description)
	assert.Equal(t, "", report.Items[2].Description, "unknown reference gets empty description")
	assert.Equal(t, "", report.Items[3].Description, "missing reference gets empty description")
}

func TestReconciliationBuilderInjectedDescriptions(t *testing.T) {
	b := &ReconciliationBuilder{Descriptions: map[string]string{
		"REF1": "custom explanation",
	}}

	report := b.Build([]LedgerEntry{{Reference: "REF1"}}, decimal.Zero)

	require.Len(t, report.Items, 1)
	assert.Equal(t, "custom explanation", report.Items[0].Description)
}

func TestReconciliationBalances(t *testing.T) {
	b := NewReconciliationBuilder()

	// Deposit in transit (debit 300) and outstanding cheque (credit 120).
	entries := []LedgerEntry{
		{Debit: d(300)},
		{Reference: "CHQ102", Credit: d(120)},
	}

	report := b.Build(entries, d(2000))

	assert.True(t, report.LedgerBalance.Equal(d(2000)))
	// bank = ledger - debits + credits = 2000 - 300 + 120
	assert.True(t, report.BankStatementBalance.Equal(d(1820)), "bank statement balance, got %s", report.BankStatementBalance)
	// adjusting the statement by the reconciling items lands on the ledger
	assert.True(t, report.AdjustedBalance.Equal(report.LedgerBalance))
}

func TestReconciliationEmptyItems(t *testing.T) {
	report := NewReconciliationBuilder().Build(nil, d(500))

	assert.Empty(t, report.Items)
	assert.True(t, report.BankStatementBalance.Equal(d(500)), "no items means bank agrees with ledger")
	assert.True(t, report.AdjustedBalance.Equal(d(500)))
}
