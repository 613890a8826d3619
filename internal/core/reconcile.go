package core

import "github.com/shopspring/decimal"

// DefaultDescriptions returns the known reference→explanation pairs used to
// annotate reconciling items.
func DefaultDescriptions() map[string]string {
	return map[string]string{
		"CHQ102": "Cheque issued but not yet cleared by the bank",
		"BCHG01": "Bank charges not yet recorded in the ledger",
	}
}

// ReconciliationItem is an unreconciled ledger entry annotated with a
// human-readable explanation where the reference code is recognized.
type ReconciliationItem struct {
	Entry       LedgerEntry
	Description string
}

// ReconciliationReport compares the company ledger with the bank's view of
// the same account. The adjusted balance applies the reconciling items back
// onto the statement balance and must land on the ledger balance.
type ReconciliationReport struct {
	LedgerBalance        decimal.Decimal
	BankStatementBalance decimal.Decimal
	AdjustedBalance      decimal.Decimal
	Items                []ReconciliationItem
}

// ReconciliationBuilder assembles reconciliation reports. Descriptions is
// injectable so new reference codes can be added without code changes.
type ReconciliationBuilder struct {
	Descriptions map[string]string
}

// NewReconciliationBuilder returns a builder with the default description
// table.
func NewReconciliationBuilder() *ReconciliationBuilder {
	return &ReconciliationBuilder{Descriptions: DefaultDescriptions()}
}

// Build annotates the reconciling items and derives the balances.
//
// An unreconciled debit is a deposit in transit: recorded in the ledger,
// not yet at the bank. An unreconciled credit is an outstanding payment:
// already deducted in the ledger, still counted by the bank. So the
// statement balance is the ledger balance minus unreconciled debits plus
// unreconciled credits, and applying the items back yields the adjusted
// balance.
func (b *ReconciliationBuilder) Build(entries []LedgerEntry, ledgerBalance decimal.Decimal) ReconciliationReport {
	report := ReconciliationReport{
		LedgerBalance: ledgerBalance,
		Items:         make([]ReconciliationItem, 0, len(entries)),
	}

	var debits, credits decimal.Decimal
	for _, e := range entries {
		debits = debits.Add(e.Debit)
		credits = credits.Add(e.Credit)
		report.Items = append(report.Items, ReconciliationItem{
			Entry:       e,
			Description: b.Descriptions[e.Reference],
		})
	}

	report.BankStatementBalance = ledgerBalance.Sub(debits).Add(credits)
	report.AdjustedBalance = report.BankStatementBalance.Add(debits).Sub(credits)

	return report
}
