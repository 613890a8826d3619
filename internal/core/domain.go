package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a cash-flow statement section.
type Category string

const (
	CategoryOperating Category = "Operating"
	CategoryInvesting Category = "Investing"
	CategoryFinancing Category = "Financing"
)

type (
	// LedgerEntry is one recorded accounting transaction line. Entries are
	// written by external systems; this service only reads them.
	LedgerEntry struct {
		ID          int64
		CompanyID   string
		Date        time.Time // date precision, midnight UTC
		Account     string
		Party       string
		Note        string
		Debit       decimal.Decimal
		Credit      decimal.Decimal
		Reconciled  *bool // tri-state: true / false / unknown
		BankAccount string
		Reference   string
	}
)

// IsReconciled reports whether the entry has been matched against a bank
// statement line. Unknown (nil) counts as not reconciled.
func (e LedgerEntry) IsReconciled() bool {
	return e.Reconciled != nil && *e.Reconciled
}

// Net returns debit minus credit for the entry.
func (e LedgerEntry) Net() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

// NewDate builds a date-precision time at midnight UTC, the representation
// used for all ledger dates.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Bool is a convenience for building tri-state Reconciled values.
func Bool(b bool) *bool {
	return &b
}
