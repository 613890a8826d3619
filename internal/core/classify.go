package core

import "strings"

// Accounts whose entries classify as Operating before any note matching.
var operatingAccounts = map[string]struct{}{
	"Sales":             {},
	"Office Rent":       {},
	"Utilities Expense": {},
	"Bank Charges":      {},
}

// Accounts whose credit entries count as cash outflows.
var expenseCreditAccounts = map[string]struct{}{
	"Office Rent":       {},
	"Utilities Expense": {},
	"Bank Charges":      {},
}

// Classify assigns a ledger entry to a cash-flow category. Rules are
// evaluated top to bottom, first match wins:
//
//  1. Cash entries from an investor or tagged as a loan deposit are Financing.
//  2. Entries on the known operating accounts are Operating.
//  3. Inventory purchases are Investing.
//  4. Everything else defaults to Operating.
func Classify(e LedgerEntry) Category {
	if e.Account == "Cash" && (e.Party == "Investor" || containsFold(e.Note, "Loan deposit")) {
		return CategoryFinancing
	}
	if _, ok := operatingAccounts[e.Account]; ok {
		return CategoryOperating
	}
	if containsFold(e.Note, "Purchase inventory") {
		return CategoryInvesting
	}
	return CategoryOperating
}

// MatchesCashFlowFilter reports whether an entry is aggregated into the
// cash-flow statement at all: it must be reconciled and be either a cash
// debit or a credit on one of the expense accounts. Company and date-range
// filtering happen at the query level.
func MatchesCashFlowFilter(e LedgerEntry) bool {
	if !e.IsReconciled() {
		return false
	}
	if e.Account == "Cash" && e.Debit.IsPositive() {
		return true
	}
	if e.Credit.IsPositive() {
		if _, ok := expenseCreditAccounts[e.Account]; ok {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
