package core

import "github.com/shopspring/decimal"

// FlowTotals holds the inflow/outflow pair reported for a category. Only
// one side is ever non-zero: a category with both inflows and outflows
// appears once in each map, each record showing only its own side.
type FlowTotals struct {
	Inflows  decimal.Decimal
	Outflows decimal.Decimal
}

// CashFlowStatement is the aggregated cash-flow report for one company and
// date range.
type CashFlowStatement struct {
	Inflows        map[Category]FlowTotals
	Outflows       map[Category]FlowTotals
	TotalInflows   decimal.Decimal
	TotalOutflows  decimal.Decimal
	NetChange      decimal.Decimal
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
}

// BuildCashFlowStatement groups pre-filtered ledger entries by category,
// summing debits into inflows and credits into outflows. A category is
// emitted on a side only when that side's sum is positive. The closing
// balance is the opening balance plus the net change.
func BuildCashFlowStatement(entries []LedgerEntry, openingBalance decimal.Decimal) CashFlowStatement {
	inflowSums := make(map[Category]decimal.Decimal)
	outflowSums := make(map[Category]decimal.Decimal)

	for _, e := range entries {
		cat := Classify(e)
		inflowSums[cat] = inflowSums[cat].Add(e.Debit)
		outflowSums[cat] = outflowSums[cat].Add(e.Credit)
	}

	st := CashFlowStatement{
		Inflows:        make(map[Category]FlowTotals),
		Outflows:       make(map[Category]FlowTotals),
		OpeningBalance: openingBalance,
	}

	for cat, sum := range inflowSums {
		if sum.IsPositive() {
			st.Inflows[cat] = FlowTotals{Inflows: sum}
			st.TotalInflows = st.TotalInflows.Add(sum)
		}
	}
	for cat, sum := range outflowSums {
		if sum.IsPositive() {
			st.Outflows[cat] = FlowTotals{Outflows: sum}
			st.TotalOutflows = st.TotalOutflows.Add(sum)
		}
	}

	st.NetChange = st.TotalInflows.Sub(st.TotalOutflows)
	st.ClosingBalance = openingBalance.Add(st.NetChange)

	return st
}
