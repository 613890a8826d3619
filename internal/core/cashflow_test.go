package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestBuildCashFlowStatement(t *testing.T) {
	entries := []LedgerEntry{
		{Account: "Cash", Debit: d(100), Reconciled: Bool(true)},
		{Account: "Office Rent", Credit: d(40), Reconciled: Bool(true)},
	}

	st := BuildCashFlowStatement(entries, decimal.Zero)

	require.Contains(t, st.Inflows, CategoryOperating)
	assert.True(t, st.Inflows[CategoryOperating].Inflows.Equal(d(100)), "operating inflows")
	assert.True(t, st.Inflows[CategoryOperating].Outflows.IsZero(), "inflow record shows zero outflows")

	require.Contains(t, st.Outflows, CategoryOperating)
	assert.True(t, st.Outflows[CategoryOperating].Outflows.Equal(d(40)), "operating outflows")
	assert.True(t, st.Outflows[CategoryOperating].Inflows.IsZero(), "outflow record shows zero inflows")

	assert.True(t, st.TotalInflows.Equal(d(100)))
	assert.True(t, st.TotalOutflows.Equal(d(40)))
	assert.True(t, st.NetChange.Equal(d(60)))
	assert.True(t, st.ClosingBalance.Equal(d(60)))
}

func TestBuildCashFlowStatementFinancing(t *testing.T) {
	entries := []LedgerEntry{
		{Account: "Cash", Party: "Investor", Debit: d(500), Reconciled: Bool(true)},
	}

	st := BuildCashFlowStatement(entries, d(1000))

	require.Contains(t, st.Inflows, CategoryFinancing)
	assert.NotContains(t, st.Inflows, CategoryOperating)
	assert.True(t, st.Inflows[CategoryFinancing].Inflows.Equal(d(500)))
	assert.True(t, st.NetChange.Equal(d(500)))
	assert.True(t, st.ClosingBalance.Equal(d(1500)), "closing = opening + net change")
}

func TestBuildCashFlowStatementCategoryOnBothSides(t *testing.T) {
	entries := []LedgerEntry{
		{Account: "Cash", Debit: d(200), Reconciled: Bool(true)},
		{Account: "Utilities Expense", Credit: d(30), Reconciled: Bool(true)},
		{Account: "Bank Charges", Credit: d(5), Reconciled: Bool(true)},
	}

	st := BuildCashFlowStatement(entries, decimal.Zero)

	// Operating appears in both maps, each side independent.
	assert.True(t, st.Inflows[CategoryOperating].Inflows.Equal(d(200)))
	assert.True(t, st.Outflows[CategoryOperating].Outflows.Equal(d(35)))
	assert.True(t, st.NetChange.Equal(d(165)))
}

func TestBuildCashFlowStatementEmpty(t *testing.T) {
	st := BuildCashFlowStatement(nil, d(250))

	assert.Empty(t, st.Inflows)
	assert.Empty(t, st.Outflows)
	assert.True(t, st.TotalInflows.IsZero())
	assert.True(t, st.TotalOutflows.IsZero())
	assert.True(t, st.NetChange.IsZero())
	assert.True(t, st.ClosingBalance.Equal(d(250)))
}

func TestBuildCashFlowStatementSkipsZeroSides(t *testing.T) {
	entries := []LedgerEntry{
		{Account: "Cash", Debit: d(75), Reconciled: Bool(true)},
	}

	st := BuildCashFlowStatement(entries, decimal.Zero)

	assert.Contains(t, st.Inflows, CategoryOperating)
	assert.NotContains(t, st.Outflows, CategoryOperating, "zero outflow side must not be emitted")
}
