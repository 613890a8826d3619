package http

import (
	"encoding/json"
	"net/http"

	"rendiconto/internal/core"
	applog "rendiconto/internal/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

type flowTotals struct {
	Inflows  float64 `json:"inflows"`
	Outflows float64 `json:"outflows"`
}

type cashFlowResponse struct {
	CashInflows        map[string]flowTotals `json:"cashInflows"`
	CashOutflows       map[string]flowTotals `json:"cashOutflows"`
	NetChangeInCash    float64               `json:"netChangeInCash"`
	ClosingCashBalance float64               `json:"closingCashBalance"`
}

type reconcilingItem struct {
	Date        string  `json:"date"`
	Account     string  `json:"account"`
	Party       string  `json:"party"`
	Note        string  `json:"note"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	BankAccount string  `json:"bank_account"`
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
}

type reconciliationResponse struct {
	LedgerBalance        float64           `json:"ledger_balance"`
	BankStatementBalance float64           `json:"bank_statement_balance"`
	ReconcilingItems     []reconcilingItem `json:"reconciling_items"`
	AdjustedBalance      float64           `json:"adjusted_balance_after_reconciliation"`
}

// newCashFlowResponse converts a statement into its wire shape. Maps are
// always non-nil so empty reports serialize as {} rather than null, and map
// keys marshal in sorted order, keeping repeat responses byte-identical.
func newCashFlowResponse(st core.CashFlowStatement) cashFlowResponse {
	resp := cashFlowResponse{
		CashInflows:        make(map[string]flowTotals, len(st.Inflows)),
		CashOutflows:       make(map[string]flowTotals, len(st.Outflows)),
		NetChangeInCash:    st.NetChange.InexactFloat64(),
		ClosingCashBalance: st.ClosingBalance.InexactFloat64(),
	}
	for cat, t := range st.Inflows {
		resp.CashInflows[string(cat)] = flowTotals{
			Inflows:  t.Inflows.InexactFloat64(),
			Outflows: t.Outflows.InexactFloat64(),
		}
	}
	for cat, t := range st.Outflows {
		resp.CashOutflows[string(cat)] = flowTotals{
			Inflows:  t.Inflows.InexactFloat64(),
			Outflows: t.Outflows.InexactFloat64(),
		}
	}
	return resp
}

func newReconciliationResponse(report core.ReconciliationReport) reconciliationResponse {
	resp := reconciliationResponse{
		LedgerBalance:        report.LedgerBalance.InexactFloat64(),
		BankStatementBalance: report.BankStatementBalance.InexactFloat64(),
		ReconcilingItems:     make([]reconcilingItem, 0, len(report.Items)),
		AdjustedBalance:      report.AdjustedBalance.InexactFloat64(),
	}
	for _, item := range report.Items {
		e := item.Entry
		resp.ReconcilingItems = append(resp.ReconcilingItems, reconcilingItem{
			Date:        e.Date.Format(dateLayout),
			Account:     e.Account,
			Party:       e.Party,
			Note:        e.Note,
			Debit:       e.Debit.InexactFloat64(),
			Credit:      e.Credit.InexactFloat64(),
			BankAccount: e.BankAccount,
			Reference:   e.Reference,
			Description: item.Description,
		})
	}
	return resp
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed encoding response", applog.FieldError, err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}
