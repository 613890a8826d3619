package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"rendiconto/internal/core"
	applog "rendiconto/internal/log"
)

const dateLayout = "2006-01-02"

// handleCashFlow serves GET /api/cash-flow: classifies and aggregates the
// company's reconciled ledger entries in the requested range and combines
// them with the opening balance into a cash-flow statement.
func (s *Server) handleCashFlow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	companyID := strings.TrimSpace(q.Get("companyid"))
	fromStr := strings.TrimSpace(q.Get("fromDate"))
	toStr := strings.TrimSpace(q.Get("toDate"))

	var missing []string
	if companyID == "" {
		missing = append(missing, "companyid")
	}
	if fromStr == "" {
		missing = append(missing, "fromDate")
	}
	if toStr == "" {
		missing = append(missing, "toDate")
	}
	if len(missing) > 0 {
		s.respondError(w, http.StatusBadRequest, "missing required parameters: "+strings.Join(missing, ", "))
		return
	}

	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid fromDate: expected format YYYY-MM-DD")
		return
	}
	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid toDate: expected format YYYY-MM-DD")
		return
	}

	// The aggregation and opening-balance reads are independent; no
	// snapshot spans them, so they can run concurrently.
	var (
		entries []core.LedgerEntry
		opening decimal.Decimal
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		entries, err = s.store.CashFlowEntries(gctx, companyID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		opening, err = s.store.OpeningBalance(gctx, companyID, from)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(r.Context(), "Cash flow queries failed",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpCashFlow,
			applog.FieldCompanyID, companyID,
			applog.FieldFromDate, fromStr,
			applog.FieldToDate, toStr)
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	statement := core.BuildCashFlowStatement(entries, opening)

	s.logger.DebugContext(r.Context(), "Cash flow statement built",
		applog.FieldOperation, applog.OpCashFlow,
		applog.FieldCompanyID, companyID,
		applog.FieldEntryCount, len(entries))

	s.respondJSON(w, http.StatusOK, newCashFlowResponse(statement))
}

// handleBankReconciliation serves GET /api/bank-reconciliation: fetches the
// company's unreconciled entries on a bank account, annotates recognized
// references, and derives the ledger/statement/adjusted balances.
func (s *Server) handleBankReconciliation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	companyID := strings.TrimSpace(q.Get("companyid"))
	bankAccount := strings.TrimSpace(q.Get("bankaccount"))

	var missing []string
	if companyID == "" {
		missing = append(missing, "companyid")
	}
	if bankAccount == "" {
		missing = append(missing, "bankaccount")
	}
	if len(missing) > 0 {
		s.respondError(w, http.StatusBadRequest, "missing required parameters: "+strings.Join(missing, ", "))
		return
	}

	var (
		items  []core.LedgerEntry
		ledger decimal.Decimal
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		items, err = s.store.UnreconciledEntries(gctx, companyID, bankAccount)
		return err
	})
	g.Go(func() error {
		var err error
		ledger, err = s.store.LedgerBalance(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(r.Context(), "Bank reconciliation queries failed",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpReconciliation,
			applog.FieldCompanyID, companyID,
			applog.FieldBankAccount, bankAccount)
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	report := s.recon.Build(items, ledger)

	s.logger.DebugContext(r.Context(), "Reconciliation report built",
		applog.FieldOperation, applog.OpReconciliation,
		applog.FieldCompanyID, companyID,
		applog.FieldBankAccount, bankAccount,
		applog.FieldEntryCount, len(report.Items))

	s.respondJSON(w, http.StatusOK, newReconciliationResponse(report))
}
