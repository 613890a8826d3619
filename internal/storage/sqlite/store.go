// Package sqlite implements storage.EntryStore on a local SQLite file using
// the CGO-free modernc driver. It mirrors the postgres store with ?
// placeholders and dates stored as YYYY-MM-DD text.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"rendiconto/internal/core"
	"rendiconto/internal/storage"
)

const dateLayout = "2006-01-02"

type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the database file and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrStoreUnavailable, err)
	}
	return nil
}

const entryColumns = `id, company_id, entry_date, account, party, note, debit, credit, reconciled, bank_account, reference`

// CashFlowEntries implements storage.EntryStore. The row filter must stay
// in sync with core.MatchesCashFlowFilter.
func (s *Store) CashFlowEntries(ctx context.Context, companyID string, from, to time.Time) ([]core.LedgerEntry, error) {
	const query = `SELECT ` + entryColumns + `
	FROM accounting_ledger_entry
	WHERE company_id = ?
	  AND reconciled = TRUE
	  AND entry_date >= ? AND entry_date <= ?
	  AND ((account = 'Cash' AND debit > 0)
	    OR (credit > 0 AND account IN ('Office Rent', 'Utilities Expense', 'Bank Charges')))
	ORDER BY entry_date, id`

	rows, err := s.db.QueryContext(ctx, query, companyID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("query cash flow entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// OpeningBalance implements storage.EntryStore.
func (s *Store) OpeningBalance(ctx context.Context, companyID string, cutoff time.Time) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(debit - credit), 0)
	FROM accounting_ledger_entry
	WHERE company_id = ? AND entry_date < ?`

	var balance decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, companyID, cutoff.Format(dateLayout)).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("query opening balance: %w", err)
	}
	return balance, nil
}

// UnreconciledEntries implements storage.EntryStore.
func (s *Store) UnreconciledEntries(ctx context.Context, companyID, bankAccount string) ([]core.LedgerEntry, error) {
	const query = `SELECT ` + entryColumns + `
	FROM accounting_ledger_entry
	WHERE company_id = ?
	  AND bank_account = ?
	  AND reconciled IS NOT TRUE
	ORDER BY entry_date, id`

	rows, err := s.db.QueryContext(ctx, query, companyID, bankAccount)
	if err != nil {
		return nil, fmt.Errorf("query unreconciled entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// LedgerBalance implements storage.EntryStore.
func (s *Store) LedgerBalance(ctx context.Context, companyID string) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(debit - credit), 0)
	FROM accounting_ledger_entry
	WHERE company_id = ?`

	var balance decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, companyID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("query ledger balance: %w", err)
	}
	return balance, nil
}

func scanEntries(rows *sql.Rows) ([]core.LedgerEntry, error) {
	var entries []core.LedgerEntry
	for rows.Next() {
		var (
			e          core.LedgerEntry
			date       string
			party      sql.NullString
			note       sql.NullString
			reconciled sql.NullBool
			bank       sql.NullString
			reference  sql.NullString
		)
		err := rows.Scan(
			&e.ID,
			&e.CompanyID,
			&date,
			&e.Account,
			&party,
			&note,
			&e.Debit,
			&e.Credit,
			&reconciled,
			&bank,
			&reference,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse entry date %q: %w", date, err)
		}
		e.Party = party.String
		e.Note = note.String
		e.BankAccount = bank.String
		e.Reference = reference.String
		if reconciled.Valid {
			e.Reconciled = &reconciled.Bool
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}

var _ storage.EntryStore = (*Store)(nil)
