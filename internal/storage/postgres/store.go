// Package postgres implements storage.EntryStore on PostgreSQL via lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"rendiconto/internal/core"
	"rendiconto/internal/storage"
)

type Store struct {
	db *sql.DB
}

// Options bound the shared connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewStore opens the database, configures the pool, and runs migrations.
func NewStore(dsn string, opts Options) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
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
	WHERE company_id = $1
	  AND reconciled = TRUE
	  AND entry_date >= $2 AND entry_date <= $3
	  AND ((account = 'Cash' AND debit > 0)
	    OR (credit > 0 AND account IN ('Office Rent', 'Utilities Expense', 'Bank Charges')))
	ORDER BY entry_date, id`

	rows, err := s.db.QueryContext(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query cash flow entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// OpeningBalance implements storage.EntryStore. COALESCE guards the
// null-sum-of-empty-set.
func (s *Store) OpeningBalance(ctx context.Context, companyID string, cutoff time.Time) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(debit - credit), 0)
	FROM accounting_ledger_entry
	WHERE company_id = $1 AND entry_date < $2`

	var balance decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, companyID, cutoff).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("query opening balance: %w", err)
	}
	return balance, nil
}

// UnreconciledEntries implements storage.EntryStore. IS NOT TRUE matches
// both false and NULL reconciled flags.
func (s *Store) UnreconciledEntries(ctx context.Context, companyID, bankAccount string) ([]core.LedgerEntry, error) {
	const query = `SELECT ` + entryColumns + `
	FROM accounting_ledger_entry
	WHERE company_id = $1
	  AND bank_account = $2
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
	WHERE company_id = $1`

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
			party      sql.NullString
			note       sql.NullString
			reconciled sql.NullBool
			bank       sql.NullString
			reference  sql.NullString
		)
		err := rows.Scan(
			&e.ID,
			&e.CompanyID,
			&e.Date,
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
