// Package memory implements storage.EntryStore in process memory. It backs
// tests and the zero-configuration default backend.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"rendiconto/internal/core"
	"rendiconto/internal/storage"
)

type Store struct {
	mu      sync.RWMutex
	entries []core.LedgerEntry
	nextID  int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// Seed adds entries to the store, assigning ids to entries without one.
func (s *Store) Seed(entries ...core.LedgerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		if e.ID == 0 {
			e.ID = s.nextID
		}
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
		s.entries = append(s.entries, e)
	}
}

// CashFlowEntries implements storage.EntryStore using the shared predicate
// so the in-memory filter agrees with the SQL backends.
func (s *Store) CashFlowEntries(ctx context.Context, companyID string, from, to time.Time) ([]core.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []core.LedgerEntry
	for _, e := range s.entries {
		if e.CompanyID != companyID {
			continue
		}
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		if !core.MatchesCashFlowFilter(e) {
			continue
		}
		matched = append(matched, e)
	}
	sortEntries(matched)
	return matched, nil
}

// OpeningBalance implements storage.EntryStore.
func (s *Store) OpeningBalance(ctx context.Context, companyID string, cutoff time.Time) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance := decimal.Zero
	for _, e := range s.entries {
		if e.CompanyID == companyID && e.Date.Before(cutoff) {
			balance = balance.Add(e.Net())
		}
	}
	return balance, nil
}

// UnreconciledEntries implements storage.EntryStore.
func (s *Store) UnreconciledEntries(ctx context.Context, companyID, bankAccount string) ([]core.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []core.LedgerEntry
	for _, e := range s.entries {
		if e.CompanyID != companyID || e.BankAccount != bankAccount {
			continue
		}
		if e.IsReconciled() {
			continue
		}
		matched = append(matched, e)
	}
	sortEntries(matched)
	return matched, nil
}

// LedgerBalance implements storage.EntryStore.
func (s *Store) LedgerBalance(ctx context.Context, companyID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance := decimal.Zero
	for _, e := range s.entries {
		if e.CompanyID == companyID {
			balance = balance.Add(e.Net())
		}
	}
	return balance, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

// sortEntries orders by date then id, matching the SQL backends so repeated
// requests serialize identically.
func sortEntries(entries []core.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].ID < entries[j].ID
	})
}

var _ storage.EntryStore = (*Store)(nil)
