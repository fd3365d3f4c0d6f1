package repository

import (
	"sync"

	"github.com/financialking/budget-service/internal/models"
)

// Ledger holds a snapshot of one user's raw transactions, partitioned
// by account type
type Ledger struct {
	Bank []models.BankTransaction
	Card []models.CardTransaction
}

// userLedger is the mutable per-user state. Its mutex serializes
// appends and snapshot copies for that user.
type userLedger struct {
	mu   sync.Mutex
	bank []models.BankTransaction
	card []models.CardTransaction
}

// Repository provides in-memory ledger storage. Data lives for the
// process lifetime only; uploads always append and never replace.
type Repository struct {
	mu    sync.RWMutex
	users map[string]*userLedger
}

// NewRepository initializes an empty repository
func NewRepository() *Repository {
	return &Repository{users: make(map[string]*userLedger)}
}

// ledgerFor returns the ledger for a user, creating it on first use
func (r *Repository) ledgerFor(userID string) *userLedger {
	r.mu.RLock()
	l, ok := r.users[userID]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok = r.users[userID]; !ok {
		l = &userLedger{}
		r.users[userID] = l
	}
	return l
}

// AppendBank appends bank account records to a user's ledger
func (r *Repository) AppendBank(userID string, records []models.BankTransaction) {
	l := r.ledgerFor(userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bank = append(l.bank, records...)
}

// AppendCard appends credit card records to a user's ledger
func (r *Repository) AppendCard(userID string, records []models.CardTransaction) {
	l := r.ledgerFor(userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.card = append(l.card, records...)
}

// Snapshot returns a copy of a user's ledger taken under the same lock
// used by writers, so readers never observe a partial append. An
// unknown user yields an empty ledger.
func (r *Repository) Snapshot(userID string) Ledger {
	r.mu.RLock()
	l, ok := r.users[userID]
	r.mu.RUnlock()
	if !ok {
		return Ledger{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	snap := Ledger{
		Bank: make([]models.BankTransaction, len(l.bank)),
		Card: make([]models.CardTransaction, len(l.card)),
	}
	copy(snap.Bank, l.bank)
	copy(snap.Card, l.card)
	return snap
}

// Users returns the IDs of all users with stored data
func (r *Repository) Users() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids
}
