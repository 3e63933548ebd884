package state

import (
	"sync"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// State is the client's whole in-memory view of the user's finances.
type State struct {
	Accounts     *Collection[entity.Account]
	Transactions *Collection[entity.Transaction]
	Goals        *Collection[entity.Goal]
	Platforms    *Collection[entity.Platform]
	Loading      *LoadingTracker

	mu        sync.RWMutex
	overview  *entity.Overview
	warmStart bool // a snapshot restore was already attempted
}

// New creates an empty state.
func New() *State {
	return &State{
		Accounts:     NewCollection[entity.Account](),
		Transactions: NewCollection[entity.Transaction](),
		Goals:        NewCollection[entity.Goal](),
		Platforms:    NewCollection[entity.Platform](),
		Loading:      &LoadingTracker{},
	}
}

// ServerOverview returns the last overview fetched from the service.
func (s *State) ServerOverview() (entity.Overview, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.overview == nil {
		return entity.Overview{}, false
	}
	return *s.overview, true
}

// SetServerOverview stores an overview fetched from the service.
func (s *State) SetServerOverview(overview entity.Overview) {
	s.mu.Lock()
	s.overview = &overview
	s.mu.Unlock()
}

// Snapshot is a point-in-time copy of the collections.
type Snapshot struct {
	Accounts     []entity.Account
	Transactions []entity.Transaction
	Goals        []entity.Goal
	Platforms    []entity.Platform
}

// Snapshot copies the current collections.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Accounts:     s.Accounts.All(),
		Transactions: s.Transactions.All(),
		Goals:        s.Goals.All(),
		Platforms:    s.Platforms.All(),
	}
}

// ClaimWarmStart reports whether this is the first chance to restore a
// snapshot into the state. It returns true once until the next Reset.
func (s *State) ClaimWarmStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.warmStart {
		return false
	}
	s.warmStart = true
	return true
}

// Reset drops everything held, as when the credential changes hands.
func (s *State) Reset() {
	s.Accounts.Reset()
	s.Transactions.Reset()
	s.Goals.Reset()
	s.Platforms.Reset()

	s.mu.Lock()
	s.overview = nil
	s.warmStart = false
	s.mu.Unlock()
}

// Restore seeds the collections no fetch or mutation has touched yet from
// a snapshot. Restored accounts are marked provisional. Only accounts carry
// the flag: their balances are the one value the client projects locally.
func (s *State) Restore(snap Snapshot) {
	accounts := make([]entity.Account, len(snap.Accounts))
	for i, a := range snap.Accounts {
		a.Provisional = true
		accounts[i] = a
	}
	s.Accounts.Seed(accounts)
	s.Transactions.Seed(snap.Transactions)
	s.Goals.Seed(snap.Goals)
	s.Platforms.Seed(snap.Platforms)
}
