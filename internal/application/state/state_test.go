package state

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finance-tracker/client/internal/domain/entity"
)

func TestState_RestoreSeedsOnlyEmptyCollections(t *testing.T) {
	s := New()
	s.Goals.ReplaceAll([]entity.Goal{{ID: 7, Name: "fetched"}})

	s.Restore(Snapshot{
		Accounts: []entity.Account{{ID: 1, Balance: decimal.NewFromInt(100)}},
		Goals:    []entity.Goal{{ID: 8, Name: "cached"}},
	})

	accounts := s.Accounts.All()
	if assert.Len(t, accounts, 1) {
		assert.True(t, accounts[0].Provisional)
	}
	goals := s.Goals.All()
	if assert.Len(t, goals, 1) {
		assert.Equal(t, "fetched", goals[0].Name)
	}
}

func TestState_ServerOverview(t *testing.T) {
	s := New()

	_, ok := s.ServerOverview()
	assert.False(t, ok)

	s.SetServerOverview(entity.Overview{TotalBalance: decimal.NewFromInt(42)})
	overview, ok := s.ServerOverview()
	assert.True(t, ok)
	assert.True(t, overview.TotalBalance.Equal(decimal.NewFromInt(42)))
}

func TestState_ClaimWarmStartOnce(t *testing.T) {
	s := New()

	assert.True(t, s.ClaimWarmStart())
	assert.False(t, s.ClaimWarmStart())
	assert.False(t, s.ClaimWarmStart())

	s.Reset()
	assert.True(t, s.ClaimWarmStart(), "a reset state may warm start again")
}

func TestState_RestoreSkipsEmptiedCollections(t *testing.T) {
	s := New()
	s.Goals.Append(entity.Goal{ID: 3, Name: "Trip"})
	s.Goals.Remove(3)

	s.Restore(Snapshot{Goals: []entity.Goal{{ID: 3, Name: "Trip"}}})

	assert.Zero(t, s.Goals.Len(), "a deleted goal must not come back")
}

func TestState_Reset(t *testing.T) {
	s := New()
	s.Accounts.ReplaceAll([]entity.Account{{ID: 1}})
	s.Transactions.Prepend(entity.Transaction{ID: 2})
	s.Goals.Append(entity.Goal{ID: 3})
	s.Platforms.ReplaceAll([]entity.Platform{{ID: 4}})
	s.SetServerOverview(entity.Overview{TotalBalance: decimal.NewFromInt(1)})
	s.ClaimWarmStart()

	s.Reset()

	assert.Zero(t, s.Accounts.Len())
	assert.Zero(t, s.Transactions.Len())
	assert.Zero(t, s.Goals.Len())
	assert.Zero(t, s.Platforms.Len())
	_, ok := s.ServerOverview()
	assert.False(t, ok)

	s.Restore(Snapshot{Accounts: []entity.Account{{ID: 9}}})
	assert.Equal(t, 1, s.Accounts.Len())
}
