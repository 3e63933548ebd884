package cache

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// Money is encoded as decimal strings so no precision is lost.

type envelope struct {
	Version      int                 `msgpack:"v"`
	SavedAt      time.Time           `msgpack:"saved_at"`
	Platforms    []platformRecord    `msgpack:"platforms"`
	Accounts     []accountRecord     `msgpack:"accounts"`
	Transactions []transactionRecord `msgpack:"transactions"`
	Goals        []goalRecord        `msgpack:"goals"`
}

type platformRecord struct {
	ID      int64  `msgpack:"id"`
	Name    string `msgpack:"name"`
	Type    string `msgpack:"type"`
	LogoURL string `msgpack:"logo_url"`
	Active  bool   `msgpack:"active"`
}

type accountRecord struct {
	ID          int64           `msgpack:"id"`
	Name        string          `msgpack:"name"`
	Type        string          `msgpack:"type"`
	Number      string          `msgpack:"number"`
	Currency    string          `msgpack:"currency"`
	PlatformID  int64           `msgpack:"platform_id"`
	Platform    *platformRecord `msgpack:"platform"`
	Balance     string          `msgpack:"balance"`
	Active      bool            `msgpack:"active"`
	CreatedAt   time.Time       `msgpack:"created_at"`
	LastUpdated time.Time       `msgpack:"last_updated"`
}

type transactionRecord struct {
	ID          int64     `msgpack:"id"`
	AccountID   int64     `msgpack:"account_id"`
	Type        string    `msgpack:"type"`
	Category    string    `msgpack:"category"`
	Amount      string    `msgpack:"amount"`
	Description string    `msgpack:"description"`
	OccurredAt  time.Time `msgpack:"occurred_at"`
	CreatedAt   time.Time `msgpack:"created_at"`
}

type goalRecord struct {
	ID            int64     `msgpack:"id"`
	Name          string    `msgpack:"name"`
	Type          string    `msgpack:"type"`
	TargetAmount  string    `msgpack:"target_amount"`
	CurrentAmount string    `msgpack:"current_amount"`
	Deadline      time.Time `msgpack:"deadline"`
	Priority      string    `msgpack:"priority"`
	Active        bool      `msgpack:"active"`
	CreatedAt     time.Time `msgpack:"created_at"`
	UpdatedAt     time.Time `msgpack:"updated_at"`
}

func toEnvelope(snap state.Snapshot, savedAt time.Time) envelope {
	env := envelope{
		Version:      snapshotVersion,
		SavedAt:      savedAt,
		Platforms:    make([]platformRecord, len(snap.Platforms)),
		Accounts:     make([]accountRecord, len(snap.Accounts)),
		Transactions: make([]transactionRecord, len(snap.Transactions)),
		Goals:        make([]goalRecord, len(snap.Goals)),
	}

	for i, p := range snap.Platforms {
		env.Platforms[i] = toPlatformRecord(p)
	}
	for i, a := range snap.Accounts {
		record := accountRecord{
			ID:          a.ID,
			Name:        a.Name,
			Type:        string(a.Type),
			Number:      a.Number,
			Currency:    a.Currency,
			PlatformID:  a.PlatformID,
			Balance:     a.Balance.String(),
			Active:      a.Active,
			CreatedAt:   a.CreatedAt,
			LastUpdated: a.LastUpdated,
		}
		if a.Platform != nil {
			platform := toPlatformRecord(*a.Platform)
			record.Platform = &platform
		}
		env.Accounts[i] = record
	}
	for i, t := range snap.Transactions {
		env.Transactions[i] = transactionRecord{
			ID:          t.ID,
			AccountID:   t.AccountID,
			Type:        string(t.Type),
			Category:    t.Category,
			Amount:      t.Amount.String(),
			Description: t.Description,
			OccurredAt:  t.OccurredAt,
			CreatedAt:   t.CreatedAt,
		}
	}
	for i, g := range snap.Goals {
		env.Goals[i] = goalRecord{
			ID:            g.ID,
			Name:          g.Name,
			Type:          string(g.Type),
			TargetAmount:  g.TargetAmount.String(),
			CurrentAmount: g.CurrentAmount.String(),
			Deadline:      g.Deadline,
			Priority:      string(g.Priority),
			Active:        g.Active,
			CreatedAt:     g.CreatedAt,
			UpdatedAt:     g.UpdatedAt,
		}
	}

	return env
}

func toPlatformRecord(p entity.Platform) platformRecord {
	return platformRecord{
		ID:      p.ID,
		Name:    p.Name,
		Type:    string(p.Type),
		LogoURL: p.LogoURL,
		Active:  p.Active,
	}
}

func (r platformRecord) toEntity() entity.Platform {
	return entity.Platform{
		ID:      r.ID,
		Name:    r.Name,
		Type:    entity.PlatformType(r.Type),
		LogoURL: r.LogoURL,
		Active:  r.Active,
	}
}

func (e envelope) toSnapshot() (state.Snapshot, error) {
	snap := state.Snapshot{
		Platforms:    make([]entity.Platform, len(e.Platforms)),
		Accounts:     make([]entity.Account, len(e.Accounts)),
		Transactions: make([]entity.Transaction, len(e.Transactions)),
		Goals:        make([]entity.Goal, len(e.Goals)),
	}

	for i, r := range e.Platforms {
		snap.Platforms[i] = r.toEntity()
	}
	for i, r := range e.Accounts {
		balance, err := decimal.NewFromString(r.Balance)
		if err != nil {
			return state.Snapshot{}, err
		}
		account := entity.Account{
			ID:          r.ID,
			Name:        r.Name,
			Type:        entity.AccountType(r.Type),
			Number:      r.Number,
			Currency:    r.Currency,
			PlatformID:  r.PlatformID,
			Balance:     balance,
			Active:      r.Active,
			CreatedAt:   r.CreatedAt,
			LastUpdated: r.LastUpdated,
		}
		if r.Platform != nil {
			platform := r.Platform.toEntity()
			account.Platform = &platform
		}
		snap.Accounts[i] = account
	}
	for i, r := range e.Transactions {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return state.Snapshot{}, err
		}
		snap.Transactions[i] = entity.Transaction{
			ID:          r.ID,
			AccountID:   r.AccountID,
			Type:        entity.TransactionType(r.Type),
			Category:    r.Category,
			Amount:      amount,
			Description: r.Description,
			OccurredAt:  r.OccurredAt,
			CreatedAt:   r.CreatedAt,
		}
	}
	for i, r := range e.Goals {
		target, err := decimal.NewFromString(r.TargetAmount)
		if err != nil {
			return state.Snapshot{}, err
		}
		current, err := decimal.NewFromString(r.CurrentAmount)
		if err != nil {
			return state.Snapshot{}, err
		}
		snap.Goals[i] = entity.Goal{
			ID:            r.ID,
			Name:          r.Name,
			Type:          entity.GoalType(r.Type),
			TargetAmount:  target,
			CurrentAmount: current,
			Deadline:      r.Deadline,
			Priority:      entity.Priority(r.Priority),
			Active:        r.Active,
			CreatedAt:     r.CreatedAt,
			UpdatedAt:     r.UpdatedAt,
		}
	}

	return snap, nil
}
