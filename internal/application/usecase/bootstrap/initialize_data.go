// Package bootstrap contains the use cases that load the whole state.
package bootstrap

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/application/usecase/account"
	"github.com/finance-tracker/client/internal/application/usecase/dashboard"
	"github.com/finance-tracker/client/internal/application/usecase/goal"
	"github.com/finance-tracker/client/internal/application/usecase/platform"
	"github.com/finance-tracker/client/internal/application/usecase/transaction"
)

// InitializeDataInput represents the input for a full load.
type InitializeDataInput struct {
	TransactionLimit int // Optional, defaults to transaction.DefaultListLimit
}

// InitializeDataOutput reports which loads applied fresh data.
type InitializeDataOutput struct {
	Restored     bool // collections were seeded from the snapshot cache first
	Platforms    bool
	Accounts     bool
	Transactions bool
	Goals        bool
	Overview     bool
}

// Complete reports whether every load succeeded.
func (o *InitializeDataOutput) Complete() bool {
	return o.Platforms && o.Accounts && o.Transactions && o.Goals && o.Overview
}

// InitializeDataUseCase loads every collection and the overview concurrently.
type InitializeDataUseCase struct {
	state        *state.State
	cache        adapter.SnapshotCache
	owner        adapter.CredentialOwner
	platforms    *platform.ListPlatformsUseCase
	accounts     *account.ListAccountsUseCase
	transactions *transaction.ListTransactionsUseCase
	goals        *goal.ListGoalsUseCase
	overview     *dashboard.GetOverviewUseCase
}

// NewInitializeDataUseCase creates a new InitializeDataUseCase instance.
// cache may be nil to disable snapshots. Snapshots are kept per owner, so
// without an owner (or a credential) none are read or written.
func NewInitializeDataUseCase(service adapter.FinanceService, st *state.State, cache adapter.SnapshotCache, owner adapter.CredentialOwner) *InitializeDataUseCase {
	return &InitializeDataUseCase{
		state:        st,
		cache:        cache,
		owner:        owner,
		platforms:    platform.NewListPlatformsUseCase(service, st),
		accounts:     account.NewListAccountsUseCase(service, st),
		transactions: transaction.NewListTransactionsUseCase(service, st),
		goals:        goal.NewListGoalsUseCase(service, st),
		overview:     dashboard.NewGetOverviewUseCase(service, st),
	}
}

// Execute runs the loads concurrently and waits for all of them. Each load
// reconciles only its own collection, so their completion order is
// irrelevant. A failed load keeps that collection's previous contents.
//
// Only the first run over a State may warm start from the snapshot; later
// runs, such as refresher ticks, never bring cached records back.
func (uc *InitializeDataUseCase) Execute(ctx context.Context, input InitializeDataInput) *InitializeDataOutput {
	owner, scoped := uc.snapshotOwner()

	output := &InitializeDataOutput{}
	if uc.state.ClaimWarmStart() && scoped {
		output.Restored = uc.restore(ctx, owner)
	}

	var g errgroup.Group
	g.Go(func() error {
		output.Platforms = uc.platforms.Execute(ctx)
		return nil
	})
	g.Go(func() error {
		output.Accounts = uc.accounts.Execute(ctx)
		return nil
	})
	g.Go(func() error {
		output.Transactions = uc.transactions.Execute(ctx, transaction.ListTransactionsInput{Limit: input.TransactionLimit})
		return nil
	})
	g.Go(func() error {
		output.Goals = uc.goals.Execute(ctx)
		return nil
	})
	g.Go(func() error {
		result := uc.overview.Execute(ctx)
		output.Overview = result != nil && result.Fresh
		return nil
	})
	_ = g.Wait()

	if output.Complete() {
		if scoped {
			uc.save(ctx, owner)
		}
	} else {
		slog.Warn("Initial load incomplete",
			"platforms", output.Platforms,
			"accounts", output.Accounts,
			"transactions", output.Transactions,
			"goals", output.Goals,
			"overview", output.Overview,
		)
	}

	return output
}

func (uc *InitializeDataUseCase) snapshotOwner() (string, bool) {
	if uc.cache == nil || uc.owner == nil {
		return "", false
	}
	return uc.owner.Owner()
}

func (uc *InitializeDataUseCase) restore(ctx context.Context, owner string) bool {
	snap, ok, err := uc.cache.Load(context.WithoutCancel(ctx), owner)
	if err != nil {
		slog.Warn("Failed to load state snapshot", "error", err)
		return false
	}
	if !ok {
		return false
	}

	uc.state.Restore(snap)
	slog.Debug("Restored state snapshot",
		"accounts", len(snap.Accounts),
		"transactions", len(snap.Transactions),
	)
	return true
}

func (uc *InitializeDataUseCase) save(ctx context.Context, owner string) {
	// The credential changed hands while loading.
	if current, ok := uc.owner.Owner(); !ok || current != owner {
		return
	}

	if err := uc.cache.Save(context.WithoutCancel(ctx), owner, uc.state.Snapshot()); err != nil {
		slog.Warn("Failed to save state snapshot", "error", err)
	}
}
