//go:build integration

package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/usecase/account"
	"github.com/finance-tracker/client/internal/application/usecase/bootstrap"
	"github.com/finance-tracker/client/internal/application/usecase/goal"
	"github.com/finance-tracker/client/internal/application/usecase/transaction"
	"github.com/finance-tracker/client/internal/domain/entity"
)

func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I create a "([^"]*)" account "([^"]*)" with balance "([^"]*)"$`, iCreateAnAccount)
	ctx.Step(`^I set the balance of account "([^"]*)" to "([^"]*)"$`, iSetTheBalanceOfAccount)
	ctx.Step(`^I delete account "([^"]*)"$`, iDeleteAccount)
	ctx.Step(`^I record an? "([^"]*)" of "([^"]*)" on account "([^"]*)"$`, iRecordATransaction)
	ctx.Step(`^I record an? "([^"]*)" of "([^"]*)" on account "([^"]*)" dated "([^"]*)"$`, iRecordADatedTransaction)
	ctx.Step(`^I create a "([^"]*)" goal "([^"]*)" targeting "([^"]*)" by "([^"]*)"$`, iCreateAGoal)
	ctx.Step(`^I record progress of "([^"]*)" on goal "([^"]*)"$`, iRecordProgressOnGoal)
	ctx.Step(`^I rename goal "([^"]*)" to "([^"]*)"$`, iRenameGoal)
	ctx.Step(`^I delete goal "([^"]*)"$`, iDeleteGoalNamed)
	ctx.Step(`^I delete goal (\d+)$`, iDeleteGoalByID)
	ctx.Step(`^I load all data$`, iLoadAllData)
	ctx.Step(`^I load accounts$`, iLoadAccounts)
}

func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", value)
	}
	// Midday keeps the date stable across time zones
	return t.Add(12 * time.Hour), nil
}

func findAccount(tc *TestContext, name string) (entity.Account, error) {
	for _, a := range tc.client.State.Accounts.All() {
		if a.Name == name {
			return a, nil
		}
	}
	return entity.Account{}, fmt.Errorf("account %q is not held locally", name)
}

func findGoal(tc *TestContext, name string) (entity.Goal, error) {
	for _, g := range tc.client.State.Goals.All() {
		if g.Name == name {
			return g, nil
		}
	}
	return entity.Goal{}, fmt.Errorf("goal %q is not held locally", name)
}

func iCreateAnAccount(ctx context.Context, accountType, name, balance string) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}

	_, tc.lastErr = client.CreateAccount.Execute(ctx, account.CreateAccountInput{Draft: entity.AccountDraft{
		Name:       name,
		Type:       entity.AccountType(accountType),
		Number:     "0001",
		PlatformID: defaultPlatform,
		Balance:    decimal.RequireFromString(balance),
	}})
	return nil
}

func iSetTheBalanceOfAccount(ctx context.Context, name, balance string) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}
	held, err := findAccount(tc, name)
	if err != nil {
		return err
	}

	_, tc.lastErr = client.UpdateBalance.Execute(ctx, account.UpdateBalanceInput{
		AccountID: held.ID,
		Balance:   decimal.RequireFromString(balance),
	})
	return nil
}

func iDeleteAccount(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}
	held, err := findAccount(tc, name)
	if err != nil {
		return err
	}

	tc.lastErr = client.DeleteAccount.Execute(ctx, account.DeleteAccountInput{AccountID: held.ID})
	return nil
}

func iRecordATransaction(ctx context.Context, txType, amount, accountName string) error {
	return recordTransaction(ctx, txType, amount, accountName, GetTestContext(ctx).timeMock.Now())
}

func iRecordADatedTransaction(ctx context.Context, txType, amount, accountName, date string) error {
	occurredAt, err := parseTime(date)
	if err != nil {
		return err
	}
	return recordTransaction(ctx, txType, amount, accountName, occurredAt)
}

func recordTransaction(ctx context.Context, txType, amount, accountName string, occurredAt time.Time) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}
	held, err := findAccount(tc, accountName)
	if err != nil {
		return err
	}

	_, tc.lastErr = client.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{Draft: entity.TransactionDraft{
		AccountID:  held.ID,
		Type:       entity.TransactionType(txType),
		Category:   "general",
		Amount:     decimal.RequireFromString(amount),
		OccurredAt: occurredAt,
	}})
	return nil
}

func iCreateAGoal(ctx context.Context, goalType, name, target, deadline string) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}
	due, err := parseTime(deadline)
	if err != nil {
		return err
	}

	_, tc.lastErr = client.CreateGoal.Execute(ctx, goal.CreateGoalInput{Draft: entity.GoalDraft{
		Name:         name,
		Type:         entity.GoalType(goalType),
		TargetAmount: decimal.RequireFromString(target),
		Deadline:     due,
		Priority:     entity.PriorityMedium,
	}})
	return nil
}

func iRecordProgressOnGoal(ctx context.Context, amount, name string) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}
	held, err := findGoal(tc, name)
	if err != nil {
		return err
	}

	_, tc.lastErr = client.UpdateProgress.Execute(ctx, goal.UpdateProgressInput{
		GoalID:        held.ID,
		CurrentAmount: decimal.RequireFromString(amount),
	})
	return nil
}

func iRenameGoal(ctx context.Context, name, newName string) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}
	held, err := findGoal(tc, name)
	if err != nil {
		return err
	}

	_, tc.lastErr = client.UpdateGoal.Execute(ctx, goal.UpdateGoalInput{
		GoalID: held.ID,
		Draft: entity.GoalDraft{
			Name:         newName,
			Type:         held.Type,
			TargetAmount: held.TargetAmount,
			Deadline:     held.Deadline,
			Priority:     held.Priority,
		},
	})
	return nil
}

func iDeleteGoalNamed(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if _, err := tc.Client(ctx); err != nil {
		return err
	}
	held, err := findGoal(tc, name)
	if err != nil {
		return err
	}
	return iDeleteGoalByID(ctx, held.ID)
}

func iDeleteGoalByID(ctx context.Context, id int64) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}

	tc.lastErr = client.DeleteGoal.Execute(ctx, goal.DeleteGoalInput{GoalID: id})
	return nil
}

func iLoadAllData(ctx context.Context) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}

	tc.lastLoad = client.InitializeData.Execute(ctx, bootstrap.InitializeDataInput{})
	return nil
}

func iLoadAccounts(ctx context.Context) error {
	client, err := GetTestContext(ctx).Client(ctx)
	if err != nil {
		return err
	}

	client.ListAccounts.Execute(ctx)
	return nil
}
