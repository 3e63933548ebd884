//go:build integration

package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

func registerAssertionSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the operation should succeed$`, theOperationShouldSucceed)
	ctx.Step(`^the operation should fail with message "([^"]*)"$`, theOperationShouldFailWithMessage)
	ctx.Step(`^the local state should hold (\d+) (accounts?|transactions?|goals?|platforms?)$`, theLocalStateShouldHold)
	ctx.Step(`^the local state should hold goal "([^"]*)"$`, theLocalStateShouldHoldGoal)
	ctx.Step(`^account "([^"]*)" should have balance "([^"]*)"$`, accountShouldHaveBalance)
	ctx.Step(`^account "([^"]*)" should be provisional$`, accountShouldBeProvisional)
	ctx.Step(`^account "([^"]*)" should not be provisional$`, accountShouldNotBeProvisional)
	ctx.Step(`^goal "([^"]*)" should have current amount "([^"]*)"$`, goalShouldHaveCurrentAmount)
	ctx.Step(`^the transaction amounts should be "([^"]*)"$`, theTransactionAmountsShouldBe)
	ctx.Step(`^the data load should be complete$`, theDataLoadShouldBeComplete)
	ctx.Step(`^the data load should be restored from the snapshot$`, theDataLoadShouldBeRestored)
	ctx.Step(`^the data load should not be restored from the snapshot$`, theDataLoadShouldNotBeRestored)
	ctx.Step(`^the local overview should report a total balance of "([^"]*)"$`, theLocalOverviewTotalBalance)
	ctx.Step(`^the local overview should report monthly income "([^"]*)" and expenses "([^"]*)"$`, theLocalOverviewCashflow)
	ctx.Step(`^the local overview should report a savings rate of "([^"]*)"$`, theLocalOverviewSavingsRate)
	ctx.Step(`^the local overview should match the service overview$`, theLocalOverviewShouldMatchTheService)
}

func expectDecimal(what, expected string, actual decimal.Decimal) error {
	if !decimal.RequireFromString(expected).Equal(actual) {
		return fmt.Errorf("expected %s %s, got %s", what, expected, actual)
	}
	return nil
}

func theOperationShouldSucceed(ctx context.Context) error {
	if err := GetTestContext(ctx).lastErr; err != nil {
		return fmt.Errorf("expected success, got: %w", err)
	}
	return nil
}

func theOperationShouldFailWithMessage(ctx context.Context, message string) error {
	err := GetTestContext(ctx).lastErr
	if err == nil {
		return fmt.Errorf("expected the operation to fail")
	}

	var opErr *domainerror.OperationError
	if !errors.As(err, &opErr) {
		return fmt.Errorf("expected an operation error, got %T: %v", err, err)
	}
	if opErr.Message != message {
		return fmt.Errorf("expected message %q, got %q", message, opErr.Message)
	}
	return nil
}

func theLocalStateShouldHold(ctx context.Context, count int, kind string) error {
	tc := GetTestContext(ctx)
	if _, err := tc.Client(ctx); err != nil {
		return err
	}

	st := tc.client.State
	var actual int
	switch strings.TrimSuffix(kind, "s") {
	case "account":
		actual = st.Accounts.Len()
	case "transaction":
		actual = st.Transactions.Len()
	case "goal":
		actual = st.Goals.Len()
	case "platform":
		actual = st.Platforms.Len()
	}

	if actual != count {
		return fmt.Errorf("expected %d %s, got %d", count, kind, actual)
	}
	return nil
}

func theLocalStateShouldHoldGoal(ctx context.Context, name string) error {
	_, err := findGoal(GetTestContext(ctx), name)
	return err
}

func accountShouldHaveBalance(ctx context.Context, name, balance string) error {
	held, err := findAccount(GetTestContext(ctx), name)
	if err != nil {
		return err
	}
	return expectDecimal("balance", balance, held.Balance)
}

func accountShouldBeProvisional(ctx context.Context, name string) error {
	held, err := findAccount(GetTestContext(ctx), name)
	if err != nil {
		return err
	}
	if !held.Provisional {
		return fmt.Errorf("expected account %q to be provisional", name)
	}
	return nil
}

func accountShouldNotBeProvisional(ctx context.Context, name string) error {
	held, err := findAccount(GetTestContext(ctx), name)
	if err != nil {
		return err
	}
	if held.Provisional {
		return fmt.Errorf("expected account %q to be confirmed", name)
	}
	return nil
}

func goalShouldHaveCurrentAmount(ctx context.Context, name, amount string) error {
	held, err := findGoal(GetTestContext(ctx), name)
	if err != nil {
		return err
	}
	return expectDecimal("current amount", amount, held.CurrentAmount)
}

func theTransactionAmountsShouldBe(ctx context.Context, amounts string) error {
	expected := strings.Split(amounts, ", ")
	held := GetTestContext(ctx).client.State.Transactions.All()
	if len(held) != len(expected) {
		return fmt.Errorf("expected %d transactions, got %d", len(expected), len(held))
	}
	for i, tx := range held {
		if err := expectDecimal(fmt.Sprintf("transaction %d amount", i), expected[i], tx.Amount); err != nil {
			return err
		}
	}
	return nil
}

func theDataLoadShouldBeComplete(ctx context.Context) error {
	load := GetTestContext(ctx).lastLoad
	if load == nil || !load.Complete() {
		return fmt.Errorf("expected a complete load, got %+v", load)
	}
	return nil
}

func theDataLoadShouldBeRestored(ctx context.Context) error {
	load := GetTestContext(ctx).lastLoad
	if load == nil || !load.Restored {
		return fmt.Errorf("expected the load to start from the snapshot, got %+v", load)
	}
	return nil
}

func theDataLoadShouldNotBeRestored(ctx context.Context) error {
	load := GetTestContext(ctx).lastLoad
	if load == nil {
		return fmt.Errorf("no data load has run")
	}
	if load.Restored {
		return fmt.Errorf("expected the load not to start from a snapshot")
	}
	return nil
}

func theLocalOverviewTotalBalance(ctx context.Context, balance string) error {
	overview := GetTestContext(ctx).client.GetLocalOverview.Execute()
	return expectDecimal("total balance", balance, overview.TotalBalance)
}

func theLocalOverviewCashflow(ctx context.Context, income, expenses string) error {
	overview := GetTestContext(ctx).client.GetLocalOverview.Execute()
	if err := expectDecimal("monthly income", income, overview.MonthlyIncome); err != nil {
		return err
	}
	return expectDecimal("monthly expenses", expenses, overview.MonthlyExpenses)
}

func theLocalOverviewSavingsRate(ctx context.Context, rate string) error {
	overview := GetTestContext(ctx).client.GetLocalOverview.Execute()
	return expectDecimal("savings rate", rate, overview.SavingsRate)
}

func theLocalOverviewShouldMatchTheService(ctx context.Context) error {
	client := GetTestContext(ctx).client
	server, ok := client.State.ServerOverview()
	if !ok {
		return fmt.Errorf("no service overview has been loaded")
	}
	local := client.GetLocalOverview.Execute()

	checks := []struct {
		what          string
		server, local decimal.Decimal
	}{
		{"total balance", server.TotalBalance, local.TotalBalance},
		{"monthly income", server.MonthlyIncome, local.MonthlyIncome},
		{"monthly expenses", server.MonthlyExpenses, local.MonthlyExpenses},
		{"savings rate", server.SavingsRate, local.SavingsRate},
	}
	for _, c := range checks {
		if !c.server.Equal(c.local) {
			return fmt.Errorf("%s differs: service %s, local %s", c.what, c.server, c.local)
		}
	}

	if len(server.AccountSummaries) != len(local.AccountSummaries) {
		return fmt.Errorf("platform groups differ: service %d, local %d", len(server.AccountSummaries), len(local.AccountSummaries))
	}
	return nil
}
