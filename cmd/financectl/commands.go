package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"

	"github.com/finance-tracker/client/internal/application/aggregate"
	"github.com/finance-tracker/client/internal/application/usecase/account"
	"github.com/finance-tracker/client/internal/application/usecase/auth"
	"github.com/finance-tracker/client/internal/application/usecase/bootstrap"
	"github.com/finance-tracker/client/internal/application/usecase/dashboard"
	"github.com/finance-tracker/client/internal/application/usecase/goal"
	"github.com/finance-tracker/client/internal/application/usecase/platform"
	"github.com/finance-tracker/client/internal/application/usecase/transaction"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/infra/dependency"
	"github.com/finance-tracker/client/internal/integration/refresher"
)

const dateLayout = "2006-01-02"

type command struct {
	summary string
	run     func(ctx context.Context, c *dependency.Client, args []string) error
}

var commands = map[string]command{
	"register":           {"create an account on the service", runRegister},
	"login":              {"log in and keep the credential", runLogin},
	"logout":             {"forget the stored credential", runLogout},
	"me":                 {"show the logged in user", runMe},
	"platforms":          {"list platforms", runPlatforms},
	"platform-create":    {"add a platform", runPlatformCreate},
	"accounts":           {"list accounts", runAccounts},
	"account-create":     {"open an account", runAccountCreate},
	"account-balance":    {"set an account balance", runAccountBalance},
	"account-delete":     {"delete an account", runAccountDelete},
	"transactions":       {"list recent transactions", runTransactions},
	"transaction-create": {"record a transaction", runTransactionCreate},
	"goals":              {"list active goals", runGoals},
	"goal-create":        {"add a goal", runGoalCreate},
	"goal-update":        {"edit a goal", runGoalUpdate},
	"goal-progress":      {"set a goal's current amount", runGoalProgress},
	"goal-delete":        {"deactivate a goal", runGoalDelete},
	"overview":           {"show the financial overview", runOverview},
	"monthly":            {"show a month's income and expenses", runMonthly},
	"watch":              {"keep the state refreshed on a schedule", runWatch},
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet("financectl "+name, flag.ContinueOnError)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func parseDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a number", name, value)
	}
	return d, nil
}

func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %q is not a %s date", name, value, dateLayout)
	}
	return t, nil
}

func requireID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}

func passwordFlag(fs *flag.FlagSet) *string {
	return fs.String("password", os.Getenv("FINANCE_PASSWORD"), "password, defaults to $FINANCE_PASSWORD")
}

// Auth

func runRegister(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("register")
	email := fs.String("email", "", "email address")
	name := fs.String("name", "", "full name")
	password := passwordFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.Register.Execute(ctx, auth.RegisterUserInput{
		Registration: entity.Registration{Email: *email, FullName: *name, Password: *password},
	}); err != nil {
		return err
	}
	fmt.Println("Registered", *email)
	return nil
}

func runLogin(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "email address")
	password := passwordFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	output, err := c.Login.Execute(ctx, auth.LoginUserInput{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", output.User.FullName, output.User.Email)
	if c.Config.Session.Store == "memory" {
		fmt.Fprintln(os.Stderr, "note: the memory session store forgets the credential on exit; use --session-store=redis")
	}
	return nil
}

func runLogout(ctx context.Context, c *dependency.Client, _ []string) error {
	if err := c.Logout.Execute(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func runMe(ctx context.Context, c *dependency.Client, _ []string) error {
	output, err := c.CurrentUser.Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d\t%s\t%s\n", output.User.ID, output.User.Email, output.User.FullName)
	return nil
}

// Platforms

func runPlatforms(ctx context.Context, c *dependency.Client, _ []string) error {
	if !c.ListPlatforms.Execute(ctx) {
		return fmt.Errorf("failed to load platforms")
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tTYPE")
	for _, p := range c.State.Platforms.All() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, p.Type)
	}
	return w.Flush()
}

func runPlatformCreate(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("platform-create")
	name := fs.String("name", "", "platform name")
	platformType := fs.String("type", string(entity.PlatformTypeBank), "bank, digital_wallet, investment or crypto")
	logo := fs.String("logo", "", "logo URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	output, err := c.CreatePlatform.Execute(ctx, platform.CreatePlatformInput{Draft: entity.PlatformDraft{
		Name:    *name,
		Type:    entity.PlatformType(*platformType),
		LogoURL: *logo,
	}})
	if err != nil {
		return err
	}
	fmt.Printf("Created platform %d %s\n", output.Platform.ID, output.Platform.Name)
	return nil
}

// Accounts

func runAccounts(ctx context.Context, c *dependency.Client, _ []string) error {
	if !c.ListAccounts.Execute(ctx) {
		return fmt.Errorf("failed to load accounts")
	}
	printAccounts(c.State.Accounts.All())
	return nil
}

func printAccounts(accounts []entity.Account) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tPLATFORM\tBALANCE\tCURRENCY")
	for _, a := range accounts {
		platformName := ""
		if a.Platform != nil {
			platformName = a.Platform.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, platformName, a.Balance.StringFixed(2), a.Currency)
	}
	_ = w.Flush()
}

func runAccountCreate(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("account-create")
	name := fs.String("name", "", "account name")
	accountType := fs.String("type", string(entity.AccountTypeChecking), "checking, savings, credit or investment")
	number := fs.String("number", "", "account number")
	currency := fs.String("currency", "USD", "currency code")
	platformID := fs.Int64("platform", 0, "platform id")
	balance := fs.String("balance", "0", "opening balance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("platform", *platformID); err != nil {
		return err
	}
	amount, err := parseDecimal("balance", *balance)
	if err != nil {
		return err
	}

	output, err := c.CreateAccount.Execute(ctx, account.CreateAccountInput{Draft: entity.AccountDraft{
		Name:       *name,
		Type:       entity.AccountType(*accountType),
		Number:     *number,
		Currency:   *currency,
		PlatformID: *platformID,
		Balance:    amount,
	}})
	if err != nil {
		return err
	}
	printAccounts([]entity.Account{output.Account})
	return nil
}

func runAccountBalance(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("account-balance")
	id := fs.Int64("id", 0, "account id")
	balance := fs.String("balance", "", "new balance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("id", *id); err != nil {
		return err
	}
	amount, err := parseDecimal("balance", *balance)
	if err != nil {
		return err
	}

	c.ListAccounts.Execute(ctx)
	output, err := c.UpdateBalance.Execute(ctx, account.UpdateBalanceInput{AccountID: *id, Balance: amount})
	if err != nil {
		return err
	}
	if output.Account != nil {
		printAccounts([]entity.Account{*output.Account})
	}
	return nil
}

func runAccountDelete(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("account-delete")
	id := fs.Int64("id", 0, "account id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("id", *id); err != nil {
		return err
	}

	if err := c.DeleteAccount.Execute(ctx, account.DeleteAccountInput{AccountID: *id}); err != nil {
		return err
	}
	fmt.Println("Deleted account", *id)
	return nil
}

// Transactions

func runTransactions(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("transactions")
	limit := fs.Int("limit", c.Config.API.TransactionLimit, "maximum number of transactions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !c.ListTransactions.Execute(ctx, transaction.ListTransactionsInput{Limit: *limit}) {
		return fmt.Errorf("failed to load transactions")
	}
	printTransactions(c.State.Transactions.All())
	return nil
}

func printTransactions(transactions []entity.Transaction) {
	w := newTable()
	fmt.Fprintln(w, "ID\tDATE\tACCOUNT\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, t := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			t.ID, t.OccurredAt.Format(dateLayout), t.AccountID, t.Type, t.Category, t.Amount.StringFixed(2), t.Description)
	}
	_ = w.Flush()
}

func runTransactionCreate(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("transaction-create")
	accountID := fs.Int64("account", 0, "account id")
	txType := fs.String("type", string(entity.TransactionTypeExpense), "income, expense or transfer")
	category := fs.String("category", "", "category")
	amountFlag := fs.String("amount", "", "amount, always positive")
	description := fs.String("description", "", "description")
	date := fs.String("date", "", "transaction date ("+dateLayout+"), defaults to today")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("account", *accountID); err != nil {
		return err
	}
	amount, err := parseDecimal("amount", *amountFlag)
	if err != nil {
		return err
	}
	occurredAt, err := parseDate("date", *date)
	if err != nil {
		return err
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	c.ListAccounts.Execute(ctx)
	output, err := c.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{Draft: entity.TransactionDraft{
		AccountID:   *accountID,
		Type:        entity.TransactionType(*txType),
		Category:    *category,
		Amount:      amount,
		Description: *description,
		OccurredAt:  occurredAt,
	}})
	if err != nil {
		return err
	}
	printTransactions([]entity.Transaction{output.Transaction})
	if output.Account != nil {
		fmt.Printf("\n%s balance is now %s\n", output.Account.Name, output.Account.Balance.StringFixed(2))
	}
	return nil
}

// Goals

func runGoals(ctx context.Context, c *dependency.Client, _ []string) error {
	if !c.ListGoals.Execute(ctx) {
		return fmt.Errorf("failed to load goals")
	}
	printGoals(c.State.Goals.All())
	return nil
}

func printGoals(goals []entity.Goal) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tPRIORITY\tCURRENT\tTARGET\tPROGRESS\tDEADLINE")
	for _, g := range goals {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s%%\t%s\n",
			g.ID, g.Name, g.Type, g.Priority,
			g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2),
			aggregate.GoalProgress(g).StringFixed(1), g.Deadline.Format(dateLayout))
	}
	_ = w.Flush()
}

type goalFlags struct {
	name     *string
	goalType *string
	target   *string
	deadline *string
	priority *string
}

func addGoalFlags(fs *flag.FlagSet) goalFlags {
	return goalFlags{
		name:     fs.String("name", "", "goal name"),
		goalType: fs.String("type", string(entity.GoalTypeSavings), "savings, debt_reduction or investment"),
		target:   fs.String("target", "", "target amount"),
		deadline: fs.String("deadline", "", "target date ("+dateLayout+")"),
		priority: fs.String("priority", string(entity.PriorityMedium), "high, medium or low"),
	}
}

func (f goalFlags) draft() (entity.GoalDraft, error) {
	target, err := parseDecimal("target", *f.target)
	if err != nil {
		return entity.GoalDraft{}, err
	}
	deadline, err := parseDate("deadline", *f.deadline)
	if err != nil {
		return entity.GoalDraft{}, err
	}
	return entity.GoalDraft{
		Name:         *f.name,
		Type:         entity.GoalType(*f.goalType),
		TargetAmount: target,
		Deadline:     deadline,
		Priority:     entity.Priority(*f.priority),
	}, nil
}

func runGoalCreate(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("goal-create")
	flags := addGoalFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	draft, err := flags.draft()
	if err != nil {
		return err
	}

	output, err := c.CreateGoal.Execute(ctx, goal.CreateGoalInput{Draft: draft})
	if err != nil {
		return err
	}
	printGoals([]entity.Goal{output.Goal})
	return nil
}

func runGoalUpdate(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("goal-update")
	id := fs.Int64("id", 0, "goal id")
	flags := addGoalFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("id", *id); err != nil {
		return err
	}
	draft, err := flags.draft()
	if err != nil {
		return err
	}

	output, err := c.UpdateGoal.Execute(ctx, goal.UpdateGoalInput{GoalID: *id, Draft: draft})
	if err != nil {
		return err
	}
	printGoals([]entity.Goal{output.Goal})
	return nil
}

func runGoalProgress(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("goal-progress")
	id := fs.Int64("id", 0, "goal id")
	amountFlag := fs.String("amount", "", "current amount saved")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("id", *id); err != nil {
		return err
	}
	amount, err := parseDecimal("amount", *amountFlag)
	if err != nil {
		return err
	}

	c.ListGoals.Execute(ctx)
	output, err := c.UpdateProgress.Execute(ctx, goal.UpdateProgressInput{GoalID: *id, CurrentAmount: amount})
	if err != nil {
		return err
	}
	if output.Goal != nil {
		printGoals([]entity.Goal{*output.Goal})
	}
	return nil
}

func runGoalDelete(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("goal-delete")
	id := fs.Int64("id", 0, "goal id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("id", *id); err != nil {
		return err
	}

	if err := c.DeleteGoal.Execute(ctx, goal.DeleteGoalInput{GoalID: *id}); err != nil {
		return err
	}
	fmt.Println("Deleted goal", *id)
	return nil
}

// Analytics

func runOverview(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("overview")
	local := fs.Bool("local", false, "compute the overview from the loaded collections")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var overview entity.Overview
	if *local {
		output := c.InitializeData.Execute(ctx, bootstrap.InitializeDataInput{TransactionLimit: c.Config.API.TransactionLimit})
		if !output.Accounts && !output.Restored {
			return fmt.Errorf("failed to load accounts")
		}
		overview = c.GetLocalOverview.Execute()
	} else {
		output := c.GetOverview.Execute(ctx)
		if output == nil {
			return fmt.Errorf("failed to load overview")
		}
		overview = output.Overview
	}

	printOverview(overview)
	return nil
}

func printOverview(o entity.Overview) {
	w := newTable()
	fmt.Fprintf(w, "Total balance\t%s\n", o.TotalBalance.StringFixed(2))
	fmt.Fprintf(w, "Monthly income\t%s\n", o.MonthlyIncome.StringFixed(2))
	fmt.Fprintf(w, "Monthly expenses\t%s\n", o.MonthlyExpenses.StringFixed(2))
	fmt.Fprintf(w, "Savings rate\t%s%%\n", o.SavingsRate.StringFixed(1))
	_ = w.Flush()

	if len(o.AccountSummaries) > 0 {
		fmt.Println()
		w = newTable()
		fmt.Fprintln(w, "PLATFORM\tACCOUNTS\tBALANCE")
		for _, group := range o.AccountSummaries {
			fmt.Fprintf(w, "%s\t%d\t%s\n", group.Platform.Name, len(group.Accounts), group.TotalBalance.StringFixed(2))
		}
		_ = w.Flush()
	}

	if len(o.RecentTransactions) > 0 {
		fmt.Println()
		printTransactions(o.RecentTransactions)
	}
	if len(o.ActiveGoals) > 0 {
		fmt.Println()
		printGoals(o.ActiveGoals)
	}
}

func runMonthly(ctx context.Context, c *dependency.Client, args []string) error {
	now := time.Now()
	fs := newFlagSet("monthly")
	year := fs.Int("year", now.Year(), "year")
	month := fs.Int("month", int(now.Month()), "month, 1 to 12")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *month < 1 || *month > 12 {
		return fmt.Errorf("--month must be between 1 and 12")
	}

	output := c.GetMonthlyMetrics.Execute(ctx, dashboard.GetMonthlyMetricsInput{Year: *year, Month: time.Month(*month)})
	if output == nil {
		return fmt.Errorf("failed to load monthly metrics")
	}

	w := newTable()
	fmt.Fprintf(w, "Period\t%s\n", output.PeriodLabel)
	fmt.Fprintf(w, "Income\t%s\n", output.Metrics.Income.StringFixed(2))
	fmt.Fprintf(w, "Expenses\t%s\n", output.Metrics.Expenses.StringFixed(2))
	fmt.Fprintf(w, "Savings rate\t%s%%\n", output.Metrics.SavingsRate.StringFixed(1))
	return w.Flush()
}

// Refresh

func runWatch(ctx context.Context, c *dependency.Client, args []string) error {
	fs := newFlagSet("watch")
	schedule := fs.String("schedule", c.Config.Refresh.Schedule, "cron schedule, e.g. \"@every 5m\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	worker := refresher.NewWorker(c.InitializeData, refresher.WorkerConfig{
		Schedule:         *schedule,
		TransactionLimit: c.Config.API.TransactionLimit,
	}, func(*bootstrap.InitializeDataOutput) {
		overview := c.GetLocalOverview.Execute()
		fmt.Printf("%s  balance %s  income %s  expenses %s\n",
			time.Now().Format(time.TimeOnly),
			overview.TotalBalance.StringFixed(2),
			overview.MonthlyIncome.StringFixed(2),
			overview.MonthlyExpenses.StringFixed(2))
	})
	return worker.Start(ctx)
}
