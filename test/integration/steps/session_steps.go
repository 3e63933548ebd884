//go:build integration

package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/client/internal/application/usecase/auth"
	"github.com/finance-tracker/client/internal/domain/entity"
)

func registerSessionSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the session is kept in redis$`, theSessionIsKeptInRedis)
	ctx.Step(`^a user "([^"]*)" registered with password "([^"]*)"$`, aUserRegisteredWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)"$`, iAmLoggedInAs)
	ctx.Step(`^I register as "([^"]*)" named "([^"]*)" with password "([^"]*)"$`, iRegisterAs)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAs)
	ctx.Step(`^I log out$`, iLogOut)
	ctx.Step(`^the client restarts$`, theClientRestarts)
	ctx.Step(`^I should be logged in as "([^"]*)"$`, iShouldBeLoggedInAs)
	ctx.Step(`^I should not be logged in$`, iShouldNotBeLoggedIn)
}

func theSessionIsKeptInRedis(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.client != nil {
		return fmt.Errorf("the session store must be chosen before the client starts")
	}
	tc.cfg.Session.Store = "redis"
	return nil
}

func register(ctx context.Context, email, name, password string) error {
	client, err := GetTestContext(ctx).Client(ctx)
	if err != nil {
		return err
	}
	return client.Register.Execute(ctx, auth.RegisterUserInput{
		Registration: entity.Registration{Email: email, FullName: name, Password: password},
	})
}

func aUserRegisteredWithPassword(ctx context.Context, email, password string) error {
	return register(ctx, email, "Test User", password)
}

func iAmLoggedInAs(ctx context.Context, email string) error {
	if err := register(ctx, email, "Test User", defaultPassword); err != nil {
		return fmt.Errorf("failed to register %s: %w", email, err)
	}

	client, err := GetTestContext(ctx).Client(ctx)
	if err != nil {
		return err
	}
	if _, err := client.Login.Execute(ctx, auth.LoginUserInput{Email: email, Password: defaultPassword}); err != nil {
		return fmt.Errorf("failed to log in as %s: %w", email, err)
	}
	return nil
}

func iRegisterAs(ctx context.Context, email, name, password string) error {
	GetTestContext(ctx).lastErr = register(ctx, email, name, password)
	return nil
}

func iLogInAs(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	client, err := tc.Client(ctx)
	if err != nil {
		return err
	}

	_, tc.lastErr = client.Login.Execute(ctx, auth.LoginUserInput{Email: email, Password: password})
	return nil
}

func iLogOut(ctx context.Context) error {
	client, err := GetTestContext(ctx).Client(ctx)
	if err != nil {
		return err
	}
	return client.Logout.Execute(ctx)
}

func theClientRestarts(ctx context.Context) error {
	GetTestContext(ctx).restartClient()
	return nil
}

func iShouldBeLoggedInAs(ctx context.Context, email string) error {
	client, err := GetTestContext(ctx).Client(ctx)
	if err != nil {
		return err
	}

	output, err := client.CurrentUser.Execute(ctx)
	if err != nil {
		return fmt.Errorf("expected to be logged in: %w", err)
	}
	if output.User.Email != email {
		return fmt.Errorf("expected to be logged in as %s, got %s", email, output.User.Email)
	}
	return nil
}

func iShouldNotBeLoggedIn(ctx context.Context) error {
	client, err := GetTestContext(ctx).Client(ctx)
	if err != nil {
		return err
	}
	if token, ok := client.Session.Token(); ok {
		return fmt.Errorf("expected no credential, found %q", token)
	}
	return nil
}
