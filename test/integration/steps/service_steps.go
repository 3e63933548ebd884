//go:build integration

package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

func registerServiceSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the ledger service is running$`, theLedgerServiceIsRunning)
	ctx.Step(`^the ledger service goes down$`, theLedgerServiceGoesDown)
	ctx.Step(`^a scripted finance service$`, aScriptedFinanceService)
	ctx.Step(`^the service responds to "([^"]*)" "([^"]*)" with status (\d+) and body:$`, theServiceRespondsWith)
	ctx.Step(`^the last "([^"]*)" request to "([^"]*)" should carry the bearer token "([^"]*)"$`, theLastRequestShouldCarryToken)
	ctx.Step(`^the last "([^"]*)" request to "([^"]*)" should not carry a bearer token$`, theLastRequestShouldNotCarryToken)
	ctx.Step(`^state snapshots are enabled$`, stateSnapshotsAreEnabled)
	ctx.Step(`^the client clock reads "([^"]*)"$`, theClientClockReads)
}

func theLedgerServiceIsRunning(ctx context.Context) error {
	return GetTestContext(ctx).startLedger()
}

func theLedgerServiceGoesDown(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.ledger == nil {
		return fmt.Errorf("the ledger service is not running")
	}
	tc.ledger.Close()
	tc.ledger = nil
	return nil
}

func aScriptedFinanceService(ctx context.Context) error {
	GetTestContext(ctx).startScriptedService()
	return nil
}

func theServiceRespondsWith(ctx context.Context, method, path string, status int, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc.api == nil {
		return fmt.Errorf("no scripted finance service is running")
	}

	var response any
	if err := json.Unmarshal([]byte(body.Content), &response); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	tc.api.SetResponse(-1, method, path, status, response)
	return nil
}

func lastAuthorization(tc *TestContext, method, path string) (string, error) {
	if tc.api == nil {
		return "", fmt.Errorf("no scripted finance service is running")
	}
	requests := tc.api.Requests(method, path)
	if len(requests) == 0 {
		return "", fmt.Errorf("no %s %s request was received", method, path)
	}
	return requests[len(requests)-1].Headers.Get("Authorization"), nil
}

func theLastRequestShouldCarryToken(ctx context.Context, method, path, token string) error {
	authorization, err := lastAuthorization(GetTestContext(ctx), method, path)
	if err != nil {
		return err
	}
	if authorization != "Bearer "+token {
		return fmt.Errorf("expected Authorization %q, got %q", "Bearer "+token, authorization)
	}
	return nil
}

func theLastRequestShouldNotCarryToken(ctx context.Context, method, path string) error {
	authorization, err := lastAuthorization(GetTestContext(ctx), method, path)
	if err != nil {
		return err
	}
	if strings.HasPrefix(authorization, "Bearer") {
		return fmt.Errorf("expected no bearer token, got %q", authorization)
	}
	return nil
}

func stateSnapshotsAreEnabled(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.client != nil {
		return fmt.Errorf("snapshots must be enabled before the client starts")
	}
	tc.cfg.Snapshot.Enabled = true
	return nil
}

func theClientClockReads(ctx context.Context, value string) error {
	at, err := parseTime(value)
	if err != nil {
		return err
	}
	GetTestContext(ctx).timeMock.SetCurrentTime(at)
	return nil
}
