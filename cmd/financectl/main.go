// Package main is the entry point for financectl, a command line front end
// for the finance client.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/infra/dependency"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	global := flag.NewFlagSet("financectl", flag.ContinueOnError)
	global.SetInterspersed(false)
	global.StringVar(&cfg.API.BaseURL, "api-url", cfg.API.BaseURL, "base URL of the finance service")
	global.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn or error")
	global.StringVar(&cfg.Session.Store, "session-store", cfg.Session.Store, "where the credential is kept: memory or redis")
	global.Usage = func() { usage(global) }
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Logs go to stderr so command output stays parseable
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if global.NArg() == 0 {
		usage(global)
		return 2
	}
	name, rest := global.Arg(0), global.Args()[1:]

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		usage(global)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := dependency.NewClient(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize client", "error", err)
		return 1
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close client", "error", err)
		}
	}()

	if err := cmd.run(ctx, client, rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func usage(global *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: financectl [global flags] <command> [flags]\n\nCommands:\n")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-20s %s\n", name, commands[name].summary)
	}

	fmt.Fprintf(os.Stderr, "\nGlobal flags:\n%s", global.FlagUsages())
}
