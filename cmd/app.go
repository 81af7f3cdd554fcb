// Package cmd implements the CLI application to query interval total returns.
package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/totalreturn"
	"github.com/etnz/totalreturn/date"
	"github.com/etnz/totalreturn/eastmoney"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&computeCmd{}, "returns")
	c.Register(&searchCmd{}, "securities")
	c.Register(&serveCmd{}, "server")
	c.Register(&topicCmd{}, "documentation")
}

// newProvider returns the market-data client shared by all subcommands.
func newProvider() *eastmoney.Client { return eastmoney.New() }

// usageError prints the message and returns the usage exit status.
func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}

// parseWindow reads the -s/-d flag pair, an empty end meaning "previous
// trading day".
func parseWindow(start, end string) (from, to date.Date, err error) {
	if start == "" {
		return from, to, fmt.Errorf("start date -s is required")
	}
	if from, err = date.Parse(start); err != nil {
		return from, to, fmt.Errorf("invalid start date: %w", err)
	}
	if end != "" {
		if to, err = date.Parse(end); err != nil {
			return from, to, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return from, to, nil
}

// applyNames overrides row names from the static table when the provider
// could not resolve one (the pipeline falls back to the bare code).
func applyNames(rows []totalreturn.ReturnResult, names map[string]string) {
	for i := range rows {
		if name, ok := names[rows[i].Symbol]; ok && rows[i].Name == rows[i].Symbol {
			rows[i].Name = name
		}
	}
}
