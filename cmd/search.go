package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/etnz/totalreturn"
	"github.com/etnz/totalreturn/eastmoney"
	"github.com/google/subcommands"
)

type searchCmd struct {
	configFile string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "look up security codes by name or code fragment" }
func (*searchCmd) Usage() string {
	return `trq search [-f <config.yaml>] <term>...

  Searches the A-share security list for codes or names matching each
  term. An exact code match is returned alone. When -f is given, the
  config file's static names table answers terms the live lookup cannot.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configFile, "f", "", "YAML config file whose names table backs the live lookup")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("No search term given.")
	}
	var names map[string]string
	if c.configFile != "" {
		cfg, err := totalreturn.LoadConfig(c.configFile)
		if err != nil {
			return usageError("Error loading config: %v", err)
		}
		names = cfg.Names
	}

	provider := newProvider()
	w := tabwriter.NewWriter(os.Stdout, 8, 8, 2, ' ', 0)
	defer w.Flush()

	for _, term := range f.Args() {
		results, err := provider.Search(ctx, term)
		if err != nil || len(results) == 0 {
			results = searchStatic(names, term)
		}
		if len(results) == 0 {
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error searching %q: %v\n", term, err)
				return subcommands.ExitFailure
			}
			fmt.Fprintf(os.Stderr, "No security matches %q.\n", term)
			continue
		}
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\n", r.Code, r.Name)
		}
	}
	return subcommands.ExitSuccess
}

// searchStatic matches the term against a config names table.
func searchStatic(names map[string]string, term string) []eastmoney.SearchResult {
	var results []eastmoney.SearchResult
	for code, name := range names {
		if code == term {
			return []eastmoney.SearchResult{{Code: code, Name: name}}
		}
		if strings.Contains(name, term) || strings.Contains(code, term) {
			results = append(results, eastmoney.SearchResult{Code: code, Name: name})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	return results
}
