package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/totalreturn"
	"github.com/etnz/totalreturn/export"
	"github.com/etnz/totalreturn/renderer"
	"github.com/google/subcommands"
)

// computeCmd holds the flags for the 'compute' subcommand.
type computeCmd struct {
	start      string
	end        string
	configFile string
	outputDir  string
	csv        bool
	xlsx       bool
	plain      bool
	jobs       int
}

func (*computeCmd) Name() string     { return "compute" }
func (*computeCmd) Synopsis() string { return "interval total return for a list of securities" }
func (*computeCmd) Usage() string {
	return `trq compute [-s <date>] [-d <date>] [-f <config.yaml>] [-csv] [-xlsx] <code>...

  Computes the interval total return (cash dividends plus the value of
  bonus/transfer/rights share additions) for each security, using
  unadjusted close prices. Codes and dates may come from a YAML config
  file instead of flags.
`
}

func (c *computeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the interval (e.g. 2023-06-19)")
	f.StringVar(&c.end, "d", "", "End date of the interval. Defaults to the previous trading day.")
	f.StringVar(&c.configFile, "f", "", "YAML config file with stocks and dates")
	f.StringVar(&c.outputDir, "o", "output", "Directory for exported files")
	f.BoolVar(&c.csv, "csv", false, "Export the result rows to a timestamped CSV file")
	f.BoolVar(&c.xlsx, "xlsx", false, "Export the result rows to a timestamped XLSX file")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering it")
	f.IntVar(&c.jobs, "j", 4, "Number of securities computed concurrently")
}

func (c *computeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reqs, names, status := c.requests(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	pipeline := totalreturn.NewPipeline(newProvider())
	rows := pipeline.RunBatch(ctx, reqs, c.jobs)
	applyNames(rows, names)

	md := renderer.RenderSummary(rows)
	if c.plain {
		fmt.Println(md)
	} else {
		out, err := glamour.Render(md, "auto")
		if err != nil {
			// Fall back to raw markdown when the terminal renderer chokes.
			out = md
		}
		fmt.Println(out)
	}

	if c.csv {
		path, err := export.CSV(c.outputDir, rows)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved CSV: %s\n", path)
	}
	if c.xlsx {
		path, err := export.XLSX(c.outputDir, rows)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting XLSX: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved XLSX: %s\n", path)
	}
	return subcommands.ExitSuccess
}

// requests assembles the batch from the config file or from flags and args.
func (c *computeCmd) requests(f *flag.FlagSet) ([]totalreturn.Request, map[string]string, subcommands.ExitStatus) {
	if c.configFile != "" {
		cfg, err := totalreturn.LoadConfig(c.configFile)
		if err != nil {
			return nil, nil, usageError("Error loading config: %v", err)
		}
		reqs, err := cfg.Requests()
		if err != nil {
			return nil, nil, usageError("Error in config dates: %v", err)
		}
		if cfg.OutputDir != "" {
			c.outputDir = cfg.OutputDir
		}
		return reqs, cfg.Names, subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		return nil, nil, usageError("No security codes given. Pass codes as arguments or use -f.")
	}
	start, end, err := parseWindow(c.start, c.end)
	if err != nil {
		return nil, nil, usageError("%v", err)
	}
	var reqs []totalreturn.Request
	for _, code := range f.Args() {
		for _, one := range strings.Split(code, ",") {
			if one = strings.TrimSpace(one); one != "" {
				reqs = append(reqs, totalreturn.Request{Symbol: one, Start: start, End: end})
			}
		}
	}
	return reqs, nil, subcommands.ExitSuccess
}
