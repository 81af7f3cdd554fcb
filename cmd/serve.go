package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/totalreturn/server"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP API for return computations" }
func (*serveCmd) Usage() string {
	return `trq serve [-addr <host:port>]

  Serves POST /api/compute and GET /api/search over HTTP. Configuration
  is also read from TRQ_ADDR and TRQ_CONCURRENCY environment variables;
  the -addr flag wins over the environment.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address, overrides TRQ_ADDR")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := server.LoadConfig()
	if err != nil {
		return usageError("Error reading environment: %v", err)
	}
	if c.addr != "" {
		cfg.Addr = c.addr
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	provider := newProvider()
	srv := server.New(provider, provider, cfg, log)

	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := srv.ListenAndServe(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
