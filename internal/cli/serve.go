package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Flyrell/paycal/internal/api"
	"github.com/Flyrell/paycal/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = LeafCommand{
	Use:   "serve",
	Short: "Serve the schedule and statuses over HTTP",
	StrFlags: []StringFlag{
		{Name: "addr", Usage: "listen address (default: the configured addr)"},
		{Name: "log-level", Usage: "debug, info, warn or error", Default: "info"},
		{Name: "log-format", Usage: "console or json", Default: "console"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = "debug"
		}

		log, err := logging.New(level, format)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServe(ctx, homeDir, addr, log)
	},
}.Build()

func runServe(ctx context.Context, homeDir, addr string, log *zap.Logger) error {
	e, err := openEnv(homeDir, log)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	if addr == "" {
		addr = e.cfg.Addr
	}

	h := api.NewHandler(e.store, e.anchor, log)
	router := api.NewRouter(h, api.RouterOptions{
		RateLimit:      e.cfg.RateLimit,
		AllowedOrigins: e.cfg.AllowedOrigins,
	})

	log.Info("serving schedule",
		zap.String("anchor", e.cfg.Anchor),
		zap.String("store", e.cfg.Store),
	)
	return api.Serve(ctx, addr, router, log)
}
