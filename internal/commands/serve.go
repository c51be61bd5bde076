package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/autosave-dev/autosave/internal/config"
	"github.com/autosave-dev/autosave/internal/httpapi"
	applog "github.com/autosave-dev/autosave/internal/log"
)

func newServeCommand(g *globals) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				g.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, g)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

func runServe(ctx context.Context, g *globals) error {
	applog.SetDefault(g.logger)
	g.logger.Info("Configuration loaded",
		applog.FieldOperation, applog.OpStartup,
		"addr", g.cfg.Server.Addr,
		"ceiling_policy", g.cfg.Savings.CeilingPolicy,
		"retirement_age", g.cfg.Returns.RetirementAge)

	srv := httpapi.NewServer(g.cfg.Server.Addr, g.engine, g.logger, serverOptions(g.cfg))
	return srv.Run(ctx)
}

func serverOptions(cfg *config.Config) httpapi.Options {
	return httpapi.Options{
		ReadTimeout:     config.Timeout(cfg.Server.ReadTimeoutSeconds),
		WriteTimeout:    config.Timeout(cfg.Server.WriteTimeoutSeconds),
		IdleTimeout:     config.Timeout(cfg.Server.IdleTimeoutSeconds),
		ShutdownTimeout: config.Timeout(cfg.Server.ShutdownSeconds),
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
	}
}
