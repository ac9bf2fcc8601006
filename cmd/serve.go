package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"brandintel/internal/api"
	"brandintel/internal/api/handler/v1handler"
	"brandintel/internal/brandscan"
	"brandintel/internal/config"
	"brandintel/internal/probe"
	"brandintel/internal/report"
	"brandintel/internal/worker"
	"brandintel/pkg/dnsx"
	"brandintel/pkg/logger"
	"brandintel/pkg/whois/whoisx"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newProber builds the production registration prober from the config: a
// WHOIS client and the system DNS resolver behind the probe orchestrator.
func newProber(cfg *config.Config) *probe.Prober {
	whoisClient := whoisx.New(cfg.Probe.LookupTimeout, cfg.Probe.WhoisServer)
	resolver := dnsx.NewNetResolver(net.DefaultResolver)

	return probe.New(whoisClient, resolver, probe.NewOptions(cfg))
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			scans := brandscan.New(strg, newProber(cfg), brandscan.NewOptions(cfg))
			reports := report.NewService(strg, report.New(time.Now))

			riverClient, err := worker.Start(ctx, strg.Pool, scans)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Scans:   scans,
				Reports: reports,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
