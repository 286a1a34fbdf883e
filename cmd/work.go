package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"scanrunner/internal/api"
	"scanrunner/internal/api/handler/v1handler"
	"scanrunner/internal/config"
	"scanrunner/internal/queue"
	"scanrunner/internal/worker"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/metrics"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func workCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Starts the API server and the scan workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(mp)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			orch, closeOrch := getOrchestrator(ctx, cfg, strg)
			defer closeOrch()

			server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
				Storage:   strg,
				Canceller: orch,
				Enqueuer:  queue.New(strg),
			}}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			// job contexts outlive the signal so Stop can drain running scans
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, orch, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}
			logger.Info(ctx, "workers started", zap.Int("maxWorkers", cfg.Worker.MaxWorkers))

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(gCtx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed webserver
				<-gCtx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(shutdownCtx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(shutdownCtx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(shutdownCtx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Warn(shutdownCtx, "workers did not drain, cancelling running scans", zap.Error(err))
					if err := riverClient.StopAndCancel(context.Background()); err != nil {
						logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
					}
				}

				if err := mp.Shutdown(context.Background()); err != nil {
					logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "scan runner stopped", zap.Error(err))
			}
		},
	}

	return cmd
}
