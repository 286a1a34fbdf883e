package main

import (
	"context"
	"fmt"
	"os/signal"
	"scanrunner/internal/config"
	"scanrunner/internal/orchestrator"
	"scanrunner/internal/queue"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}

	return id, nil
}

// runCommand runs one scan in the foreground, bypassing the queue.
func runCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scan-id>",
		Short: "Runs a queued scan in the foreground",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			// SIGINT kills the scanner, the scan is still finalized
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			orch, closeOrch := getOrchestrator(ctx, cfg, strg)
			defer closeOrch()

			ctx = logger.WithFields(ctx, zap.Int64("scanID", id))
			if err := orch.Run(ctx, domain.ScanID(id)); err != nil {
				logger.Error(ctx, "scan run failed", zap.Error(err))

				return err //nolint: wrapcheck
			}
			logger.Info(ctx, "scan run finished")

			return nil
		},
	}

	return cmd
}

// enqueueCommand queues a scan of a task for the workers.
func enqueueCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enqueue <task-id>",
		Short: "Queues a new scan of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			data, _ := cmd.Flags().GetString("data")

			ctx := context.Background()
			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			scan, err := queue.New(strg).Enqueue(ctx, domain.ScanTaskID(id), data)
			if err != nil {
				logger.Error(ctx, "could not enqueue scan", zap.Int64("taskID", id), zap.Error(err))

				return err //nolint: wrapcheck
			}

			fmt.Println(scan.ID) //nolint: forbidigo

			return nil
		},
	}

	cmd.Flags().String("data", "", "Opaque payload stored on the scan")

	return cmd
}

// cancelCommand stops a queued or running scan on behalf of its owner.
func cancelCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <scan-id>",
		Short: "Stops a queued or running scan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			orch, closeOrch := getOrchestrator(ctx, cfg, strg)
			defer closeOrch()

			scan, err := orch.Cancel(ctx, domain.ScanID(id))
			if err != nil {
				logger.Error(ctx, "could not cancel scan", zap.Int64("scanID", id), zap.Error(err))

				return err //nolint: wrapcheck
			}
			logger.Info(ctx, "scan cancelled", zap.Int64("scanID", id), zap.String("status", string(scan.Status)))

			return nil
		},
	}

	return cmd
}

// failCommand marks a scan failed and frees its task, e.g. after the worker
// running it crashed.
func failCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fail <scan-id>",
		Short: "Marks a scan failed and releases its task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			msg, _ := cmd.Flags().GetString("message")

			ctx := context.Background()
			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			orch, closeOrch := getOrchestrator(ctx, cfg, strg)
			defer closeOrch()

			if err := orch.FailScan(ctx, domain.ScanID(id), msg); err != nil {
				logger.Error(ctx, "could not fail scan", zap.Int64("scanID", id), zap.Error(err))

				return err //nolint: wrapcheck
			}

			return nil
		},
	}

	cmd.Flags().String("message", orchestrator.DefaultFailMessage, "Message appended to the scan")

	return cmd
}
