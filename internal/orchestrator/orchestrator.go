// Package orchestrator drives one scan from a queued row to a finished one.
// A run claims the task slot, launches the scanner, classifies its exit,
// ingests the report and hands the slot back on every path.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"scanrunner/internal/config"
	"scanrunner/internal/process"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"scanrunner/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	// DefaultReportFile is the report file name inside a run directory.
	DefaultReportFile = "report.xml"
	// StoppedByUserMessage is appended to scans cancelled by their owner.
	StoppedByUserMessage = "stopped by user"
	// DefaultFailMessage is appended by FailScan callers that have no diagnostic.
	DefaultFailMessage = "scan aborted"
)

// Options configure how the scanner is invoked.
type Options struct {
	// Binary is the scanner executable. It is called as
	// <Binary> <profile path> <report path>.
	Binary string
	// ReportFile is the report file name inside the run directory.
	ReportFile string
	// Timeout bounds a single scanner run. Zero means no limit.
	Timeout time.Duration
	// MeterProvider receives the run metrics. Defaults to the global provider.
	MeterProvider metric.MeterProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Binary:     cfg.Scanner.Binary,
		ReportFile: cfg.Scanner.ReportFile,
		Timeout:    cfg.Scanner.Timeout,
	}
}

// Deps are the collaborators of an Orchestrator. Notifier may be nil.
type Deps struct {
	Storage  storage.Storage
	Locator  Locator
	Resolver ProfileResolver
	Launcher process.Launcher
	Ingester Ingester
	Notifier Notifier
}

// Orchestrator runs scans. It is safe for concurrent use; each Run owns its
// own state.
type Orchestrator struct {
	deps        Deps
	options     Options
	instruments *instruments
}

// New creates an Orchestrator.
func New(deps Deps, options Options) (*Orchestrator, error) {
	if options.ReportFile == "" {
		options.ReportFile = DefaultReportFile
	}
	if options.MeterProvider == nil {
		options.MeterProvider = otel.GetMeterProvider()
	}

	inst, err := newInstruments(options.MeterProvider)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		deps:        deps,
		options:     options,
		instruments: inst,
	}, nil
}

// run is the state of a single Run call.
type run struct {
	scan    domain.Scan
	task    domain.ScanTask
	state   State
	started time.Time

	// message is appended to the scan when the run is finalized.
	message string
	// err is returned from Run after finalization.
	err             error
	reportPath      string
	vulnerabilities int
}

func (r *run) transition(ctx context.Context, to State) {
	logger.Info(ctx, "scan run state changed", zap.Stringer("from", r.state), zap.Stringer("to", to))
	r.state = to
}

func (r *run) fail(ctx context.Context, err error, msg string) {
	r.err = err
	r.message = msg
	r.transition(ctx, StateFailed)
}

// Run executes the scan scanID to completion. A missing scan or task returns
// ErrNotFound. A scan that already finished or a task slot held by another
// run returns ErrConflict. None of these has side effects. Once the task slot is claimed, the scan always ends
// done or fail and the slot is always released, even when Run panics.
// Errors that aborted the run are returned after finalization; an abnormal
// scanner exit or an unreadable report only fail the scan.
func (o *Orchestrator) Run(ctx context.Context, scanID domain.ScanID) (err error) {
	scan, task, err := o.load(ctx, scanID)
	if err != nil {
		return err
	}
	if scan.Status.IsTerminal() {
		return serrors.With(serrors.ErrConflict, "scan %d already finished with status %s", scan.ID, scan.Status)
	}

	ctx = logger.WithFields(ctx, zap.Int64("scanID", int64(scan.ID)), zap.Int64("taskID", int64(task.ID)))

	// nothing is finalized unless this run holds the slot
	claimed, err := o.deps.Storage.ClaimTask(ctx, task.ID)
	if err != nil {
		return fmt.Errorf("could not claim task slot: %w", err)
	}
	if !claimed {
		logger.Warn(ctx, "task slot is held by another run")

		return serrors.With(serrors.ErrConflict, "scan task %d is busy", task.ID)
	}

	r := &run{
		scan:    *scan,
		task:    *task,
		state:   StateCreated,
		started: time.Now(),
	}
	logger.Info(ctx, "scan run created", zap.String("target", task.Target))

	defer func() {
		if p := recover(); p != nil {
			r.fail(ctx, nil, fmt.Sprintf("scan run panicked: %v", p))
			o.finalize(ctx, r)
			panic(p)
		}

		o.finalize(ctx, r)
		err = r.err
	}()

	o.execute(ctx, r)

	return nil
}

func (o *Orchestrator) load(ctx context.Context, scanID domain.ScanID) (*domain.Scan, *domain.ScanTask, error) {
	scan, err := o.deps.Storage.ScanByID(ctx, scanID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get scan: %w", err)
	}
	if scan == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "scan %d not found", scanID)
	}

	task, err := o.deps.Storage.ScanTaskByID(ctx, scan.TaskID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get scan task: %w", err)
	}
	if task == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "scan task %d not found", scan.TaskID)
	}

	return scan, task, nil
}

func (o *Orchestrator) execute(ctx context.Context, r *run) {
	if err := o.stampStart(ctx, r); err != nil {
		r.fail(ctx, err, err.Error())

		return
	}
	r.transition(ctx, StateLaunching)

	dir, err := o.deps.Locator.Allocate(ctx, r.scan)
	if err != nil {
		r.fail(ctx, err, fmt.Sprintf("could not allocate report location: %v", err))

		return
	}

	res, err := o.deps.Resolver.Resolve(ctx, r.task, dir, o.options.ReportFile)
	if err != nil {
		r.fail(ctx, err, fmt.Sprintf("could not resolve scan profile: %v", err))

		return
	}
	r.reportPath = res.ReportPath

	proc, err := o.deps.Launcher.Start(ctx, process.Command{
		Path:    o.options.Binary,
		Args:    []string{res.ProfilePath, res.ReportPath},
		Timeout: o.options.Timeout,
	})
	if err != nil {
		r.fail(ctx, err, fmt.Sprintf("could not launch scanner: %v", err))

		return
	}
	r.transition(ctx, StateRunning)
	logger.Info(ctx, "scanner started",
		zap.Int("pid", proc.Pid()),
		zap.String("profile", res.Profile.Name),
		zap.String("reportPath", res.ReportPath))

	result := proc.Wait()
	logger.Info(ctx, "scanner exited",
		zap.Int("exitCode", result.ExitCode),
		zap.Duration("elapsed", result.Stopped.Sub(result.Started)),
		zap.NamedError("cause", result.Err))

	// the scanner is gone; bookkeeping must finish even if the caller gave up
	ctx = context.WithoutCancel(ctx)

	current, err := o.deps.Storage.ScanByID(ctx, r.scan.ID)
	if err != nil {
		r.fail(ctx, fmt.Errorf("could not get scan: %w", err), fmt.Sprintf("could not read scan status: %v", err))

		return
	}
	if current == nil {
		err := serrors.With(serrors.ErrNotFound, "scan %d not found", r.scan.ID)
		r.fail(ctx, err, err.Error())

		return
	}
	r.scan = *current

	switch classify(result, current.Status) {
	case StateFailed:
		msg := fmt.Sprintf("scanner exited abnormally with code %d", result.ExitCode)
		if result.Err != nil {
			msg = fmt.Sprintf("%s: %v", msg, result.Err)
		}
		r.fail(ctx, nil, msg)
	case StateCancelled:
		r.transition(ctx, StateCancelled)
		n, err := o.deps.Ingester.Ingest(ctx, r.scan, r.reportPath)
		if err != nil {
			logger.Warn(ctx, "could not ingest report of stopped scan", zap.Error(err))

			return
		}
		r.vulnerabilities = n
		r.message = fmt.Sprintf("%d vulnerabilities found before stop", n)
	default:
		n, err := o.deps.Ingester.Ingest(ctx, r.scan, r.reportPath)
		if err != nil {
			var cause error
			if !errors.Is(err, serrors.ErrReportParse) {
				cause = err
			}
			r.fail(ctx, cause, fmt.Sprintf("could not ingest report: %v", err))

			return
		}
		r.vulnerabilities = n
		r.message = fmt.Sprintf("scan finished, %d vulnerabilities found", n)
		r.transition(ctx, StateSucceeded)
	}
}

func (o *Orchestrator) stampStart(ctx context.Context, r *run) error {
	updated, err := o.deps.Storage.UpdateScan(ctx, r.scan.ID, storage.ScanUpdates{Started: true})
	if err != nil {
		return fmt.Errorf("could not stamp scan start: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrNotFound, "scan %d not found", r.scan.ID)
	}
	r.scan = *updated

	return nil
}

// finalize persists the outcome of r, releases the task slot and notifies
// the task owner.
func (o *Orchestrator) finalize(ctx context.Context, r *run) {
	ctx = context.WithoutCancel(ctx)

	if r.state == StateSucceeded || r.state == StateCancelled {
		if err := o.persist(ctx, r); err != nil {
			r.fail(ctx, err, err.Error())
		}
	}

	if r.state == StateSucceeded || r.state == StateCancelled {
		if err := o.release(ctx, r.task.ID); err != nil {
			logger.Error(ctx, "could not release task slot", zap.Error(err))
			r.err = err
		}
	} else {
		updated, err := o.failScan(ctx, r.scan.ID, r.task.ID, r.message)
		if err != nil {
			logger.Error(ctx, "could not finalize failed scan", zap.Error(err))
			if r.err == nil {
				r.err = err
			}
		}
		if updated != nil {
			r.scan = *updated
		}
	}

	outcome := r.state
	r.transition(ctx, StateFinalized)
	o.instruments.record(ctx, outcome, time.Since(r.started), r.vulnerabilities)
	logger.Info(ctx, "scan run finished",
		zap.Stringer("outcome", outcome),
		zap.String("status", string(r.scan.Status)),
		zap.Int("vulnerabilities", r.vulnerabilities))

	if o.deps.Notifier == nil {
		return
	}
	if err := o.deps.Notifier.Notify(ctx, r.scan); err != nil {
		logger.Warn(ctx, "could not notify task owner", zap.Error(err))
	}
}

// persist stores the outcome of a run whose scanner finished cleanly. A scan
// stopped while finishing keeps its fail status.
func (o *Orchestrator) persist(ctx context.Context, r *run) error {
	updates := storage.ScanUpdates{
		AppendMessage: line(r.message),
		Finished:      true,
	}
	if r.state == StateSucceeded {
		updates.Status = domain.ScanStatusDone
		updates.KeepStatuses = []domain.ScanStatus{domain.ScanStatusFail}
	}

	updated, err := o.deps.Storage.UpdateScan(ctx, r.scan.ID, updates)
	if err != nil {
		return fmt.Errorf("could not persist scan outcome: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrNotFound, "scan %d not found", r.scan.ID)
	}
	r.scan = *updated

	if r.state == StateSucceeded && updated.Status == domain.ScanStatusFail {
		logger.Info(ctx, "scan was stopped while finishing, keeping fail status")
		r.transition(ctx, StateCancelled)
	}

	return nil
}

// line terminates msg so that appended messages read as separate lines.
func line(msg string) string {
	if msg == "" {
		return ""
	}

	return msg + "\n"
}

func (o *Orchestrator) release(ctx context.Context, taskID domain.ScanTaskID) error {
	if err := o.deps.Storage.SetTaskStatus(ctx, taskID, domain.TaskStatusFree); err != nil {
		return fmt.Errorf("could not release task slot: %w", err)
	}

	return nil
}

// failScan appends msg, marks the scan failed unless it is already done and
// releases the task slot. The slot is released even when the scan update
// fails.
func (o *Orchestrator) failScan(ctx context.Context,
	scanID domain.ScanID,
	taskID domain.ScanTaskID,
	msg string) (*domain.Scan, error) {
	updated, updateErr := o.deps.Storage.UpdateScan(ctx, scanID, storage.ScanUpdates{
		Status:        domain.ScanStatusFail,
		KeepStatuses:  []domain.ScanStatus{domain.ScanStatusDone},
		AppendMessage: line(msg),
		Finished:      true,
	})
	if updateErr != nil {
		updateErr = fmt.Errorf("could not mark scan failed: %w", updateErr)
	}

	return updated, errors.Join(updateErr, o.release(ctx, taskID))
}

// FailScan appends msg to the scan, marks it failed unless it already
// finished successfully and releases its task slot. Calling it again only
// appends msg again.
func (o *Orchestrator) FailScan(ctx context.Context, scanID domain.ScanID, msg string) error {
	scan, err := o.deps.Storage.ScanByID(ctx, scanID)
	if err != nil {
		return fmt.Errorf("could not get scan: %w", err)
	}
	if scan == nil {
		return serrors.With(serrors.ErrNotFound, "scan %d not found", scanID)
	}

	if _, err := o.failScan(ctx, scan.ID, scan.TaskID, msg); err != nil {
		return err
	}

	logger.Info(ctx, "scan failed", zap.Int64("scanID", int64(scanID)), zap.String("message", msg))

	return nil
}

// Cancel marks a queued or running scan as stopped by its user. A running
// scanner is not interrupted; its run observes the status once the scanner
// exits. Cancelling a finished scan returns ErrConflict.
func (o *Orchestrator) Cancel(ctx context.Context, scanID domain.ScanID) (*domain.Scan, error) {
	scan, err := o.deps.Storage.ScanByID(ctx, scanID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan: %w", err)
	}
	if scan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan %d not found", scanID)
	}
	if scan.Status.IsTerminal() {
		return nil, serrors.With(serrors.ErrConflict, "scan %d already finished with status %s", scanID, scan.Status)
	}

	updated, err := o.deps.Storage.UpdateScan(ctx, scanID, storage.ScanUpdates{
		Status:        domain.ScanStatusFail,
		KeepStatuses:  []domain.ScanStatus{domain.ScanStatusDone},
		AppendMessage: line(StoppedByUserMessage),
	})
	if err != nil {
		return nil, fmt.Errorf("could not cancel scan: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan %d not found", scanID)
	}
	if updated.Status == domain.ScanStatusDone {
		return nil, serrors.With(serrors.ErrConflict, "scan %d finished before it could be stopped", scanID)
	}

	logger.Info(ctx, "scan stopped by user", zap.Int64("scanID", int64(scanID)))

	return updated, nil
}
