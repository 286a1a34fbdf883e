// Package process supervises the external scanner binary. A started
// process is waited on with a blocking wait, never by polling.
package process

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -package mockprocess -source=process.go -destination=mock/mockprocess.go *

const maxLineSize = 1 << 20

// DefaultWaitDelay bounds how long Wait keeps reading output once the
// process has exited or its timeout has expired.
const DefaultWaitDelay = time.Second

// Command describes a scanner invocation.
type Command struct {
	Path string
	Args []string
	// Env is appended to the environment of the current process.
	Env []string
	// Timeout kills the process group when exceeded. Zero means no limit.
	Timeout time.Duration
	// WaitDelay overrides DefaultWaitDelay. Children that outlive the process
	// and keep its output open are killed when it elapses.
	WaitDelay time.Duration
}

// Result is the outcome of a finished process.
type Result struct {
	Started time.Time
	Stopped time.Time
	// ExitCode is the process exit status. A process terminated by a signal
	// reports the negated signal number.
	ExitCode int
	// Err is set when the process did not finish cleanly, e.g. on timeout or
	// when its output stayed open past the wait delay. ExitCode may be zero.
	Err error
}

// LineFunc receives every output line of a running process.
type LineFunc func(ctx context.Context, stream string, line string)

// Launcher starts scanner processes.
type Launcher interface {
	Start(ctx context.Context, cmd Command) (Process, error)
}

// Process is a started scanner process.
type Process interface {
	// Pid returns the operating system process id.
	Pid() int
	// Wait blocks until the process exits. It is safe to call more than once.
	Wait() Result
}

// ExecLauncher starts processes with os/exec.
type ExecLauncher struct {
	// OnLine receives output lines. Lines are logged at debug level when nil.
	OnLine LineFunc
}

// Start launches cmd. Failing to launch, e.g. a missing binary, returns
// ErrProcessLaunch.
func (l ExecLauncher) Start(ctx context.Context, command Command) (Process, error) {
	cancel := context.CancelFunc(func() {})
	if command.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, command.Timeout)
	}

	cmd := exec.CommandContext(ctx, command.Path, command.Args...)
	if len(command.Env) > 0 {
		cmd.Env = append(cmd.Environ(), command.Env...)
	}
	// the scanner and everything it spawns share one process group
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return killGroup(cmd.Process.Pid)
	}
	cmd.WaitDelay = command.WaitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}

	// os/exec copies output into the pipe writers and stops copying after WaitDelay
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	started := time.Now().UTC()
	if err := cmd.Start(); err != nil {
		cancel()
		_ = stdoutW.Close()
		_ = stderrW.Close()

		return nil, serrors.Wrap(serrors.ErrProcessLaunch, err, "could not start %s", command.Path)
	}

	onLine := l.OnLine
	if onLine == nil {
		onLine = logLine
	}

	p := &execProcess{
		ctx:     ctx,
		cmd:     cmd,
		cancel:  cancel,
		started: started,
		writers: []*io.PipeWriter{stdoutW, stderrW},
	}
	p.readers.Add(2)
	go p.readLines(stdoutR, "stdout", onLine)
	go p.readLines(stderrR, "stderr", onLine)

	return p, nil
}

type execProcess struct {
	ctx     context.Context //nolint: containedctx
	cmd     *exec.Cmd
	cancel  context.CancelFunc
	started time.Time
	writers []*io.PipeWriter
	readers sync.WaitGroup

	once   sync.Once
	result Result
}

func (p *execProcess) Pid() int { return p.cmd.Process.Pid }

func (p *execProcess) Wait() Result {
	p.once.Do(func() {
		// returns at most WaitDelay after the process exited or timed out
		err := p.cmd.Wait()
		if errors.Is(err, exec.ErrWaitDelay) || p.ctx.Err() != nil {
			// reap children still holding the output open
			_ = killGroup(p.cmd.Process.Pid)
		}
		for _, w := range p.writers {
			_ = w.Close()
		}
		p.readers.Wait()
		p.cancel()

		p.result = Result{
			Started:  p.started,
			Stopped:  time.Now().UTC(),
			ExitCode: exitCode(p.cmd, err),
		}
		var exitErr *exec.ExitError
		switch {
		case p.ctx.Err() != nil:
			p.result.Err = p.ctx.Err()
		case err != nil && !errors.As(err, &exitErr):
			p.result.Err = err
		}
	})

	return p.result
}

func (p *execProcess) readLines(r io.Reader, stream string, onLine LineFunc) {
	defer p.readers.Done()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		onLine(p.ctx, stream, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Warn(p.ctx, "could not read scanner output", zap.String("stream", stream), zap.Error(err))
		// keep draining so the process never blocks on a full pipe
		_, _ = io.Copy(io.Discard, r)
	}
}

func exitCode(cmd *exec.Cmd, err error) int {
	state := cmd.ProcessState
	if state == nil {
		if err != nil {
			return -1
		}

		return 0
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return -int(status.Signal())
	}

	return state.ExitCode()
}

func killGroup(pid int) error {
	err := syscall.Kill(-pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		return os.ErrProcessDone
	}

	return err //nolint: wrapcheck
}

func logLine(ctx context.Context, stream string, line string) {
	logger.Debug(ctx, line, zap.String("stream", stream))
}
