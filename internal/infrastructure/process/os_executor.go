package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	pkgerrors "github.com/pkg/errors"

	"orbitalintel.ai/tools/internal/core/domain/process"
)

// Executor implements the process Executor port on os/exec
type Executor struct {
	// Configuration for process execution
	workDir      string
	env          []string
	cancelSignal process.ProcessSignal
	waitDelay    time.Duration
}

// NewExecutor creates a new process executor
func NewExecutor() *Executor {
	return &Executor{
		workDir:      "",           // Use current directory
		env:          os.Environ(), // Use current environment
		cancelSignal: process.SignalInterrupt,
		waitDelay:    5 * time.Second,
	}
}

// NewExecutorWithOptions creates a new process executor with custom options.
// On cancellation the child receives cancelSignal and is killed after waitDelay.
func NewExecutorWithOptions(workDir string, env []string, cancelSignal process.ProcessSignal, waitDelay time.Duration) *Executor {
	if env == nil {
		env = os.Environ()
	}

	return &Executor{
		workDir:      workDir,
		env:          env,
		cancelSignal: cancelSignal,
		waitDelay:    waitDelay,
	}
}

// Run starts the command, waits for it to exit and collects its output
func (e *Executor) Run(ctx context.Context, cmd process.Command) (process.Result, error) {
	execCmd := exec.CommandContext(ctx, cmd.Executable(), cmd.Args()...)

	// Set working directory
	if e.workDir != "" {
		execCmd.Dir = e.workDir
	}

	execCmd.Env = e.env

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	sig := ConvertSignal(e.cancelSignal)
	execCmd.Cancel = func() error {
		return execCmd.Process.Signal(sig)
	}
	execCmd.WaitDelay = e.waitDelay

	started := time.Now()
	err := execCmd.Run()

	result := process.Result{
		ExitCode: execCmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(started),
	}

	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, pkgerrors.WithStack(fmt.Errorf("%s interrupted: %w", cmd.Executable(), ctxErr))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return result, pkgerrors.WithStack(&process.ExitError{
			Command: cmd.Executable(),
			Code:    exitErr.ExitCode(),
			Stderr:  result.Stderr,
		})
	}

	result.ExitCode = -1
	return result, pkgerrors.Wrapf(err, "failed to run %s", cmd.Executable())
}

// ConvertSignal converts domain signal to OS signal
func ConvertSignal(signal process.ProcessSignal) os.Signal {
	switch signal {
	case process.SignalTerminate:
		return syscall.SIGTERM
	case process.SignalInterrupt:
		return syscall.SIGINT
	case process.SignalKill:
		return syscall.SIGKILL
	default:
		return syscall.SIGTERM
	}
}
