package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	pkgerrors "github.com/pkg/errors"

	"orbitalintel.ai/tools/internal/core/clock"
	"orbitalintel.ai/tools/internal/logging"
)

const localTimeLayout = "2006-01-02 15:04:05.000000"

// Tool identifies the program a session reports for
type Tool struct {
	Name      string // artifact directory and log file prefix, e.g. "Png2Icon"
	Program   string // name used in report lines, e.g. "png2icon"
	Title     string // banner subtitle
	Version   string
	Copyright string
}

// State represents the lifecycle state of a run session
type State string

const (
	StateIdle            State = "idle"
	StateSessionStarted  State = "session_started"
	StateActionRunning   State = "action_running"
	StateCompleted       State = "completed"
	StateAborted         State = "aborted"
	StateFailed          State = "failed"
	StateReportFinalized State = "report_finalized"
)

// Options configures Begin
type Options struct {
	Tool     Tool
	Identity RunIdentity
	WorkDir  string
	Console  io.Writer
	Verbose  bool
	Clock    clock.Clock
}

// Field is one line of the configuration echo
type Field struct {
	Label string
	Value string
}

// Artifact is an output file reported by Finalize
type Artifact struct {
	Label string
	Path  string
}

// Action is the single conversion performed inside Guard
type Action func(ctx context.Context) error

// Session is the run-scoped artifact and log session of one tool invocation
type Session struct {
	mu       sync.Mutex
	tool     Tool
	identity RunIdentity
	paths    ArtifactPaths
	logger   *logging.Logger
	clock    clock.Clock
	state    State
}

// Begin creates the artifact directory, opens the log file and returns a started session.
// Directory creation is idempotent; any filesystem failure is returned unchanged in kind.
func Begin(opts Options) (*Session, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		workDir = wd
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}

	identity := opts.Identity
	if identity.IsZero() {
		identity = NewRunIdentity(clk.Now())
	}

	paths, err := DeriveArtifactPaths(workDir, opts.Tool.Name, identity)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(paths.BaseDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory %s: %w", paths.BaseDirectory, err)
	}

	logger, err := logging.New(logging.Options{
		Name:    opts.Tool.Name,
		LogFile: paths.LogFilePath,
		Console: opts.Console,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	return &Session{
		tool:     opts.Tool,
		identity: identity,
		paths:    paths,
		logger:   logger,
		clock:    clk,
		state:    StateSessionStarted,
	}, nil
}

// Paths returns the run's artifact paths
func (s *Session) Paths() ArtifactPaths {
	return s.paths
}

// Identity returns the run identity
func (s *Session) Identity() RunIdentity {
	return s.identity
}

// Logger returns the session logger
func (s *Session) Logger() hclog.Logger {
	return s.logger
}

// State returns the current lifecycle state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ReportStart logs the banner, version, command line and resolved configuration
func (s *Session) ReportStart(commandLine string, fields []Field) error {
	if state := s.State(); state != StateSessionStarted {
		return fmt.Errorf("start report requires state %s, current state: %s", StateSessionStarted, state)
	}

	log := s.logger
	log.Lines(hclog.Info, logging.Banner(s.tool.Title))
	log.Info("")
	log.Info(fmt.Sprintf("Copyright (c) %s Orbital Intelligence LLC", s.tool.Copyright))
	log.Info(fmt.Sprintf("Version %s", s.tool.Version))
	log.Info("")
	log.Debug("run identity", "id", s.identity.ID(), "started_utc", s.identity.StartedAtUTC().Format(time.RFC3339))

	all := append([]Field{{Label: "Command line", Value: commandLine}}, fields...)
	width := 0
	for _, f := range all {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	for _, f := range all {
		log.Info(fmt.Sprintf("%-*s %s", width+1, f.Label+":", f.Value))
	}
	log.Info("")

	return nil
}

// Guard runs the action and classifies its result. Cancellation of ctx is treated as an
// operator interrupt; errors and panics are logged with their call stack and swallowed.
// Guard returns only after the action has returned.
func (s *Session) Guard(ctx context.Context, action Action) Outcome {
	if err := s.transition(StateSessionStarted, StateActionRunning); err != nil {
		now := s.clock.Now()
		return Outcome{Status: StatusFailed, Err: err, StartedAt: now, EndedAt: now}
	}

	started := s.clock.Now()
	outcome := run(ctx, action)
	outcome.StartedAt = started
	outcome.EndedAt = s.clock.Now()

	s.report(outcome)

	s.mu.Lock()
	s.state = State(outcome.Status)
	s.mu.Unlock()

	return outcome
}

func run(ctx context.Context, action Action) Outcome {
	done := make(chan Outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- Outcome{Status: StatusFailed, Err: panicError{value: r}, Stack: string(debug.Stack())}
			}
		}()
		done <- classify(ctx, action(ctx))
	}()

	select {
	case outcome := <-done:
		return outcome
	case <-ctx.Done():
		// the action owns its children; wait until it has shut them down
		if outcome := <-done; outcome.Status == StatusCompleted {
			return outcome
		}
		return Outcome{Status: StatusAborted, Err: ErrAborted}
	}
}

func classify(ctx context.Context, err error) Outcome {
	switch {
	case err == nil:
		return Outcome{Status: StatusCompleted}
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return Outcome{Status: StatusAborted, Err: ErrAborted}
	default:
		return Outcome{Status: StatusFailed, Err: err, Stack: stackOf(err)}
	}
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// stackOf returns the stack recorded on err, or the current stack when none was recorded
func stackOf(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		return strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n")
	}
	return string(debug.Stack())
}

func (s *Session) report(outcome Outcome) {
	log := s.logger
	switch outcome.Status {
	case StatusCompleted:
		log.Info("Success")
	case StatusAborted:
		log.Info("")
		log.Lines(hclog.Info, logging.Box(fmt.Sprintf("%s aborted by user.", s.tool.Program)))
	case StatusFailed:
		log.Lines(hclog.Error, logging.Box(
			fmt.Sprintf("General Error during %s processing.", s.tool.Program),
			strings.Repeat("~", 39),
			fmt.Sprintf("Error: %v", outcome.Err),
			"Call Stack:",
			strings.TrimRight(outcome.Stack, "\n"),
		))
	}
}

// Finalize logs the timing summary, the artifact and log paths and the closing banner,
// then closes the log file. It runs for every outcome.
func (s *Session) Finalize(outcome Outcome, artifacts []Artifact) error {
	s.mu.Lock()
	switch s.state {
	case StateCompleted, StateAborted, StateFailed:
		s.state = StateReportFinalized
	default:
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("finalize requires a terminal action state, current state: %s", state)
	}
	s.mu.Unlock()

	log := s.logger
	prog := s.tool.Program
	started, ended := outcome.StartedAt, outcome.EndedAt

	log.Info("")
	log.Debug(fmt.Sprintf("%s processing started at:   %sL / %sZ", prog,
		started.Local().Format(localTimeLayout), started.UTC().Format(localTimeLayout)))
	log.Debug(fmt.Sprintf("%s processing completed at: %sL / %sZ", prog,
		ended.Local().Format(localTimeLayout), ended.UTC().Format(localTimeLayout)))
	log.Debug("")
	log.Info(fmt.Sprintf("%s processing time:   %s", prog, outcome.Elapsed()))
	log.Info("")
	for _, a := range artifacts {
		log.Info(fmt.Sprintf("%s: %s", a.Label, a.Path))
	}
	log.Info("")
	log.Info(fmt.Sprintf("Log file:  %s", s.paths.LogFilePath))
	log.Info("")
	log.Lines(hclog.Info, strings.Join([]string{
		logging.Rule('#'),
		fmt.Sprintf("%s completed.", prog),
		logging.Rule('#'),
	}, "\n"))

	return s.logger.Close()
}

// Close releases the log file without a final report. Safe to call after Finalize.
func (s *Session) Close() error {
	return s.logger.Close()
}

func (s *Session) transition(from, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != from {
		return fmt.Errorf("invalid session transition to %s from state %s", to, s.state)
	}
	s.state = to
	return nil
}

// String returns a string representation of the session
func (s *Session) String() string {
	return fmt.Sprintf("Session{Tool: %s, ID: %s, State: %s, BaseDirectory: %s}",
		s.tool.Name, s.identity.ID(), s.State(), s.paths.BaseDirectory)
}
