// Package logging configures the run logger: one console sink and one log file sink,
// both fed by the same hclog InterceptLogger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// TimeFormat is the timestamp layout used by both sinks
const TimeFormat = "2006-01-02 15:04:05"

// Options configures a run logger
type Options struct {
	Name    string
	LogFile string
	Console io.Writer
	Verbose bool
}

// Logger is an hclog.InterceptLogger that owns its log file
type Logger struct {
	hclog.InterceptLogger
	file *os.File
	path string
}

// Level returns the threshold for the given verbosity
func Level(verbose bool) hclog.Level {
	if verbose {
		return hclog.Debug
	}
	return hclog.Info
}

// New opens the log file in overwrite mode and builds the dual-sink logger
func New(opts Options) (*Logger, error) {
	if opts.LogFile == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := Level(opts.Verbose)

	logger := hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      level,
		Output:     console,
		TimeFormat: TimeFormat,
		Color:      hclog.AutoColor,
	})

	logger.RegisterSink(hclog.NewSinkAdapter(&hclog.LoggerOptions{
		Level:      level,
		Output:     file,
		TimeFormat: TimeFormat,
		Color:      hclog.ColorOff,
	}))

	return &Logger{
		InterceptLogger: logger,
		file:            file,
		path:            opts.LogFile,
	}, nil
}

// Path returns the log file path
func (l *Logger) Path() string {
	return l.path
}

// Lines logs each line of a multi-line block as its own entry
func (l *Logger) Lines(level hclog.Level, block string) {
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		l.Log(level, line)
	}
}

// Close flushes and closes the log file. The console sink is left open.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
