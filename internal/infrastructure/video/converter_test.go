package video

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitalintel.ai/tools/internal/core/domain/process"
)

// fakeExecutor records commands and optionally writes the destination file
type fakeExecutor struct {
	commands []process.Command
	output   []byte
	err      error
}

func (f *fakeExecutor) Run(ctx context.Context, cmd process.Command) (process.Result, error) {
	f.commands = append(f.commands, cmd)
	if f.err != nil {
		return process.Result{ExitCode: 1}, f.err
	}
	if f.output != nil {
		args := cmd.Args()
		if err := os.WriteFile(args[len(args)-1], f.output, 0o644); err != nil {
			return process.Result{}, err
		}
	}
	return process.Result{}, nil
}

func writeSource(t *testing.T, dir string) string {
	t.Helper()
	source := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(source, []byte("video"), 0o644))
	return source
}

func TestConverter_Command(t *testing.T) {
	converter := NewConverter(&fakeExecutor{}, "")

	cmd, err := converter.Command("in.mp4", "out.gif")

	require.NoError(t, err)
	assert.Equal(t, "ffmpeg", cmd.Executable())
	assert.Equal(t, []string{"-hide_banner", "-loglevel", "error", "-y", "-i", "in.mp4", "out.gif"}, cmd.Args())
}

func TestConverter_Convert_Success(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir)
	dest := filepath.Join(dir, "clip.gif")
	executor := &fakeExecutor{output: []byte("GIF89a")}

	err := NewConverter(executor, "/opt/ffmpeg/bin/ffmpeg").Convert(context.Background(), source, dest)

	require.NoError(t, err)
	require.Len(t, executor.commands, 1)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", executor.commands[0].Executable())
}

func TestConverter_Convert_Failures(t *testing.T) {
	tests := []struct {
		name     string
		source   bool
		executor *fakeExecutor
		errMsg   string
	}{
		{
			name:     "MissingSource",
			source:   false,
			executor: &fakeExecutor{},
			errMsg:   "cannot open video file",
		},
		{
			name:     "FfmpegFails",
			source:   true,
			executor: &fakeExecutor{err: &process.ExitError{Command: "ffmpeg", Code: 1, Stderr: "Invalid data found"}},
			errMsg:   "Invalid data found",
		},
		{
			name:     "NoOutput",
			source:   true,
			executor: &fakeExecutor{},
			errMsg:   "produced no output",
		},
		{
			name:     "EmptyOutput",
			source:   true,
			executor: &fakeExecutor{output: []byte{}},
			errMsg:   "produced an empty file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			source := filepath.Join(dir, "clip.mp4")
			if tt.source {
				source = writeSource(t, dir)
			}

			err := NewConverter(tt.executor, "").Convert(context.Background(), source, filepath.Join(dir, "clip.gif"))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConverter_Convert_InterruptPropagates(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir)
	executor := &fakeExecutor{err: context.Canceled}

	err := NewConverter(executor, "").Convert(context.Background(), source, filepath.Join(dir, "clip.gif"))

	assert.True(t, errors.Is(err, context.Canceled))
}
