package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, verbose bool) (*Logger, *bytes.Buffer) {
	t.Helper()
	console := &bytes.Buffer{}
	logger, err := New(Options{
		Name:    "Png2Icon",
		LogFile: filepath.Join(t.TempDir(), "Png2IconLog.log"),
		Console: console,
		Verbose: verbose,
	})
	require.NoError(t, err)
	return logger, console
}

func TestNew_WritesBothSinks(t *testing.T) {
	logger, console := newTestLogger(t, false)

	logger.Info("Converting logo.png to a .ICO file...")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logger.Path())
	require.NoError(t, err)

	assert.Contains(t, string(data), "Converting logo.png to a .ICO file...")
	assert.Contains(t, console.String(), "Converting logo.png to a .ICO file...")
	assert.Contains(t, string(data), "Png2Icon", "Entries carry the logger name")
}

func TestNew_LevelThreshold(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"Default_HidesDebug", false, false},
		{"Verbose_ShowsDebug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, console := newTestLogger(t, tt.verbose)

			logger.Debug("processing started at")
			logger.Info("report line")
			require.NoError(t, logger.Close())

			data, err := os.ReadFile(logger.Path())
			require.NoError(t, err)

			assert.Contains(t, string(data), "report line")
			assert.Equal(t, tt.wantDebug, strings.Contains(string(data), "processing started at"))
			assert.Equal(t, tt.wantDebug, strings.Contains(console.String(), "processing started at"))
		})
	}
}

func TestNew_OverwritesExistingLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content from an earlier run\n"), 0o644))

	logger, err := New(Options{Name: "QRCode", LogFile: path, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	logger.Info("fresh")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
	assert.Contains(t, string(data), "fresh")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Options{Name: "QRCode"})
	assert.Error(t, err, "Log file path is required")

	_, err = New(Options{Name: "QRCode", LogFile: filepath.Join(t.TempDir(), "missing", "run.log")})
	assert.Error(t, err, "Parent directory must exist")
}

func TestLogger_Lines(t *testing.T) {
	logger, _ := newTestLogger(t, false)

	logger.Lines(hclog.Info, "first\nsecond\n")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logger.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "first"))
	assert.True(t, strings.HasSuffix(lines[1], "second"))
}

func TestLogger_Close_Idempotent(t *testing.T) {
	logger, _ := newTestLogger(t, false)

	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, hclog.Info, Level(false))
	assert.Equal(t, hclog.Debug, Level(true))
}
