// Package video converts video files to animated GIFs by driving ffmpeg.
package video

import (
	"context"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"

	"orbitalintel.ai/tools/internal/core/domain/process"
	procp "orbitalintel.ai/tools/internal/core/ports/process"
)

// DefaultBinary is the ffmpeg executable looked up on PATH
const DefaultBinary = "ffmpeg"

// Converter implements conversion.GifConverter
type Converter struct {
	executor procp.Executor
	binary   string
}

// NewConverter creates a converter that runs binary through executor
func NewConverter(executor procp.Executor, binary string) *Converter {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Converter{executor: executor, binary: binary}
}

// Command builds the ffmpeg invocation. No filters are given so the GIF keeps the
// source's frame rate and frame size.
func (c *Converter) Command(source, dest string) (process.Command, error) {
	return process.NewCommand(c.binary,
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", source,
		dest,
	)
}

// Convert runs ffmpeg and waits for it to finish
func (c *Converter) Convert(ctx context.Context, source, dest string) error {
	if _, err := os.Stat(source); err != nil {
		return pkgerrors.Wrapf(err, "cannot open video file %s", source)
	}

	cmd, err := c.Command(source, dest)
	if err != nil {
		return pkgerrors.WithStack(err)
	}

	if _, err := c.executor.Run(ctx, cmd); err != nil {
		return err
	}

	info, err := os.Stat(dest)
	if err != nil {
		return pkgerrors.Wrapf(err, "%s produced no output", c.binary)
	}
	if info.Size() == 0 {
		return pkgerrors.Errorf("%s produced an empty file %s", c.binary, dest)
	}
	return nil
}

func (c *Converter) String() string {
	return fmt.Sprintf("GifConverter{Binary: %s}", c.binary)
}
