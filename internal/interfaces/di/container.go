package di

import (
	"os"

	"orbitalintel.ai/tools/internal/core/clock"
	"orbitalintel.ai/tools/internal/core/ports/conversion"
	procp "orbitalintel.ai/tools/internal/core/ports/process"
	"orbitalintel.ai/tools/internal/infrastructure/icon"
	"orbitalintel.ai/tools/internal/infrastructure/process"
	"orbitalintel.ai/tools/internal/infrastructure/qr"
	"orbitalintel.ai/tools/internal/infrastructure/video"
	"orbitalintel.ai/tools/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	Executor      procp.Executor
	IconConverter conversion.IconConverter
	QRRenderer    conversion.QRRenderer

	// CLI
	CLIContainer *cli.CLIContainer
}

// NewContainer creates and configures the dependency injection container
func NewContainer() *Container {
	c := &Container{
		Executor:      process.NewExecutor(),
		IconConverter: icon.NewConverter(),
		QRRenderer:    qr.NewRenderer(),
	}

	c.CLIContainer = &cli.CLIContainer{
		Clock:        clock.System{},
		Console:      os.Stderr,
		Icons:        c.IconConverter,
		QR:           c.QRRenderer,
		GifConverter: c.NewGifConverter,
		Interrupts:   cli.NotifyInterrupts,
	}

	return c
}

// NewGifConverter returns a GIF converter driving the given ffmpeg binary
func (c *Container) NewGifConverter(ffmpegPath string) conversion.GifConverter {
	return video.NewConverter(c.Executor, ffmpegPath)
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}
