package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitalintel.ai/tools/internal/infrastructure/video"
)

func TestNewContainer_WiresEveryDependency(t *testing.T) {
	container := NewContainer()

	cli := container.GetCLIContainer()
	require.NotNil(t, cli)
	assert.NotNil(t, cli.Clock)
	assert.NotNil(t, cli.Console)
	assert.NotNil(t, cli.Icons)
	assert.NotNil(t, cli.QR)
	assert.NotNil(t, cli.GifConverter)
	assert.NotNil(t, cli.Interrupts)
	assert.Empty(t, cli.WorkDir, "Artifacts go under the current directory")
}

func TestNewGifConverter_UsesRequestedBinary(t *testing.T) {
	container := NewContainer()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Default", "", video.DefaultBinary},
		{"Custom", "/usr/local/bin/ffmpeg", "/usr/local/bin/ffmpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter, ok := container.NewGifConverter(tt.path).(*video.Converter)
			require.True(t, ok)
			cmd, err := converter.Command("clip.mp4", "clip.gif")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd.Executable())
		})
	}
}
