package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"orbitalintel.ai/tools/internal/core/destination"
	"orbitalintel.ai/tools/internal/core/session"
)

// NewVideo2GifCommand creates the video2gif command
func NewVideo2GifCommand(container *CLIContainer) *cobra.Command {
	cmd := newToolCommand(
		"video2gif <sourcefile>",
		"Convert a video file to an animated .GIF",
		`video2gif - video file to .GIF Conversion Utility

Runs ffmpeg to produce a GIF with the source's frame rate and frame size,
written into Video2Gif_Artifacts.`,
		Video2GifTool.Version,
	)
	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().StringP("destfile", "d", "", "Custom .gif filename (alias -df)\nDefault destfile is sourcefile.gif")
	cmd.Flags().String("ffmpeg", "ffmpeg", "Path to the ffmpeg executable")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		source := args[0]
		destFlag, _ := cmd.Flags().GetString("destfile")
		ffmpegPath, _ := cmd.Flags().GetString("ffmpeg")
		dest := destination.Resolve(destFlag, source, ".gif")

		converter := container.GifConverter(ffmpegPath)
		inv := container.newInvocation(cmd, Video2GifTool)

		return container.runConversion(cmd, inv, func(s *session.Session) task {
			out := s.Paths().Resolve(dest)
			log := s.Logger()

			return task{
				Fields: []session.Field{
					{Label: "Source Video File", Value: source},
					{Label: "Output GIF File", Value: dest},
					{Label: "FFmpeg", Value: ffmpegPath},
				},
				Action: func(ctx context.Context) error {
					log.Info(fmt.Sprintf("Converting %s to a .GIF file...", filepath.Base(source)))
					if err := converter.Convert(ctx, source, out); err != nil {
						return err
					}
					log.Info(fmt.Sprintf("Generated %s", dest))
					return nil
				},
				Artifacts: []session.Artifact{{Label: ".gif file", Path: out}},
			}
		})
	}

	return cmd
}
