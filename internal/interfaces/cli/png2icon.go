package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"orbitalintel.ai/tools/internal/core/destination"
	"orbitalintel.ai/tools/internal/core/session"
)

// NewPng2IconCommand creates the png2icon command
func NewPng2IconCommand(container *CLIContainer) *cobra.Command {
	cmd := newToolCommand(
		"png2icon <sourcefile>",
		"Convert a .PNG file to a 32x32 .ICO file",
		`png2icon - .PNG to .ICO Conversion Utility

Scales the image so its longer side is 32 pixels, centres it on a transparent
32x32 frame and writes a single-frame icon into Png2Icon_Artifacts.`,
		Png2IconTool.Version,
	)
	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().StringP("destfile", "d", "", "Custom .ico filename (alias -df)\nDefault destfile is sourcefile.ico")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		source := args[0]
		destFlag, _ := cmd.Flags().GetString("destfile")
		dest := destination.Resolve(destFlag, source, ".ico")

		inv := container.newInvocation(cmd, Png2IconTool)

		return container.runConversion(cmd, inv, func(s *session.Session) task {
			out := s.Paths().Resolve(dest)
			log := s.Logger()

			return task{
				Fields: []session.Field{
					{Label: "Source PNG File", Value: source},
					{Label: "Output ICO File", Value: dest},
				},
				Action: func(ctx context.Context) error {
					log.Info(fmt.Sprintf("Converting %s to a .ICO file...", filepath.Base(source)))
					if err := container.Icons.Convert(ctx, source, out); err != nil {
						return err
					}
					log.Info(fmt.Sprintf("Generated %s", dest))
					return nil
				},
				Artifacts: []session.Artifact{{Label: ".ico file", Path: out}},
			}
		})
	}

	return cmd
}
