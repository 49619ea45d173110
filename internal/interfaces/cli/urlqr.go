package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"orbitalintel.ai/tools/internal/config"
	"orbitalintel.ai/tools/internal/core/destination"
	"orbitalintel.ai/tools/internal/core/qrcode"
	"orbitalintel.ai/tools/internal/core/session"
)

// NewURLCommand creates the urlqr command
func NewURLCommand(container *CLIContainer) *cobra.Command {
	cmd := newToolCommand(
		"urlqr <configfile>",
		"Generate a URL QR code",
		`urlqr - URL QR Code Generation Utility

Reads the URL and styling settings from a JSON or YAML configuration file and
writes QR_Code_Url_<timestamp>.png into QRCode_Artifacts.`,
		URLTool.Version,
	)
	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadURL(args[0])
		if err != nil {
			return err
		}

		inv := container.newInvocation(cmd, URLTool)
		name := destination.URLCode(inv.identity.FileStamp())

		return container.runConversion(cmd, inv, func(s *session.Session) task {
			log := s.Logger()
			out := s.Paths().Resolve(name)

			fields := []session.Field{{Label: "QR Code File", Value: name}}
			fields = append(fields, styleFields(cfg.Appearance)...)
			fields = append(fields,
				session.Field{Label: "Border", Value: strconv.Itoa(cfg.Border)},
				session.Field{Label: "Url", Value: cfg.URL},
			)
			fields = append(fields, colorFields(cfg.Appearance)...)

			return task{
				Fields: fields,
				Action: func(ctx context.Context) error {
					log.Info("Generating URL QR Code...")
					data, err := container.renderQR(ctx, qrcode.URLPayload(cfg.URL), cfg.Appearance)
					if err != nil {
						return err
					}
					return writeArtifact(out, data)
				},
				Artifacts: []session.Artifact{{Label: "URL QR Code file", Path: out}},
			}
		})
	}

	return cmd
}
