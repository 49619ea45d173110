package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"orbitalintel.ai/tools/internal/config"
	"orbitalintel.ai/tools/internal/core/destination"
	"orbitalintel.ai/tools/internal/core/session"
)

// NewContactCardCommand creates the contactcardqr command
func NewContactCardCommand(container *CLIContainer) *cobra.Command {
	cmd := newToolCommand(
		"contactcardqr <configfile>",
		"Generate a VCard contact card QR code",
		`contactcardqr - QR Code VCard Contact Card Generation Utility

Reads the contact and styling settings from a JSON or YAML configuration file and
writes the QR code twice into QRCode_Artifacts: under the destination name and
under a timestamped copy of it.`,
		ContactCardTool.Version,
	)
	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().StringP("destfile", "d", destination.DefaultContactCard,
		fmt.Sprintf("Destination filename for the generated QR code (alias -df)\nDefault is %s", destination.DefaultContactCard))

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadContactCard(args[0])
		if err != nil {
			return err
		}
		destFlag, _ := cmd.Flags().GetString("destfile")

		inv := container.newInvocation(cmd, ContactCardTool)
		names := destination.ContactCard(destFlag, inv.identity.FileStamp())

		return container.runConversion(cmd, inv, func(s *session.Session) task {
			log := s.Logger()
			if names.Fallback {
				log.Error(fmt.Sprintf("Invalid destination filename [%s]. Using the default [%s] filename.",
					destFlag, destination.DefaultContactCard))
			}

			stable := s.Paths().Resolve(names.Stable)
			stamped := s.Paths().Resolve(names.Stamped)
			contact := cfg.Contact

			fields := []session.Field{{Label: "QR Code File", Value: names.Stable}}
			fields = append(fields, styleFields(cfg.Appearance)...)
			fields = append(fields,
				session.Field{Label: "First Name", Value: contact.FirstName},
				session.Field{Label: "Last Name", Value: contact.LastName},
				session.Field{Label: "Title", Value: contact.Title},
				session.Field{Label: "Organization", Value: contact.Organization},
				session.Field{Label: "Phone", Value: contact.Phone},
				session.Field{Label: "Email", Value: contact.Email},
				session.Field{Label: "Url", Value: contact.URL},
				session.Field{Label: "Note", Value: contact.Note},
			)
			fields = append(fields, colorFields(cfg.Appearance)...)

			return task{
				Fields: fields,
				Action: func(ctx context.Context) error {
					log.Info("Generating VCard Contact Card QR Code...")
					vcard := contact.VCard()
					log.Info("Card Data:")
					for _, line := range strings.Split(vcard, "\n") {
						log.Info(line)
					}

					data, err := container.renderQR(ctx, vcard, cfg.Appearance)
					if err != nil {
						return err
					}
					if err := writeArtifact(stable, data); err != nil {
						return err
					}
					return writeArtifact(stamped, data)
				},
				Artifacts: []session.Artifact{
					{Label: "QR Code file", Path: stable},
					{Label: "QR Code file", Path: stamped},
				},
			}
		})
	}

	return cmd
}
