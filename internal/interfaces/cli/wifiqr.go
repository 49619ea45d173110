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

const passwordArg = 2

// NewWifiCommand creates the wifiqr command
func NewWifiCommand(container *CLIContainer) *cobra.Command {
	cmd := newToolCommand(
		"wifiqr <configfile> <network> <password>",
		"Generate a WiFi network QR code",
		`wifiqr - WiFi Network QR Code Generation Utility

Encodes a WPA network name and password as a network-join QR code using the
styling settings of a JSON or YAML configuration file, and writes
QR_Code_Wifi_<timestamp>.png into QRCode_Artifacts. The password is masked in
the log.`,
		WifiTool.Version,
	)
	cmd.Args = cobra.ExactArgs(3)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWifi(args[0])
		if err != nil {
			return err
		}
		network, password := args[1], args[passwordArg]

		inv := container.newInvocation(cmd, WifiTool, passwordArg)
		name := destination.WifiCode(inv.identity.FileStamp())

		return container.runConversion(cmd, inv, func(s *session.Session) task {
			log := s.Logger()
			out := s.Paths().Resolve(name)

			fields := []session.Field{{Label: "QR Code File", Value: name}}
			fields = append(fields, styleFields(cfg.Appearance)...)
			fields = append(fields,
				session.Field{Label: "Border", Value: strconv.Itoa(cfg.Border)},
				session.Field{Label: "Wifi Network", Value: network},
				session.Field{Label: "Wifi Password", Value: mask},
			)
			fields = append(fields, colorFields(cfg.Appearance)...)

			return task{
				Fields: fields,
				Action: func(ctx context.Context) error {
					log.Info("Generating WiFi QR Code...")
					data, err := container.renderQR(ctx, qrcode.WifiPayload(network, password), cfg.Appearance)
					if err != nil {
						return err
					}
					return writeArtifact(out, data)
				},
				Artifacts: []session.Artifact{{Label: "WiFi QR Code file", Path: out}},
			}
		})
	}

	return cmd
}
