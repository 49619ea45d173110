package cli

import (
	"context"
	"os"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"orbitalintel.ai/tools/internal/config"
	"orbitalintel.ai/tools/internal/core/qrcode"
	"orbitalintel.ai/tools/internal/core/session"
)

// renderQR validates the render options and draws the payload
func (c *CLIContainer) renderQR(ctx context.Context, payload string, a config.Appearance) ([]byte, error) {
	spec, err := qrcode.NewRenderSpec(payload, a.Style, a.Version, a.Border, a.Front, a.Back)
	if err != nil {
		return nil, pkgerrors.WithStack(err)
	}
	return c.QR.Render(ctx, spec)
}

func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pkgerrors.WithStack(err)
	}
	return nil
}

func styleFields(a config.Appearance) []session.Field {
	return []session.Field{
		{Label: "Module Style", Value: a.Style.DrawerName()},
		{Label: "Version/Size", Value: strconv.Itoa(a.Version)},
	}
}

func colorFields(a config.Appearance) []session.Field {
	return []session.Field{
		{Label: "Front Color", Value: qrcode.FormatRGB(a.Front)},
		{Label: "Back Color", Value: qrcode.FormatRGB(a.Back)},
	}
}
