package conversion

import (
	"context"

	"orbitalintel.ai/tools/internal/core/qrcode"
)

// IconConverter writes a single-frame 32x32 icon built from a raster image
type IconConverter interface {
	Convert(ctx context.Context, source, dest string) error
}

// GifConverter writes an animated GIF with the source video's native frame parameters
type GifConverter interface {
	Convert(ctx context.Context, source, dest string) error
}

// QRRenderer renders a QR symbol to PNG bytes
type QRRenderer interface {
	Render(ctx context.Context, spec qrcode.RenderSpec) ([]byte, error)
}
