// Package qr renders styled QR symbols to PNG with yeqown/go-qrcode.
package qr

import (
	"bytes"
	"context"
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	qrc "orbitalintel.ai/tools/internal/core/qrcode"
)

// ModulePixels is the edge length of one module in the rendered image
const ModulePixels = 10

// Renderer implements conversion.QRRenderer
type Renderer struct{}

// NewRenderer creates a renderer with ModulePixels sized modules
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render encodes spec.Payload with error correction level M and draws it as PNG
func (r *Renderer) Render(ctx context.Context, spec qrc.RenderSpec) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	code, err := r.encode(spec)
	if err != nil {
		return nil, err
	}

	opts := []standard.ImageOption{
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(ModulePixels),
		standard.WithBorderWidth(spec.Border * ModulePixels),
		standard.WithFgColor(spec.Front),
		standard.WithBgColor(spec.Back),
	}
	if shape := shapeFor(spec.Style); shape != nil {
		opts = append(opts, standard.WithCustomShape(shape))
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopCloser{&buf}, opts...)
	if err := code.Save(w); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to draw qr code")
	}
	return buf.Bytes(), nil
}

// encode honours spec.Version as a minimum, growing the symbol when the payload needs it.
// The library panics when a pinned version is too small, so the fitting version is
// found first and a larger one is only requested when spec.Version exceeds it.
func (r *Renderer) encode(spec qrc.RenderSpec) (*qrcode.QRCode, error) {
	level := qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)

	code, err := qrcode.NewWith(spec.Payload, level)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to encode qr payload")
	}
	if spec.Version <= versionOf(code) {
		return code, nil
	}

	code, err = qrcode.NewWith(spec.Payload, level, qrcode.WithVersion(spec.Version))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to encode qr payload at version %d", spec.Version)
	}
	return code, nil
}

// versionOf derives the symbol version from its module count
func versionOf(code *qrcode.QRCode) int {
	return (code.Dimension() - 17) / 4
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
