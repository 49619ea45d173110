package qrcode

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	MinVersion    = 1
	MaxVersion    = 40
	DefaultBorder = 4
)

var (
	ErrEmptyPayload   = errors.New("qr payload cannot be empty")
	ErrInvalidVersion = fmt.Errorf("qr version must be between %d and %d", MinVersion, MaxVersion)
	ErrInvalidBorder  = errors.New("qr border cannot be negative")
)

// RenderSpec describes one QR image. Version is the minimum symbol version; a renderer
// moves to the smallest larger version when the payload does not fit.
type RenderSpec struct {
	Payload string
	Style   ModuleStyle
	Version int
	Border  int
	Front   color.RGBA
	Back    color.RGBA
}

// NewRenderSpec validates and creates a RenderSpec
func NewRenderSpec(payload string, style ModuleStyle, version, border int, front, back color.RGBA) (RenderSpec, error) {
	if payload == "" {
		return RenderSpec{}, ErrEmptyPayload
	}
	if version < MinVersion || version > MaxVersion {
		return RenderSpec{}, fmt.Errorf("%w: got %d", ErrInvalidVersion, version)
	}
	if border < 0 {
		return RenderSpec{}, fmt.Errorf("%w: got %d", ErrInvalidBorder, border)
	}
	if style == "" {
		style = StyleSquare
	}
	return RenderSpec{
		Payload: payload,
		Style:   style,
		Version: version,
		Border:  border,
		Front:   front,
		Back:    back,
	}, nil
}

// RGB builds an opaque colour from three components in 0..255
func RGB(r, g, b int) (color.RGBA, error) {
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return color.RGBA{}, fmt.Errorf("colour component %d out of range 0-255", c)
		}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

// FormatRGB renders a colour the way the configuration echo shows it
func FormatRGB(c color.RGBA) string {
	return fmt.Sprintf("%3d %3d %3d", c.R, c.G, c.B)
}
