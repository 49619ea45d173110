package qr

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeqown/go-qrcode/v2"
	"pgregory.net/rapid"

	qrc "orbitalintel.ai/tools/internal/core/qrcode"
)

var (
	navy  = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func renderSpec(t *testing.T, payload string, style qrc.ModuleStyle, version, border int) qrc.RenderSpec {
	t.Helper()
	spec, err := qrc.NewRenderSpec(payload, style, version, border, navy, white)
	require.NoError(t, err)
	return spec
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "Renderer output should be a PNG")
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRenderer_Render_Geometry(t *testing.T) {
	data, err := NewRenderer().Render(context.Background(), renderSpec(t, "orbital", qrc.StyleSquare, 1, 4))
	require.NoError(t, err)

	img := decode(t, data)
	bounds := img.Bounds()
	expected := (21 + 2*4) * ModulePixels

	assert.Equal(t, expected, bounds.Dx(), "Version 1 with a 4 module border")
	assert.Equal(t, expected, bounds.Dy())
	assert.Equal(t, white, rgbaAt(img, 1, 1), "Quiet zone uses the back colour")

	finder := 4*ModulePixels + ModulePixels/2
	assert.Equal(t, navy, rgbaAt(img, finder, finder), "Finder pattern uses the front colour")
}

func TestRenderer_Render_VersionIsMinimum(t *testing.T) {
	payload := strings.Repeat("orbital intel ", 20)

	data, err := NewRenderer().Render(context.Background(), renderSpec(t, payload, qrc.StyleSquare, 1, 0))
	require.NoError(t, err, "A payload too large for the requested version should grow the symbol")

	img := decode(t, data)
	assert.Greater(t, img.Bounds().Dx(), 21*ModulePixels)
}

func TestRenderer_Render_LargerVersionIsHonoured(t *testing.T) {
	data, err := NewRenderer().Render(context.Background(), renderSpec(t, "orbital", qrc.StyleSquare, 5, 0))
	require.NoError(t, err)

	img := decode(t, data)
	assert.Equal(t, (17+4*5)*ModulePixels, img.Bounds().Dx(), "Version 5 has 37 modules")
}

func TestRenderer_Render_ContactCardAtEverySize(t *testing.T) {
	vcard := qrc.Contact{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Title:        "Analyst",
		Organization: "Analytical Engines",
		Phone:        "+44 20 0000 0000",
		Email:        "ada@example.com",
		URL:          "https://example.com",
	}.VCard()

	fitted, err := NewRenderer().Render(context.Background(), renderSpec(t, vcard, qrc.StyleSquare, 1, 0))
	require.NoError(t, err)
	fittedWidth := decode(t, fitted).Bounds().Dx()

	for size := 1; size <= 9; size++ {
		t.Run(strconv.Itoa(size), func(t *testing.T) {
			var data []byte
			require.NotPanics(t, func() {
				data, err = NewRenderer().Render(context.Background(), renderSpec(t, vcard, qrc.StyleRounded, size, 4))
			})
			require.NoError(t, err)

			img := decode(t, data)
			expected := max(fittedWidth, (17+4*size)*ModulePixels) + 2*4*ModulePixels
			assert.Equal(t, expected, img.Bounds().Dx())
		})
	}
}

func TestVersionOf_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		length := rapid.IntRange(1, 600).Draw(t, "length")
		code, err := qrcode.NewWith(strings.Repeat("a", length),
			qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium))
		require.NoError(t, err)

		version := versionOf(code)
		assert.GreaterOrEqual(t, version, qrc.MinVersion)
		assert.LessOrEqual(t, version, qrc.MaxVersion)
		assert.Equal(t, 17+4*version, code.Dimension())
	})
}

func TestRenderer_Render_AllStyles(t *testing.T) {
	for _, style := range qrc.AllStyles {
		t.Run(string(style), func(t *testing.T) {
			data, err := NewRenderer().Render(context.Background(), renderSpec(t, "WIFI:S:net;T:WPA;P:pw;H:false;;", style, 2, 2))
			require.NoError(t, err)

			img := decode(t, data)
			assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
			assert.Equal(t, white, rgbaAt(img, 0, 0))
		})
	}
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	spec := renderSpec(t, "BEGIN:VCARD\nVERSION:4.0\nEND:VCARD", qrc.StyleRounded, 1, 4)

	first, err := NewRenderer().Render(context.Background(), spec)
	require.NoError(t, err)
	second, err := NewRenderer().Render(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderer_Render_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer().Render(ctx, renderSpec(t, "x", qrc.StyleSquare, 1, 4))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShapeFor(t *testing.T) {
	assert.Nil(t, shapeFor(qrc.StyleSquare), "Square uses the writer default")
	for _, style := range []qrc.ModuleStyle{qrc.StyleGappedSquare, qrc.StyleVerticalBars, qrc.StyleHorizontalBars, qrc.StyleRounded} {
		assert.NotNil(t, shapeFor(style), "style %s", style)
	}
}
