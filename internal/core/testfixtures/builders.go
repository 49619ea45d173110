package testfixtures

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// TestInstant is the fixed run time used across tests
var TestInstant = time.Date(2024, 11, 21, 14, 5, 9, 0, time.UTC)

// QRConfigBuilder provides a builder pattern for QR generator configuration files
type QRConfigBuilder struct {
	settings map[string]interface{}
}

// NewQRConfigBuilder creates a builder with every key any QR tool reads
func NewQRConfigBuilder() *QRConfigBuilder {
	return &QRConfigBuilder{
		settings: map[string]interface{}{
			"FrontColor":      rgb(0, 0, 0),
			"BackColor":       rgb(255, 255, 255),
			"Size":            1,
			"Border":          4,
			"ModuleStyle":     "square",
			"ModuleStyleWifi": "square",
			"FirstName":       "Ada",
			"LastName":        "Lovelace",
			"Title":           "Analyst",
			"Organization":    "Analytical Engines",
			"Phone":           "+44 20 0000 0000",
			"Email":           "ada@example.com",
			"Url":             "https://example.com",
		},
	}
}

// WithFrontColor sets the foreground colour
func (b *QRConfigBuilder) WithFrontColor(r, g, b2 int) *QRConfigBuilder {
	b.settings["FrontColor"] = rgb(r, g, b2)
	return b
}

// WithBackColor sets the background colour
func (b *QRConfigBuilder) WithBackColor(r, g, b2 int) *QRConfigBuilder {
	b.settings["BackColor"] = rgb(r, g, b2)
	return b
}

// WithSize sets the minimum symbol version
func (b *QRConfigBuilder) WithSize(size int) *QRConfigBuilder {
	b.settings["Size"] = size
	return b
}

// WithBorder sets the quiet zone width in modules
func (b *QRConfigBuilder) WithBorder(border int) *QRConfigBuilder {
	b.settings["Border"] = border
	return b
}

// WithModuleStyle sets both module style keys
func (b *QRConfigBuilder) WithModuleStyle(style string) *QRConfigBuilder {
	b.settings["ModuleStyle"] = style
	b.settings["ModuleStyleWifi"] = style
	return b
}

// WithURL sets the encoded URL
func (b *QRConfigBuilder) WithURL(url string) *QRConfigBuilder {
	b.settings["Url"] = url
	return b
}

// WithNote sets the optional contact note
func (b *QRConfigBuilder) WithNote(note string) *QRConfigBuilder {
	b.settings["Note"] = note
	return b
}

// With sets an arbitrary key
func (b *QRConfigBuilder) With(key string, value interface{}) *QRConfigBuilder {
	b.settings[key] = value
	return b
}

// Without removes keys
func (b *QRConfigBuilder) Without(keys ...string) *QRConfigBuilder {
	for _, key := range keys {
		delete(b.settings, key)
	}
	return b
}

// Build returns the document as decoded by the loaders
func (b *QRConfigBuilder) Build() map[string]interface{} {
	settings := make(map[string]interface{}, len(b.settings))
	for k, v := range b.settings {
		settings[k] = v
	}
	return map[string]interface{}{"config": settings}
}

// WriteJSON writes the document to dir/name and returns the path
func (b *QRConfigBuilder) WriteJSON(t testing.TB, dir, name string) string {
	t.Helper()
	data, err := json.MarshalIndent(b.Build(), "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	return writeFile(t, dir, name, data)
}

// WriteYAML writes the document as YAML to dir/name and returns the path
func (b *QRConfigBuilder) WriteYAML(t testing.TB, dir, name string) string {
	t.Helper()
	data, err := yaml.Marshal(b.Build())
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	return writeFile(t, dir, name, data)
}

func rgb(r, g, b int) map[string]int {
	return map[string]int{"r": r, "g": g, "b": b}
}

func writeFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// NewTestImage returns an opaque image with a diagonal gradient
func NewTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(width, 1)),
				G: uint8(y * 255 / max(height, 1)),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

// WritePNG writes a test image to dir/name and returns the path
func WritePNG(t testing.TB, dir, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, NewTestImage(width, height)); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	return path
}

// ValidModuleStyles returns style names accepted as written
func ValidModuleStyles() []string {
	return []string{"square", "gappedsquare", "verticalbars", "horizontalbars", "rounded", "Rounded", "SQUARE"}
}

// UnknownModuleStyles returns style names that fall back to square
func UnknownModuleStyles() []string {
	return []string{"", "circle", "hexagon", "square ish", "gapped-square"}
}
