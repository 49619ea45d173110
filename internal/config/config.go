// Package config loads the QR code generator configuration files.
//
// A file holds one top-level "config" object. Files ending in .yaml or .yml are read as
// YAML, anything else as JSON; both use the same key names.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"orbitalintel.ai/tools/internal/core/qrcode"
)

// RGB is a colour entry as written in the file
type RGB struct {
	R *int `json:"r" yaml:"r"`
	G *int `json:"g" yaml:"g"`
	B *int `json:"b" yaml:"b"`
}

// Settings mirrors the "config" object. Pointer fields distinguish absent keys from zero values.
type Settings struct {
	FrontColor      *RGB    `json:"FrontColor" yaml:"FrontColor"`
	BackColor       *RGB    `json:"BackColor" yaml:"BackColor"`
	Size            *int    `json:"Size" yaml:"Size"`
	Border          *int    `json:"Border" yaml:"Border"`
	ModuleStyle     *string `json:"ModuleStyle" yaml:"ModuleStyle"`
	ModuleStyleWifi *string `json:"ModuleStyleWifi" yaml:"ModuleStyleWifi"`

	FirstName    *string `json:"FirstName" yaml:"FirstName"`
	LastName     *string `json:"LastName" yaml:"LastName"`
	Title        *string `json:"Title" yaml:"Title"`
	Organization *string `json:"Organization" yaml:"Organization"`
	Phone        *string `json:"Phone" yaml:"Phone"`
	Email        *string `json:"Email" yaml:"Email"`
	URL          *string `json:"Url" yaml:"Url"`
	Note         *string `json:"Note" yaml:"Note"`
}

type document struct {
	Config *Settings `json:"config" yaml:"config"`
}

// Appearance is the rendering part shared by every QR configuration
type Appearance struct {
	Front     color.RGBA
	Back      color.RGBA
	Version   int
	Border    int
	Style     qrcode.ModuleStyle
	StyleName string // as written in the file
}

// ContactCard is a validated contact card configuration
type ContactCard struct {
	Appearance
	Contact qrcode.Contact
}

// URLCode is a validated URL code configuration
type URLCode struct {
	Appearance
	URL string
}

// WifiCode is a validated WiFi code configuration. Network credentials come from the command line.
type WifiCode struct {
	Appearance
}

// Read decodes a configuration file without validating it
func Read(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if doc.Config == nil {
		return nil, fmt.Errorf("%w: config", ErrMissingKey)
	}
	return doc.Config, nil
}

// LoadContactCard reads and validates a contact card configuration
func LoadContactCard(path string) (*ContactCard, error) {
	s, err := Read(path)
	if err != nil {
		return nil, err
	}

	v := newValidator()
	v.requireColor("FrontColor", s.FrontColor)
	v.requireColor("BackColor", s.BackColor)
	v.requireInt("Size", s.Size)
	v.requireString("ModuleStyle", s.ModuleStyle)
	for _, key := range []struct {
		name  string
		value *string
	}{
		{"FirstName", s.FirstName},
		{"LastName", s.LastName},
		{"Title", s.Title},
		{"Organization", s.Organization},
		{"Phone", s.Phone},
		{"Email", s.Email},
		{"Url", s.URL},
	} {
		v.requireString(key.name, key.value)
	}

	border := qrcode.DefaultBorder
	appearance := v.appearance(s.FrontColor, s.BackColor, s.Size, &border, s.ModuleStyle)
	if err := v.err(); err != nil {
		return nil, err
	}

	return &ContactCard{
		Appearance: appearance,
		Contact: qrcode.Contact{
			FirstName:    *s.FirstName,
			LastName:     *s.LastName,
			Title:        *s.Title,
			Organization: *s.Organization,
			Phone:        *s.Phone,
			Email:        *s.Email,
			URL:          *s.URL,
			Note:         deref(s.Note),
		},
	}, nil
}

// LoadURL reads and validates a URL code configuration
func LoadURL(path string) (*URLCode, error) {
	s, err := Read(path)
	if err != nil {
		return nil, err
	}

	v := newValidator()
	v.requireColor("FrontColor", s.FrontColor)
	v.requireColor("BackColor", s.BackColor)
	v.requireInt("Size", s.Size)
	v.requireInt("Border", s.Border)
	v.requireString("ModuleStyle", s.ModuleStyle)
	v.requireString("Url", s.URL)

	appearance := v.appearance(s.FrontColor, s.BackColor, s.Size, s.Border, s.ModuleStyle)
	if err := v.err(); err != nil {
		return nil, err
	}

	return &URLCode{Appearance: appearance, URL: *s.URL}, nil
}

// LoadWifi reads and validates a WiFi code configuration
func LoadWifi(path string) (*WifiCode, error) {
	s, err := Read(path)
	if err != nil {
		return nil, err
	}

	v := newValidator()
	v.requireColor("FrontColor", s.FrontColor)
	v.requireColor("BackColor", s.BackColor)
	v.requireInt("Size", s.Size)
	v.requireInt("Border", s.Border)
	v.requireString("ModuleStyleWifi", s.ModuleStyleWifi)

	appearance := v.appearance(s.FrontColor, s.BackColor, s.Size, s.Border, s.ModuleStyleWifi)
	if err := v.err(); err != nil {
		return nil, err
	}

	return &WifiCode{Appearance: appearance}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
