package config

import (
	"errors"
	"fmt"
	"image/color"

	"orbitalintel.ai/tools/internal/core/qrcode"
)

// validator collects every problem in a file so they can be reported together
type validator struct {
	errs []error
}

func newValidator() *validator {
	return &validator{}
}

func (v *validator) missing(key string) {
	v.errs = append(v.errs, fmt.Errorf("%w: config.%s", ErrMissingKey, key))
}

func (v *validator) invalid(key, format string, args ...interface{}) {
	v.errs = append(v.errs, fmt.Errorf("%w: config.%s %s", ErrInvalidValue, key, fmt.Sprintf(format, args...)))
}

func (v *validator) requireString(key string, value *string) {
	if value == nil {
		v.missing(key)
	}
}

func (v *validator) requireInt(key string, value *int) {
	if value == nil {
		v.missing(key)
	}
}

func (v *validator) requireColor(key string, value *RGB) {
	if value == nil {
		v.missing(key)
		return
	}
	for _, c := range []struct {
		name  string
		value *int
	}{{"r", value.R}, {"g", value.G}, {"b", value.B}} {
		if c.value == nil {
			v.missing(key + "." + c.name)
		}
	}
}

// appearance converts the shared keys; absent keys were already recorded as missing
func (v *validator) appearance(front, back *RGB, size, border *int, style *string) Appearance {
	var a Appearance
	a.Front = v.color("FrontColor", front)
	a.Back = v.color("BackColor", back)

	if size != nil {
		if *size < qrcode.MinVersion || *size > qrcode.MaxVersion {
			v.invalid("Size", "must be between %d and %d, got %d", qrcode.MinVersion, qrcode.MaxVersion, *size)
		}
		a.Version = *size
	}

	if border != nil {
		if *border < 0 {
			v.invalid("Border", "cannot be negative, got %d", *border)
		}
		a.Border = *border
	}

	if style != nil {
		a.StyleName = *style
		a.Style = qrcode.ParseModuleStyle(*style)
	}
	return a
}

func (v *validator) color(key string, value *RGB) color.RGBA {
	if value == nil || value.R == nil || value.G == nil || value.B == nil {
		return color.RGBA{}
	}
	c, err := qrcode.RGB(*value.R, *value.G, *value.B)
	if err != nil {
		v.invalid(key, "%v", err)
	}
	return c
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}
