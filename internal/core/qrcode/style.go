// Package qrcode holds the QR payload builders and rendering options shared by the QR tools.
package qrcode

import "strings"

// ModuleStyle selects how each dark module of the symbol is drawn
type ModuleStyle string

const (
	StyleSquare         ModuleStyle = "square"
	StyleGappedSquare   ModuleStyle = "gappedsquare"
	StyleVerticalBars   ModuleStyle = "verticalbars"
	StyleHorizontalBars ModuleStyle = "horizontalbars"
	StyleRounded        ModuleStyle = "rounded"
)

// AllStyles lists every supported module style
var AllStyles = []ModuleStyle{
	StyleSquare,
	StyleGappedSquare,
	StyleVerticalBars,
	StyleHorizontalBars,
	StyleRounded,
}

var drawerNames = map[ModuleStyle]string{
	StyleSquare:         "SquareModuleDrawer",
	StyleGappedSquare:   "GappedSquareModuleDrawer",
	StyleVerticalBars:   "VerticalBarsDrawer",
	StyleHorizontalBars: "HorizontalBarsDrawer",
	StyleRounded:        "RoundedModuleDrawer",
}

// ParseModuleStyle maps a configured style name onto a ModuleStyle.
// Matching ignores case and surrounding space; unknown names map to StyleSquare.
func ParseModuleStyle(s string) ModuleStyle {
	style := ModuleStyle(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := drawerNames[style]; ok {
		return style
	}
	return StyleSquare
}

// IsKnown reports whether s names a supported style without falling back
func IsKnown(s string) bool {
	_, ok := drawerNames[ModuleStyle(strings.ToLower(strings.TrimSpace(s)))]
	return ok
}

// DrawerName returns the name reported in the run log
func (m ModuleStyle) DrawerName() string {
	if name, ok := drawerNames[m]; ok {
		return name
	}
	return drawerNames[StyleSquare]
}

func (m ModuleStyle) String() string {
	return string(m)
}
