// Package destination derives output file names from the command line and run stamps.
package destination

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultContactCard is the stable contact card file name
	DefaultContactCard = "vcard_qr.png"

	minDestLength = 5
)

// ErrNoExtension is returned when a name cannot be stamped
var ErrNoExtension = errors.New("destination filename has no extension")

// Resolve returns dest when it is usable for ext, otherwise the source file's base name
// with its extension replaced by ext. A usable dest has at least five characters and
// contains ext.
func Resolve(dest, source, ext string) string {
	if len(dest) >= minDestLength && strings.Contains(dest, ext) {
		return dest
	}
	return Stem(filepath.Base(source)) + ext
}

// Stem returns name without its final extension
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Stamped inserts "_<stamp>" between the stem and extension of name
func Stamped(name, stamp string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if ext == "" || ext == "." || ext == filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrNoExtension, name)
	}
	return stem + "_" + stamp + ext, nil
}

// Pair is a stable output name and its timestamped copy
type Pair struct {
	Stable   string
	Stamped  string
	Fallback bool // dest was unusable and DefaultContactCard was used
}

// ContactCard returns the two contact card output names for dest. An unusable dest
// falls back to DefaultContactCard.
func ContactCard(dest, stamp string) Pair {
	if stamped, err := Stamped(dest, stamp); err == nil {
		return Pair{Stable: dest, Stamped: stamped}
	}
	stamped, _ := Stamped(DefaultContactCard, stamp)
	return Pair{Stable: DefaultContactCard, Stamped: stamped, Fallback: true}
}

// URLCode returns the URL code file name for a file stamp
func URLCode(stamp string) string {
	return fmt.Sprintf("QR_Code_Url_%s.png", stamp)
}

// WifiCode returns the WiFi code file name for a file stamp
func WifiCode(stamp string) string {
	return fmt.Sprintf("QR_Code_Wifi_%s.png", stamp)
}
