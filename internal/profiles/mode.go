// Package profiles provides the catalogue of named key profiles (pitch-class
// weight distributions for major and minor keys) and the selector that picks
// the active major/minor pair for a key-finding algorithm.
package profiles

import (
	"fmt"
	"strings"
)

// Mode is the tonal context a profile describes.
type Mode int

const (
	// Major selects the major-key catalogue.
	Major Mode = iota
	// Minor selects the minor-key catalogue.
	Minor
)

// Modes lists every mode in catalogue order.
var Modes = []Mode{Major, Minor}

func (m Mode) String() string {
	switch m {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "major" or "minor" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) valid() bool {
	return m == Major || m == Minor
}
