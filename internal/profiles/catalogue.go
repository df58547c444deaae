package profiles

import (
	"maps"
	"slices"
)

// Name identifies a key profile within a mode's catalogue. The zero value
// never names a profile and marks an unset selection.
type Name string

// Known profile names. Every one is defined for both modes.
const (
	KrumhanslKessler Name = "krumhansl_kessler"
	AardenEssen      Name = "aarden_essen"
	Sapp             Name = "sapp"
	BellmanBudge     Name = "bellman_budge"
	Temperley        Name = "temperley"
)

// Default profile pair used when no names are given.
const (
	DefaultMajor = Temperley
	DefaultMinor = Sapp
)

// Catalogue maps profile names to normalized vectors, one map per mode.
// It is populated by NewCatalogue and never mutated afterwards, so a
// constructed Catalogue is safe for concurrent readers.
type Catalogue struct {
	major map[Name]Vector
	minor map[Name]Vector
}

// NewCatalogue returns a catalogue populated with every known profile.
func NewCatalogue() *Catalogue {
	return &Catalogue{
		major: maps.Clone(majorProfiles),
		minor: maps.Clone(minorProfiles),
	}
}

var defaultCatalogue = NewCatalogue()

// DefaultCatalogue returns a shared read-only catalogue.
func DefaultCatalogue() *Catalogue {
	return defaultCatalogue
}

// IsValidName reports whether name is a known profile for mode.
func IsValidName(mode Mode, name Name) bool {
	return defaultCatalogue.IsValid(mode, name)
}

func (c *Catalogue) table(mode Mode) map[Name]Vector {
	switch mode {
	case Major:
		return c.major
	case Minor:
		return c.minor
	default:
		return nil
	}
}

// IsValid reports whether name is a key in the catalogue for mode.
func (c *Catalogue) IsValid(mode Mode, name Name) bool {
	_, ok := c.table(mode)[name]
	return ok
}

// VectorFor returns the vector stored under name for mode. An unknown name
// yields ErrInvalidProfileName and an unknown mode ErrUnknownMode.
func (c *Catalogue) VectorFor(mode Mode, name Name) (Vector, error) {
	if !mode.valid() {
		return Vector{}, &Error{Op: "lookup", Mode: mode, Name: name, Err: ErrUnknownMode}
	}
	v, ok := c.table(mode)[name]
	if !ok {
		return Vector{}, &Error{Op: "lookup", Mode: mode, Name: name, Err: ErrInvalidProfileName}
	}
	return v, nil
}

// Names returns the profile names for mode in sorted order.
func (c *Catalogue) Names(mode Mode) []Name {
	return slices.Sorted(maps.Keys(c.table(mode)))
}

// Profiles returns a copy of the name to vector mapping for mode.
func (c *Catalogue) Profiles(mode Mode) map[Name]Vector {
	return maps.Clone(c.table(mode))
}

// Raw returns the published values a profile was normalized from.
func (c *Catalogue) Raw(mode Mode, name Name) ([PitchClasses]float64, error) {
	var raw map[Name][PitchClasses]float64
	switch mode {
	case Major:
		raw = majorRaw
	case Minor:
		raw = minorRaw
	default:
		return [PitchClasses]float64{}, &Error{Op: "raw", Mode: mode, Name: name, Err: ErrUnknownMode}
	}
	r, ok := raw[name]
	if !ok || !c.IsValid(mode, name) {
		return [PitchClasses]float64{}, &Error{Op: "raw", Mode: mode, Name: name, Err: ErrInvalidProfileName}
	}
	return r, nil
}
