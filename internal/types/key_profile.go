package types

import (
	"fmt"

	"github.com/jonathan/keyprofiles/internal/profiles"
)

// ProfileDocument is a single key profile as exported to JSON.
type ProfileDocument struct {
	Name    string    `json:"name" validate:"required"`
	Mode    string    `json:"mode" validate:"required,oneof=major minor"`
	Weights []float64 `json:"weights" validate:"len=12,dive,gte=0"`
}

// NewProfileDocument builds the document for a catalogue entry.
func NewProfileDocument(mode profiles.Mode, name profiles.Name, v profiles.Vector) ProfileDocument {
	return ProfileDocument{
		Name:    string(name),
		Mode:    mode.String(),
		Weights: v.Slice(),
	}
}

// Validate checks field constraints and that the weights sum to 1.
func (d *ProfileDocument) Validate() error {
	if err := validate.Struct(d); err != nil {
		return err
	}
	_, err := d.Vector()
	return err
}

// Vector converts the weights back into a profile vector.
func (d *ProfileDocument) Vector() (profiles.Vector, error) {
	v, err := profiles.VectorFromSlice(d.Weights)
	if err != nil {
		return v, fmt.Errorf("profile %s: %w", d.Name, err)
	}
	if err := v.Validate(); err != nil {
		return v, fmt.Errorf("profile %s: %w", d.Name, err)
	}
	return v, nil
}

// SelectionRequest names a (major, minor) pair to activate.
type SelectionRequest struct {
	Major string `json:"major" validate:"required,major_profile"`
	Minor string `json:"minor" validate:"required,minor_profile"`
}

// Validate checks both names against the catalogue.
func (r *SelectionRequest) Validate() error {
	return validate.Struct(r)
}

// SelectionDocument is the exported form of an active selection.
type SelectionDocument struct {
	Major ProfileDocument `json:"major"`
	Minor ProfileDocument `json:"minor"`
}

// NewSelectionDocument exports the selector's active pair. It fails with
// profiles.ErrUnsetSelection when the selector has no selection.
func NewSelectionDocument(s *profiles.Selector) (*SelectionDocument, error) {
	major, err := s.MajorVector()
	if err != nil {
		return nil, err
	}
	minor, err := s.MinorVector()
	if err != nil {
		return nil, err
	}
	return &SelectionDocument{
		Major: NewProfileDocument(profiles.Major, s.MajorName(), major),
		Minor: NewProfileDocument(profiles.Minor, s.MinorName(), minor),
	}, nil
}

// Validate validates both halves of the selection.
func (d *SelectionDocument) Validate() error {
	if d.Major.Mode != profiles.Major.String() {
		return fmt.Errorf("major profile %s has mode %q", d.Major.Name, d.Major.Mode)
	}
	if d.Minor.Mode != profiles.Minor.String() {
		return fmt.Errorf("minor profile %s has mode %q", d.Minor.Name, d.Minor.Mode)
	}
	if err := d.Major.Validate(); err != nil {
		return err
	}
	return d.Minor.Validate()
}
