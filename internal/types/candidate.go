package types

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/keyprofiles/internal/profiles"
)

// CandidateDocument is an evolved (major, minor) profile pair.
type CandidateDocument struct {
	ID         string    `json:"id" validate:"required,uuid"`
	Name       string    `json:"name" validate:"required"`
	Generation int       `json:"generation" validate:"gte=0"`
	Major      []float64 `json:"major" validate:"len=12,dive,gte=0"`
	Minor      []float64 `json:"minor" validate:"len=12,dive,gte=0"`
	Score      *float64  `json:"score,omitempty"` // Fitness, when the candidate has been ranked
}

// Population is an ordered list of candidates, best first. When candidates
// carry scores, the scores decide the order.
type Population struct {
	Generation int                 `json:"generation" validate:"gte=0"`
	Candidates []CandidateDocument `json:"candidates" validate:"required,min=1,dive"`
}

// Validate checks field constraints and that both vectors are normalized.
func (c *CandidateDocument) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	_, _, err := c.Vectors()
	return err
}

// ParsedID returns the candidate id as a UUID.
func (c *CandidateDocument) ParsedID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("candidate %s: invalid id: %w", c.Name, err)
	}
	return id, nil
}

// Vectors converts both weight lists to profile vectors.
func (c *CandidateDocument) Vectors() (major, minor profiles.Vector, err error) {
	major, err = profiles.VectorFromSlice(c.Major)
	if err == nil {
		err = major.Validate()
	}
	if err != nil {
		return major, minor, fmt.Errorf("candidate %s major: %w", c.Name, err)
	}
	minor, err = profiles.VectorFromSlice(c.Minor)
	if err == nil {
		err = minor.Validate()
	}
	if err != nil {
		return major, minor, fmt.Errorf("candidate %s minor: %w", c.Name, err)
	}
	return major, minor, nil
}

// Validate validates the population and every candidate in it.
func (p *Population) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	for i := range p.Candidates {
		if _, _, err := p.Candidates[i].Vectors(); err != nil {
			return err
		}
	}
	return nil
}
