package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/keyprofiles/internal/evolve"
	"github.com/jonathan/keyprofiles/internal/profiles"
)

// CandidateRecord is a candidate as stored in one generation. ID is the
// candidate's lineage id and repeats across generations for survivors;
// (ID, Generation) identifies a row. Rank is the position in the
// generation, best first, and nil when the generation was never scored.
type CandidateRecord struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Generation int       `json:"generation"`
	Rank       *int      `json:"rank,omitempty"`
	Major      []float64 `json:"major"`
	Minor      []float64 `json:"minor"`
	Score      *float64  `json:"score,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCandidateRecord prepares an unranked, unscored candidate for storage.
func NewCandidateRecord(c evolve.Candidate) CandidateRecord {
	return CandidateRecord{
		ID:         c.ID,
		Name:       c.Name,
		Generation: c.Generation,
		Major:      c.Major.Slice(),
		Minor:      c.Minor.Slice(),
	}
}

// RecordsFromCandidates prepares a generation that has not been scored yet.
func RecordsFromCandidates(candidates []evolve.Candidate) []CandidateRecord {
	out := make([]CandidateRecord, len(candidates))
	for i, c := range candidates {
		out[i] = NewCandidateRecord(c)
	}
	return out
}

// RecordsFromScored prepares a ranked generation for storage.
func RecordsFromScored(scored []evolve.Scored) []CandidateRecord {
	out := make([]CandidateRecord, len(scored))
	for i, s := range scored {
		rank, score := i, s.Score
		out[i] = NewCandidateRecord(s.Candidate)
		out[i].Rank = &rank
		out[i].Score = &score
	}
	return out
}

// Candidate converts the record back to an evolve candidate.
func (r *CandidateRecord) Candidate() (evolve.Candidate, error) {
	major, err := profiles.VectorFromSlice(r.Major)
	if err != nil {
		return evolve.Candidate{}, err
	}
	minor, err := profiles.VectorFromSlice(r.Minor)
	if err != nil {
		return evolve.Candidate{}, err
	}
	return evolve.Candidate{
		ID:         r.ID,
		Name:       r.Name,
		Generation: r.Generation,
		Major:      major,
		Minor:      minor,
	}, nil
}
