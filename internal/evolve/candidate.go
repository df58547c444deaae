// Package evolve refines (major, minor) key profile pairs with a genetic
// algorithm: the best candidates survive, pairs are crossed by taking the
// major profile of one parent and the minor profile of another, and
// mutations move weight between pitch classes. Scoring is supplied by the
// caller.
package evolve

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jonathan/keyprofiles/internal/profiles"
	"github.com/jonathan/keyprofiles/internal/types"
)

// Candidate is one member of a population.
type Candidate struct {
	ID         uuid.UUID
	Name       string
	Generation int
	Major      profiles.Vector
	Minor      profiles.Vector
}

// Seed returns one candidate per (major name, minor name) combination in
// the catalogue, named "major/minor", in sorted name order.
func Seed(cat *profiles.Catalogue) []Candidate {
	majors := cat.Names(profiles.Major)
	minors := cat.Names(profiles.Minor)
	out := make([]Candidate, 0, len(majors)*len(minors))
	for _, majName := range majors {
		for _, minName := range minors {
			// Names come from the catalogue, so lookups cannot fail.
			mv, _ := cat.VectorFor(profiles.Major, majName)
			nv, _ := cat.VectorFor(profiles.Minor, minName)
			out = append(out, Candidate{
				ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(string(majName)+"/"+string(minName))),
				Name:  string(majName) + "/" + string(minName),
				Major: mv,
				Minor: nv,
			})
		}
	}
	return out
}

// FromSelector builds a candidate from a selector's active pair.
func FromSelector(s *profiles.Selector) (Candidate, error) {
	major, err := s.MajorVector()
	if err != nil {
		return Candidate{}, err
	}
	minor, err := s.MinorVector()
	if err != nil {
		return Candidate{}, err
	}
	name := string(s.MajorName()) + "/" + string(s.MinorName())
	return Candidate{
		ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Name:  name,
		Major: major,
		Minor: minor,
	}, nil
}

// Document converts the candidate to its JSON form.
func (c Candidate) Document() types.CandidateDocument {
	return types.CandidateDocument{
		ID:         c.ID.String(),
		Name:       c.Name,
		Generation: c.Generation,
		Major:      c.Major.Slice(),
		Minor:      c.Minor.Slice(),
	}
}

// FromDocument validates a document and converts it to a candidate.
func FromDocument(doc types.CandidateDocument) (Candidate, error) {
	if err := doc.Validate(); err != nil {
		return Candidate{}, &Error{Message: fmt.Sprintf("invalid candidate %q", doc.Name), Cause: err}
	}
	id, err := doc.ParsedID()
	if err != nil {
		return Candidate{}, &Error{Message: "invalid candidate id", Cause: err}
	}
	major, minor, err := doc.Vectors()
	if err != nil {
		return Candidate{}, &Error{Message: "invalid candidate weights", Cause: err}
	}
	return Candidate{
		ID:         id,
		Name:       doc.Name,
		Generation: doc.Generation,
		Major:      major,
		Minor:      minor,
	}, nil
}

// PopulationDocument converts an ordered population to its JSON form.
func PopulationDocument(generation int, candidates []Candidate) types.Population {
	docs := make([]types.CandidateDocument, len(candidates))
	for i, c := range candidates {
		docs[i] = c.Document()
	}
	return types.Population{Generation: generation, Candidates: docs}
}

// ScoredPopulationDocument converts a ranked population to its JSON form,
// recording each candidate's score.
func ScoredPopulationDocument(generation int, scored []Scored) types.Population {
	docs := make([]types.CandidateDocument, len(scored))
	for i, s := range scored {
		score := s.Score
		docs[i] = s.Candidate.Document()
		docs[i].Score = &score
	}
	return types.Population{Generation: generation, Candidates: docs}
}

// FromPopulation converts a validated population document to candidates,
// best first. Candidates carrying a score are ordered by it, highest first,
// ahead of unscored ones; otherwise document order is kept.
func FromPopulation(pop types.Population) ([]Candidate, error) {
	if err := pop.Validate(); err != nil {
		return nil, &Error{Message: "invalid population", Cause: err}
	}
	docs := slices.Clone(pop.Candidates)
	slices.SortStableFunc(docs, func(a, b types.CandidateDocument) int {
		switch {
		case a.Score == nil && b.Score == nil:
			return 0
		case a.Score == nil:
			return 1
		case b.Score == nil:
			return -1
		}
		return cmp.Compare(*b.Score, *a.Score)
	})

	out := make([]Candidate, len(docs))
	for i, doc := range docs {
		c, err := FromDocument(doc)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
