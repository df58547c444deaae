package evolve

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/keyprofiles/internal/profiles"
)

// Options controls how one generation becomes the next. Every field is a
// fraction of the population size or a probability.
type Options struct {
	// Retain is the share of top candidates kept unchanged.
	Retain float64 `json:"retain" validate:"gte=0,lte=1"`
	// RandomRetain is the share of the remaining candidates kept at random.
	RandomRetain float64 `json:"random_retain" validate:"gte=0,lte=1"`
	// Crossover is the share of the next generation bred from survivors.
	Crossover float64 `json:"crossover" validate:"gte=0,lte=1"`
	// MutationProb is the chance each survivor or child is mutated.
	MutationProb float64 `json:"mutation_prob" validate:"gte=0,lte=1"`
	// MutationRatio is the fraction of a pitch class's weight moved by a mutation.
	MutationRatio float64 `json:"mutation_ratio" validate:"gte=0,lte=1"`
}

// DefaultOptions returns the standard evolution parameters.
func DefaultOptions() Options {
	return Options{
		Retain:        0.2,
		RandomRetain:  0.2,
		Crossover:     0.3,
		MutationProb:  0.2,
		MutationRatio: 0.1,
	}
}

var validate = validator.New()

// Validate checks ranges and that survivors cannot exceed the population.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return &Error{Message: "invalid options", Cause: err}
	}
	if o.Retain+o.RandomRetain > 1 {
		return &Error{Message: fmt.Sprintf("retain (%v) plus random_retain (%v) exceeds 1", o.Retain, o.RandomRetain)}
	}
	return nil
}

// Evolver produces successive generations. It is not safe for concurrent
// use; its random source is deterministic for a given seed.
type Evolver struct {
	opts Options
	src  *rand.ChaCha8
	rng  *rand.Rand
}

// New returns an Evolver whose random choices are fully determined by seed.
func New(opts Options, seed uint64) (*Evolver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	src := rand.NewChaCha8(key)
	return &Evolver{opts: opts, src: src, rng: rand.New(src)}, nil
}

// Options returns the evolver's parameters.
func (e *Evolver) Options() Options {
	return e.opts
}

func (e *Evolver) newID() uuid.UUID {
	// ChaCha8.Read never fails.
	id, _ := uuid.NewRandomFromReader(e.src)
	return id
}

// Next builds the next generation from ranked, which must be ordered best
// first. The result has the same size as ranked and every candidate carries
// the next generation number.
func (e *Evolver) Next(ranked []Candidate) ([]Candidate, error) {
	n := len(ranked)
	if n == 0 {
		return nil, &Error{Message: "empty population"}
	}

	generation := 0
	for _, c := range ranked {
		generation = max(generation, c.Generation)
	}
	generation++

	retainLen := int(float64(n) * e.opts.Retain)
	randomLen := int(float64(n) * e.opts.RandomRetain)
	crossoverLen := int(float64(n) * e.opts.Crossover)

	next := make([]Candidate, 0, n)
	next = append(next, ranked[:retainLen]...)

	// Random survivors come from outside the retained top.
	rest := ranked[retainLen:]
	for _, i := range e.rng.Perm(len(rest))[:min(randomLen, len(rest))] {
		next = append(next, rest[i])
	}

	parents := len(next)
	if parents >= 2 {
		for i := 0; i < crossoverLen && len(next) < n; i++ {
			a := e.rng.IntN(parents)
			b := e.rng.IntN(parents - 1)
			if b >= a {
				b++
			}
			next = append(next, e.crossover(next[a], next[b]))
		}
	}

	for i := range next {
		if e.opts.MutationProb > e.rng.Float64() {
			next[i] = e.mutate(next[i])
		}
	}

	for len(next) < n {
		next = append(next, e.Random())
	}

	for i := range next {
		next[i].Generation = generation
	}
	return next, nil
}

// crossover pairs the major profile of a with the minor profile of b.
func (e *Evolver) crossover(a, b Candidate) Candidate {
	return Candidate{
		ID:    e.newID(),
		Name:  fmt.Sprintf("(%s,%s)", a.Name, b.Name),
		Major: a.Major,
		Minor: b.Minor,
	}
}

// mutate moves MutationRatio of one pitch class's weight to another pitch
// class in either the major or the minor profile. The total is unchanged.
func (e *Evolver) mutate(c Candidate) Candidate {
	out := c
	out.ID = e.newID()
	out.Name = c.Name + "*"

	v := &out.Major
	if e.rng.IntN(2) == 1 {
		v = &out.Minor
	}
	from := e.rng.IntN(profiles.PitchClasses)
	to := e.rng.IntN(profiles.PitchClasses - 1)
	if to >= from {
		to++
	}
	delta := v[from] * e.opts.MutationRatio
	v[from] -= delta
	v[to] += delta
	return out
}

// Random generates a candidate with uniformly drawn, normalized weights.
func (e *Evolver) Random() Candidate {
	id := e.newID()
	return Candidate{
		ID:    id,
		Name:  "kpg-" + id.String(),
		Major: e.randomVector(),
		Minor: e.randomVector(),
	}
}

func (e *Evolver) randomVector() profiles.Vector {
	for {
		var raw [profiles.PitchClasses]float64
		for pc := range raw {
			raw[pc] = e.rng.Float64()
		}
		if v, err := profiles.Normalize(raw); err == nil {
			return v
		}
	}
}
