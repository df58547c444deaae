package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/keyprofiles/internal/evolve"
	"github.com/jonathan/keyprofiles/internal/profiles"
	"github.com/jonathan/keyprofiles/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPopulation(t *testing.T, path string) types.Population {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var pop types.Population
	require.NoError(t, json.Unmarshal(content, &pop))
	require.NoError(t, pop.Validate())
	return pop
}

func TestEvolveCommand_SeedsFromCatalogue(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "gen1.json")

	out, _, err := runCLI(t, "evolve", "--out", outPath, "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote generation 1 (25 candidates)")

	pop := readPopulation(t, outPath)
	assert.Equal(t, 1, pop.Generation)
	assert.Len(t, pop.Candidates, 25)
}

func TestEvolveCommand_ChainsGenerations(t *testing.T) {
	dir := t.TempDir()
	gen1 := filepath.Join(dir, "gen1.json")
	gen2 := filepath.Join(dir, "gen2.json")

	_, _, err := runCLI(t, "evolve", "--out", gen1, "--population", "30", "--seed", "1")
	require.NoError(t, err)

	out, _, err := runCLI(t, "evolve", "--in", gen1, "--out", gen2, "--seed", "2", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "POPULATION")

	pop := readPopulation(t, gen2)
	assert.Equal(t, 2, pop.Generation)
	assert.Len(t, pop.Candidates, 30)
}

func TestEvolveCommand_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")

	_, _, err := runCLI(t, "evolve", "--out", a, "--seed", "42", "--population", "10")
	require.NoError(t, err)
	_, _, err = runCLI(t, "evolve", "--out", b, "--seed", "42", "--population", "10")
	require.NoError(t, err)

	assert.Equal(t, readPopulation(t, a), readPopulation(t, b))
}

func TestEvolveCommand_Errors(t *testing.T) {
	_, _, err := runCLI(t, "evolve")
	assert.ErrorContains(t, err, "required")

	bad := writeTemp(t, "bad.json", `{"generation": 0, "candidates": []}`)
	_, _, err = runCLI(t, "evolve", "--in", bad, "--out", filepath.Join(t.TempDir(), "out.json"))
	assert.ErrorContains(t, err, "invalid")

	cfgPath := writeTemp(t, "config.json", `{"retain": 0.9, "random_retain": 0.9}`)
	_, _, err = runCLI(t, "evolve", "--config", cfgPath, "--out", filepath.Join(t.TempDir(), "out.json"))
	assert.ErrorContains(t, err, "exceeds 1")
}

func TestEvolveCommand_ScoredInputKeepsBestFirst(t *testing.T) {
	seed := evolve.Seed(profiles.NewCatalogue())[:4]
	pop := evolve.PopulationDocument(0, seed)
	for i := range pop.Candidates {
		score := float64(i)
		pop.Candidates[i].Score = &score
	}
	content, err := json.Marshal(pop)
	require.NoError(t, err)
	in := writeTemp(t, "scored.json", string(content))

	// Keep everyone unchanged so the output order is the input ranking.
	cfgPath := writeTemp(t, "config.json",
		`{"retain": 1, "random_retain": 0, "crossover": 0, "mutation_prob": 0}`)
	outPath := filepath.Join(t.TempDir(), "gen1.json")

	_, _, err = runCLI(t, "evolve", "--in", in, "--out", outPath, "--config", cfgPath)
	require.NoError(t, err)

	next := readPopulation(t, outPath)
	require.Len(t, next.Candidates, 4)
	for i, doc := range next.Candidates {
		assert.Equal(t, seed[3-i].Name, doc.Name)
		assert.Equal(t, 1, doc.Generation)
		assert.Nil(t, doc.Score)
	}
}
