package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/keyprofiles/internal/config"
	"github.com/jonathan/keyprofiles/internal/db"
	"github.com/jonathan/keyprofiles/internal/evolve"
	"github.com/jonathan/keyprofiles/internal/observability"
	"github.com/jonathan/keyprofiles/internal/profiles"
	"github.com/jonathan/keyprofiles/internal/schemas"
	"github.com/jonathan/keyprofiles/internal/types"
	"github.com/spf13/cobra"
)

type evolveOptions struct {
	input       string
	output      string
	configPath  string
	databaseURL string
	population  int
	seed        uint64
	verbose     bool
}

func newEvolveCmd() *cobra.Command {
	var opts evolveOptions

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Breed the next generation of key profile pairs",
		Long: "Reads a population ordered best first (or seeds one from every major/minor combination in the catalogue) " +
			"and writes the next generation: top candidates retained, some others kept at random, children that take the major " +
			"profile of one parent and the minor profile of another, mutations that move weight between pitch classes, and " +
			"random profiles to fill the rest.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvolve(cmd.Context(), cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "in", "i", "", "Path to population JSON, best first or carrying scores (default: seed from catalogue)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Path to output population JSON (required)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to JSON config file")
	cmd.Flags().StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL URL to store the generation in")
	cmd.Flags().IntVarP(&opts.population, "population", "n", 0, "Population size when seeding from the catalogue")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a summary of the new generation")
	if err := cmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	return cmd
}

func loadPopulation(path string) ([]evolve.Candidate, error) {
	if schemaPath := schemas.ResolveSchemaPath("schemas/population.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("input population is invalid: %w", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read population file %s: %w", path, err)
	}
	var pop types.Population
	if err := json.Unmarshal(content, &pop); err != nil {
		return nil, fmt.Errorf("failed to unmarshal population JSON: %w", err)
	}
	return evolve.FromPopulation(pop)
}

// seedPopulation pairs every catalogue profile and pads with random
// candidates, or truncates, to size.
func seedPopulation(e *evolve.Evolver, size int) []evolve.Candidate {
	seed := evolve.Seed(profiles.DefaultCatalogue())
	if size <= 0 {
		return seed
	}
	if size < len(seed) {
		return seed[:size]
	}
	for len(seed) < size {
		seed = append(seed, e.Random())
	}
	return seed
}

func runEvolve(ctx context.Context, cmd *cobra.Command, opts *evolveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	flags := config.Config{DatabaseURL: opts.databaseURL, Population: opts.population, Seed: opts.seed, Verbose: opts.verbose}
	cfg, err := resolveConfig(flags, opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	e, err := evolve.New(cfg.EvolveOptions(), cfg.Seed)
	if err != nil {
		return err
	}

	var population []evolve.Candidate
	if opts.input != "" {
		population, err = loadPopulation(opts.input)
		if err != nil {
			return err
		}
	} else {
		population = seedPopulation(e, cfg.Population)
	}

	log.Printf("[EVOLVE] Breeding from %d candidates (seed %d)", len(population), cfg.Seed)
	next, err := e.Next(population)
	if err != nil {
		return err
	}
	generation := next[0].Generation

	doc := evolve.PopulationDocument(generation, next)
	if schemaPath := schemas.ResolveSchemaPath("schemas/population.schema.json"); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, doc); err != nil {
			return fmt.Errorf("generated population is invalid: %w", err)
		}
	}

	jsonOutput, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal population to JSON: %w", err)
	}
	if err := writeFile(opts.output, jsonOutput); err != nil {
		return err
	}

	if cfg.DatabaseURL != "" {
		if err := storeGeneration(ctx, cfg.DatabaseURL, next); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintPopulation(generation, next)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote generation %d (%d candidates) to %s\n", generation, len(next), opts.output)
	return nil
}

func storeGeneration(ctx context.Context, databaseURL string, candidates []evolve.Candidate) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	// A bred generation has not been scored, so its rows carry no rank.
	return database.SaveGeneration(ctx, db.RecordsFromCandidates(candidates))
}
