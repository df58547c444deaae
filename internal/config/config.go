// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/keyprofiles/internal/evolve"
	"github.com/jonathan/keyprofiles/internal/profiles"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags. The
// evolution ratios are pointers so that an explicit 0 is kept.
type Config struct {
	// Selection
	Major  string `json:"major,omitempty"`  // Major profile name
	Minor  string `json:"minor,omitempty"`  // Minor profile name
	Strict bool   `json:"strict,omitempty"` // Fail on unknown names instead of leaving the selection unset

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print human-readable summaries
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for evolved candidates

	// Evolution
	Population    int      `json:"population,omitempty"`     // Candidates per generation
	Seed          uint64   `json:"seed,omitempty"`           // Random seed
	Retain        *float64 `json:"retain,omitempty"`         // Share of top candidates kept
	RandomRetain  *float64 `json:"random_retain,omitempty"`  // Share of other candidates kept at random
	Crossover     *float64 `json:"crossover,omitempty"`      // Share of children bred from survivors
	MutationProb  *float64 `json:"mutation_prob,omitempty"`  // Chance a survivor or child mutates
	MutationRatio *float64 `json:"mutation_ratio,omitempty"` // Fraction of weight a mutation moves
}

// Environment variables read by FromEnv.
const (
	EnvMajor       = "KEYPROFILES_MAJOR"
	EnvMinor       = "KEYPROFILES_MINOR"
	EnvStrict      = "KEYPROFILES_STRICT"
	EnvDatabaseURL = "DATABASE_URL"
)

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	opts := evolve.DefaultOptions()
	return Config{
		Major:         string(profiles.DefaultMajor),
		Minor:         string(profiles.DefaultMinor),
		Retain:        &opts.Retain,
		RandomRetain:  &opts.RandomRetain,
		Crossover:     &opts.Crossover,
		MutationProb:  &opts.MutationProb,
		MutationRatio: &opts.MutationRatio,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the selection and database settings from the environment.
// Call godotenv.Load first to pick up a .env file.
func FromEnv() (Config, error) {
	cfg := Config{
		Major:       os.Getenv(EnvMajor),
		Minor:       os.Getenv(EnvMinor),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
	}
	if s := os.Getenv(EnvStrict); s != "" {
		strict, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvStrict, err)
		}
		cfg.Strict = strict
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Major != "" && !profiles.IsValidName(profiles.Major, profiles.Name(c.Major)) {
		return fmt.Errorf("config error: unknown major profile %q", c.Major)
	}
	if c.Minor != "" && !profiles.IsValidName(profiles.Minor, profiles.Name(c.Minor)) {
		return fmt.Errorf("config error: unknown minor profile %q", c.Minor)
	}
	if c.Population < 0 {
		return fmt.Errorf("config error: 'population' must be non-negative")
	}
	if err := c.EvolveOptions().Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// Strings and integers are unset when zero; ratios are unset when nil.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Major == "" {
		result.Major = defaults.Major
	}
	if result.Minor == "" {
		result.Minor = defaults.Minor
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Population == 0 {
		result.Population = defaults.Population
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.Retain == nil {
		result.Retain = defaults.Retain
	}
	if result.RandomRetain == nil {
		result.RandomRetain = defaults.RandomRetain
	}
	if result.Crossover == nil {
		result.Crossover = defaults.Crossover
	}
	if result.MutationProb == nil {
		result.MutationProb = defaults.MutationProb
	}
	if result.MutationRatio == nil {
		result.MutationRatio = defaults.MutationRatio
	}

	// Bool fields: cannot distinguish unset from false, so either side wins.
	result.Strict = result.Strict || defaults.Strict
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// EvolveOptions returns the evolution parameters. Unset ratios take the
// evolver's defaults.
func (c *Config) EvolveOptions() evolve.Options {
	opts := evolve.DefaultOptions()
	setRatio(&opts.Retain, c.Retain)
	setRatio(&opts.RandomRetain, c.RandomRetain)
	setRatio(&opts.Crossover, c.Crossover)
	setRatio(&opts.MutationProb, c.MutationProb)
	setRatio(&opts.MutationRatio, c.MutationRatio)
	return opts
}

func setRatio(dst, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Selector builds the profile selector for the configured pair. In strict
// mode an unknown name is an error; otherwise the selector is left unset.
func (c *Config) Selector() (*profiles.Selector, error) {
	if c.Strict {
		return profiles.NewStrictSelector(profiles.Name(c.Major), profiles.Name(c.Minor))
	}
	return profiles.NewSelector(profiles.Name(c.Major), profiles.Name(c.Minor)), nil
}
