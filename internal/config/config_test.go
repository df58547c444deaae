package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/keyprofiles/internal/evolve"
	"github.com/jonathan/keyprofiles/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratio(v float64) *float64 { return &v }

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"major": "krumhansl_kessler",
		"minor": "aarden_essen",
		"strict": true,
		"population": 40,
		"mutation_ratio": 0.05
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "krumhansl_kessler", cfg.Major)
	assert.Equal(t, "aarden_essen", cfg.Minor)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 40, cfg.Population)
	require.NotNil(t, cfg.MutationRatio)
	assert.Equal(t, 0.05, *cfg.MutationRatio)
	assert.Nil(t, cfg.Retain)
}

func TestLoadConfig_Errors(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "invalid json", path: tmpFile, want: "failed to parse config JSON"},
		{name: "missing file", path: "/nonexistent/path/config.json", want: "failed to read config file"},
		{name: "empty path", path: "", want: "config path is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvMajor, "sapp")
	t.Setenv(EnvMinor, "temperley")
	t.Setenv(EnvStrict, "true")
	t.Setenv(EnvDatabaseURL, "postgres://localhost/keyprofiles")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "sapp", cfg.Major)
	assert.Equal(t, "temperley", cfg.Minor)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "postgres://localhost/keyprofiles", cfg.DatabaseURL)

	t.Setenv(EnvStrict, "sometimes")
	_, err = FromEnv()
	assert.ErrorContains(t, err, EnvStrict)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "empty", cfg: Config{}},
		{name: "unknown major", cfg: Config{Major: "mozart"}, wantErr: "unknown major profile"},
		{name: "unknown minor", cfg: Config{Minor: "mozart"}, wantErr: "unknown minor profile"},
		{name: "negative population", cfg: Config{Population: -1}, wantErr: "population"},
		{name: "ratio out of range", cfg: Config{Crossover: ratio(2)}, wantErr: "Crossover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{Major: "bellman_budge", Population: 12, Strict: true}

	merged := partial.MergeWithDefaults(Defaults())

	assert.Equal(t, "bellman_budge", merged.Major)
	assert.Equal(t, "sapp", merged.Minor)
	assert.Equal(t, 12, merged.Population)
	assert.True(t, merged.Strict)
	assert.Equal(t, 0.2, merged.EvolveOptions().Retain)
	assert.Equal(t, 0.1, merged.EvolveOptions().MutationRatio)
	assert.NoError(t, merged.Validate())
}

func TestMergeWithDefaults_KeepsZeroRatios(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"mutation_prob": 0, "crossover": 0}`), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	merged := cfg.MergeWithDefaults(Defaults())
	opts := merged.EvolveOptions()
	assert.Equal(t, 0.0, opts.MutationProb)
	assert.Equal(t, 0.0, opts.Crossover)
	assert.Equal(t, 0.2, opts.Retain)
	assert.Equal(t, 0.1, opts.MutationRatio)
	assert.NoError(t, merged.Validate())
}

func TestEvolveOptions_UnsetUsesEvolverDefaults(t *testing.T) {
	var cfg Config
	assert.Equal(t, evolve.DefaultOptions(), cfg.EvolveOptions())

	cfg.Retain = ratio(0)
	assert.Equal(t, 0.0, cfg.EvolveOptions().Retain)
}

func TestSelector(t *testing.T) {
	cfg := Defaults()
	s, err := cfg.Selector()
	require.NoError(t, err)
	assert.Equal(t, profiles.Temperley, s.MajorName())
	assert.Equal(t, profiles.Sapp, s.MinorName())

	lenient := Config{Major: "nope", Minor: "sapp"}
	s, err = lenient.Selector()
	require.NoError(t, err)
	assert.False(t, s.IsSet())

	strict := Config{Major: "nope", Minor: "sapp", Strict: true}
	s, err = strict.Selector()
	assert.Nil(t, s)
	assert.ErrorIs(t, err, profiles.ErrInvalidProfileName)
}
