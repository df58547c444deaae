package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/keyprofiles/internal/profiles"
	"github.com/jonathan/keyprofiles/internal/schemas"
	"github.com/jonathan/keyprofiles/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"common.schema.json",
	"key_profile.schema.json",
	"key_profile_selection.schema.json",
	"population.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]any
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasSchema, "schema should declare $schema")
		})
	}
}

func TestEveryCatalogueProfile_MatchesSchema(t *testing.T) {
	cat := profiles.NewCatalogue()

	for _, mode := range profiles.Modes {
		for _, name := range cat.Names(mode) {
			v, err := cat.VectorFor(mode, name)
			require.NoError(t, err)

			doc := types.NewProfileDocument(mode, name, v)
			err = schemas.ValidateDocument("key_profile.schema.json", doc)
			assert.NoError(t, err, "%s %s", mode, name)
		}
	}
}

func TestSelectionSchema_RejectsSwappedModes(t *testing.T) {
	doc, err := types.NewSelectionDocument(profiles.NewDefaultSelector())
	require.NoError(t, err)
	require.NoError(t, schemas.ValidateDocument("key_profile_selection.schema.json", doc))

	doc.Major, doc.Minor = doc.Minor, doc.Major
	err = schemas.ValidateDocument("key_profile_selection.schema.json", doc)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPopulationSchema_FileOnDisk(t *testing.T) {
	content := `{
		"generation": 0,
		"candidates": [
			{
				"id": "550e8400-e29b-41d4-a716-446655440000",
				"name": "sapp/sapp",
				"generation": 0,
				"major": [1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0],
				"minor": [1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
			}
		]
	}`
	path := filepath.Join(t.TempDir(), "population.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	assert.NoError(t, schemas.ValidateJSON("population.schema.json", path))
}
