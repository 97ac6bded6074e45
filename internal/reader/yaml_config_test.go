package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMappingYAML = `
kind: DataMapper
version: v1
metadata:
  name: "Dove towers"
dataset: dove-towers
encoding: windows-1252
strict: true
fieldMappings:
  - source: "TowerID"
    sourceType: "int"
    target: "ID"
    required: true
    unique: true
  - source: "Semitones"
    sourceType: "list"
    separator: "+"
    target: "Semitones"
`

func TestYAMLConfigLoader_String_Load(t *testing.T) {
	loader := NewYAMLConfigLoader(strings.NewReader(validMappingYAML))

	cfg, err := loader.Load(true)

	require.NoError(t, err)
	assert.Equal(t, datamapping.VersionV1, cfg.Version)
	assert.Equal(t, datamapping.KindDataMapper, cfg.Kind)
	assert.Equal(t, "Dove towers", cfg.Metadata.Name)
	assert.Equal(t, "dove-towers", cfg.Dataset)
	assert.Equal(t, datamapping.EncodingWindows1252, cfg.NormalizedEncoding())
	assert.True(t, cfg.Strict)
	require.Len(t, cfg.FieldMappings, 2)
	assert.Equal(t, datamapping.FieldMapping{
		Source: "TowerID", SourceType: "int", Target: "ID", Required: true, Unique: true,
	}, cfg.FieldMappings[0])
	assert.Equal(t, "+", cfg.FieldMappings[1].ListSeparator())
}

func TestYAMLConfigLoader_File_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "towers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validMappingYAML), 0o644))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	cfg, err := NewYAMLConfigLoader(file).Load(true)
	require.NoError(t, err)
	assert.Equal(t, "TowerID", cfg.FieldMappings[0].Source)
}

func TestYAMLConfigLoader_UnknownKey(t *testing.T) {
	invalid := `
kind: DataMapper
version: v1
metadata:
  name: "Invalid Mapping"
dataset: dove
field_mappings:
 - source: "Place"
   target: "Place"
`
	_, err := NewYAMLConfigLoader(strings.NewReader(invalid)).Load(false)

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, err.Error(), "field_mappings")
}

func TestYAMLConfigLoader_ValidationFailure(t *testing.T) {
	doc := `
kind: DataMapper
version: v1
metadata:
  name: "No mappings"
dataset: dove
`
	cfg, err := NewYAMLConfigLoader(strings.NewReader(doc)).Load(false)
	require.NoError(t, err)
	assert.Empty(t, cfg.FieldMappings)

	_, err = NewYAMLConfigLoader(strings.NewReader(doc)).Load(true)
	var me *datamapping.MappingError
	assert.ErrorAs(t, err, &me)
}

func TestYAMLConfigLoader_Empty(t *testing.T) {
	_, err := NewYAMLConfigLoader(strings.NewReader("")).Load(true)

	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}
