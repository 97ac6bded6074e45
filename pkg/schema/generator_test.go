package schema

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema_DataMapper(t *testing.T) {
	s, err := NewGenerator().GenerateSchema(reflect.TypeOf(datamapping.DataMapper{}))
	require.NoError(t, err)

	assert.Equal(t, schemaRef, s.Schema)
	assert.Equal(t, "DataMapper", s.Title)
	assert.Equal(t, "https://schemas.dove-guide.io/datamapper", s.ID)
	assert.ElementsMatch(t, []string{"kind", "version", "metadata", "dataset", "fieldMappings"}, s.Required)

	kind := s.Properties["kind"]
	require.NotNil(t, kind)
	assert.Equal(t, "string", kind.Type)
	assert.Equal(t, []any{"DataMapper"}, kind.Enum)

	assert.Equal(t, "boolean", s.Properties["strict"].Type)
	assert.Equal(t, false, s.Properties["strict"].Default)
	assert.Equal(t, []any{"utf-8", "windows-1252", "iso-8859-1"}, s.Properties["encoding"].Enum)
	assert.Equal(t, "^[a-z0-9-_]+$", s.Properties["dataset"].Pattern)

	mappings := s.Properties["fieldMappings"]
	assert.Equal(t, "array", mappings.Type)
	require.NotNil(t, mappings.MinItems)
	assert.Equal(t, 1, *mappings.MinItems)
	require.NotNil(t, mappings.Items)
	assert.ElementsMatch(t, []string{"source", "target"}, mappings.Items.Required)
	assert.Equal(t, ";", mappings.Items.Properties["separator"].Default)
	assert.Equal(t, "boolean", mappings.Items.Properties["unique"].Type)
}

func TestGenerateJSONSchema(t *testing.T) {
	out, err := NewGenerator().GenerateJSONSchema(datamapping.DataMapper{})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])
}

func TestGenerateSchema_Unsupported(t *testing.T) {
	_, err := NewGenerator().GenerateJSONSchema("not a struct")
	assert.Error(t, err)

	type withMap struct {
		Values map[string]string
	}
	_, err = NewGenerator().GenerateJSONSchema(withMap{})
	assert.Error(t, err)
}

func TestGetFieldName(t *testing.T) {
	type sample struct {
		Tagged  string `json:"tagged_name,omitempty"`
		Plain   string
		Skipped string `json:"-"`
	}
	s, err := NewGenerator().GenerateSchema(reflect.TypeOf(sample{}))
	require.NoError(t, err)

	assert.Contains(t, s.Properties, "tagged_name")
	assert.Contains(t, s.Properties, "plain")
	assert.NotContains(t, s.Properties, "Skipped")
	assert.Len(t, s.Properties, 2)
}
