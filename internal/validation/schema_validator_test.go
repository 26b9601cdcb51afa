package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0},
		"status": {"type": "string", "enum": ["active", "inactive"]}
	},
	"required": ["name"]
}`

const listSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string"},
			"value": {"type": "number", "exclusiveMinimum": 0}
		},
		"required": ["id", "value"]
	}
}`

func testSchemas() fstest.MapFS {
	return fstest.MapFS{
		"schemas/person.schema.json": {Data: []byte(personSchema)},
		"schemas/list.schema.json":   {Data: []byte(listSchema)},
		"schemas/broken.schema.json": {Data: []byte(`{"type": `)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	tests := []struct {
		name     string
		schema   string
		data     string
		errorMsg string
	}{
		{name: "valid object", schema: "schemas/person.schema.json", data: `{"name": "John", "age": 30}`},
		{name: "valid without optional field", schema: "schemas/person.schema.json", data: `{"name": "Jane"}`},
		{name: "missing required field", schema: "schemas/person.schema.json", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type", schema: "schemas/person.schema.json", data: `{"name": "John", "age": "thirty"}`, errorMsg: "/age"},
		{name: "constraint violation", schema: "schemas/person.schema.json", data: `{"name": "John", "age": -5}`, errorMsg: "minimum"},
		{name: "invalid enum", schema: "schemas/person.schema.json", data: `{"name": "John", "status": "gone"}`, errorMsg: "enum"},
		{name: "invalid JSON", schema: "schemas/person.schema.json", data: `{"name": "John", "age": }`, errorMsg: "parse JSON"},
		{name: "valid array", schema: "schemas/list.schema.json", data: `[{"id": "a", "value": 1.5}]`},
		{name: "empty array", schema: "schemas/list.schema.json", data: `[]`},
		{name: "non-positive value", schema: "schemas/list.schema.json", data: `[{"id": "a", "value": 0}]`, errorMsg: "/0/value"},
		{name: "unknown schema", schema: "schemas/missing.schema.json", data: `{}`, errorMsg: "failed to load schema"},
		{name: "broken schema", schema: "schemas/broken.schema.json", data: `{}`, errorMsg: "failed to load schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), tt.schema)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator(testSchemas())
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name": "x"}`), 0600))
		assert.NoError(t, v.ValidateFile(path, "schemas/person.schema.json"))
	})

	t.Run("missing data file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(dir, "nope.json"), "schemas/person.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read data file")
	})
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator(testSchemas()).(*validator)
	data := []byte(`{"name": "value"}`)

	require.NoError(t, v.ValidateBytes(data, "schemas/person.schema.json"))
	assert.Len(t, v.schemas, 1)

	require.NoError(t, v.ValidateBytes(data, "schemas/person.schema.json"))
	assert.Len(t, v.schemas, 1, "second validation should reuse the compiled schema")
}
