package allowlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Open WebUI stores api_configs as an object keyed by decimal strings.
const objectDoc = `{
	"version": 3,
	"openai": {
		"enable": true,
		"api_configs": {
			"0": {"enable": true, "model_ids": ["old-model:free", "kept:free"]},
			"1": {"model_ids": []}
		}
	},
	"ui": {"theme": "dark"}
}`

func TestLocateObjectKeyedIndex(t *testing.T) {
	ids, err := Locate([]byte(objectDoc), ConnectionPath(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"old-model:free", "kept:free"}, ids)
}

func TestLocateArrayIndex(t *testing.T) {
	doc := `{"openai":{"api_configs":[{"model_ids":["a:free"]},{"model_ids":["b:free"]}]}}`

	ids, err := Locate([]byte(doc), ConnectionPath(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"b:free"}, ids)
}

func TestLocateAbsentLeafIsEmpty(t *testing.T) {
	doc := `{"openai":{"api_configs":{"0":{"enable":true}}}}`

	ids, err := Locate([]byte(doc), ConnectionPath(0))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLocateMissingMappingKeysActAsEmpty(t *testing.T) {
	// No "openai" at all: keys are creatable, but the connection index
	// then cannot exist, so the walk stops there.
	_, err := Locate([]byte(`{"ui":{}}`), ConnectionPath(0))
	require.Error(t, err)
	assert.True(t, IsIndexOutOfRange(err))
}

func TestLocateIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		idx  int
	}{
		{"array too short", `{"openai":{"api_configs":[{"model_ids":[]}]}}`, 3},
		{"object key missing", objectDoc, 7},
		{"negative index", `{"openai":{"api_configs":[{}]}}`, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate([]byte(tt.doc), ConnectionPath(tt.idx))
			require.Error(t, err)
			assert.True(t, IsIndexOutOfRange(err))

			var le *LocateError
			require.ErrorAs(t, err, &le)
			assert.NotEmpty(t, le.Segment)
		})
	}
}

func TestLocateShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"openai is a scalar", `{"openai":"yes"}`},
		{"api_configs is a scalar", `{"openai":{"api_configs":42}}`},
		{"model_ids is an object", `{"openai":{"api_configs":{"0":{"model_ids":{"a":1}}}}}`},
		{"model_ids holds non-strings", `{"openai":{"api_configs":{"0":{"model_ids":[1,2]}}}}`},
		{"document is not json", `{"openai":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate([]byte(tt.doc), ConnectionPath(0))
			require.Error(t, err)
			assert.True(t, IsShapeMismatch(err))
		})
	}
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "openai.api_configs[2].model_ids", ConnectionPath(2).String())
	assert.Equal(t, "openai.api_configs.2.model_ids", ConnectionPath(2).query())
}
