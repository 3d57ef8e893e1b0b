package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glotecht/glossary-api/internal/models"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want models.StringList
	}{
		{name: "bytes", src: []byte(`["a","b"]`), want: models.StringList{"a", "b"}},
		{name: "string", src: `["x"]`, want: models.StringList{"x"}},
		{name: "sql null keeps nil", src: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l models.StringList
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestStringListScanRejectsUnknownType(t *testing.T) {
	var l models.StringList
	assert.Error(t, l.Scan(42))
}

func TestStringListValue(t *testing.T) {
	var nilList models.StringList
	v, err := nilList.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = models.StringList{"a"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, string(v.([]byte)))
}

func TestRelationListRoundTrip(t *testing.T) {
	src := models.RelationList{
		{"hyperonym": {"repository", "store"}},
		{"meronym": {"zone"}},
	}

	raw, err := src.Value()
	require.NoError(t, err)

	var got models.RelationList
	require.NoError(t, got.Scan(raw))
	assert.Equal(t, src, got)
}

// Необязательные поля без значения сериализуются как null, списки nil — тоже:
// форма ответа совпадает с формой хранения.
func TestTermMarshalNullFields(t *testing.T) {
	raw, err := json.Marshal(&models.Term{ID: 7, EnglishTerm: "token", FrenchTerm: "jeton"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Equal(t, float64(7), m["tid"])
	assert.Nil(t, m["semantic_label_en"])
	assert.Nil(t, m["subdomains_en"])
	assert.Contains(t, m, "lexical_relations_fr")
}
