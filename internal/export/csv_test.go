package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glotecht/glossary-api/internal/export"
	"github.com/glotecht/glossary-api/internal/models"
)

func TestCSV(t *testing.T) {
	body, err := export.CSV([]*models.Term{sampleTerm()})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header, row := records[0], records[1]
	assert.Equal(t, export.FieldNames(), header)
	assert.Len(t, row, len(header))

	byName := make(map[string]string, len(header))
	for i, name := range header {
		byName[name] = row[i]
	}
	assert.Equal(t, "1", byName["tid"])
	assert.Equal(t, "data lake", byName["english_term"])
	assert.Equal(t, "Noun [nom]", byName["semantic_label_en"])
	assert.Equal(t, `["storage","analytics"]`, byName["subdomains_en"])
	// Отсутствующие значения выводятся пустой ячейкой
	assert.Equal(t, "", byName["variant_en"])
	assert.Equal(t, "", byName["subdomains_fr"])
}

func TestCSVEscapesSeparators(t *testing.T) {
	term := sampleTerm()
	term.NoteEN = strPtr("contains, a comma and \"quotes\"")

	body, err := export.CSV([]*models.Term{term})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	idx := -1
	for i, name := range records[0] {
		if name == "note_en" {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)
	assert.Equal(t, "contains, a comma and \"quotes\"", records[1][idx])
}

func TestCSVEmptyCatalogHeaderOnly(t *testing.T) {
	body, err := export.CSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, export.FieldNames(), records[0])
}
