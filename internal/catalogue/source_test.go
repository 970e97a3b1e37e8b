package catalogue

import (
	"os"
	"path/filepath"
	"perfumefinder/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource_EmbeddedDataset(t *testing.T) {
	src := NewSource(&structures.Config{})

	items, err := src.GetAll()
	require.NoError(t, err)
	require.Len(t, items, 6)

	for _, p := range items {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Prices, p.ID)
	}

	p, err := src.GetByID("2")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Chanel", p.Brand)
	assert.Equal(t, "Chanel Bleu de Chanel", p.DisplayName())
}

func TestNewSource_EmbeddedHasOutOfStockPerfume(t *testing.T) {
	items, err := NewSource(&structures.Config{}).GetAll()
	require.NoError(t, err)

	p := FindByID(items, "4")
	require.NotNil(t, p)
	assert.Nil(t, Cheapest(p.Prices))
	assert.Equal(t, 0.0, Savings(p.Prices))
}

func TestJSONSource_UnknownID(t *testing.T) {
	p, err := NewJSONSource([]byte(`[{"id":"a","name":"A"}]`)).GetByID("b")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestJSONSource_EmptyArrayIsNotAnError(t *testing.T) {
	items, err := NewJSONSource([]byte(`[]`)).GetAll()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestJSONSource_DecodeError(t *testing.T) {
	_, err := NewJSONSource([]byte(`{broken`)).GetAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalogue")
}

func TestNewSource_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfumes.json")
	body := `[{"id":"x","name":"Test","brand":"Brand","prices":[{"shop":"notino","price":12.5,"currency":"EUR","url":"https://notino.de/x","inStock":true,"lastUpdated":"2026-10-01T00:00:00Z"}]}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	items, err := NewSource(&structures.Config{Catalogue: structures.CatalogueConfig{Path: path}}).GetAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Prices, 1)
	assert.True(t, items[0].Prices[0].InStock)
	assert.Equal(t, 2026, items[0].Prices[0].LastUpdated.Year())
}

func TestNewSource_MissingFile(t *testing.T) {
	src := NewSource(&structures.Config{Catalogue: structures.CatalogueConfig{Path: filepath.Join(t.TempDir(), "nope.json")}})
	_, err := src.GetAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalogue")
}
