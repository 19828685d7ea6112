package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/rezeptblog/backend/internal/types"
)

const lasagneJSON = `{
  "uuid": "0b5f7a52-4a8e-4b52-8a4e-8f3f7d1d2c11",
  "metadata": {"title": "Lasagne", "description": "Klassisch", "slug": "lasagne", "pubDate": "2024-03-01"},
  "taxonomy": {"categories": ["Hauptgericht", "Italienisch"], "cuisine": "Italienisch", "difficulty": "mittel"},
  "ingredients": [
    {"name": "Hackfleisch", "amount": 500, "unit": "g"},
    {"name": "Lasagneplatten", "amount": "1 Packung", "unit": null, "note": null}
  ],
  "nutrition": {"servings": 4, "calories": "650 kcal", "protein": "35 g", "carbohydrates": "45 g", "fat": "30 g"}
}`

const kuchenYAML = `uuid: 7c3a5a1e-2b9e-4c0e-9d55-5b1a8e9f4a22
metadata:
  title: Apfelkuchen
  description: Saftig
  slug: apfelkuchen
  pubDate: 2024-05-10
taxonomy:
  categories: ["Kaffee & Kuchen", Backen]
ingredients:
  - name: Äpfel
    amount: 3
  - name: Weizenmehl
    amount: 250
    unit: g
`

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lasagne.json", lasagneJSON)
	writeFile(t, dir, "apfelkuchen.yaml", kuchenYAML)
	writeFile(t, dir, "README.md", "# ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "images"), 0755))

	c, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	all := c.All()
	assert.Equal(t, "apfelkuchen", all[0].Slug(), "newest recipe first")
	assert.Equal(t, "lasagne", all[1].Slug())

	lasagne, err := c.BySlug("lasagne")
	require.NoError(t, err)
	assert.Equal(t, "Italienisch", types.StringValue(lasagne.Taxonomy.Cuisine))
	assert.Equal(t, types.FlexString("500"), lasagne.Ingredients[0].Amount)
	assert.Equal(t, types.FlexString("1 Packung"), lasagne.Ingredients[1].Amount)
	assert.Nil(t, lasagne.Ingredients[1].Unit)
	assert.Equal(t, "35 g", types.StringValue(lasagne.Nutrition.Protein))

	kuchen, err := c.BySlug("apfelkuchen")
	require.NoError(t, err)
	assert.Equal(t, types.FlexString("250"), kuchen.Ingredients[1].Amount)
	assert.Equal(t, 2024, kuchen.Metadata.PubDate.Year())
	assert.Nil(t, kuchen.Nutrition)
}

func TestLoadDirRejectsDuplicateSlugs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", lasagneJSON)
	writeFile(t, dir, "b.json", lasagneJSON)

	_, err := LoadDir(dir)
	assert.ErrorContains(t, err, "duplicate recipe slug")
}

func TestLoadDirRejectsMissingSlug(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"metadata": {"title": "Ohne Slug"}, "ingredients": []}`)

	_, err := LoadDir(dir)
	assert.ErrorContains(t, err, "broken.json")
}

func TestLoadDirRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"metadata": `)

	_, err := LoadDir(dir)
	assert.Error(t, err)
}

func TestBySlugNotFound(t *testing.T) {
	c, err := NewCatalog(nil)
	require.NoError(t, err)

	_, err = c.BySlug("missing")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.False(t, c.Has("missing"))
}

func TestByCategory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lasagne.json", lasagneJSON)
	writeFile(t, dir, "apfelkuchen.yml", kuchenYAML)

	c, err := LoadDir(dir)
	require.NoError(t, err)

	got := c.ByCategory("kaffee-kuchen")
	require.Len(t, got, 1)
	assert.Equal(t, "apfelkuchen", got[0].Slug())
	assert.Empty(t, c.ByCategory("suppe"))
}
