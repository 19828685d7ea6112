package dietary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/rezeptblog/backend/internal/types"
)

func str(s string) *string { return &s }

func ingredients(names ...string) []types.Ingredient {
	list := make([]types.Ingredient, 0, len(names))
	for _, n := range names {
		list = append(list, types.Ingredient{Name: n})
	}
	return list
}

func nutrition(protein, carbs, fat string) *types.Nutrition {
	return &types.Nutrition{Protein: str(protein), Carbohydrates: str(carbs), Fat: str(fat)}
}

func TestClassifyEmptyIngredients(t *testing.T) {
	got := Classify(nil, nil)

	assert.Equal(t, types.DietaryLabels{
		Vegan:            true,
		Vegetarian:       true,
		LactoVegetarian:  false,
		OvoVegetarian:    false,
		Pescatarian:      false,
		Keto:             false,
		Paleo:            true,
		HighProtein:      false,
		HighCarb:         false,
		GlutenFree:       true,
		DairyFree:        true,
		LowCarb:          true,
		AutoDetected:     true,
		ManuallyVerified: false,
	}, got)
}

func TestClassifyChickenBreast(t *testing.T) {
	n := &types.Nutrition{
		Protein:       str("40"),
		Carbohydrates: str("0"),
		Fat:           str("5"),
		Calories:      str("200"),
	}
	got := Classify(ingredients("Hähnchenbrust"), n)

	assert.False(t, got.Vegan)
	assert.False(t, got.Vegetarian)
	assert.False(t, got.Pescatarian)
	assert.True(t, got.HighProtein)
	assert.False(t, got.Keto)
	assert.True(t, got.LowCarb)
	assert.True(t, got.Paleo)
}

func TestClassifyVegetarianVariants(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []types.Ingredient
		lacto       bool
		ovo         bool
		vegan       bool
	}{
		{"dairy only", ingredients("Vollmilch", "Äpfel"), true, false, false},
		{"eggs only", ingredients("Eier", "Spinat"), false, true, false},
		{"dairy and eggs", ingredients("Eier", "Sahne"), false, false, false},
		{"plant based", ingredients("Spinat", "Olivenöl"), false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.ingredients, nil)
			assert.True(t, got.Vegetarian)
			assert.Equal(t, tt.lacto, got.LactoVegetarian)
			assert.Equal(t, tt.ovo, got.OvoVegetarian)
			assert.Equal(t, tt.vegan, got.Vegan)
		})
	}
}

func TestClassifyPescatarian(t *testing.T) {
	got := Classify(ingredients("Lachsfilet", "Zitrone"), nil)

	assert.True(t, got.Pescatarian)
	assert.False(t, got.Vegetarian)
	assert.True(t, got.HighProtein)
}

func TestClassifyMatchesNote(t *testing.T) {
	list := []types.Ingredient{{Name: "Brühe", Note: str("z.B. Hühnerbrühe")}}
	got := Classify(list, nil)

	assert.False(t, got.Vegetarian)
	assert.False(t, got.Vegan)
}

func TestClassifyKeto(t *testing.T) {
	got := Classify(ingredients("Avocado", "Olivenöl"), nutrition("10", "5", "50"))

	assert.True(t, got.Keto)
	assert.True(t, got.LowCarb)
	assert.False(t, got.HighCarb)
}

func TestClassifyHighCarbFoodsBlockKeto(t *testing.T) {
	got := Classify(ingredients("Kartoffeln", "Olivenöl"), nutrition("1", "1", "50"))

	assert.False(t, got.Keto)
	assert.False(t, got.LowCarb)
	assert.True(t, got.HighCarb)
}

func TestClassifyHighCarbByRatio(t *testing.T) {
	got := Classify(ingredients("Äpfel"), nutrition("1", "80", "1"))

	assert.True(t, got.HighCarb)
	assert.False(t, got.LowCarb)
}

func TestClassifyGlutenAndPaleo(t *testing.T) {
	got := Classify(ingredients("Weizenmehl", "Rohrzucker"), nil)

	assert.False(t, got.GlutenFree)
	assert.False(t, got.Paleo)
	assert.True(t, got.HighCarb)

	rice := Classify(ingredients("Basmati Reis"), nil)
	assert.True(t, rice.GlutenFree)
	assert.False(t, rice.Paleo)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	got := Classify(ingredients("PARMESAN"), nil)

	assert.False(t, got.DairyFree)
	assert.True(t, got.LactoVegetarian)
}

func TestClassifyIsIdempotent(t *testing.T) {
	list := ingredients("Linsen", "Karotten", "Butter")
	n := nutrition("20", "50", "10")

	assert.Equal(t, Classify(list, n), Classify(list, n))
}

func TestResolvePrefersVerifiedLabels(t *testing.T) {
	curated := &types.DietaryLabels{Vegan: false, Keto: true, ManuallyVerified: true}
	r := types.Recipe{Ingredients: ingredients("Spinat"), Dietary: curated}
	assert.Equal(t, *curated, Resolve(r))

	r.Dietary = &types.DietaryLabels{Keto: true}
	got := Resolve(r)
	assert.True(t, got.AutoDetected)
	assert.True(t, got.Vegan)
	assert.False(t, got.Keto)
}

func TestRatios(t *testing.T) {
	assert.Equal(t, MacroRatios{}, Ratios(nil))
	assert.Equal(t, MacroRatios{}, Ratios(&types.Nutrition{}))
	assert.Equal(t, MacroRatios{}, Ratios(nutrition("abc", "", "-")))

	r := Ratios(nutrition("40", "0", "5"))
	assert.InDelta(t, 160.0/205.0*100, r.Protein, 1e-9)
	assert.InDelta(t, 0, r.Carbs, 1e-9)
	assert.InDelta(t, 45.0/205.0*100, r.Fat, 1e-9)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"40", 40},
		{"40g", 40},
		{"12,5 g", 12},
		{"12.5 g", 12.5},
		{"1e2", 100},
		{"2.5E-1g", 0.25},
		{"3e", 3},
		{"-4", -4},
		{" 7 kcal", 7},
		{".5", 0.5},
		{"abc", 0},
		{"", 0},
		{"ca. 10 g", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAmount(tt.in), 1e-9)
		})
	}
}
