package dietary

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/pageza/rezeptblog/backend/internal/types"
)

var (
	meatTerms = []string{
		"fleisch", "rindfleisch", "schweinefleisch", "hähnchen", "huhn", "geflügel",
		"lamm", "kalb", "ente", "gans", "wild", "wurst", "speck", "schinken",
		"knochenbrühe", "fleischbrühe", "hühnerbrühe",
	}

	fishTerms = []string{
		"fisch", "lachs", "thunfisch", "forelle", "kabeljau", "garnelen", "shrimps",
		"muscheln", "tintenfisch", "meeresfrüchte", "austern", "hummer", "krabben",
	}

	dairyTerms = []string{
		"milch", "sahne", "butter", "käse", "quark", "joghurt", "schmand",
		"crème fraîche", "mascarpone", "ricotta", "mozzarella", "parmesan",
		"butterschmalz", "ghee", "molke", "frischkäse", "schafskäse",
	}

	eggTerms = []string{"ei", "eier", "eigelb", "eiweiß", "eischnee"}

	animalProductTerms = []string{
		"fleisch", "rindfleisch", "schweinefleisch", "hähnchen", "huhn", "geflügel",
		"lamm", "kalb", "ente", "gans", "wild", "wurst", "speck", "schinken",
		"fisch", "lachs", "thunfisch", "forelle", "kabeljau", "garnelen", "shrimps",
		"muscheln", "tintenfisch", "meeresfrüchte", "austern", "hummer",
		"ei", "eier", "eigelb", "eiweiß", "eischnee",
		"milch", "sahne", "butter", "käse", "quark", "joghurt", "schmand",
		"crème fraîche", "mascarpone", "ricotta", "mozzarella", "parmesan",
		"honig", "gelatine", "schmalz", "ghee", "butterschmalz",
		"knochenbrühe", "fleischbrühe", "hühnerbrühe",
	}

	grainTerms = []string{
		"mehl", "weizenmehl", "dinkelmehl", "roggenmehl", "brot", "brötchen",
		"pasta", "nudeln", "spaghetti", "penne", "reis", "vollkornreis",
		"gerste", "hafer", "haferflocken", "quinoa", "couscous", "bulgur",
		"weizen", "dinkel", "roggen", "mais", "polenta",
	}

	glutenGrainTerms = []string{
		"mehl", "weizenmehl", "dinkelmehl", "roggenmehl", "weizen", "dinkel",
		"roggen", "gerste", "hafer", "haferflocken", "brot", "brötchen",
		"pasta", "nudeln", "spaghetti", "penne", "couscous", "bulgur", "seitan",
	}

	legumeTerms = []string{
		"bohnen", "linsen", "kichererbsen", "erbsen", "sojabohnen", "tofu",
		"tempeh", "edamame", "erdnüsse", "erdnussbutter",
	}

	starchyVegetableTerms = []string{
		"kartoffel", "kartoffeln", "süßkartoffel", "süßkartoffeln",
		"kürbis", "hokkaido", "butternut",
	}

	sweetenerTerms = []string{"zucker", "honig", "ahornsirup", "agavendicksaft", "sirup"}

	addedSugarTerms = []string{"zucker", "rohrzucker", "kristallzucker"}

	proteinFoodTerms = []string{
		"tofu", "tempeh", "seitan", "linsen", "kichererbsen", "bohnen",
		"quark", "hüttenkäse", "cottage cheese", "griechischer joghurt",
		"proteinpulver", "eier",
	}
)

// table is a compiled keyword list. A text belongs to the table when it contains any keyword.
type table struct {
	matcher *ahocorasick.Matcher
}

func newTable(lists ...[]string) table {
	var terms []string
	for _, l := range lists {
		terms = append(terms, l...)
	}
	return table{matcher: ahocorasick.NewStringMatcher(terms)}
}

// matches reports whether the ingredient's name or note contains any keyword, ignoring case.
func (t table) matches(ing types.Ingredient) bool {
	if t.matcher.Contains([]byte(strings.ToLower(ing.Name))) {
		return true
	}
	note := strings.ToLower(types.StringValue(ing.Note))
	return note != "" && t.matcher.Contains([]byte(note))
}

// any reports whether at least one ingredient matches the table.
func (t table) any(ingredients []types.Ingredient) bool {
	for _, ing := range ingredients {
		if t.matches(ing) {
			return true
		}
	}
	return false
}

var (
	meat             = newTable(meatTerms)
	fish             = newTable(fishTerms)
	dairy            = newTable(dairyTerms)
	eggs             = newTable(eggTerms)
	animalProducts   = newTable(animalProductTerms)
	grains           = newTable(grainTerms)
	glutenGrains     = newTable(glutenGrainTerms)
	legumes          = newTable(legumeTerms)
	highCarbFoods    = newTable(grainTerms, legumeTerms, starchyVegetableTerms, sweetenerTerms)
	highProteinFoods = newTable(meatTerms, fishTerms, proteinFoodTerms)
	addedSugar       = newTable(addedSugarTerms)
)
