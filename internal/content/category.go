package content

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	umlauts     = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")
	nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

// categoryNames maps archive slugs back to the display names used in the content files.
var categoryNames = map[string]string{
	"abendessen":       "Abendessen",
	"advent":           "Advent",
	"backen":           "Backen",
	"dessert":          "Dessert",
	"fisch":            "Fisch",
	"fleisch":          "Fleisch",
	"fruehstueck":      "Frühstück",
	"hauptgericht":     "Hauptgericht",
	"italienisch":      "Italienisch",
	"kaffee-kuchen":    "Kaffee & Kuchen",
	"meeresfruechte":   "Meeresfrüchte",
	"mittagessen":      "Mittagessen",
	"plaetzchen-kekse": "Plätzchen/Kekse",
	"reis":             "Reis",
	"suppe":            "Suppe",
	"suessspeise":      "Süßspeise",
	"tuerkisch":        "Türkisch",
	"vegetarisch":      "Vegetarisch",
	"vorspeise":        "Vorspeise",
	"weihnachten":      "Weihnachten",
}

// CategorySlug converts a category name to its URL form, e.g. "Kaffee & Kuchen" -> "kaffee-kuchen".
func CategorySlug(category string) string {
	s := umlauts.Replace(cases.Lower(language.German).String(category))
	s = nonSlugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CategoryURL returns the archive path of a category.
func CategoryURL(category string) string {
	return "/kategorien/" + CategorySlug(category)
}

// CategoryName returns the display name for a category slug. Unknown slugs are returned as is.
func CategoryName(slug string) string {
	if name, ok := categoryNames[slug]; ok {
		return name
	}
	return slug
}
