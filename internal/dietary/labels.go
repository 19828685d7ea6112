package dietary

import "github.com/pageza/rezeptblog/backend/internal/types"

// Label keys as used by templates and filters.
const (
	KeyVegan           = "vegan"
	KeyVegetarian      = "vegetarian"
	KeyLactoVegetarian = "lactoVegetarian"
	KeyOvoVegetarian   = "ovoVegetarian"
	KeyPescatarian     = "pescatarian"
	KeyKeto            = "keto"
	KeyPaleo           = "paleo"
	KeyHighProtein     = "highProtein"
	KeyHighCarb        = "highCarb"
	KeyGlutenFree      = "glutenFree"
	KeyDairyFree       = "dairyFree"
	KeyLowCarb         = "lowCarb"
)

// Display is the badge shown for a label.
type Display struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var displays = map[string]Display{
	KeyVegan:           {Label: "Vegan", Color: "green"},
	KeyVegetarian:      {Label: "Vegetarisch", Color: "green"},
	KeyLactoVegetarian: {Label: "Lacto-Vegetarisch", Color: "green"},
	KeyOvoVegetarian:   {Label: "Ovo-Vegetarisch", Color: "green"},
	KeyPescatarian:     {Label: "Pescatarisch", Color: "blue"},
	KeyKeto:            {Label: "Keto", Color: "purple"},
	KeyPaleo:           {Label: "Paleo", Color: "orange"},
	KeyHighProtein:     {Label: "High Protein", Color: "red"},
	KeyHighCarb:        {Label: "High Carb", Color: "yellow"},
	KeyGlutenFree:      {Label: "Glutenfrei", Color: "teal"},
	KeyDairyFree:       {Label: "Laktosefrei", Color: "blue"},
	KeyLowCarb:         {Label: "Low Carb", Color: "purple"},
}

// DisplayFor returns the badge for a label key.
func DisplayFor(key string) (Display, bool) {
	d, ok := displays[key]
	return d, ok
}

type flag struct {
	key string
	get func(types.DietaryLabels) bool
}

// flags lists the diet labels in display order.
var flags = []flag{
	{KeyVegan, func(l types.DietaryLabels) bool { return l.Vegan }},
	{KeyVegetarian, func(l types.DietaryLabels) bool { return l.Vegetarian }},
	{KeyLactoVegetarian, func(l types.DietaryLabels) bool { return l.LactoVegetarian }},
	{KeyOvoVegetarian, func(l types.DietaryLabels) bool { return l.OvoVegetarian }},
	{KeyPescatarian, func(l types.DietaryLabels) bool { return l.Pescatarian }},
	{KeyKeto, func(l types.DietaryLabels) bool { return l.Keto }},
	{KeyPaleo, func(l types.DietaryLabels) bool { return l.Paleo }},
	{KeyHighProtein, func(l types.DietaryLabels) bool { return l.HighProtein }},
	{KeyHighCarb, func(l types.DietaryLabels) bool { return l.HighCarb }},
	{KeyGlutenFree, func(l types.DietaryLabels) bool { return l.GlutenFree }},
	{KeyDairyFree, func(l types.DietaryLabels) bool { return l.DairyFree }},
	{KeyLowCarb, func(l types.DietaryLabels) bool { return l.LowCarb }},
}

// ActiveLabels returns the keys of all set diet labels. The detection markers are not labels.
func ActiveLabels(l *types.DietaryLabels) []string {
	if l == nil {
		return []string{}
	}
	active := []string{}
	for _, f := range flags {
		if f.get(*l) {
			active = append(active, f.key)
		}
	}
	return active
}

// SchemaOrgDiets maps labels to schema.org suitableForDiet values.
func SchemaOrgDiets(l types.DietaryLabels) []string {
	diets := []string{}
	if l.Vegan {
		diets = append(diets, "https://schema.org/VeganDiet")
	}
	if l.Vegetarian {
		diets = append(diets, "https://schema.org/VegetarianDiet")
	}
	if l.GlutenFree {
		diets = append(diets, "https://schema.org/GlutenFreeDiet")
	}
	if l.Keto {
		diets = append(diets, "https://schema.org/KetogenicDiet")
	}
	if l.LowCarb {
		diets = append(diets, "https://schema.org/LowCalorieDiet")
	}
	// schema.org has no dairy-free diet; DiabeticDiet is the closest published value.
	if l.DairyFree {
		diets = append(diets, "https://schema.org/DiabeticDiet")
	}
	return diets
}
