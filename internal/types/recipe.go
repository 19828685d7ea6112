package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Recipe is a single recipe entry of the content collection.
type Recipe struct {
	UUID        uuid.UUID      `json:"uuid" yaml:"uuid"`
	Metadata    Metadata       `json:"metadata" yaml:"metadata"`
	Taxonomy    *Taxonomy      `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
	Ingredients []Ingredient   `json:"ingredients" yaml:"ingredients"`
	Nutrition   *Nutrition     `json:"nutrition,omitempty" yaml:"nutrition,omitempty"`
	Dietary     *DietaryLabels `json:"dietary,omitempty" yaml:"dietary,omitempty"`
}

// Slug returns the recipe's stable identifier.
func (r *Recipe) Slug() string {
	return r.Metadata.Slug
}

// Title returns the recipe's display title.
func (r *Recipe) Title() string {
	return r.Metadata.Title
}

// Categories returns the taxonomy categories, or nil when no taxonomy is set.
func (r *Recipe) Categories() []string {
	if r.Taxonomy == nil {
		return nil
	}
	return r.Taxonomy.Categories
}

// Metadata holds the descriptive fields of a recipe.
type Metadata struct {
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	Slug         string `json:"slug" yaml:"slug"`
	PubDate      Date   `json:"pubDate" yaml:"pubDate"`
	ModifiedDate *Date  `json:"modifiedDate,omitempty" yaml:"modifiedDate,omitempty"`
	Author       string `json:"author,omitempty" yaml:"author,omitempty"`
	Language     string `json:"language,omitempty" yaml:"language,omitempty"`
}

// Taxonomy is the structured classification of a recipe.
type Taxonomy struct {
	Categories []string `json:"categories" yaml:"categories"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Cuisine    *string  `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Difficulty *string  `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	MealType   *string  `json:"mealType,omitempty" yaml:"mealType,omitempty"`
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name   string     `json:"name" yaml:"name"`
	Amount FlexString `json:"amount,omitempty" yaml:"amount,omitempty"`
	Unit   *string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	Note   *string    `json:"note,omitempty" yaml:"note,omitempty"`
	Group  *string    `json:"group,omitempty" yaml:"group,omitempty"`
}

// Nutrition facts per serving. Values are numeric strings that may carry a unit ("12 g").
type Nutrition struct {
	Servings      FlexString `json:"servings,omitempty" yaml:"servings,omitempty"`
	ServingSize   *string    `json:"servingSize,omitempty" yaml:"servingSize,omitempty"`
	Calories      *string    `json:"calories,omitempty" yaml:"calories,omitempty"`
	Carbohydrates *string    `json:"carbohydrates,omitempty" yaml:"carbohydrates,omitempty"`
	Protein       *string    `json:"protein,omitempty" yaml:"protein,omitempty"`
	Fat           *string    `json:"fat,omitempty" yaml:"fat,omitempty"`
	Fiber         *string    `json:"fiber,omitempty" yaml:"fiber,omitempty"`
	Sugar         *string    `json:"sugar,omitempty" yaml:"sugar,omitempty"`
	Sodium        *string    `json:"sodium,omitempty" yaml:"sodium,omitempty"`
}

// DietaryLabels is the set of diet flags shown as badges on a recipe.
type DietaryLabels struct {
	Vegan            bool `json:"vegan" yaml:"vegan"`
	Vegetarian       bool `json:"vegetarian" yaml:"vegetarian"`
	LactoVegetarian  bool `json:"lactoVegetarian" yaml:"lactoVegetarian"`
	OvoVegetarian    bool `json:"ovoVegetarian" yaml:"ovoVegetarian"`
	Pescatarian      bool `json:"pescatarian" yaml:"pescatarian"`
	Keto             bool `json:"keto" yaml:"keto"`
	Paleo            bool `json:"paleo" yaml:"paleo"`
	HighProtein      bool `json:"highProtein" yaml:"highProtein"`
	HighCarb         bool `json:"highCarb" yaml:"highCarb"`
	GlutenFree       bool `json:"glutenFree" yaml:"glutenFree"`
	DairyFree        bool `json:"dairyFree" yaml:"dairyFree"`
	LowCarb          bool `json:"lowCarb" yaml:"lowCarb"`
	AutoDetected     bool `json:"autoDetected" yaml:"autoDetected"`
	ManuallyVerified bool `json:"manuallyVerified" yaml:"manuallyVerified"`
}

// StringValue dereferences an optional string, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FlexString holds a value that content files encode either as a JSON number or a string.
type FlexString string

// UnmarshalJSON accepts a string, a number or null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*f = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	default:
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("invalid number-or-string value %s", raw)
		}
		*f = FlexString(raw)
	}
	return nil
}

// MarshalJSON writes numeric values as JSON numbers and everything else as strings.
func (f FlexString) MarshalJSON() ([]byte, error) {
	if f == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(string(f), 64); err == nil {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

// Date is a publication date that accepts both RFC 3339 timestamps and plain dates.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// UnmarshalJSON parses a date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.parse(s)
}

// MarshalJSON writes the date as RFC 3339.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}

// UnmarshalYAML parses a date scalar.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	return d.parse(value.Value)
}
