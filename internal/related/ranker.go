// Package related ranks recipes by how closely they relate to a given recipe.
package related

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pageza/rezeptblog/backend/internal/types"
)

// DefaultLimit is the number of related recipes shown below a recipe.
const DefaultLimit = 12

const (
	categoryWeight   = 5
	cuisineWeight    = 10
	difficultyWeight = 3
	ingredientWeight = 2
	titleWordWeight  = 4

	mainIngredientCount = 10
	minKeywordLength    = 4
)

var stopwords = map[string]struct{}{
	"der": {}, "die": {}, "das": {}, "den": {}, "dem": {}, "des": {},
	"ein": {}, "eine": {}, "einer": {}, "einem": {}, "eines": {},
	"und": {}, "oder": {}, "mit": {}, "von": {}, "zu": {}, "im": {}, "in": {}, "aus": {},
	"für": {}, "auf": {}, "an": {}, "bei": {}, "nach": {}, "über": {},
}

// Matches breaks a score down into the signals that produced it.
type Matches struct {
	Categories  int  `json:"categories"`
	Cuisine     bool `json:"cuisine"`
	Difficulty  bool `json:"difficulty"`
	Ingredients int  `json:"ingredients"`
	TitleWords  int  `json:"titleWords"`
}

// Result is a scored candidate.
type Result struct {
	Post    types.Recipe `json:"post"`
	Score   int          `json:"score"`
	Matches Matches      `json:"matches"`
}

// Rank returns up to limit candidates related to current, most relevant first.
func Rank(current types.Recipe, candidates []types.Recipe, limit int) []types.Recipe {
	scored := RankWithScores(current, candidates, limit)
	posts := make([]types.Recipe, len(scored))
	for i, r := range scored {
		posts[i] = r.Post
	}
	return posts
}

// RankWithScores is Rank with the score and match breakdown of every result.
// Candidates sharing current's slug and candidates without any matching signal are dropped.
// Equal scores keep their candidate order.
func RankWithScores(current types.Recipe, candidates []types.Recipe, limit int) []Result {
	if limit <= 0 || len(candidates) == 0 {
		return []Result{}
	}

	features := extractFeatures(current)
	results := make([]Result, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Slug() == current.Slug() {
			continue
		}
		if r, ok := score(features, candidate); ok {
			results = append(results, r)
		}
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return b.Score - a.Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Score computes the relation score of candidate against current.
// The boolean is false when the candidate is current itself or nothing matches.
func Score(current, candidate types.Recipe) (Result, bool) {
	if candidate.Slug() == current.Slug() {
		return Result{}, false
	}
	return score(extractFeatures(current), candidate)
}

type features struct {
	categories  []string
	cuisine     string
	difficulty  string
	ingredients []string
	titleWords  []string
}

func extractFeatures(r types.Recipe) features {
	f := features{
		categories:  r.Categories(),
		ingredients: mainIngredients(r),
		titleWords:  titleKeywords(r.Title()),
	}
	if r.Taxonomy != nil {
		f.cuisine = types.StringValue(r.Taxonomy.Cuisine)
		f.difficulty = types.StringValue(r.Taxonomy.Difficulty)
	}
	return f
}

func score(current features, post types.Recipe) (Result, bool) {
	candidate := extractFeatures(post)
	var m Matches
	total := 0

	for _, cat := range current.categories {
		if slices.Contains(candidate.categories, cat) {
			m.Categories++
			total += categoryWeight
		}
	}

	if current.cuisine != "" && candidate.cuisine != "" && current.cuisine == candidate.cuisine {
		m.Cuisine = true
		total += cuisineWeight
	}

	if current.difficulty != "" && candidate.difficulty != "" && current.difficulty == candidate.difficulty {
		m.Difficulty = true
		total += difficultyWeight
	}

	for _, ing := range current.ingredients {
		if slices.ContainsFunc(candidate.ingredients, func(other string) bool {
			return ingredientsMatch(ing, other)
		}) {
			m.Ingredients++
			total += ingredientWeight
		}
	}

	for _, word := range current.titleWords {
		if slices.Contains(candidate.titleWords, word) {
			m.TitleWords++
			total += titleWordWeight
		}
	}

	if total == 0 {
		return Result{}, false
	}
	return Result{Post: post, Score: total, Matches: m}, true
}

// ingredientsMatch reports whether two normalized ingredient names are equal or one contains the other.
func ingredientsMatch(a, b string) bool {
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// mainIngredients returns the lowercased, trimmed names of the first ingredients, skipping blanks.
func mainIngredients(r types.Recipe) []string {
	list := r.Ingredients
	if len(list) > mainIngredientCount {
		list = list[:mainIngredientCount]
	}
	names := make([]string, 0, len(list))
	for _, ing := range list {
		name := strings.TrimSpace(strings.ToLower(ing.Name))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// titleKeywords splits a title on whitespace and hyphens and keeps words longer than
// three characters that are not stopwords.
func titleKeywords(title string) []string {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	keywords := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) < minKeywordLength {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}
