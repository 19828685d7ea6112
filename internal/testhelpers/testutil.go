package testhelpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/rezeptblog/backend/internal/content"
	"github.com/pageza/rezeptblog/backend/internal/types"
)

// Request describes an HTTP request made against a test router.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// PerformRequest serves req on router and returns the recorded response
func PerformRequest(router http.Handler, req Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var httpReq *http.Request

	if req.Body != nil {
		jsonBody, err := json.Marshal(req.Body)
		if err != nil {
			panic(err)
		}
		httpReq = httptest.NewRequest(req.Method, req.Path, bytes.NewBuffer(jsonBody))
		httpReq.Header.Set("Content-Type", "application/json")
	} else {
		httpReq = httptest.NewRequest(req.Method, req.Path, nil)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	router.ServeHTTP(w, httpReq)
	return w
}

// DecodeJSON unmarshals a recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// NewTestRouter returns a bare gin engine in test mode.
func NewTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// RecipeOption customizes a recipe built by NewRecipe.
type RecipeOption func(*types.Recipe)

// NewRecipe builds a recipe fixture.
func NewRecipe(slug, title string, opts ...RecipeOption) types.Recipe {
	r := types.Recipe{
		UUID: uuid.NewSHA1(uuid.NameSpaceURL, []byte(slug)),
		Metadata: types.Metadata{
			Title:   title,
			Slug:    slug,
			PubDate: types.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		Ingredients: []types.Ingredient{},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithCategories sets the taxonomy categories.
func WithCategories(categories ...string) RecipeOption {
	return func(r *types.Recipe) {
		if r.Taxonomy == nil {
			r.Taxonomy = &types.Taxonomy{}
		}
		r.Taxonomy.Categories = categories
	}
}

// WithCuisine sets the taxonomy cuisine.
func WithCuisine(cuisine string) RecipeOption {
	return func(r *types.Recipe) {
		if r.Taxonomy == nil {
			r.Taxonomy = &types.Taxonomy{}
		}
		r.Taxonomy.Cuisine = &cuisine
	}
}

// WithIngredients appends ingredients by name.
func WithIngredients(names ...string) RecipeOption {
	return func(r *types.Recipe) {
		for _, n := range names {
			r.Ingredients = append(r.Ingredients, types.Ingredient{Name: n})
		}
	}
}

// WithPubDate sets the publication date.
func WithPubDate(year int, month time.Month, day int) RecipeOption {
	return func(r *types.Recipe) {
		r.Metadata.PubDate = types.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
	}
}

// NewCatalog indexes recipes, failing the test on error.
func NewCatalog(t *testing.T, recipes ...types.Recipe) *content.Catalog {
	t.Helper()
	c, err := content.NewCatalog(recipes)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

// SampleCatalog returns a small catalog with related Italian dishes and one dessert.
func SampleCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	return NewCatalog(t,
		NewRecipe("lasagne", "Klassische Lasagne",
			WithCategories("Hauptgericht", "Italienisch"),
			WithCuisine("Italienisch"),
			WithIngredients("Hackfleisch", "Tomaten", "Parmesan"),
			WithPubDate(2024, 3, 1)),
		NewRecipe("spaghetti-bolognese", "Spaghetti Bolognese",
			WithCategories("Hauptgericht", "Italienisch"),
			WithCuisine("Italienisch"),
			WithIngredients("Spaghetti", "Hackfleisch", "Tomaten"),
			WithPubDate(2024, 2, 1)),
		NewRecipe("gemuese-lasagne", "Gemüse Lasagne",
			WithCategories("Hauptgericht", "Vegetarisch"),
			WithIngredients("Zucchini", "Tomaten", "Parmesan"),
			WithPubDate(2024, 1, 15)),
		NewRecipe("apfelkuchen", "Apfelkuchen",
			WithCategories("Kaffee & Kuchen", "Backen"),
			WithIngredients("Äpfel", "Weizenmehl", "Zucker", "Butter", "Eier"),
			WithPubDate(2024, 5, 10)),
	)
}
