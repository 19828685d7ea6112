package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/rezeptblog/backend/internal/mocks"
	"github.com/pageza/rezeptblog/backend/internal/models"
	"github.com/pageza/rezeptblog/backend/internal/service"
	"github.com/pageza/rezeptblog/backend/internal/testhelpers"
	"github.com/pageza/rezeptblog/backend/internal/types"
)

func setupAdminTestRouter() (*gin.Engine, *mocks.MockAdminService, *mocks.MockRatingService) {
	admin := new(mocks.MockAdminService)
	ratings := new(mocks.MockRatingService)
	admin.On("ValidateToken", "valid-token").Return(&types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
		Role:             "admin",
	}, nil)
	admin.On("ValidateToken", mock.Anything).Return(nil, service.ErrInvalidToken)

	router := testhelpers.NewTestRouter()
	NewAdminHandler(admin, ratings, nil).RegisterRoutes(router.Group("/api/v1"))
	return router, admin, ratings
}

func authorized(method, path string) testhelpers.Request {
	return testhelpers.Request{
		Method:  method,
		Path:    path,
		Headers: map[string]string{"Authorization": "Bearer valid-token"},
	}
}

func TestAdminLogin(t *testing.T) {
	router, admin, _ := setupAdminTestRouter()
	expires := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	admin.On("Login", "geheim").Return("signed-token", expires, nil)
	admin.On("Login", "falsch").Return("", time.Time{}, service.ErrInvalidCredentials)

	w := testhelpers.PerformRequest(router, testhelpers.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/admin/login",
		Body:   gin.H{"password": "geheim"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	testhelpers.DecodeJSON(t, w, &resp)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, expires.Unix(), resp.ExpiresAt)

	w = testhelpers.PerformRequest(router, testhelpers.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/admin/login",
		Body:   gin.H{"password": "falsch"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testhelpers.PerformRequest(router, testhelpers.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/admin/login",
		Body:   gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _, ratings := setupAdminTestRouter()

	w := testhelpers.PerformRequest(router, testhelpers.Request{Method: http.MethodGet, Path: "/api/v1/admin/ratings/lasagne"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testhelpers.PerformRequest(router, testhelpers.Request{
		Method:  http.MethodDelete,
		Path:    "/api/v1/admin/ratings/" + uuid.NewString(),
		Headers: map[string]string{"Authorization": "Bearer forged"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	ratings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAdminListRatings(t *testing.T) {
	router, _, ratings := setupAdminTestRouter()
	ratings.On("List", mock.Anything, "lasagne").Return([]models.Rating{
		{ID: uuid.New(), RecipeSlug: "lasagne", Value: 4},
	}, nil)
	ratings.On("Get", mock.Anything, "lasagne").Return(&service.Aggregate{
		AverageRating: 4,
		TotalRatings:  1,
		Ratings:       map[string]int{"1": 0, "2": 0, "3": 0, "4": 1, "5": 0},
	}, nil)

	w := testhelpers.PerformRequest(router, authorized(http.MethodGet, "/api/v1/admin/ratings/lasagne"))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ratings []models.Rating   `json:"ratings"`
		Summary service.Aggregate `json:"summary"`
	}
	testhelpers.DecodeJSON(t, w, &resp)
	assert.Len(t, resp.Ratings, 1)
	assert.Equal(t, 1, resp.Summary.TotalRatings)
	ratings.AssertExpectations(t)
}

func TestAdminDeleteRating(t *testing.T) {
	router, _, ratings := setupAdminTestRouter()
	existing, missing := uuid.New(), uuid.New()
	ratings.On("Delete", mock.Anything, existing).Return(nil)
	ratings.On("Delete", mock.Anything, missing).Return(service.ErrRatingNotFound)

	w := testhelpers.PerformRequest(router, authorized(http.MethodDelete, "/api/v1/admin/ratings/"+existing.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	w = testhelpers.PerformRequest(router, authorized(http.MethodDelete, "/api/v1/admin/ratings/"+missing.String()))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testhelpers.PerformRequest(router, authorized(http.MethodDelete, "/api/v1/admin/ratings/not-a-uuid"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteRatingStoreFailure(t *testing.T) {
	router, _, ratings := setupAdminTestRouter()
	id := uuid.New()
	ratings.On("Delete", mock.Anything, id).Return(errors.New("connection reset"))

	w := testhelpers.PerformRequest(router, authorized(http.MethodDelete, "/api/v1/admin/ratings/"+id.String()))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}
