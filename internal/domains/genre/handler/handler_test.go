package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webmusic-backend/internal/domains/genre/model"
	"webmusic-backend/internal/shared/query"
)

type stubService struct {
	listResult   *model.GenreListResponse
	getResult    *model.GenreResponse
	createResult *model.GenreResponse
	err          error
}

func (s *stubService) List(ctx context.Context, filter model.GenreFilter) (*model.GenreListResponse, error) {
	return s.listResult, s.err
}

func (s *stubService) GetByID(ctx context.Context, id int64) (*model.GenreResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.getResult, nil
}

func (s *stubService) Create(ctx context.Context, req *model.CreateGenreRequest) (*model.GenreResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.createResult, nil
}

func (s *stubService) Update(ctx context.Context, id int64, req *model.UpdateGenreRequest) (*model.GenreResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.getResult, nil
}

func (s *stubService) Delete(ctx context.Context, id int64) error {
	return s.err
}

func setupRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	r.GET("/api/genres", h.List)
	r.GET("/api/genres/:id", h.GetByID)
	r.POST("/api/genres", h.Create)
	r.PUT("/api/genres/:id", h.Update)
	r.DELETE("/api/genres/:id", h.Delete)
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Property       string      `json:"property"`
		Error          string      `json:"error"`
		AttemptedValue interface{} `json:"attemptedValue"`
	} `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestCreateValidationEnvelope(t *testing.T) {
	r := setupRouter(&stubService{})

	w := perform(t, r, http.MethodPost, "/api/genres", map[string]interface{}{
		"genreName": "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "genreName", env.Errors[0].Property)
	assert.NotEmpty(t, env.Errors[0].Error)
	assert.Equal(t, "", env.Errors[0].AttemptedValue)
}

func TestCreateDuplicateName(t *testing.T) {
	r := setupRouter(&stubService{err: model.ErrGenreNameTaken})

	w := perform(t, r, http.MethodPost, "/api/genres", map[string]interface{}{
		"genreName": "Jazz",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, model.ErrGenreNameTaken.Error(), env.Message)
}

func TestCreateSuccess(t *testing.T) {
	created := &model.GenreResponse{GenreID: 5, GenreName: "Jazz", CreatedAt: time.Now()}
	r := setupRouter(&stubService{createResult: created})

	w := perform(t, r, http.MethodPost, "/api/genres", map[string]interface{}{
		"genreName": "Jazz",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)

	var got model.GenreResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(5), got.GenreID)
	assert.Equal(t, "Jazz", got.GenreName)
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r := setupRouter(&stubService{
			getResult: &model.GenreResponse{GenreID: 3, GenreName: "Rock"},
		})

		w := perform(t, r, http.MethodGet, "/api/genres/3", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing id maps to 404 envelope", func(t *testing.T) {
		r := setupRouter(&stubService{err: model.ErrGenreNotFound})

		w := perform(t, r, http.MethodGet, "/api/genres/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		env := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "Genre not found", env.Message)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		r := setupRouter(&stubService{})

		w := perform(t, r, http.MethodGet, "/api/genres/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListNeverFailsOnEmpty(t *testing.T) {
	r := setupRouter(&stubService{
		listResult: &model.GenreListResponse{
			Genres: []model.GenreResponse{},
			PageInfo: query.PageInfo{
				Page: 1, PageSize: 10, TotalCount: 0, TotalPages: 0,
			},
		},
	})

	w := perform(t, r, http.MethodGet, "/api/genres?searchTerm=nothing", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)
}

func TestDelete(t *testing.T) {
	t.Run("success is 204 with empty body", func(t *testing.T) {
		r := setupRouter(&stubService{})

		w := perform(t, r, http.MethodDelete, "/api/genres/4", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		r := setupRouter(&stubService{err: model.ErrGenreNotFound})

		w := perform(t, r, http.MethodDelete, "/api/genres/4", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInvalidJSONBody(t *testing.T) {
	r := setupRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/genres", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w)
	assert.Equal(t, "Invalid request body", env.Message)
}
