package repository

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webmusic-backend/internal/domains/genre/model"
)

// fakeCache keeps marshaled entries in a map so cache hits can be
// exercised without a database or a Redis server behind the repository.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range f.entries {
		if strings.HasPrefix(key, prefix) {
			delete(f.entries, key)
		}
	}
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func seedCache(t *testing.T, c *fakeCache, key string, value interface{}) {
	t.Helper()
	require.NoError(t, c.Set(context.Background(), key, value, time.Minute))
}

// The nil pool guarantees the repository never reaches the database in
// these tests: a cache miss would panic.

func TestGetAllServedFromListCache(t *testing.T) {
	c := newFakeCache()
	seedCache(t, c, genreListKeyPrefix+"all", []model.Genre{
		{GenreID: 1, GenreName: "Jazz"},
		{GenreID: 2, GenreName: "Rock"},
	})
	repo := NewPostgresRepository(nil, c)

	genres, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Jazz", genres[0].GenreName)
}

func TestSearchServedFromListCache(t *testing.T) {
	c := newFakeCache()
	seedCache(t, c, genreListKeyPrefix+"search:ja", []model.Genre{
		{GenreID: 1, GenreName: "Jazz"},
	})
	repo := NewPostgresRepository(nil, c)

	genres, err := repo.Search(context.Background(), "ja")
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Jazz", genres[0].GenreName)
}

func TestGetByIDServedFromCache(t *testing.T) {
	c := newFakeCache()
	seedCache(t, c, genreCacheKeyPrefix+"7", model.Genre{GenreID: 7, GenreName: "Ambient"})
	repo := NewPostgresRepository(nil, c)

	g, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Ambient", g.GenreName)
}

// Every key the read paths write falls under the pattern the write
// paths invalidate.
func TestListInvalidationCoversListKeys(t *testing.T) {
	c := newFakeCache()
	seedCache(t, c, genreListKeyPrefix+"all", []model.Genre{{GenreID: 1}})
	seedCache(t, c, genreListKeyPrefix+"search:ja", []model.Genre{{GenreID: 1}})
	seedCache(t, c, genreCacheKeyPrefix+"1", model.Genre{GenreID: 1})

	require.NoError(t, c.DeletePattern(context.Background(), genreListKeyPrefix+"*"))

	for key := range c.entries {
		assert.False(t, strings.HasPrefix(key, genreListKeyPrefix), "stale list key %q", key)
	}

	var g model.Genre
	hit, err := c.Get(context.Background(), genreCacheKeyPrefix+"1", &g)
	require.NoError(t, err)
	assert.True(t, hit)
}
