package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webmusic-backend/internal/domains/song/model"
)

// fakeRepository records which listing branch the service picked and
// serves canned songs from memory.
type fakeRepository struct {
	songs      map[int64]model.Song
	nextID     int64
	lastMethod string
	lastArg    interface{}
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{songs: make(map[int64]model.Song), nextID: 1}
}

func (f *fakeRepository) all() []model.Song {
	out := make([]model.Song, 0, len(f.songs))
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.songs[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeRepository) GetAll(ctx context.Context) ([]model.Song, error) {
	f.lastMethod = "GetAll"
	return f.all(), nil
}

func (f *fakeRepository) GetByUser(ctx context.Context, userID int64) ([]model.Song, error) {
	f.lastMethod, f.lastArg = "GetByUser", userID
	var out []model.Song
	for _, s := range f.all() {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByGenre(ctx context.Context, genreID int64) ([]model.Song, error) {
	f.lastMethod, f.lastArg = "GetByGenre", genreID
	return nil, nil
}

func (f *fakeRepository) GetByAlbum(ctx context.Context, albumID int64) ([]model.Song, error) {
	f.lastMethod, f.lastArg = "GetByAlbum", albumID
	return nil, nil
}

func (f *fakeRepository) GetByArtist(ctx context.Context, artistID int64) ([]model.Song, error) {
	f.lastMethod, f.lastArg = "GetByArtist", artistID
	return nil, nil
}

func (f *fakeRepository) Search(ctx context.Context, term string) ([]model.Song, error) {
	f.lastMethod, f.lastArg = "Search", term
	return nil, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*model.Song, error) {
	s, ok := f.songs[id]
	if !ok {
		return nil, model.ErrSongNotFound
	}
	return &s, nil
}

func (f *fakeRepository) GetPopular(ctx context.Context, limit int) ([]model.Song, error) {
	f.lastMethod, f.lastArg = "GetPopular", limit
	return nil, nil
}

func (f *fakeRepository) GetRecent(ctx context.Context, limit int) ([]model.Song, error) {
	f.lastMethod, f.lastArg = "GetRecent", limit
	return nil, nil
}

func (f *fakeRepository) Create(ctx context.Context, s *model.Song) (*model.Song, error) {
	stored := *s
	stored.SongID = f.nextID
	stored.CreatedAt = time.Now()
	f.songs[f.nextID] = stored
	f.nextID++
	return &stored, nil
}

func (f *fakeRepository) Update(ctx context.Context, s *model.Song) (*model.Song, error) {
	if _, ok := f.songs[s.SongID]; !ok {
		return nil, model.ErrSongNotFound
	}
	f.songs[s.SongID] = *s
	return s, nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	s, ok := f.songs[id]
	if !ok {
		return model.ErrSongNotFound
	}
	s.Status = status
	f.songs[id] = s
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.songs[id]; !ok {
		return model.ErrSongNotFound
	}
	delete(f.songs, id)
	return nil
}

func seed(t *testing.T, repo *fakeRepository, n int, userID int64) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := repo.Create(context.Background(), &model.Song{
			Title:   "track",
			FileURL: "https://cdn.example.com/track.mp3",
			Status:  model.StatusApproved,
			UserID:  userID,
		})
		require.NoError(t, err)
	}
}

func TestListFilterExclusivity(t *testing.T) {
	tests := []struct {
		name       string
		filter     model.SongFilter
		wantMethod string
	}{
		{"no filters hits the full set", model.SongFilter{}, "GetAll"},
		{"user filter alone", model.SongFilter{UserID: 7}, "GetByUser"},
		{"genre filter alone", model.SongFilter{GenreID: 3}, "GetByGenre"},
		{"album filter alone", model.SongFilter{AlbumID: 4}, "GetByAlbum"},
		{"artist filter alone", model.SongFilter{ArtistID: 5}, "GetByArtist"},
		{"search beats every other filter", model.SongFilter{
			SearchTerm: "jazz", UserID: 7, GenreID: 3, AlbumID: 4, ArtistID: 5,
		}, "Search"},
		{"whitespace-only search term still takes the search branch", model.SongFilter{
			SearchTerm: "   ", UserID: 7,
		}, "Search"},
		{"user beats genre, album and artist", model.SongFilter{
			UserID: 7, GenreID: 3, AlbumID: 4, ArtistID: 5,
		}, "GetByUser"},
		{"genre beats album and artist", model.SongFilter{
			GenreID: 3, AlbumID: 4, ArtistID: 5,
		}, "GetByGenre"},
		{"album beats artist", model.SongFilter{AlbumID: 4, ArtistID: 5}, "GetByAlbum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			svc := NewSongService(repo)

			_, err := svc.List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMethod, repo.lastMethod)
		})
	}
}

func TestListSearchTermIsEscaped(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSongService(repo)

	_, err := svc.List(context.Background(), model.SongFilter{SearchTerm: "50% off"})
	require.NoError(t, err)
	assert.Equal(t, `50\% off`, repo.lastArg)
}

func TestListPagination(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSongService(repo)
	seed(t, repo, 7, 1)

	result, err := svc.List(context.Background(), model.SongFilter{Page: 2, PageSize: 3})
	require.NoError(t, err)

	assert.Len(t, result.Songs, 3)
	assert.Equal(t, 7, result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, int64(4), result.Songs[0].SongID)
	assert.Equal(t, int64(6), result.Songs[2].SongID)
}

func TestListSortParametersAreInert(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSongService(repo)
	seed(t, repo, 3, 1)

	plain, err := svc.List(context.Background(), model.SongFilter{})
	require.NoError(t, err)

	sorted, err := svc.List(context.Background(), model.SongFilter{SortBy: "title", SortDirection: "asc"})
	require.NoError(t, err)

	assert.Equal(t, plain.Songs, sorted.Songs)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSongService(repo)

	genreID := int64(12)
	created, err := svc.Create(context.Background(), &model.CreateSongRequest{
		Title:    "  Night Drive  ",
		FileURL:  "https://cdn.example.com/night-drive.mp3",
		Duration: 214,
		UserID:   9,
		GenreID:  &genreID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Night Drive", created.Title)
	assert.Equal(t, model.StatusPending, created.Status)

	got, err := svc.GetByID(context.Background(), created.SongID)
	require.NoError(t, err)
	assert.Equal(t, created.SongID, got.SongID)
	assert.Equal(t, "Night Drive", got.Title)
	require.NotNil(t, got.GenreID)
	assert.Equal(t, genreID, *got.GenreID)
}

func TestNullGenrePropagates(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSongService(repo)

	created, err := svc.Create(context.Background(), &model.CreateSongRequest{
		Title:   "Untagged",
		FileURL: "https://cdn.example.com/untagged.mp3",
		UserID:  9,
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.SongID)
	require.NoError(t, err)
	assert.Nil(t, got.GenreID)
	assert.Nil(t, got.GenreName)
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSongService(repo)
	seed(t, repo, 1, 1)

	require.NoError(t, svc.Delete(context.Background(), 1))

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, model.ErrSongNotFound)
}

func TestApproveUpdatesStatus(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSongService(repo)

	created, err := svc.Create(context.Background(), &model.CreateSongRequest{
		Title:   "Pending Track",
		FileURL: "https://cdn.example.com/pending.mp3",
		UserID:  2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(context.Background(), created.SongID))

	got, err := svc.GetByID(context.Background(), created.SongID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, got.Status)

	assert.ErrorIs(t, svc.Reject(context.Background(), 999), model.ErrSongNotFound)
}

func TestChartLimitClamped(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSongService(repo)

	_, err := svc.GetPopular(context.Background(), -5)
	require.NoError(t, err)
	assert.Equal(t, "GetPopular", repo.lastMethod)
	assert.Equal(t, defaultChartLimit, repo.lastArg)
}
