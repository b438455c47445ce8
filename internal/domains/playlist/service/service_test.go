package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webmusic-backend/internal/domains/playlist/model"
)

type fakePlaylistRepository struct {
	playlists  map[int64]model.Playlist
	entries    map[int64][]model.PlaylistSong
	nextID     int64
	lastMethod string
}

func newFakePlaylistRepository() *fakePlaylistRepository {
	return &fakePlaylistRepository{
		playlists: make(map[int64]model.Playlist),
		entries:   make(map[int64][]model.PlaylistSong),
		nextID:    1,
	}
}

func (f *fakePlaylistRepository) all() []model.Playlist {
	out := make([]model.Playlist, 0, len(f.playlists))
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.playlists[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakePlaylistRepository) GetAll(ctx context.Context) ([]model.Playlist, error) {
	f.lastMethod = "GetAll"
	return f.all(), nil
}

func (f *fakePlaylistRepository) GetByUser(ctx context.Context, userID int64) ([]model.Playlist, error) {
	f.lastMethod = "GetByUser"
	var out []model.Playlist
	for _, p := range f.all() {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaylistRepository) GetByVisibility(ctx context.Context, isPublic bool) ([]model.Playlist, error) {
	f.lastMethod = "GetByVisibility"
	var out []model.Playlist
	for _, p := range f.all() {
		if p.IsPublic == isPublic {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaylistRepository) Search(ctx context.Context, term string) ([]model.Playlist, error) {
	f.lastMethod = "Search"
	return nil, nil
}

func (f *fakePlaylistRepository) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return nil, model.ErrPlaylistNotFound
	}
	return &p, nil
}

func (f *fakePlaylistRepository) Create(ctx context.Context, p *model.Playlist) (*model.Playlist, error) {
	stored := *p
	stored.PlaylistID = f.nextID
	stored.CreatedAt = time.Now()
	f.playlists[f.nextID] = stored
	f.nextID++
	return &stored, nil
}

func (f *fakePlaylistRepository) Update(ctx context.Context, p *model.Playlist) (*model.Playlist, error) {
	if _, ok := f.playlists[p.PlaylistID]; !ok {
		return nil, model.ErrPlaylistNotFound
	}
	f.playlists[p.PlaylistID] = *p
	return p, nil
}

func (f *fakePlaylistRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.playlists[id]; !ok {
		return model.ErrPlaylistNotFound
	}
	delete(f.playlists, id)
	delete(f.entries, id)
	return nil
}

func (f *fakePlaylistRepository) AddSong(ctx context.Context, playlistID, songID int64) error {
	for _, e := range f.entries[playlistID] {
		if e.SongID == songID {
			return model.ErrSongAlreadyInPlaylist
		}
	}
	f.entries[playlistID] = append(f.entries[playlistID], model.PlaylistSong{
		PlaylistID: playlistID,
		SongID:     songID,
		Position:   len(f.entries[playlistID]) + 1,
		AddedAt:    time.Now(),
	})
	return nil
}

func (f *fakePlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID int64) error {
	entries := f.entries[playlistID]
	for i, e := range entries {
		if e.SongID == songID {
			f.entries[playlistID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return model.ErrSongNotInPlaylist
}

func (f *fakePlaylistRepository) GetSongs(ctx context.Context, playlistID int64) ([]model.PlaylistSong, error) {
	songs := append([]model.PlaylistSong(nil), f.entries[playlistID]...)
	sort.Slice(songs, func(i, j int) bool { return songs[i].Position < songs[j].Position })
	return songs, nil
}

func createTestPlaylist(t *testing.T, svc Service, name string, userID int64, isPublic bool) *model.PlaylistResponse {
	t.Helper()
	p, err := svc.Create(context.Background(), &model.CreatePlaylistRequest{
		Name:     name,
		UserID:   userID,
		IsPublic: isPublic,
	})
	require.NoError(t, err)
	return p
}

func TestAddSongToMissingPlaylist(t *testing.T) {
	svc := NewPlaylistService(newFakePlaylistRepository())

	err := svc.AddSong(context.Background(), 99, 1)
	assert.ErrorIs(t, err, model.ErrPlaylistNotFound)
}

func TestAddSongTwice(t *testing.T) {
	svc := NewPlaylistService(newFakePlaylistRepository())
	p := createTestPlaylist(t, svc, "Road Trip", 1, true)

	require.NoError(t, svc.AddSong(context.Background(), p.PlaylistID, 10))

	err := svc.AddSong(context.Background(), p.PlaylistID, 10)
	assert.ErrorIs(t, err, model.ErrSongAlreadyInPlaylist)
}

func TestSongOrderFollowsInsertion(t *testing.T) {
	svc := NewPlaylistService(newFakePlaylistRepository())
	p := createTestPlaylist(t, svc, "Road Trip", 1, true)

	for _, songID := range []int64{30, 10, 20} {
		require.NoError(t, svc.AddSong(context.Background(), p.PlaylistID, songID))
	}

	detail, err := svc.GetByID(context.Background(), p.PlaylistID)
	require.NoError(t, err)
	require.Len(t, detail.Songs, 3)
	assert.Equal(t, int64(30), detail.Songs[0].SongID)
	assert.Equal(t, int64(10), detail.Songs[1].SongID)
	assert.Equal(t, int64(20), detail.Songs[2].SongID)
}

func TestRemoveSongNotInPlaylist(t *testing.T) {
	svc := NewPlaylistService(newFakePlaylistRepository())
	p := createTestPlaylist(t, svc, "Road Trip", 1, true)

	err := svc.RemoveSong(context.Background(), p.PlaylistID, 42)
	assert.ErrorIs(t, err, model.ErrSongNotInPlaylist)
}

func TestGetByIDWithNoSongs(t *testing.T) {
	svc := NewPlaylistService(newFakePlaylistRepository())
	p := createTestPlaylist(t, svc, "Empty", 1, false)

	detail, err := svc.GetByID(context.Background(), p.PlaylistID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Songs)
	assert.Empty(t, detail.Songs)
}

func TestListVisibilityFilter(t *testing.T) {
	repo := newFakePlaylistRepository()
	svc := NewPlaylistService(repo)
	createTestPlaylist(t, svc, "Public A", 1, true)
	createTestPlaylist(t, svc, "Private B", 1, false)
	createTestPlaylist(t, svc, "Public C", 2, true)

	public := true
	result, err := svc.List(context.Background(), model.PlaylistFilter{IsPublic: &public})
	require.NoError(t, err)

	assert.Equal(t, "GetByVisibility", repo.lastMethod)
	assert.Equal(t, 2, result.TotalCount)
	for _, p := range result.Playlists {
		assert.True(t, p.IsPublic)
	}
}

func TestListUserBeatsVisibility(t *testing.T) {
	repo := newFakePlaylistRepository()
	svc := NewPlaylistService(repo)
	createTestPlaylist(t, svc, "Mine", 1, false)
	createTestPlaylist(t, svc, "Theirs", 2, true)

	public := true
	result, err := svc.List(context.Background(), model.PlaylistFilter{UserID: 1, IsPublic: &public})
	require.NoError(t, err)

	assert.Equal(t, "GetByUser", repo.lastMethod)
	assert.Equal(t, 1, result.TotalCount)
}
