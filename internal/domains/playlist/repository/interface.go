package repository

import (
	"context"

	"webmusic-backend/internal/domains/playlist/model"
)

type Repository interface {
	GetAll(ctx context.Context) ([]model.Playlist, error)
	GetByUser(ctx context.Context, userID int64) ([]model.Playlist, error)
	GetByVisibility(ctx context.Context, isPublic bool) ([]model.Playlist, error)
	Search(ctx context.Context, term string) ([]model.Playlist, error)
	GetByID(ctx context.Context, id int64) (*model.Playlist, error)
	Create(ctx context.Context, p *model.Playlist) (*model.Playlist, error)
	Update(ctx context.Context, p *model.Playlist) (*model.Playlist, error)
	Delete(ctx context.Context, id int64) error

	AddSong(ctx context.Context, playlistID, songID int64) error
	RemoveSong(ctx context.Context, playlistID, songID int64) error
	GetSongs(ctx context.Context, playlistID int64) ([]model.PlaylistSong, error)
}
