package service

import (
	"context"

	"webmusic-backend/internal/domains/playlist/model"
)

type Service interface {
	List(ctx context.Context, filter model.PlaylistFilter) (*model.PlaylistListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.PlaylistDetailResponse, error)
	Create(ctx context.Context, req *model.CreatePlaylistRequest) (*model.PlaylistResponse, error)
	Update(ctx context.Context, id int64, req *model.UpdatePlaylistRequest) (*model.PlaylistResponse, error)
	Delete(ctx context.Context, id int64) error

	AddSong(ctx context.Context, playlistID, songID int64) error
	RemoveSong(ctx context.Context, playlistID, songID int64) error
	GetSongs(ctx context.Context, playlistID int64) ([]model.PlaylistSong, error)
}
