package repository

import (
	"context"

	"webmusic-backend/internal/domains/song/model"
)

type Repository interface {
	GetAll(ctx context.Context) ([]model.Song, error)
	GetByUser(ctx context.Context, userID int64) ([]model.Song, error)
	GetByGenre(ctx context.Context, genreID int64) ([]model.Song, error)
	GetByAlbum(ctx context.Context, albumID int64) ([]model.Song, error)
	GetByArtist(ctx context.Context, artistID int64) ([]model.Song, error)
	Search(ctx context.Context, term string) ([]model.Song, error)
	GetByID(ctx context.Context, id int64) (*model.Song, error)
	GetPopular(ctx context.Context, limit int) ([]model.Song, error)
	GetRecent(ctx context.Context, limit int) ([]model.Song, error)
	Create(ctx context.Context, s *model.Song) (*model.Song, error)
	Update(ctx context.Context, s *model.Song) (*model.Song, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
