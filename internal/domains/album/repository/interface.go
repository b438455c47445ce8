package repository

import (
	"context"

	"webmusic-backend/internal/domains/album/model"
)

type Repository interface {
	GetAll(ctx context.Context) ([]model.Album, error)
	GetByUser(ctx context.Context, userID int64) ([]model.Album, error)
	GetByArtist(ctx context.Context, artistID int64) ([]model.Album, error)
	Search(ctx context.Context, term string) ([]model.Album, error)
	GetByID(ctx context.Context, id int64) (*model.Album, error)
	Create(ctx context.Context, a *model.Album) (*model.Album, error)
	Update(ctx context.Context, a *model.Album) (*model.Album, error)
	Delete(ctx context.Context, id int64) error
}
