package repository

import (
	"context"

	"webmusic-backend/internal/domains/artist/model"
)

type Repository interface {
	GetAll(ctx context.Context) ([]model.Artist, error)
	GetByID(ctx context.Context, id int64) (*model.Artist, error)
	Search(ctx context.Context, term string) ([]model.Artist, error)
	Create(ctx context.Context, a *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, a *model.Artist) (*model.Artist, error)
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string) (bool, error)
}
