package repository

import (
	"context"

	"webmusic-backend/internal/domains/genre/model"
)

type Repository interface {
	GetAll(ctx context.Context) ([]model.Genre, error)
	GetByID(ctx context.Context, id int64) (*model.Genre, error)
	GetByName(ctx context.Context, name string) (*model.Genre, error)
	Search(ctx context.Context, term string) ([]model.Genre, error)
	Create(ctx context.Context, g *model.Genre) (*model.Genre, error)
	Update(ctx context.Context, g *model.Genre) (*model.Genre, error)
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string) (bool, error)
}
