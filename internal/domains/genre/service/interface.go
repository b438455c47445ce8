package service

import (
	"context"

	"webmusic-backend/internal/domains/genre/model"
)

type Service interface {
	List(ctx context.Context, filter model.GenreFilter) (*model.GenreListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.GenreResponse, error)
	Create(ctx context.Context, req *model.CreateGenreRequest) (*model.GenreResponse, error)
	Update(ctx context.Context, id int64, req *model.UpdateGenreRequest) (*model.GenreResponse, error)
	Delete(ctx context.Context, id int64) error
}
