package service

import (
	"context"

	"webmusic-backend/internal/domains/artist/model"
)

type Service interface {
	List(ctx context.Context, filter model.ArtistFilter) (*model.ArtistListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.ArtistResponse, error)
	Create(ctx context.Context, req *model.CreateArtistRequest) (*model.ArtistResponse, error)
	Update(ctx context.Context, id int64, req *model.UpdateArtistRequest) (*model.ArtistResponse, error)
	Delete(ctx context.Context, id int64) error
}
