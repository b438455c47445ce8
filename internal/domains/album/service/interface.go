package service

import (
	"context"

	"webmusic-backend/internal/domains/album/model"
)

type Service interface {
	List(ctx context.Context, filter model.AlbumFilter) (*model.AlbumListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.AlbumResponse, error)
	Create(ctx context.Context, req *model.CreateAlbumRequest) (*model.AlbumResponse, error)
	Update(ctx context.Context, id int64, req *model.UpdateAlbumRequest) (*model.AlbumResponse, error)
	Delete(ctx context.Context, id int64) error
}
