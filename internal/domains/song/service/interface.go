package service

import (
	"context"

	"webmusic-backend/internal/domains/song/model"
)

type Service interface {
	List(ctx context.Context, filter model.SongFilter) (*model.SongListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.SongResponse, error)
	GetPopular(ctx context.Context, limit int) ([]model.SongResponse, error)
	GetRecent(ctx context.Context, limit int) ([]model.SongResponse, error)
	Create(ctx context.Context, req *model.CreateSongRequest) (*model.SongResponse, error)
	Update(ctx context.Context, id int64, req *model.UpdateSongRequest) (*model.SongResponse, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
