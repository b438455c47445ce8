package repository

import (
	"context"

	"webmusic-backend/internal/domains/comment/model"
)

type Repository interface {
	GetBySong(ctx context.Context, songID int64) ([]model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)
	Update(ctx context.Context, id int64, content string) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}
