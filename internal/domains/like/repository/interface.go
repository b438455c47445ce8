package repository

import (
	"context"

	"webmusic-backend/internal/domains/like/model"
)

type Repository interface {
	Create(ctx context.Context, userID, songID int64) error
	Delete(ctx context.Context, userID, songID int64) error
	GetByUser(ctx context.Context, userID int64) ([]model.LikedSong, error)
	Exists(ctx context.Context, userID, songID int64) (bool, error)
}
