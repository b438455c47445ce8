package service

import (
	"context"

	"webmusic-backend/internal/domains/like/model"
)

type Service interface {
	Like(ctx context.Context, userID, songID int64) error
	Unlike(ctx context.Context, userID, songID int64) error
	ListByUser(ctx context.Context, userID int64, page, pageSize int) (*model.LikedSongListResponse, error)
}
