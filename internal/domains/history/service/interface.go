package service

import (
	"context"

	"webmusic-backend/internal/domains/history/model"
)

type Service interface {
	Record(ctx context.Context, req *model.CreateHistoryRequest) (*model.PlayHistory, error)
	RecentByUser(ctx context.Context, userID int64, limit int) ([]model.PlayHistory, error)
}
