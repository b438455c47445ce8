package repository

import (
	"context"

	"webmusic-backend/internal/domains/history/model"
)

type Repository interface {
	Create(ctx context.Context, h *model.PlayHistory) (*model.PlayHistory, error)
	GetRecentByUser(ctx context.Context, userID int64, limit int) ([]model.PlayHistory, error)
}
