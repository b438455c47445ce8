package service

import (
	"context"

	"webmusic-backend/internal/domains/history/model"
	"webmusic-backend/internal/domains/history/repository"
	"webmusic-backend/internal/shared/query"
)

const defaultRecentLimit = 20

type historyService struct {
	repo repository.Repository
}

func NewHistoryService(repo repository.Repository) Service {
	return &historyService{repo: repo}
}

func (s *historyService) Record(ctx context.Context, req *model.CreateHistoryRequest) (*model.PlayHistory, error) {
	return s.repo.Create(ctx, &model.PlayHistory{
		UserID:         req.UserID,
		SongID:         req.SongID,
		DurationPlayed: req.DurationPlayed,
		Completed:      req.Completed,
	})
}

func (s *historyService) RecentByUser(ctx context.Context, userID int64, limit int) ([]model.PlayHistory, error) {
	if limit < 1 || limit > query.MaxPageSize {
		limit = defaultRecentLimit
	}

	entries, err := s.repo.GetRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.PlayHistory{}
	}
	return entries, nil
}
