package service

import (
	"context"

	"webmusic-backend/internal/domains/like/model"
	"webmusic-backend/internal/domains/like/repository"
	"webmusic-backend/internal/shared/query"
)

type likeService struct {
	repo repository.Repository
}

func NewLikeService(repo repository.Repository) Service {
	return &likeService{repo: repo}
}

func (s *likeService) Like(ctx context.Context, userID, songID int64) error {
	return s.repo.Create(ctx, userID, songID)
}

func (s *likeService) Unlike(ctx context.Context, userID, songID int64) error {
	return s.repo.Delete(ctx, userID, songID)
}

func (s *likeService) ListByUser(ctx context.Context, userID int64, page, pageSize int) (*model.LikedSongListResponse, error) {
	songs, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pageItems, info := query.Paginate(songs, page, pageSize)

	return &model.LikedSongListResponse{Songs: pageItems, PageInfo: info}, nil
}
