package service

import (
	"context"

	"webmusic-backend/internal/domains/follow/model"
	"webmusic-backend/internal/domains/follow/repository"
	"webmusic-backend/internal/shared/query"
)

type followService struct {
	repo repository.Repository
}

func NewFollowService(repo repository.Repository) Service {
	return &followService{repo: repo}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return model.ErrSelfFollow
	}
	return s.repo.Create(ctx, followerID, followingID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	return s.repo.Delete(ctx, followerID, followingID)
}

func (s *followService) Followers(ctx context.Context, userID int64, page, pageSize int) (*model.FollowUserListResponse, error) {
	users, err := s.repo.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return paginateUsers(users, page, pageSize), nil
}

func (s *followService) Following(ctx context.Context, userID int64, page, pageSize int) (*model.FollowUserListResponse, error) {
	users, err := s.repo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return paginateUsers(users, page, pageSize), nil
}

func paginateUsers(users []model.FollowUser, page, pageSize int) *model.FollowUserListResponse {
	pageItems, info := query.Paginate(users, page, pageSize)
	return &model.FollowUserListResponse{Users: pageItems, PageInfo: info}
}
