package service

import (
	"context"

	"webmusic-backend/internal/domains/follow/model"
)

type Service interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	Followers(ctx context.Context, userID int64, page, pageSize int) (*model.FollowUserListResponse, error)
	Following(ctx context.Context, userID int64, page, pageSize int) (*model.FollowUserListResponse, error)
}
