package repository

import (
	"context"

	"webmusic-backend/internal/domains/follow/model"
)

type Repository interface {
	Create(ctx context.Context, followerID, followingID int64) error
	Delete(ctx context.Context, followerID, followingID int64) error
	GetFollowers(ctx context.Context, userID int64) ([]model.FollowUser, error)
	GetFollowing(ctx context.Context, userID int64) ([]model.FollowUser, error)
}
