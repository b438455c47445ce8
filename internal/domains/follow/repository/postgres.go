package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/follow/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, followerID, followingID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)`,
		followerID, followingID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return model.ErrAlreadyFollowing
			case "23503":
				return model.ErrInvalidReference
			}
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrFollowNotFound
	}
	return nil
}

func (r *postgresRepository) GetFollowers(ctx context.Context, userID int64) ([]model.FollowUser, error) {
	sql := `
        SELECT u.user_id, u.username, u.avatar_url, f.created_at
        FROM follows f
        JOIN users u ON u.user_id = f.follower_id
        WHERE f.following_id = $1
        ORDER BY f.created_at DESC
    `
	return r.queryUsers(ctx, sql, userID)
}

func (r *postgresRepository) GetFollowing(ctx context.Context, userID int64) ([]model.FollowUser, error) {
	sql := `
        SELECT u.user_id, u.username, u.avatar_url, f.created_at
        FROM follows f
        JOIN users u ON u.user_id = f.following_id
        WHERE f.follower_id = $1
        ORDER BY f.created_at DESC
    `
	return r.queryUsers(ctx, sql, userID)
}

func (r *postgresRepository) queryUsers(ctx context.Context, sql string, userID int64) ([]model.FollowUser, error) {
	rows, err := r.pool.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query follows: %w", err)
	}
	defer rows.Close()

	return collectFollowUsers(rows)
}

func collectFollowUsers(rows pgx.Rows) ([]model.FollowUser, error) {
	var users []model.FollowUser
	for rows.Next() {
		var fu model.FollowUser
		if err := rows.Scan(&fu.UserID, &fu.Username, &fu.AvatarURL, &fu.FollowedAt); err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		users = append(users, fu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follows: %w", err)
	}
	return users, nil
}
