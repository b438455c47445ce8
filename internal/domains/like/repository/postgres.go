package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/like/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, userID, songID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO likes (user_id, song_id) VALUES ($1, $2)`, userID, songID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return model.ErrAlreadyLiked
			case "23503":
				return model.ErrInvalidReference
			}
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, userID, songID int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND song_id = $2`, userID, songID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrLikeNotFound
	}
	return nil
}

func (r *postgresRepository) GetByUser(ctx context.Context, userID int64) ([]model.LikedSong, error) {
	sql := `
        SELECT s.song_id, s.title, s.file_url, s.cover_image, s.duration,
            ar.artist_name, l.created_at
        FROM likes l
        JOIN songs s ON s.song_id = l.song_id
        LEFT JOIN artists ar ON ar.artist_id = s.artist_id
        WHERE l.user_id = $1
        ORDER BY l.created_at DESC
    `

	rows, err := r.pool.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked songs: %w", err)
	}
	defer rows.Close()

	var songs []model.LikedSong
	for rows.Next() {
		var ls model.LikedSong
		err := rows.Scan(
			&ls.SongID,
			&ls.Title,
			&ls.FileURL,
			&ls.CoverImage,
			&ls.Duration,
			&ls.ArtistName,
			&ls.LikedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liked song: %w", err)
		}
		songs = append(songs, ls)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating liked songs: %w", err)
	}
	return songs, nil
}

func (r *postgresRepository) Exists(ctx context.Context, userID, songID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND song_id = $2)`,
		userID, songID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}
