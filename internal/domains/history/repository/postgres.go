package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/history/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, h *model.PlayHistory) (*model.PlayHistory, error) {
	sql := `
        INSERT INTO play_history (user_id, song_id, duration_played, completed)
        VALUES ($1, $2, $3, $4)
        RETURNING history_id, played_at
    `

	err := r.pool.QueryRow(ctx, sql,
		h.UserID, h.SongID, h.DurationPlayed, h.Completed).Scan(&h.HistoryID, &h.PlayedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to create play history: %w", err)
	}
	return h, nil
}

func (r *postgresRepository) GetRecentByUser(ctx context.Context, userID int64, limit int) ([]model.PlayHistory, error) {
	sql := `
        SELECT h.history_id, h.user_id, h.song_id, h.played_at,
            h.duration_played, h.completed,
            s.title, ar.artist_name, s.cover_image
        FROM play_history h
        LEFT JOIN songs s ON s.song_id = h.song_id
        LEFT JOIN artists ar ON ar.artist_id = s.artist_id
        WHERE h.user_id = $1
        ORDER BY h.played_at DESC
        LIMIT $2
    `

	rows, err := r.pool.Query(ctx, sql, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query play history: %w", err)
	}
	defer rows.Close()

	var entries []model.PlayHistory
	for rows.Next() {
		var h model.PlayHistory
		err := rows.Scan(
			&h.HistoryID,
			&h.UserID,
			&h.SongID,
			&h.PlayedAt,
			&h.DurationPlayed,
			&h.Completed,
			&h.Title,
			&h.ArtistName,
			&h.CoverImage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan play history: %w", err)
		}
		entries = append(entries, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating play history: %w", err)
	}
	return entries, nil
}
