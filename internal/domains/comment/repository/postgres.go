package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/comment/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const commentColumns = `
        c.comment_id, c.song_id, c.user_id, c.content, c.is_edited,
        u.username, u.avatar_url, c.created_at, c.updated_at
`

const commentJoins = `
        FROM comments c
        LEFT JOIN users u ON u.user_id = c.user_id
`

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.CommentID,
		&c.SongID,
		&c.UserID,
		&c.Content,
		&c.IsEdited,
		&c.Username,
		&c.AvatarURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) GetBySong(ctx context.Context, songID int64) ([]model.Comment, error) {
	sql := `SELECT ` + commentColumns + commentJoins + `
        WHERE c.song_id = $1
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, sql, songID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	sql := `SELECT ` + commentColumns + commentJoins + ` WHERE c.comment_id = $1`

	c, err := scanComment(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	sql := `
        INSERT INTO comments (song_id, user_id, content)
        VALUES ($1, $2, $3)
        RETURNING comment_id
    `

	var id int64
	err := r.pool.QueryRow(ctx, sql, c.SongID, c.UserID, c.Content).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update rewrites the content and marks the comment edited.
func (r *postgresRepository) Update(ctx context.Context, id int64, content string) (*model.Comment, error) {
	sql := `
        UPDATE comments
        SET content = $1, is_edited = TRUE, updated_at = NOW()
        WHERE comment_id = $2
    `

	cmdTag, err := r.pool.Exec(ctx, sql, content, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, model.ErrCommentNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
