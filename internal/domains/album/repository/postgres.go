package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/album/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const albumColumns = `
        a.album_id, a.title, a.cover_image, a.description, a.release_date,
        a.user_id, a.artist_id, u.username, ar.artist_name,
        (SELECT COUNT(*) FROM songs s WHERE s.album_id = a.album_id) AS song_count,
        a.created_at, a.updated_at
`

const albumJoins = `
        FROM albums a
        LEFT JOIN users u ON u.user_id = a.user_id
        LEFT JOIN artists ar ON ar.artist_id = a.artist_id
`

func scanAlbum(row pgx.Row) (*model.Album, error) {
	var a model.Album
	err := row.Scan(
		&a.AlbumID,
		&a.Title,
		&a.CoverImage,
		&a.Description,
		&a.ReleaseDate,
		&a.UserID,
		&a.ArtistID,
		&a.Username,
		&a.ArtistName,
		&a.SongCount,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Album, error) {
	sql := `SELECT ` + albumColumns + albumJoins + ` ORDER BY a.created_at DESC`
	return r.queryMany(ctx, sql)
}

func (r *postgresRepository) GetByUser(ctx context.Context, userID int64) ([]model.Album, error) {
	sql := `SELECT ` + albumColumns + albumJoins + ` WHERE a.user_id = $1 ORDER BY a.created_at DESC`
	return r.queryMany(ctx, sql, userID)
}

func (r *postgresRepository) GetByArtist(ctx context.Context, artistID int64) ([]model.Album, error) {
	sql := `SELECT ` + albumColumns + albumJoins + ` WHERE a.artist_id = $1 ORDER BY a.created_at DESC`
	return r.queryMany(ctx, sql, artistID)
}

func (r *postgresRepository) Search(ctx context.Context, term string) ([]model.Album, error) {
	sql := `SELECT ` + albumColumns + albumJoins + `
        WHERE a.title ILIKE $1
            OR a.description ILIKE $1
            OR u.username ILIKE $1
            OR ar.artist_name ILIKE $1
        ORDER BY a.created_at DESC`
	return r.queryMany(ctx, sql, "%"+term+"%")
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Album, error) {
	sql := `SELECT ` + albumColumns + albumJoins + ` WHERE a.album_id = $1`

	a, err := scanAlbum(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to get album by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Album) (*model.Album, error) {
	sql := `
        INSERT INTO albums (title, cover_image, description, release_date, user_id, artist_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING album_id
    `

	var id int64
	err := r.pool.QueryRow(ctx, sql,
		a.Title, a.CoverImage, a.Description, a.ReleaseDate, a.UserID, a.ArtistID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Album) (*model.Album, error) {
	sql := `
        UPDATE albums
        SET title = $1, cover_image = $2, description = $3, release_date = $4,
            artist_id = $5, updated_at = NOW()
        WHERE album_id = $6
    `

	cmdTag, err := r.pool.Exec(ctx, sql,
		a.Title, a.CoverImage, a.Description, a.ReleaseDate, a.ArtistID, a.AlbumID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to update album: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, model.ErrAlbumNotFound
	}

	return r.GetByID(ctx, a.AlbumID)
}

// Delete removes the album; its songs stay behind with a null album_id.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM albums WHERE album_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrAlbumNotFound
	}
	return nil
}

func (r *postgresRepository) queryMany(ctx context.Context, sql string, args ...interface{}) ([]model.Album, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []model.Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		albums = append(albums, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating albums: %w", err)
	}
	return albums, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
