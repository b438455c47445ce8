package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/song/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// songColumns joins the related display names into the same fetch.
// LEFT JOINs keep songs visible when a reference is null or points at a
// deleted row; the name simply comes back null.
const songColumns = `
        s.song_id, s.title, s.file_url, s.cover_image, s.duration, s.description,
        s.status, s.user_id, s.genre_id, s.album_id, s.artist_id,
        u.username, g.genre_name, al.title, ar.artist_name,
        s.view_count,
        (SELECT COUNT(*) FROM likes l WHERE l.song_id = s.song_id) AS like_count,
        (SELECT COUNT(*) FROM comments c WHERE c.song_id = s.song_id) AS comment_count,
        s.created_at, s.updated_at
`

const songJoins = `
        FROM songs s
        LEFT JOIN users u ON u.user_id = s.user_id
        LEFT JOIN genres g ON g.genre_id = s.genre_id
        LEFT JOIN albums al ON al.album_id = s.album_id
        LEFT JOIN artists ar ON ar.artist_id = s.artist_id
`

func scanSong(row pgx.Row) (*model.Song, error) {
	var s model.Song
	err := row.Scan(
		&s.SongID,
		&s.Title,
		&s.FileURL,
		&s.CoverImage,
		&s.Duration,
		&s.Description,
		&s.Status,
		&s.UserID,
		&s.GenreID,
		&s.AlbumID,
		&s.ArtistID,
		&s.Username,
		&s.GenreName,
		&s.AlbumTitle,
		&s.ArtistName,
		&s.ViewCount,
		&s.LikeCount,
		&s.CommentCount,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + ` ORDER BY s.created_at DESC`
	return r.queryMany(ctx, sql)
}

func (r *postgresRepository) GetByUser(ctx context.Context, userID int64) ([]model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + ` WHERE s.user_id = $1 ORDER BY s.created_at DESC`
	return r.queryMany(ctx, sql, userID)
}

func (r *postgresRepository) GetByGenre(ctx context.Context, genreID int64) ([]model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + ` WHERE s.genre_id = $1 ORDER BY s.created_at DESC`
	return r.queryMany(ctx, sql, genreID)
}

func (r *postgresRepository) GetByAlbum(ctx context.Context, albumID int64) ([]model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + ` WHERE s.album_id = $1 ORDER BY s.created_at DESC`
	return r.queryMany(ctx, sql, albumID)
}

func (r *postgresRepository) GetByArtist(ctx context.Context, artistID int64) ([]model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + ` WHERE s.artist_id = $1 ORDER BY s.created_at DESC`
	return r.queryMany(ctx, sql, artistID)
}

// Search matches the term against the song's own text and the joined
// display names, so a hit on the artist or uploader name surfaces the
// song too.
func (r *postgresRepository) Search(ctx context.Context, term string) ([]model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + `
        WHERE s.title ILIKE $1
            OR s.description ILIKE $1
            OR u.username ILIKE $1
            OR g.genre_name ILIKE $1
            OR al.title ILIKE $1
            OR ar.artist_name ILIKE $1
        ORDER BY s.created_at DESC`
	return r.queryMany(ctx, sql, "%"+term+"%")
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + ` WHERE s.song_id = $1`

	s, err := scanSong(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to get song by id: %w", err)
	}
	return s, nil
}

func (r *postgresRepository) GetPopular(ctx context.Context, limit int) ([]model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + `
        WHERE s.status = $1
        ORDER BY s.view_count DESC, s.song_id
        LIMIT $2`
	return r.queryMany(ctx, sql, model.StatusApproved, limit)
}

func (r *postgresRepository) GetRecent(ctx context.Context, limit int) ([]model.Song, error) {
	sql := `SELECT ` + songColumns + songJoins + `
        WHERE s.status = $1
        ORDER BY s.created_at DESC, s.song_id
        LIMIT $2`
	return r.queryMany(ctx, sql, model.StatusApproved, limit)
}

func (r *postgresRepository) Create(ctx context.Context, s *model.Song) (*model.Song, error) {
	sql := `
        INSERT INTO songs (title, file_url, cover_image, duration, description,
            status, user_id, genre_id, album_id, artist_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING song_id
    `

	var id int64
	err := r.pool.QueryRow(ctx, sql,
		s.Title, s.FileURL, s.CoverImage, s.Duration, s.Description,
		s.Status, s.UserID, s.GenreID, s.AlbumID, s.ArtistID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to create song: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, s *model.Song) (*model.Song, error) {
	sql := `
        UPDATE songs
        SET title = $1, file_url = $2, cover_image = $3, duration = $4,
            description = $5, genre_id = $6, album_id = $7, artist_id = $8,
            updated_at = NOW()
        WHERE song_id = $9
    `

	cmdTag, err := r.pool.Exec(ctx, sql,
		s.Title, s.FileURL, s.CoverImage, s.Duration,
		s.Description, s.GenreID, s.AlbumID, s.ArtistID, s.SongID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to update song: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, model.ErrSongNotFound
	}

	return r.GetByID(ctx, s.SongID)
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE songs SET status = $1, updated_at = NOW() WHERE song_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update song status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrSongNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM songs WHERE song_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrSongNotFound
	}
	return nil
}

func (r *postgresRepository) queryMany(ctx context.Context, sql string, args ...interface{}) ([]model.Song, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var songs []model.Song
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		songs = append(songs, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating songs: %w", err)
	}
	return songs, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
