package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/artist/model"
	"webmusic-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	artistCacheKeyPrefix = "artist:"
	artistListKeyPrefix  = "artists:list:"
	cacheTTL             = 15 * time.Minute
)

const artistColumns = `
        a.artist_id, a.artist_name, a.bio, a.image, a.created_at,
        (SELECT COUNT(*) FROM songs s WHERE s.artist_id = a.artist_id) AS song_count,
        (SELECT COUNT(*) FROM albums al WHERE al.artist_id = a.artist_id) AS album_count
`

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var a model.Artist
	err := row.Scan(
		&a.ArtistID,
		&a.ArtistName,
		&a.Bio,
		&a.Image,
		&a.CreatedAt,
		&a.SongCount,
		&a.AlbumCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Artist, error) {
	cacheKey := artistListKeyPrefix + "all"

	var cached []model.Artist
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `SELECT ` + artistColumns + ` FROM artists a ORDER BY a.artist_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	artists, err := collectArtists(rows)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, artists, cacheTTL)

	return artists, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	cacheKey := fmt.Sprintf("%s%d", artistCacheKeyPrefix, id)

	var cached model.Artist
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	query := `SELECT ` + artistColumns + ` FROM artists a WHERE a.artist_id = $1`

	a, err := scanArtist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return a, nil
}

func (r *postgresRepository) Search(ctx context.Context, term string) ([]model.Artist, error) {
	cacheKey := artistListKeyPrefix + "search:" + term

	var cached []model.Artist
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `SELECT ` + artistColumns + `
        FROM artists a
        WHERE a.artist_name ILIKE $1 OR a.bio ILIKE $1
        ORDER BY a.artist_name`

	rows, err := r.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	defer rows.Close()

	artists, err := collectArtists(rows)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, artists, cacheTTL)

	return artists, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Artist) (*model.Artist, error) {
	query := `
        INSERT INTO artists (artist_name, bio, image)
        VALUES ($1, $2, $3)
        RETURNING artist_id, artist_name, bio, image, created_at, 0, 0
    `

	created, err := scanArtist(r.pool.QueryRow(ctx, query, a.ArtistName, a.Bio, a.Image))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrArtistNameTaken
		}
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	r.cache.DeletePattern(ctx, artistListKeyPrefix+"*")

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Artist) (*model.Artist, error) {
	query := `
        UPDATE artists
        SET artist_name = $1, bio = $2, image = $3
        WHERE artist_id = $4
        RETURNING artist_id, artist_name, bio, image, created_at,
            (SELECT COUNT(*) FROM songs s WHERE s.artist_id = artists.artist_id),
            (SELECT COUNT(*) FROM albums al WHERE al.artist_id = artists.artist_id)
    `

	updated, err := scanArtist(r.pool.QueryRow(ctx, query, a.ArtistName, a.Bio, a.Image, a.ArtistID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		if isUniqueViolation(err) {
			return nil, model.ErrArtistNameTaken
		}
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	r.cache.Delete(ctx, fmt.Sprintf("%s%d", artistCacheKeyPrefix, a.ArtistID))
	r.cache.DeletePattern(ctx, artistListKeyPrefix+"*")

	return updated, nil
}

// Delete removes the artist; songs and albums that referenced it fall
// back to a null artist_id via ON DELETE SET NULL.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM artists WHERE artist_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrArtistNotFound
	}

	r.cache.Delete(ctx, fmt.Sprintf("%s%d", artistCacheKeyPrefix, id))
	r.cache.DeletePattern(ctx, artistListKeyPrefix+"*")

	return nil
}

func (r *postgresRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM artists WHERE artist_name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check artist name: %w", err)
	}
	return exists, nil
}

func collectArtists(rows pgx.Rows) ([]model.Artist, error) {
	var artists []model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artists: %w", err)
	}
	return artists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
