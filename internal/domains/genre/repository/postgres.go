package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/genre/model"
	"webmusic-backend/pkg/cache"
)

// postgresRepository reads genres through a cache-aside Redis layer:
// genres are hot reference data joined into almost every song listing.
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
	genreCacheKeyPrefix = "genre:"
	genreListKeyPrefix  = "genres:list:"
	cacheTTL            = 15 * time.Minute
)

const genreColumns = `
        g.genre_id, g.genre_name, g.description, g.cover_image, g.created_at,
        (SELECT COUNT(*) FROM songs s WHERE s.genre_id = g.genre_id) AS song_count
`

func scanGenre(row pgx.Row) (*model.Genre, error) {
	var g model.Genre
	err := row.Scan(
		&g.GenreID,
		&g.GenreName,
		&g.Description,
		&g.CoverImage,
		&g.CreatedAt,
		&g.SongCount,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Genre, error) {
	cacheKey := genreListKeyPrefix + "all"

	var cached []model.Genre
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `SELECT ` + genreColumns + ` FROM genres g ORDER BY g.genre_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	genres, err := collectGenres(rows)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, genres, cacheTTL)

	return genres, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	cacheKey := fmt.Sprintf("%s%d", genreCacheKeyPrefix, id)

	var cached model.Genre
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	query := `SELECT ` + genreColumns + ` FROM genres g WHERE g.genre_id = $1`

	g, err := scanGenre(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, g, cacheTTL)

	return g, nil
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*model.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres g WHERE g.genre_name = $1`

	g, err := scanGenre(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by name: %w", err)
	}

	return g, nil
}

func (r *postgresRepository) Search(ctx context.Context, term string) ([]model.Genre, error) {
	cacheKey := genreListKeyPrefix + "search:" + term

	var cached []model.Genre
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `SELECT ` + genreColumns + `
        FROM genres g
        WHERE g.genre_name ILIKE $1 OR g.description ILIKE $1
        ORDER BY g.genre_name`

	rows, err := r.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search genres: %w", err)
	}
	defer rows.Close()

	genres, err := collectGenres(rows)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, genres, cacheTTL)

	return genres, nil
}

func (r *postgresRepository) Create(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	query := `
        INSERT INTO genres (genre_name, description, cover_image)
        VALUES ($1, $2, $3)
        RETURNING genre_id, genre_name, description, cover_image, created_at, 0
    `

	created, err := scanGenre(r.pool.QueryRow(ctx, query, g.GenreName, g.Description, g.CoverImage))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrGenreNameTaken
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	r.cache.DeletePattern(ctx, genreListKeyPrefix+"*")

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	query := `
        UPDATE genres
        SET genre_name = $1, description = $2, cover_image = $3
        WHERE genre_id = $4
        RETURNING genre_id, genre_name, description, cover_image, created_at,
            (SELECT COUNT(*) FROM songs s WHERE s.genre_id = genres.genre_id)
    `

	updated, err := scanGenre(r.pool.QueryRow(ctx, query, g.GenreName, g.Description, g.CoverImage, g.GenreID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		if isUniqueViolation(err) {
			return nil, model.ErrGenreNameTaken
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}

	r.cache.Delete(ctx, fmt.Sprintf("%s%d", genreCacheKeyPrefix, g.GenreID))
	r.cache.DeletePattern(ctx, genreListKeyPrefix+"*")

	return updated, nil
}

// Delete removes the genre; dependent songs keep playing with a null
// genre_id via the ON DELETE SET NULL foreign key.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE genre_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrGenreNotFound
	}

	r.cache.Delete(ctx, fmt.Sprintf("%s%d", genreCacheKeyPrefix, id))
	r.cache.DeletePattern(ctx, genreListKeyPrefix+"*")

	return nil
}

func (r *postgresRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM genres WHERE genre_name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check genre name: %w", err)
	}
	return exists, nil
}

func collectGenres(rows pgx.Rows) ([]model.Genre, error) {
	var genres []model.Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}
	return genres, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
