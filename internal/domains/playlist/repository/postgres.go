package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/playlist/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const playlistColumns = `
        p.playlist_id, p.name, p.description, p.cover_image, p.is_public,
        p.user_id, u.username,
        (SELECT COUNT(*) FROM playlist_songs ps WHERE ps.playlist_id = p.playlist_id) AS song_count,
        p.created_at, p.updated_at
`

const playlistJoins = `
        FROM playlists p
        LEFT JOIN users u ON u.user_id = p.user_id
`

func scanPlaylist(row pgx.Row) (*model.Playlist, error) {
	var p model.Playlist
	err := row.Scan(
		&p.PlaylistID,
		&p.Name,
		&p.Description,
		&p.CoverImage,
		&p.IsPublic,
		&p.UserID,
		&p.Username,
		&p.SongCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Playlist, error) {
	sql := `SELECT ` + playlistColumns + playlistJoins + ` ORDER BY p.created_at DESC`
	return r.queryMany(ctx, sql)
}

func (r *postgresRepository) GetByUser(ctx context.Context, userID int64) ([]model.Playlist, error) {
	sql := `SELECT ` + playlistColumns + playlistJoins + ` WHERE p.user_id = $1 ORDER BY p.created_at DESC`
	return r.queryMany(ctx, sql, userID)
}

func (r *postgresRepository) GetByVisibility(ctx context.Context, isPublic bool) ([]model.Playlist, error) {
	sql := `SELECT ` + playlistColumns + playlistJoins + ` WHERE p.is_public = $1 ORDER BY p.created_at DESC`
	return r.queryMany(ctx, sql, isPublic)
}

func (r *postgresRepository) Search(ctx context.Context, term string) ([]model.Playlist, error) {
	sql := `SELECT ` + playlistColumns + playlistJoins + `
        WHERE p.name ILIKE $1
            OR p.description ILIKE $1
            OR u.username ILIKE $1
        ORDER BY p.created_at DESC`
	return r.queryMany(ctx, sql, "%"+term+"%")
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	sql := `SELECT ` + playlistColumns + playlistJoins + ` WHERE p.playlist_id = $1`

	p, err := scanPlaylist(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to get playlist by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Playlist) (*model.Playlist, error) {
	sql := `
        INSERT INTO playlists (name, description, cover_image, is_public, user_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING playlist_id
    `

	var id int64
	err := r.pool.QueryRow(ctx, sql,
		p.Name, p.Description, p.CoverImage, p.IsPublic, p.UserID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Playlist) (*model.Playlist, error) {
	sql := `
        UPDATE playlists
        SET name = $1, description = $2, cover_image = $3, is_public = $4,
            updated_at = NOW()
        WHERE playlist_id = $5
    `

	cmdTag, err := r.pool.Exec(ctx, sql,
		p.Name, p.Description, p.CoverImage, p.IsPublic, p.PlaylistID)
	if err != nil {
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, model.ErrPlaylistNotFound
	}

	return r.GetByID(ctx, p.PlaylistID)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE playlist_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrPlaylistNotFound
	}
	return nil
}

// AddSong appends at the end, computing the next position inside the
// insert. Two concurrent adds to one playlist can still land on the
// same position; positions only drive ordering, so ties are tolerated.
func (r *postgresRepository) AddSong(ctx context.Context, playlistID, songID int64) error {
	sql := `
        INSERT INTO playlist_songs (playlist_id, song_id, position)
        SELECT $1, $2, COALESCE(MAX(position), 0) + 1
        FROM playlist_songs
        WHERE playlist_id = $1
    `

	_, err := r.pool.Exec(ctx, sql, playlistID, songID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSongAlreadyInPlaylist
		}
		if isForeignKeyViolation(err) {
			return model.ErrInvalidReference
		}
		return fmt.Errorf("failed to add song to playlist: %w", err)
	}
	return nil
}

func (r *postgresRepository) RemoveSong(ctx context.Context, playlistID, songID int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`,
		playlistID, songID)
	if err != nil {
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrSongNotInPlaylist
	}
	return nil
}

func (r *postgresRepository) GetSongs(ctx context.Context, playlistID int64) ([]model.PlaylistSong, error) {
	sql := `
        SELECT ps.playlist_id, ps.song_id, ps.position, ps.added_at,
            s.title, s.file_url, s.cover_image, s.duration, ar.artist_name
        FROM playlist_songs ps
        JOIN songs s ON s.song_id = ps.song_id
        LEFT JOIN artists ar ON ar.artist_id = s.artist_id
        WHERE ps.playlist_id = $1
        ORDER BY ps.position
    `

	rows, err := r.pool.Query(ctx, sql, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist songs: %w", err)
	}
	defer rows.Close()

	var songs []model.PlaylistSong
	for rows.Next() {
		var ps model.PlaylistSong
		err := rows.Scan(
			&ps.PlaylistID,
			&ps.SongID,
			&ps.Position,
			&ps.AddedAt,
			&ps.Title,
			&ps.FileURL,
			&ps.CoverImage,
			&ps.Duration,
			&ps.ArtistName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist song: %w", err)
		}
		songs = append(songs, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playlist songs: %w", err)
	}
	return songs, nil
}

func (r *postgresRepository) queryMany(ctx context.Context, sql string, args ...interface{}) ([]model.Playlist, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []model.Playlist
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playlists: %w", err)
	}
	return playlists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
