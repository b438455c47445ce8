package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/internal/domains/user/model"
	"webmusic-backend/internal/shared/query"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `
        u.user_id, u.username, u.email, u.password_hash, u.first_name, u.last_name,
        u.avatar_url, u.date_of_birth, u.bio, u.role, u.is_active, u.email_confirmed,
        u.created_at, u.updated_at, u.last_login_at,
        (SELECT COUNT(*) FROM songs s WHERE s.user_id = u.user_id) AS song_count,
        (SELECT COUNT(*) FROM follows f WHERE f.following_id = u.user_id) AS follower_count,
        (SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.user_id) AS following_count
`

// sortColumns is the whitelist for the users listing. Keys are compared
// lower-cased; anything else sorts by username.
var sortColumns = map[string]string{
	"username":  "u.username",
	"email":     "u.email",
	"firstname": "u.first_name",
	"lastname":  "u.last_name",
	"createdat": "u.created_at",
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.AvatarURL,
		&u.DateOfBirth,
		&u.Bio,
		&u.Role,
		&u.IsActive,
		&u.EmailConfirmed,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastLoginAt,
		&u.SongCount,
		&u.FollowerCount,
		&u.FollowingCount,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List pushes search, sort and paging into SQL. Unlike the media
// listings, the total count comes from a second query over the same
// filter.
func (r *postgresRepository) List(ctx context.Context, filter model.UserFilter) ([]model.User, int, error) {
	var (
		where strings.Builder
		args  []interface{}
	)

	term := strings.TrimSpace(filter.SearchTerm)
	if term != "" {
		args = append(args, "%"+query.EscapeLike(term)+"%")
		where.WriteString(` WHERE u.username ILIKE $1
            OR u.email ILIKE $1
            OR u.first_name ILIKE $1
            OR u.last_name ILIKE $1`)
	}

	var total int
	countSQL := `SELECT COUNT(*) FROM users u` + where.String()
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	column, ok := sortColumns[strings.ToLower(filter.SortBy)]
	if !ok {
		column = "u.username"
	}
	direction := "ASC"
	if strings.EqualFold(filter.SortDirection, "desc") {
		direction = "DESC"
	}

	page, pageSize := query.Normalize(filter.Page, filter.PageSize)
	offset := (page - 1) * pageSize

	listSQL := fmt.Sprintf(`SELECT %s FROM users u%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		userColumns, where.String(), column, direction, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users, err := collectUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users u WHERE u.user_id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users u WHERE LOWER(u.email) = LOWER($1)`

	u, err := scanUser(r.pool.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users u WHERE LOWER(u.username) = LOWER($1)`

	u, err := scanUser(r.pool.QueryRow(ctx, sql, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	sql := `
        INSERT INTO users (username, email, password_hash, first_name, last_name,
            avatar_url, date_of_birth, bio, role, is_active, email_confirmed)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING user_id, username, email, password_hash, first_name, last_name,
            avatar_url, date_of_birth, bio, role, is_active, email_confirmed,
            created_at, updated_at, last_login_at, 0, 0, 0
    `

	created, err := scanUser(r.pool.QueryRow(ctx, sql,
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.AvatarURL, u.DateOfBirth, u.Bio, u.Role, u.IsActive, u.EmailConfirmed))
	if err != nil {
		if pgErr := uniqueViolation(err); pgErr != nil {
			return nil, mapUniqueConstraint(pgErr)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *model.User) (*model.User, error) {
	sql := `
        UPDATE users
        SET username = $1, email = $2, first_name = $3, last_name = $4,
            avatar_url = $5, date_of_birth = $6, bio = $7, is_active = $8,
            updated_at = NOW()
        WHERE user_id = $9
        RETURNING user_id, username, email, password_hash, first_name, last_name,
            avatar_url, date_of_birth, bio, role, is_active, email_confirmed,
            created_at, updated_at, last_login_at,
            (SELECT COUNT(*) FROM songs s WHERE s.user_id = users.user_id),
            (SELECT COUNT(*) FROM follows f WHERE f.following_id = users.user_id),
            (SELECT COUNT(*) FROM follows f WHERE f.follower_id = users.user_id)
    `

	updated, err := scanUser(r.pool.QueryRow(ctx, sql,
		u.Username, u.Email, u.FirstName, u.LastName,
		u.AvatarURL, u.DateOfBirth, u.Bio, u.IsActive, u.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		if pgErr := uniqueViolation(err); pgErr != nil {
			return nil, mapUniqueConstraint(pgErr)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}

// Delete fails with ErrUserHasContent while songs, albums or playlists
// still reference the account: those foreign keys are RESTRICT, not
// cascade.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrUserHasContent
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND user_id <> $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1) AND user_id <> $2)`,
		username, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = NOW() WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

func collectUsers(rows pgx.Rows) ([]model.User, error) {
	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func uniqueViolation(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr
	}
	return nil
}

// mapUniqueConstraint picks the business error matching the violated
// index.
func mapUniqueConstraint(pgErr *pgconn.PgError) error {
	if strings.Contains(pgErr.ConstraintName, "username") {
		return model.ErrUsernameTaken
	}
	return model.ErrEmailTaken
}
