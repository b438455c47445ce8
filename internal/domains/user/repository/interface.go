package repository

import (
	"context"

	"webmusic-backend/internal/domains/user/model"
)

type Repository interface {
	List(ctx context.Context, filter model.UserFilter) ([]model.User, int, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}
