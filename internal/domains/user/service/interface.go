package service

import (
	"context"

	"webmusic-backend/internal/domains/user/model"
)

type Service interface {
	List(ctx context.Context, filter model.UserFilter) (*model.UserListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.UserResponse, error)
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserResponse, error)
	Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.UserResponse, error)
	Delete(ctx context.Context, id int64) error
	CheckEmail(ctx context.Context, email string) (bool, error)
	CheckUsername(ctx context.Context, username string) (bool, error)

	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}
