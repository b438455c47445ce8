package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"webmusic-backend/internal/domains/user/model"
	"webmusic-backend/internal/domains/user/repository"
	"webmusic-backend/internal/shared/query"
	"webmusic-backend/pkg/jwt"
	"webmusic-backend/pkg/logger"
)

type userService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo repository.Repository, jwtManager *jwt.Manager) Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) List(ctx context.Context, filter model.UserFilter) (*model.UserListResponse, error) {
	filter.Page, filter.PageSize = query.Normalize(filter.Page, filter.PageSize)

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = *users[i].ToResponse()
	}

	return &model.UserListResponse{
		Users: responses,
		PageInfo: query.PageInfo{
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalCount: total,
			TotalPages: query.TotalPages(total, filter.PageSize),
		},
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*model.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.ToResponse(), nil
}

func (s *userService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserResponse, error) {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)

	if err := s.checkNaturalKeys(ctx, email, username, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AvatarURL:    req.AvatarURL,
		DateOfBirth:  dob,
		Bio:          req.Bio,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

func (s *userService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)

	if err := s.checkNaturalKeys(ctx, email, username, id); err != nil {
		return nil, err
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	current.Username = username
	current.Email = email
	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.AvatarURL = req.AvatarURL
	current.DateOfBirth = dob
	current.Bio = req.Bio
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *userService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.EmailExists(ctx, strings.TrimSpace(email), 0)
}

func (s *userService) CheckUsername(ctx context.Context, username string) (bool, error) {
	return s.repo.UsernameExists(ctx, strings.TrimSpace(username), 0)
}

func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	return s.Create(ctx, &model.CreateUserRequest{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      model.RoleUser,
	})
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, model.ErrAccountInactive
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.UserID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.UserID)
	if err != nil {
		return nil, err
	}

	// Login still succeeds if the timestamp write fails.
	if err := s.repo.UpdateLastLogin(ctx, u.UserID); err != nil {
		logger.Warn("Failed to record last login", err)
	}
	now := time.Now()
	u.LastLoginAt = &now

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u.ToResponse(),
	}, nil
}

// checkNaturalKeys pre-checks email and username uniqueness, excluding
// the row being updated. The unique indexes close the remaining race.
func (s *userService) checkNaturalKeys(ctx context.Context, email, username string, excludeID int64) error {
	taken, err := s.repo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return model.ErrEmailTaken
	}

	taken, err = s.repo.UsernameExists(ctx, username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return model.ErrUsernameTaken
	}
	return nil
}

func parseDateOfBirth(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
