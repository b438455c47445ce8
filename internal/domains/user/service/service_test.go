package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"webmusic-backend/internal/domains/user/model"
	"webmusic-backend/pkg/jwt"
)

type fakeUserRepository struct {
	users      map[int64]model.User
	nextID     int64
	lastFilter model.UserFilter
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int64]model.User), nextID: 1}
}

func (f *fakeUserRepository) List(ctx context.Context, filter model.UserFilter) ([]model.User, int, error) {
	f.lastFilter = filter
	var out []model.User
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, len(out), nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	stored := *u
	stored.UserID = f.nextID
	stored.CreatedAt = time.Now()
	f.users[f.nextID] = stored
	f.nextID++
	return &stored, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *model.User) (*model.User, error) {
	if _, ok := f.users[u.UserID]; !ok {
		return nil, model.ErrUserNotFound
	}
	f.users[u.UserID] = *u
	return u, nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) && u.UserID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) && u.UserID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	f.users[id] = u
	return nil
}

func newTestService() (Service, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewUserService(repo, jwt.NewManager("test-secret", 15, 72)), repo
}

func registerTestUser(t *testing.T, svc Service, username, email, password string) *model.UserResponse {
	t.Helper()
	u, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return u
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	registerTestUser(t, svc, "alice", "alice@example.com", "correct-horse-1")

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Username: "alice2",
		Email:    "Alice@Example.com",
		Password: "another-pass-22",
	})
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	registerTestUser(t, svc, "alice", "alice@example.com", "correct-horse-1")

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Username: "ALICE",
		Email:    "other@example.com",
		Password: "another-pass-22",
	})
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	svc, repo := newTestService()
	created := registerTestUser(t, svc, "bob", "bob@example.com", "hunter2hunter2")

	assert.Equal(t, model.RoleUser, created.Role)
	assert.True(t, created.IsActive)

	stored := repo.users[created.UserID]
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")))
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService()
	created := registerTestUser(t, svc, "carol", "carol@example.com", "s3cret-passw0rd")

	t.Run("success issues tokens and records login", func(t *testing.T) {
		result, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "carol@example.com",
			Password: "s3cret-passw0rd",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, created.UserID, result.User.UserID)
		assert.NotNil(t, repo.users[created.UserID].LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "carol@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		u := repo.users[created.UserID]
		u.IsActive = false
		repo.users[created.UserID] = u

		_, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "carol@example.com",
			Password: "s3cret-passw0rd",
		})
		assert.ErrorIs(t, err, model.ErrAccountInactive)
	})
}

func TestCheckEmail(t *testing.T) {
	svc, _ := newTestService()
	registerTestUser(t, svc, "dave", "dave@example.com", "longenoughpass")

	exists, err := svc.CheckEmail(context.Background(), "dave@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.CheckEmail(context.Background(), "free@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateKeepsOwnNaturalKeys(t *testing.T) {
	svc, _ := newTestService()
	created := registerTestUser(t, svc, "erin", "erin@example.com", "longenoughpass")

	// Re-submitting the same email and username must not trip the
	// duplicate checks.
	updated, err := svc.Update(context.Background(), created.UserID, &model.UpdateUserRequest{
		Username: "erin",
		Email:    "erin@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "erin", updated.Username)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
