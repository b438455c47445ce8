package model

import "time"

const (
	RoleUser      = "User"
	RoleModerator = "Moderator"
	RoleAdmin     = "Admin"
)

type User struct {
	UserID         int64      `json:"userId"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	FirstName      *string    `json:"firstName"`
	LastName       *string    `json:"lastName"`
	AvatarURL      *string    `json:"avatarUrl"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	Bio            *string    `json:"bio"`
	Role           string     `json:"role"`
	IsActive       bool       `json:"isActive"`
	EmailConfirmed bool       `json:"emailConfirmed"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	LastLoginAt    *time.Time `json:"lastLoginAt"`
	SongCount      int        `json:"songCount"`
	FollowerCount  int        `json:"followerCount"`
	FollowingCount int        `json:"followingCount"`
}

type UserResponse struct {
	UserID         int64      `json:"userId"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FirstName      *string    `json:"firstName"`
	LastName       *string    `json:"lastName"`
	AvatarURL      *string    `json:"avatarUrl"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	Bio            *string    `json:"bio"`
	Role           string     `json:"role"`
	IsActive       bool       `json:"isActive"`
	EmailConfirmed bool       `json:"emailConfirmed"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastLoginAt    *time.Time `json:"lastLoginAt"`
	SongCount      int        `json:"songCount"`
	FollowerCount  int        `json:"followerCount"`
	FollowingCount int        `json:"followingCount"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		UserID:         u.UserID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		AvatarURL:      u.AvatarURL,
		DateOfBirth:    u.DateOfBirth,
		Bio:            u.Bio,
		Role:           u.Role,
		IsActive:       u.IsActive,
		EmailConfirmed: u.EmailConfirmed,
		CreatedAt:      u.CreatedAt,
		LastLoginAt:    u.LastLoginAt,
		SongCount:      u.SongCount,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
	}
}
