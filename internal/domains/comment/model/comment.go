package model

import "time"

type Comment struct {
	CommentID int64     `json:"commentId"`
	SongID    int64     `json:"songId"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	IsEdited  bool      `json:"isEdited"`
	Username  *string   `json:"username"`
	AvatarURL *string   `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
