package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"webmusic-backend/internal/shared/query"
)

type CreateCommentRequest struct {
	SongID  int64  `json:"songId"`
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SongID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.UserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Content, validation.Required, validation.Length(1, 1000)),
	)
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, 1000)),
	)
}

type CommentListResponse struct {
	Comments []Comment `json:"comments"`
	query.PageInfo
}
