package service

import (
	"context"

	"webmusic-backend/internal/domains/comment/model"
)

type Service interface {
	ListBySong(ctx context.Context, songID int64, page, pageSize int) (*model.CommentListResponse, error)
	Create(ctx context.Context, req *model.CreateCommentRequest) (*model.Comment, error)
	Update(ctx context.Context, id int64, req *model.UpdateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}
