package service

import (
	"context"
	"strings"

	"webmusic-backend/internal/domains/comment/model"
	"webmusic-backend/internal/domains/comment/repository"
	"webmusic-backend/internal/shared/query"
)

type commentService struct {
	repo repository.Repository
}

func NewCommentService(repo repository.Repository) Service {
	return &commentService{repo: repo}
}

// ListBySong never reports not-found: a song without comments (or an
// unknown song id) yields an empty page.
func (s *commentService) ListBySong(ctx context.Context, songID int64, page, pageSize int) (*model.CommentListResponse, error) {
	comments, err := s.repo.GetBySong(ctx, songID)
	if err != nil {
		return nil, err
	}

	pageItems, info := query.Paginate(comments, page, pageSize)

	return &model.CommentListResponse{Comments: pageItems, PageInfo: info}, nil
}

func (s *commentService) Create(ctx context.Context, req *model.CreateCommentRequest) (*model.Comment, error) {
	return s.repo.Create(ctx, &model.Comment{
		SongID:  req.SongID,
		UserID:  req.UserID,
		Content: strings.TrimSpace(req.Content),
	})
}

func (s *commentService) Update(ctx context.Context, id int64, req *model.UpdateCommentRequest) (*model.Comment, error) {
	return s.repo.Update(ctx, id, strings.TrimSpace(req.Content))
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
