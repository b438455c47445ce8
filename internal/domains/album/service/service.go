package service

import (
	"context"
	"strings"
	"time"

	"webmusic-backend/internal/domains/album/model"
	"webmusic-backend/internal/domains/album/repository"
	"webmusic-backend/internal/shared/query"
)

type albumService struct {
	repo repository.Repository
}

func NewAlbumService(repo repository.Repository) Service {
	return &albumService{repo: repo}
}

// List follows the same exclusive branch order as songs: search term,
// then owning user, then artist.
func (s *albumService) List(ctx context.Context, filter model.AlbumFilter) (*model.AlbumListResponse, error) {
	var (
		albums []model.Album
		err    error
	)

	switch {
	case filter.SearchTerm != "":
		albums, err = s.repo.Search(ctx, query.EscapeLike(filter.SearchTerm))
	case filter.UserID > 0:
		albums, err = s.repo.GetByUser(ctx, filter.UserID)
	case filter.ArtistID > 0:
		albums, err = s.repo.GetByArtist(ctx, filter.ArtistID)
	default:
		albums, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	page, info := query.Paginate(albums, filter.Page, filter.PageSize)

	responses := make([]model.AlbumResponse, len(page))
	for i := range page {
		responses[i] = *page[i].ToResponse()
	}

	return &model.AlbumListResponse{Albums: responses, PageInfo: info}, nil
}

func (s *albumService) GetByID(ctx context.Context, id int64) (*model.AlbumResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.ToResponse(), nil
}

func (s *albumService) Create(ctx context.Context, req *model.CreateAlbumRequest) (*model.AlbumResponse, error) {
	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Album{
		Title:       strings.TrimSpace(req.Title),
		CoverImage:  req.CoverImage,
		Description: req.Description,
		ReleaseDate: releaseDate,
		UserID:      req.UserID,
		ArtistID:    req.ArtistID,
	})
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *albumService) Update(ctx context.Context, id int64, req *model.UpdateAlbumRequest) (*model.AlbumResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	current.Title = strings.TrimSpace(req.Title)
	current.CoverImage = req.CoverImage
	current.Description = req.Description
	current.ReleaseDate = releaseDate
	current.ArtistID = req.ArtistID

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *albumService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func parseReleaseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
