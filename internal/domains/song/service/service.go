package service

import (
	"context"
	"strings"

	"webmusic-backend/internal/domains/song/model"
	"webmusic-backend/internal/domains/song/repository"
	"webmusic-backend/internal/shared/query"
)

const defaultChartLimit = 10

type songService struct {
	repo repository.Repository
}

func NewSongService(repo repository.Repository) Service {
	return &songService{repo: repo}
}

// List materializes the filtered set and pages it in memory, so the
// reported total always covers everything the filter matched.
//
// Exactly one filter branch runs: any non-empty search term, even
// whitespace, beats the owning user, which beats genre, album and
// artist. The sort parameters on the filter are accepted but not
// applied; ordering is fixed per branch.
func (s *songService) List(ctx context.Context, filter model.SongFilter) (*model.SongListResponse, error) {
	var (
		songs []model.Song
		err   error
	)

	switch {
	case filter.SearchTerm != "":
		songs, err = s.repo.Search(ctx, query.EscapeLike(filter.SearchTerm))
	case filter.UserID > 0:
		songs, err = s.repo.GetByUser(ctx, filter.UserID)
	case filter.GenreID > 0:
		songs, err = s.repo.GetByGenre(ctx, filter.GenreID)
	case filter.AlbumID > 0:
		songs, err = s.repo.GetByAlbum(ctx, filter.AlbumID)
	case filter.ArtistID > 0:
		songs, err = s.repo.GetByArtist(ctx, filter.ArtistID)
	default:
		songs, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	page, info := query.Paginate(songs, filter.Page, filter.PageSize)

	responses := make([]model.SongResponse, len(page))
	for i := range page {
		responses[i] = *page[i].ToResponse()
	}

	return &model.SongListResponse{Songs: responses, PageInfo: info}, nil
}

func (s *songService) GetByID(ctx context.Context, id int64) (*model.SongResponse, error) {
	song, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return song.ToResponse(), nil
}

func (s *songService) GetPopular(ctx context.Context, limit int) ([]model.SongResponse, error) {
	return s.chart(ctx, limit, s.repo.GetPopular)
}

func (s *songService) GetRecent(ctx context.Context, limit int) ([]model.SongResponse, error) {
	return s.chart(ctx, limit, s.repo.GetRecent)
}

func (s *songService) chart(ctx context.Context, limit int, fetch func(context.Context, int) ([]model.Song, error)) ([]model.SongResponse, error) {
	if limit < 1 || limit > query.MaxPageSize {
		limit = defaultChartLimit
	}

	songs, err := fetch(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]model.SongResponse, len(songs))
	for i := range songs {
		responses[i] = *songs[i].ToResponse()
	}
	return responses, nil
}

// Create stores new uploads as Pending; moderation moves them on.
func (s *songService) Create(ctx context.Context, req *model.CreateSongRequest) (*model.SongResponse, error) {
	created, err := s.repo.Create(ctx, &model.Song{
		Title:       strings.TrimSpace(req.Title),
		FileURL:     req.FileURL,
		CoverImage:  req.CoverImage,
		Duration:    req.Duration,
		Description: req.Description,
		Status:      model.StatusPending,
		UserID:      req.UserID,
		GenreID:     req.GenreID,
		AlbumID:     req.AlbumID,
		ArtistID:    req.ArtistID,
	})
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *songService) Update(ctx context.Context, id int64, req *model.UpdateSongRequest) (*model.SongResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Title = strings.TrimSpace(req.Title)
	current.FileURL = req.FileURL
	current.CoverImage = req.CoverImage
	current.Duration = req.Duration
	current.Description = req.Description
	current.GenreID = req.GenreID
	current.AlbumID = req.AlbumID
	current.ArtistID = req.ArtistID

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *songService) Approve(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, model.StatusApproved)
}

func (s *songService) Reject(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, model.StatusRejected)
}

func (s *songService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
