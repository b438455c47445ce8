package service

import (
	"context"
	"strings"

	"webmusic-backend/internal/domains/playlist/model"
	"webmusic-backend/internal/domains/playlist/repository"
	"webmusic-backend/internal/shared/query"
)

type playlistService struct {
	repo repository.Repository
}

func NewPlaylistService(repo repository.Repository) Service {
	return &playlistService{repo: repo}
}

// List follows the exclusive branch order: search term, then owning
// user, then visibility.
func (s *playlistService) List(ctx context.Context, filter model.PlaylistFilter) (*model.PlaylistListResponse, error) {
	var (
		playlists []model.Playlist
		err       error
	)

	switch {
	case filter.SearchTerm != "":
		playlists, err = s.repo.Search(ctx, query.EscapeLike(filter.SearchTerm))
	case filter.UserID > 0:
		playlists, err = s.repo.GetByUser(ctx, filter.UserID)
	case filter.IsPublic != nil:
		playlists, err = s.repo.GetByVisibility(ctx, *filter.IsPublic)
	default:
		playlists, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	page, info := query.Paginate(playlists, filter.Page, filter.PageSize)

	responses := make([]model.PlaylistResponse, len(page))
	for i := range page {
		responses[i] = *page[i].ToResponse()
	}

	return &model.PlaylistListResponse{Playlists: responses, PageInfo: info}, nil
}

// GetByID returns the playlist together with its ordered songs.
func (s *playlistService) GetByID(ctx context.Context, id int64) (*model.PlaylistDetailResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	songs, err := s.repo.GetSongs(ctx, id)
	if err != nil {
		return nil, err
	}
	if songs == nil {
		songs = []model.PlaylistSong{}
	}

	return &model.PlaylistDetailResponse{
		PlaylistResponse: *p.ToResponse(),
		Songs:            songs,
	}, nil
}

func (s *playlistService) Create(ctx context.Context, req *model.CreatePlaylistRequest) (*model.PlaylistResponse, error) {
	created, err := s.repo.Create(ctx, &model.Playlist{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CoverImage:  req.CoverImage,
		IsPublic:    req.IsPublic,
		UserID:      req.UserID,
	})
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *playlistService) Update(ctx context.Context, id int64, req *model.UpdatePlaylistRequest) (*model.PlaylistResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Description = req.Description
	current.CoverImage = req.CoverImage
	current.IsPublic = req.IsPublic

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *playlistService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *playlistService) AddSong(ctx context.Context, playlistID, songID int64) error {
	if _, err := s.repo.GetByID(ctx, playlistID); err != nil {
		return err
	}
	return s.repo.AddSong(ctx, playlistID, songID)
}

func (s *playlistService) RemoveSong(ctx context.Context, playlistID, songID int64) error {
	if _, err := s.repo.GetByID(ctx, playlistID); err != nil {
		return err
	}
	return s.repo.RemoveSong(ctx, playlistID, songID)
}

func (s *playlistService) GetSongs(ctx context.Context, playlistID int64) ([]model.PlaylistSong, error) {
	if _, err := s.repo.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}

	songs, err := s.repo.GetSongs(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if songs == nil {
		songs = []model.PlaylistSong{}
	}
	return songs, nil
}
