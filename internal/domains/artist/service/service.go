package service

import (
	"context"
	"strings"

	"webmusic-backend/internal/domains/artist/model"
	"webmusic-backend/internal/domains/artist/repository"
	"webmusic-backend/internal/shared/query"
)

type artistService struct {
	repo repository.Repository
}

func NewArtistService(repo repository.Repository) Service {
	return &artistService{repo: repo}
}

func (s *artistService) List(ctx context.Context, filter model.ArtistFilter) (*model.ArtistListResponse, error) {
	var (
		artists []model.Artist
		err     error
	)

	if filter.SearchTerm != "" {
		artists, err = s.repo.Search(ctx, query.EscapeLike(filter.SearchTerm))
	} else {
		artists, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	page, info := query.Paginate(artists, filter.Page, filter.PageSize)

	responses := make([]model.ArtistResponse, len(page))
	for i := range page {
		responses[i] = *page[i].ToResponse()
	}

	return &model.ArtistListResponse{Artists: responses, PageInfo: info}, nil
}

func (s *artistService) GetByID(ctx context.Context, id int64) (*model.ArtistResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.ToResponse(), nil
}

func (s *artistService) Create(ctx context.Context, req *model.CreateArtistRequest) (*model.ArtistResponse, error) {
	name := strings.TrimSpace(req.ArtistName)

	taken, err := s.repo.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrArtistNameTaken
	}

	created, err := s.repo.Create(ctx, &model.Artist{
		ArtistName: name,
		Bio:        req.Bio,
		Image:      req.Image,
	})
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

func (s *artistService) Update(ctx context.Context, id int64, req *model.UpdateArtistRequest) (*model.ArtistResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.ArtistName)

	if name != current.ArtistName {
		taken, err := s.repo.NameExists(ctx, name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.ErrArtistNameTaken
		}
	}

	current.ArtistName = name
	current.Bio = req.Bio
	current.Image = req.Image

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

func (s *artistService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
