package service

import (
	"context"
	"strings"

	"webmusic-backend/internal/domains/genre/model"
	"webmusic-backend/internal/domains/genre/repository"
	"webmusic-backend/internal/shared/query"
)

type genreService struct {
	repo repository.Repository
}

func NewGenreService(repo repository.Repository) Service {
	return &genreService{repo: repo}
}

// List returns one page of genres. The whole filtered set is
// materialized first so TotalCount covers everything, then the page is
// sliced in memory.
func (s *genreService) List(ctx context.Context, filter model.GenreFilter) (*model.GenreListResponse, error) {
	var (
		genres []model.Genre
		err    error
	)

	if filter.SearchTerm != "" {
		genres, err = s.repo.Search(ctx, query.EscapeLike(filter.SearchTerm))
	} else {
		genres, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	page, info := query.Paginate(genres, filter.Page, filter.PageSize)

	responses := make([]model.GenreResponse, len(page))
	for i := range page {
		responses[i] = *page[i].ToResponse()
	}

	return &model.GenreListResponse{Genres: responses, PageInfo: info}, nil
}

func (s *genreService) GetByID(ctx context.Context, id int64) (*model.GenreResponse, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.ToResponse(), nil
}

func (s *genreService) Create(ctx context.Context, req *model.CreateGenreRequest) (*model.GenreResponse, error) {
	name := strings.TrimSpace(req.GenreName)

	// Pre-check keeps the common case friendly; the unique index on
	// genre_name is what actually closes the race.
	taken, err := s.repo.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrGenreNameTaken
	}

	created, err := s.repo.Create(ctx, &model.Genre{
		GenreName:   name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

func (s *genreService) Update(ctx context.Context, id int64, req *model.UpdateGenreRequest) (*model.GenreResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.GenreName)

	// Only re-check uniqueness when the name actually changed.
	if name != current.GenreName {
		taken, err := s.repo.NameExists(ctx, name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.ErrGenreNameTaken
		}
	}

	current.GenreName = name
	current.Description = req.Description
	current.CoverImage = req.CoverImage

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
