package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"webmusic-backend/internal/shared/query"
)

type CreateGenreRequest struct {
	GenreName   string  `json:"genreName"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
}

func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GenreName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 500)),
		validation.Field(&r.CoverImage, validation.Length(0, 500)),
	)
}

type UpdateGenreRequest struct {
	GenreName   string  `json:"genreName"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
}

func (r UpdateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GenreName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 500)),
		validation.Field(&r.CoverImage, validation.Length(0, 500)),
	)
}

// GenreFilter carries list parameters. Search is exclusive with nothing
// here: genres have no other scoping filters.
type GenreFilter struct {
	SearchTerm string
	Page       int
	PageSize   int
}

type GenreListResponse struct {
	Genres []GenreResponse `json:"genres"`
	query.PageInfo
}
