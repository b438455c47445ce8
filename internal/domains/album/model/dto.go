package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"webmusic-backend/internal/shared/query"
)

type CreateAlbumRequest struct {
	Title       string  `json:"title"`
	CoverImage  *string `json:"coverImage"`
	Description *string `json:"description"`
	ReleaseDate *string `json:"releaseDate"`
	UserID      int64   `json:"userId"`
	ArtistID    *int64  `json:"artistId"`
}

func (r CreateAlbumRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.CoverImage, validation.Length(0, 500)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.ReleaseDate, validation.Date("2006-01-02")),
		validation.Field(&r.UserID, validation.Required, validation.Min(int64(1))),
	)
}

type UpdateAlbumRequest struct {
	Title       string  `json:"title"`
	CoverImage  *string `json:"coverImage"`
	Description *string `json:"description"`
	ReleaseDate *string `json:"releaseDate"`
	ArtistID    *int64  `json:"artistId"`
}

func (r UpdateAlbumRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.CoverImage, validation.Length(0, 500)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.ReleaseDate, validation.Date("2006-01-02")),
	)
}

// AlbumFilter mirrors the song filter minus genre and album scoping:
// search wins, then the owning user, then the artist. Sort parameters
// are accepted and unused.
type AlbumFilter struct {
	UserID        int64
	ArtistID      int64
	SearchTerm    string
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
}

type AlbumListResponse struct {
	Albums []AlbumResponse `json:"albums"`
	query.PageInfo
}
