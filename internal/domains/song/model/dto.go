package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"webmusic-backend/internal/shared/query"
)

type CreateSongRequest struct {
	Title       string  `json:"title"`
	FileURL     string  `json:"fileUrl"`
	CoverImage  *string `json:"coverImage"`
	Duration    int     `json:"duration"`
	Description *string `json:"description"`
	UserID      int64   `json:"userId"`
	GenreID     *int64  `json:"genreId"`
	AlbumID     *int64  `json:"albumId"`
	ArtistID    *int64  `json:"artistId"`
}

func (r CreateSongRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.FileURL, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.CoverImage, validation.Length(0, 500)),
		validation.Field(&r.Duration, validation.Min(0)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.UserID, validation.Required, validation.Min(int64(1))),
	)
}

type UpdateSongRequest struct {
	Title       string  `json:"title"`
	FileURL     string  `json:"fileUrl"`
	CoverImage  *string `json:"coverImage"`
	Duration    int     `json:"duration"`
	Description *string `json:"description"`
	GenreID     *int64  `json:"genreId"`
	AlbumID     *int64  `json:"albumId"`
	ArtistID    *int64  `json:"artistId"`
}

func (r UpdateSongRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.FileURL, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.CoverImage, validation.Length(0, 500)),
		validation.Field(&r.Duration, validation.Min(0)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

// SongFilter carries every supported list parameter. The filters are
// exclusive: a search term wins over everything, then the owning user,
// then genre, album and artist in that order. Zero means absent.
// SortBy and SortDirection are accepted for wire compatibility but not
// applied.
type SongFilter struct {
	UserID        int64
	GenreID       int64
	AlbumID       int64
	ArtistID      int64
	SearchTerm    string
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
}

type SongListResponse struct {
	Songs []SongResponse `json:"songs"`
	query.PageInfo
}
