package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"webmusic-backend/internal/shared/query"
)

type CreatePlaylistRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
	IsPublic    bool    `json:"isPublic"`
	UserID      int64   `json:"userId"`
}

func (r CreatePlaylistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.CoverImage, validation.Length(0, 500)),
		validation.Field(&r.UserID, validation.Required, validation.Min(int64(1))),
	)
}

type UpdatePlaylistRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
	IsPublic    bool    `json:"isPublic"`
}

func (r UpdatePlaylistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.CoverImage, validation.Length(0, 500)),
	)
}

type AddSongRequest struct {
	SongID int64 `json:"songId"`
}

func (r AddSongRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SongID, validation.Required, validation.Min(int64(1))),
	)
}

// PlaylistFilter: search wins, then the owning user, then visibility.
// IsPublic is a tri-state; nil means no visibility filter.
type PlaylistFilter struct {
	UserID        int64
	IsPublic      *bool
	SearchTerm    string
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
}

type PlaylistListResponse struct {
	Playlists []PlaylistResponse `json:"playlists"`
	query.PageInfo
}
