package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"webmusic-backend/internal/shared/query"
)

type CreateArtistRequest struct {
	ArtistName string  `json:"artistName"`
	Bio        *string `json:"bio"`
	Image      *string `json:"image"`
}

func (r CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.Image, validation.Length(0, 500)),
	)
}

type UpdateArtistRequest struct {
	ArtistName string  `json:"artistName"`
	Bio        *string `json:"bio"`
	Image      *string `json:"image"`
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.Image, validation.Length(0, 500)),
	)
}

type ArtistFilter struct {
	SearchTerm string
	Page       int
	PageSize   int
}

type ArtistListResponse struct {
	Artists []ArtistResponse `json:"artists"`
	query.PageInfo
}
