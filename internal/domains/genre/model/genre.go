package model

import "time"

// Genre is a flat lookup row. SongCount is computed on read from the
// songs table, never trusted from a stored column.
type Genre struct {
	GenreID     int64     `json:"genreId"`
	GenreName   string    `json:"genreName"`
	Description *string   `json:"description"`
	CoverImage  *string   `json:"coverImage"`
	CreatedAt   time.Time `json:"createdAt"`
	SongCount   int       `json:"songCount"`
}

type GenreResponse struct {
	GenreID     int64     `json:"genreId"`
	GenreName   string    `json:"genreName"`
	Description *string   `json:"description,omitempty"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	SongCount   int       `json:"songCount"`
}

func (g *Genre) ToResponse() *GenreResponse {
	return &GenreResponse{
		GenreID:     g.GenreID,
		GenreName:   g.GenreName,
		Description: g.Description,
		CoverImage:  g.CoverImage,
		CreatedAt:   g.CreatedAt,
		SongCount:   g.SongCount,
	}
}
