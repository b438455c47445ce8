package model

import "time"

type Album struct {
	AlbumID     int64      `json:"albumId"`
	Title       string     `json:"title"`
	CoverImage  *string    `json:"coverImage"`
	Description *string    `json:"description"`
	ReleaseDate *time.Time `json:"releaseDate"`
	UserID      int64      `json:"userId"`
	ArtistID    *int64     `json:"artistId"`
	Username    *string    `json:"username"`
	ArtistName  *string    `json:"artistName"`
	SongCount   int        `json:"songCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type AlbumResponse struct {
	AlbumID     int64      `json:"albumId"`
	Title       string     `json:"title"`
	CoverImage  *string    `json:"coverImage"`
	Description *string    `json:"description"`
	ReleaseDate *time.Time `json:"releaseDate"`
	UserID      int64      `json:"userId"`
	ArtistID    *int64     `json:"artistId"`
	Username    *string    `json:"username"`
	ArtistName  *string    `json:"artistName"`
	SongCount   int        `json:"songCount"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (a *Album) ToResponse() *AlbumResponse {
	return &AlbumResponse{
		AlbumID:     a.AlbumID,
		Title:       a.Title,
		CoverImage:  a.CoverImage,
		Description: a.Description,
		ReleaseDate: a.ReleaseDate,
		UserID:      a.UserID,
		ArtistID:    a.ArtistID,
		Username:    a.Username,
		ArtistName:  a.ArtistName,
		SongCount:   a.SongCount,
		CreatedAt:   a.CreatedAt,
	}
}
