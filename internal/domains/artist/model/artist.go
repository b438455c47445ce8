package model

import "time"

type Artist struct {
	ArtistID   int64     `json:"artistId"`
	ArtistName string    `json:"artistName"`
	Bio        *string   `json:"bio"`
	Image      *string   `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
	SongCount  int       `json:"songCount"`
	AlbumCount int       `json:"albumCount"`
}

type ArtistResponse struct {
	ArtistID   int64     `json:"artistId"`
	ArtistName string    `json:"artistName"`
	Bio        *string   `json:"bio"`
	Image      *string   `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
	SongCount  int       `json:"songCount"`
	AlbumCount int       `json:"albumCount"`
}

func (a *Artist) ToResponse() *ArtistResponse {
	return &ArtistResponse{
		ArtistID:   a.ArtistID,
		ArtistName: a.ArtistName,
		Bio:        a.Bio,
		Image:      a.Image,
		CreatedAt:  a.CreatedAt,
		SongCount:  a.SongCount,
		AlbumCount: a.AlbumCount,
	}
}
