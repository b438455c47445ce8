package model

import "time"

type Playlist struct {
	PlaylistID  int64     `json:"playlistId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CoverImage  *string   `json:"coverImage"`
	IsPublic    bool      `json:"isPublic"`
	UserID      int64     `json:"userId"`
	Username    *string   `json:"username"`
	SongCount   int       `json:"songCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistSong is one entry of a playlist, ordered by Position.
type PlaylistSong struct {
	PlaylistID int64     `json:"playlistId"`
	SongID     int64     `json:"songId"`
	Position   int       `json:"position"`
	AddedAt    time.Time `json:"addedAt"`
	Title      string    `json:"title"`
	FileURL    string    `json:"fileUrl"`
	CoverImage *string   `json:"coverImage"`
	Duration   int       `json:"duration"`
	ArtistName *string   `json:"artistName"`
}

type PlaylistResponse struct {
	PlaylistID  int64     `json:"playlistId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CoverImage  *string   `json:"coverImage"`
	IsPublic    bool      `json:"isPublic"`
	UserID      int64     `json:"userId"`
	Username    *string   `json:"username"`
	SongCount   int       `json:"songCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlaylistDetailResponse includes the ordered songs.
type PlaylistDetailResponse struct {
	PlaylistResponse
	Songs []PlaylistSong `json:"songs"`
}

func (p *Playlist) ToResponse() *PlaylistResponse {
	return &PlaylistResponse{
		PlaylistID:  p.PlaylistID,
		Name:        p.Name,
		Description: p.Description,
		CoverImage:  p.CoverImage,
		IsPublic:    p.IsPublic,
		UserID:      p.UserID,
		Username:    p.Username,
		SongCount:   p.SongCount,
		CreatedAt:   p.CreatedAt,
	}
}
