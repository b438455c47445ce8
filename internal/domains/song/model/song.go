package model

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Song is the enriched read model: the display names of the related
// rows come back from the same fetch as the song itself. A nil FK or a
// row that no longer exists both surface as a nil name.
type Song struct {
	SongID       int64     `json:"songId"`
	Title        string    `json:"title"`
	FileURL      string    `json:"fileUrl"`
	CoverImage   *string   `json:"coverImage"`
	Duration     int       `json:"duration"`
	Description  *string   `json:"description"`
	Status       string    `json:"status"`
	UserID       int64     `json:"userId"`
	GenreID      *int64    `json:"genreId"`
	AlbumID      *int64    `json:"albumId"`
	ArtistID     *int64    `json:"artistId"`
	Username     *string   `json:"username"`
	GenreName    *string   `json:"genreName"`
	AlbumTitle   *string   `json:"albumTitle"`
	ArtistName   *string   `json:"artistName"`
	ViewCount    int       `json:"viewCount"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SongResponse struct {
	SongID       int64     `json:"songId"`
	Title        string    `json:"title"`
	FileURL      string    `json:"fileUrl"`
	CoverImage   *string   `json:"coverImage"`
	Duration     int       `json:"duration"`
	Description  *string   `json:"description"`
	Status       string    `json:"status"`
	UserID       int64     `json:"userId"`
	GenreID      *int64    `json:"genreId"`
	AlbumID      *int64    `json:"albumId"`
	ArtistID     *int64    `json:"artistId"`
	Username     *string   `json:"username"`
	GenreName    *string   `json:"genreName"`
	AlbumTitle   *string   `json:"albumTitle"`
	ArtistName   *string   `json:"artistName"`
	ViewCount    int       `json:"viewCount"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Song) ToResponse() *SongResponse {
	return &SongResponse{
		SongID:       s.SongID,
		Title:        s.Title,
		FileURL:      s.FileURL,
		CoverImage:   s.CoverImage,
		Duration:     s.Duration,
		Description:  s.Description,
		Status:       s.Status,
		UserID:       s.UserID,
		GenreID:      s.GenreID,
		AlbumID:      s.AlbumID,
		ArtistID:     s.ArtistID,
		Username:     s.Username,
		GenreName:    s.GenreName,
		AlbumTitle:   s.AlbumTitle,
		ArtistName:   s.ArtistName,
		ViewCount:    s.ViewCount,
		LikeCount:    s.LikeCount,
		CommentCount: s.CommentCount,
		CreatedAt:    s.CreatedAt,
	}
}
