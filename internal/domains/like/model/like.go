package model

import "time"

// Like is keyed by (user_id, song_id); a user likes a song at most once.
type Like struct {
	UserID    int64     `json:"userId"`
	SongID    int64     `json:"songId"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedSong is the read model for a user's liked-songs listing.
type LikedSong struct {
	SongID     int64     `json:"songId"`
	Title      string    `json:"title"`
	FileURL    string    `json:"fileUrl"`
	CoverImage *string   `json:"coverImage"`
	Duration   int       `json:"duration"`
	ArtistName *string   `json:"artistName"`
	LikedAt    time.Time `json:"likedAt"`
}
