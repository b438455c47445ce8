package model

import "time"

// PlayHistory records a single playback of a song by a user.
type PlayHistory struct {
	HistoryID      int64     `json:"historyId"`
	UserID         int64     `json:"userId"`
	SongID         int64     `json:"songId"`
	PlayedAt       time.Time `json:"playedAt"`
	DurationPlayed int       `json:"durationPlayed"`
	Completed      bool      `json:"completed"`
	Title          *string   `json:"title"`
	ArtistName     *string   `json:"artistName"`
	CoverImage     *string   `json:"coverImage"`
}
