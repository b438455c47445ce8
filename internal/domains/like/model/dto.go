package model

import "webmusic-backend/internal/shared/query"

type LikedSongListResponse struct {
	Songs []LikedSong `json:"songs"`
	query.PageInfo
}
