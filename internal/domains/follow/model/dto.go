package model

import "webmusic-backend/internal/shared/query"

type FollowUserListResponse struct {
	Users []FollowUser `json:"users"`
	query.PageInfo
}
