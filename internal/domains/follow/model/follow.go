package model

import "time"

// Follow is keyed by (follower_id, following_id).
type Follow struct {
	FollowerID  int64     `json:"followerId"`
	FollowingID int64     `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowUser is one row of a followers or following listing.
type FollowUser struct {
	UserID     int64     `json:"userId"`
	Username   string    `json:"username"`
	AvatarURL  *string   `json:"avatarUrl"`
	FollowedAt time.Time `json:"followedAt"`
}
