package model

import "errors"

var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrFollowNotFound   = errors.New("follow not found")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrInvalidReference = errors.New("referenced user does not exist")
)
