package model

import "errors"

var (
	ErrAlreadyLiked     = errors.New("song is already liked")
	ErrLikeNotFound     = errors.New("like not found")
	ErrInvalidReference = errors.New("referenced song or user does not exist")
)
