package model

import "errors"

var (
	ErrSongNotFound     = errors.New("song not found")
	ErrInvalidReference = errors.New("referenced genre, album or artist does not exist")
	ErrInvalidStatus    = errors.New("invalid song status")
)
