package model

import "errors"

var (
	ErrAlbumNotFound    = errors.New("album not found")
	ErrInvalidReference = errors.New("referenced user or artist does not exist")
)
