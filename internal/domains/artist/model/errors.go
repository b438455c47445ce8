package model

import "errors"

var (
	ErrArtistNotFound  = errors.New("artist not found")
	ErrArtistNameTaken = errors.New("artist with this name already exists")
)
