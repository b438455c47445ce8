package model

import "errors"

var (
	ErrPlaylistNotFound      = errors.New("playlist not found")
	ErrSongAlreadyInPlaylist = errors.New("song is already in this playlist")
	ErrSongNotInPlaylist     = errors.New("song is not in this playlist")
	ErrInvalidReference      = errors.New("referenced user or song does not exist")
)
