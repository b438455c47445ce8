package model

import "errors"

var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrGenreNameTaken = errors.New("genre with this name already exists")
)
