package model

import "errors"

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrInvalidReference = errors.New("referenced song or user does not exist")
)
