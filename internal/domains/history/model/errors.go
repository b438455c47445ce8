package model

import "errors"

var ErrInvalidReference = errors.New("referenced song or user does not exist")
