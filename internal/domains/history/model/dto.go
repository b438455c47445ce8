package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateHistoryRequest struct {
	UserID         int64 `json:"userId"`
	SongID         int64 `json:"songId"`
	DurationPlayed int   `json:"durationPlayed"`
	Completed      bool  `json:"completed"`
}

func (r CreateHistoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.SongID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.DurationPlayed, validation.Min(0)),
	)
}
