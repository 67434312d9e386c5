package service

import "errors"

var (
	ErrEmptyChannel    = errors.New("channel id is required")
	ErrInvalidDuration = errors.New("duration must be greater than zero and at most 30 days")
	ErrInvalidWeek     = errors.New("week is out of range")
	ErrInvalidSeason   = errors.New("season must not be negative")
	ErrManagerClosed   = errors.New("timekeeper is shut down")
	ErrTimerNotFound   = errors.New("no timer stored for channel")
)
