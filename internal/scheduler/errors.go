package scheduler

import "errors"

var (
	ErrInvalidTemplate  = errors.New("scheduler: invalid day template")
	ErrInvalidTimeOfDay = errors.New("scheduler: invalid time of day")
)
