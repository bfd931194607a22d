package usecase

import (
	"time"

	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
)

// Clock abstracts time for testing
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// today returns the current civil date in loc
func today(clock Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return scheduler.DateOf(clock.Now().In(loc))
}
