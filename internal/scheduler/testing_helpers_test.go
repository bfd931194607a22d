package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// monday is 2024-01-15.
var monday = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return addDays(monday, offset)
}

func subject(name string, examOffset int, topics ...string) Subject {
	return Subject{Name: name, Topics: topics, ExamDate: day(examOffset)}
}

func mustLookup(t *testing.T, cal Calendar, date time.Time) *Day {
	t.Helper()
	d, ok := cal.Lookup(date)
	require.True(t, ok, "date %s not in calendar", date.Format(time.DateOnly))
	return d
}

func assignments(d *Day) []Assignment {
	out := make([]Assignment, 0, len(d.Slots))
	for _, s := range d.Slots {
		if s.Assignment == nil {
			out = append(out, Assignment{})
			continue
		}
		out = append(out, *s.Assignment)
	}
	return out
}
