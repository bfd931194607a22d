package scheduler

import "time"

// DefaultDailyCap is the number of rescheduled tasks a day may hold.
const DefaultDailyCap = 2

// Reassignment moves a task to a new due date.
type Reassignment struct {
	TaskID  int64
	DueDate time.Time
}

// Rebalance spreads overdue tasks over the days after today. futureCounts
// holds the number of tasks already due on each date; it is not modified.
// Each task goes to the first day in [today+1, lastDay] below dailyCap, where
// lastDay starts at the latest known date. When every day is full the horizon
// grows by one day and the task lands there.
func Rebalance(today time.Time, overdue []int64, futureCounts map[time.Time]int, dailyCap int) []Reassignment {
	if len(overdue) == 0 {
		return nil
	}
	if dailyCap <= 0 {
		dailyCap = DefaultDailyCap
	}

	today = DateOf(today)
	counts := make(map[time.Time]int, len(futureCounts))
	lastDay := today
	for date, n := range futureCounts {
		date = DateOf(date)
		counts[date] += n
		if date.After(lastDay) {
			lastDay = date
		}
	}

	out := make([]Reassignment, 0, len(overdue))
	for _, id := range overdue {
		target := time.Time{}
		for d := addDays(today, 1); !d.After(lastDay); d = addDays(d, 1) {
			if counts[d] < dailyCap {
				target = d
				break
			}
		}
		if target.IsZero() {
			lastDay = addDays(lastDay, 1)
			target = lastDay
		}
		counts[target]++
		out = append(out, Reassignment{TaskID: id, DueDate: target})
	}
	return out
}
