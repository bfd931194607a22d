package scheduler

import "time"

// Slot is a template slot placed on a concrete date.
type Slot struct {
	Start      TimeOfDay
	End        TimeOfDay
	Kind       SlotKind
	Assignment *Assignment
}

func (s Slot) open() bool {
	return s.Kind == KindStudy && s.Assignment == nil
}

// Day is one date of a calendar with its slots in chronological order.
type Day struct {
	Date  time.Time
	Slots []Slot
}

// Calendar covers every date from its first day through its horizon with no
// gaps.
type Calendar struct {
	Days []Day
}

// Len returns the number of dates covered.
func (c Calendar) Len() int {
	return len(c.Days)
}

// Horizon returns the last covered date, or the zero time for an empty
// calendar.
func (c Calendar) Horizon() time.Time {
	if len(c.Days) == 0 {
		return time.Time{}
	}
	return c.Days[len(c.Days)-1].Date
}

// Lookup returns the day for date.
func (c Calendar) Lookup(date time.Time) (*Day, bool) {
	i, ok := c.indexOf(date)
	if !ok {
		return nil, false
	}
	return &c.Days[i], true
}

func (c Calendar) indexOf(date time.Time) (int, bool) {
	if len(c.Days) == 0 {
		return 0, false
	}
	i := daysBetween(c.Days[0].Date, DateOf(date))
	if i < 0 || i >= len(c.Days) {
		return 0, false
	}
	return i, true
}

// Build expands the catalog over every date from today through the latest
// exam date. An empty subject list yields an empty calendar.
func Build(subjects []Subject, today time.Time, hasClasses bool, catalog *Catalog) Calendar {
	if len(subjects) == 0 {
		return Calendar{}
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	start := DateOf(today)
	horizon := DateOf(subjects[0].ExamDate)
	for _, s := range subjects[1:] {
		if d := DateOf(s.ExamDate); d.After(horizon) {
			horizon = d
		}
	}

	n := daysBetween(start, horizon) + 1
	if n < 1 {
		return Calendar{}
	}

	days := make([]Day, 0, n)
	for d := start; !d.After(horizon); d = addDays(d, 1) {
		days = append(days, Day{
			Date:  d,
			Slots: catalog.TemplateFor(d, hasClasses).instantiate(),
		})
	}
	return Calendar{Days: days}
}
