package scheduler

import "fmt"

const (
	OverallSubject = "Overall"
	revisionFormat = "Revision: %s"
)

// FillGaps assigns a revision task to every study slot still open. The
// revision is for the subject with the nearest exam after the slot's date,
// the first such subject on ties, or OverallSubject when no exam remains.
// subjects must be sorted by exam date.
func FillGaps(cal Calendar, subjects []Subject) Calendar {
	for d := range cal.Days {
		day := &cal.Days[d]

		name := OverallSubject
		if s, ok := lastMatch(subjects, backward, func(s Subject) bool {
			return DateOf(s.ExamDate).After(day.Date)
		}); ok {
			name = s.Name
		}

		for i := range day.Slots {
			if day.Slots[i].open() {
				day.Slots[i].Assignment = &Assignment{
					Subject: name,
					Topic:   fmt.Sprintf(revisionFormat, name),
				}
			}
		}
	}
	return cal
}
