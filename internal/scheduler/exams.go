package scheduler

import "fmt"

const (
	TopicExamDay        = "EXAM DAY"
	finalRevisionFormat = "Final Revision for %s"
)

// PlaceExams turns each exam date into a single all-day break and reserves
// the last open study slot of the previous day for a final revision. Subjects
// are processed in order; when two exams share a date the later subject
// replaces the earlier one.
func PlaceExams(cal Calendar, subjects []Subject) Calendar {
	for _, s := range subjects {
		exam := DateOf(s.ExamDate)

		if day, ok := cal.Lookup(exam); ok {
			day.Slots = []Slot{{
				Start:      Clock(0, 0),
				End:        Clock(23, 59),
				Kind:       KindBreak,
				Assignment: &Assignment{Subject: s.Name, Topic: TopicExamDay},
			}}
		}

		day, ok := cal.Lookup(addDays(exam, -1))
		if !ok {
			continue
		}
		// the last open slot of a forward walk is the first one seen walking back
		i := lastMatchIndex(len(day.Slots), forward, func(i int) bool { return day.Slots[i].open() })
		if i < 0 {
			continue
		}
		day.Slots[i].Assignment = &Assignment{
			Subject: s.Name,
			Topic:   fmt.Sprintf(finalRevisionFormat, s.Name),
		}
	}
	return cal
}
