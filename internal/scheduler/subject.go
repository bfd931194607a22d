package scheduler

import (
	"sort"
	"time"
)

// Subject is a course with its ordered topics and exam date.
type Subject struct {
	Name     string
	Topics   []string
	ExamDate time.Time
}

// SortByExam returns a copy of subjects stable-sorted by exam date.
func SortByExam(subjects []Subject) []Subject {
	sorted := make([]Subject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DateOf(sorted[i].ExamDate).Before(DateOf(sorted[j].ExamDate))
	})
	return sorted
}
