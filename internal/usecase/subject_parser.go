package usecase

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
)

// ParseSubjects keeps the subjects that can be scheduled and reports how many
// subjects and topics were dropped. A subject needs a name of at most
// entity.MaxSubjectLength characters, at least one usable topic and an exam
// date (YYYY-MM-DD) after today. Topics are comma separated; blanks are
// removed, duplicates kept, and topics longer than entity.MaxTopicLength are
// dropped. Names and topics are NFC normalized.
func ParseSubjects(inputs []dto.SubjectInput, today time.Time) ([]scheduler.Subject, int, int) {
	subjects := make([]scheduler.Subject, 0, len(inputs))
	droppedTopics := 0

	for _, in := range inputs {
		name := norm.NFC.String(strings.TrimSpace(in.Name))
		if name == "" || in.Topics == "" || in.ExamDate == "" {
			continue
		}
		if utf8.RuneCountInString(name) > entity.MaxSubjectLength {
			continue
		}

		exam, err := scheduler.ParseDate(strings.TrimSpace(in.ExamDate))
		if err != nil || !exam.After(today) {
			continue
		}

		topics := lo.Compact(lo.Map(strings.Split(in.Topics, ","), func(t string, _ int) string {
			return norm.NFC.String(strings.TrimSpace(t))
		}))
		fitting := lo.Filter(topics, func(t string, _ int) bool {
			return utf8.RuneCountInString(t) <= entity.MaxTopicLength
		})
		if len(fitting) == 0 {
			continue
		}
		droppedTopics += len(topics) - len(fitting)

		subjects = append(subjects, scheduler.Subject{Name: name, Topics: fitting, ExamDate: exam})
	}

	return subjects, len(inputs) - len(subjects), droppedTopics
}
