package scheduler

import "time"

// UnscheduledTopic is a topic for which no study slot existed before its exam.
type UnscheduledTopic struct {
	Subject  string    `json:"subject"`
	Topic    string    `json:"topic"`
	ExamDate time.Time `json:"exam_date"`
}

// AllocateTopics places every topic, subject by subject, into the earliest
// open study slot dated strictly before its exam. Topics that do not fit are
// returned instead of being placed.
func AllocateTopics(cal Calendar, subjects []Subject) (Calendar, []UnscheduledTopic) {
	var unscheduled []UnscheduledTopic

	for _, s := range subjects {
		exam := DateOf(s.ExamDate)
		for _, topic := range s.Topics {
			if !assignFirstOpen(cal, exam, Assignment{Subject: s.Name, Topic: topic}) {
				unscheduled = append(unscheduled, UnscheduledTopic{Subject: s.Name, Topic: topic, ExamDate: exam})
			}
		}
	}
	return cal, unscheduled
}

func assignFirstOpen(cal Calendar, before time.Time, a Assignment) bool {
	for d := range cal.Days {
		day := &cal.Days[d]
		if !day.Date.Before(before) {
			return false
		}
		for i := range day.Slots {
			if day.Slots[i].open() {
				day.Slots[i].Assignment = &Assignment{Subject: a.Subject, Topic: a.Topic}
				return true
			}
		}
	}
	return false
}
