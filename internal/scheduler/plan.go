package scheduler

import "time"

// Request is the input to Generate.
type Request struct {
	Subjects   []Subject
	Today      time.Time
	HasClasses bool
	// Catalog defaults to DefaultCatalog when nil.
	Catalog *Catalog
}

// Plan is a generated calendar together with the topics that did not fit.
type Plan struct {
	Calendar    Calendar
	Unscheduled []UnscheduledTopic
}

// Draft is a task ready to be persisted.
type Draft struct {
	Date    time.Time
	Start   TimeOfDay
	End     TimeOfDay
	Kind    SlotKind
	Subject string
	Topic   string
}

// Generate runs the full pipeline. Subjects are sorted by exam date first.
func Generate(req Request) Plan {
	subjects := SortByExam(req.Subjects)
	if len(subjects) == 0 {
		return Plan{}
	}

	cal := Build(subjects, req.Today, req.HasClasses, req.Catalog)
	cal = PlaceExams(cal, subjects)
	cal, unscheduled := AllocateTopics(cal, subjects)
	cal = FillGaps(cal, subjects)

	return Plan{Calendar: cal, Unscheduled: unscheduled}
}

// Drafts returns one draft per assigned slot in date then slot order.
func (p Plan) Drafts() []Draft {
	var drafts []Draft
	for _, day := range p.Calendar.Days {
		for _, s := range day.Slots {
			if s.Assignment == nil {
				continue
			}
			drafts = append(drafts, Draft{
				Date:    day.Date,
				Start:   s.Start,
				End:     s.End,
				Kind:    s.Kind,
				Subject: s.Assignment.Subject,
				Topic:   s.Assignment.Topic,
			})
		}
	}
	return drafts
}
