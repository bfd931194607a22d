package scheduler

import "time"

// SlotKind distinguishes time a student studies from time that is blocked.
type SlotKind string

const (
	KindStudy SlotKind = "study"
	KindBreak SlotKind = "break"
)

func (k SlotKind) Valid() bool {
	return k == KindStudy || k == KindBreak
}

// Assignment is the subject and topic occupying a slot.
type Assignment struct {
	Subject string `yaml:"subject" json:"subject"`
	Topic   string `yaml:"topic" json:"topic"`
}

// TimeSlot is one entry of a day template. Fixed is only set on breaks that
// always carry the same activity, such as lunch or school hours.
type TimeSlot struct {
	Start TimeOfDay   `yaml:"start"`
	End   TimeOfDay   `yaml:"end"`
	Kind  SlotKind    `yaml:"kind"`
	Fixed *Assignment `yaml:"task,omitempty"`
}

// Template is an ordered, non-overlapping list of slots covering one day.
type Template []TimeSlot

// Catalog holds the three weekly patterns a calendar is built from.
type Catalog struct {
	Weekend          Template `yaml:"weekend"`
	WeekdayNoClass   Template `yaml:"weekday_no_class"`
	WeekdayWithClass Template `yaml:"weekday_with_class"`
}

// DefaultCatalog returns the built-in day templates.
func DefaultCatalog() *Catalog {
	lunch := &Assignment{Subject: "Break", Topic: "Lunch Break"}
	evening := &Assignment{Subject: "Break", Topic: "Evening Break"}

	return &Catalog{
		Weekend: Template{
			{Start: Clock(10, 0), End: Clock(13, 0), Kind: KindStudy},
			{Start: Clock(13, 0), End: Clock(14, 0), Kind: KindBreak, Fixed: lunch},
			{Start: Clock(14, 0), End: Clock(17, 0), Kind: KindStudy},
		},
		WeekdayNoClass: Template{
			{Start: Clock(9, 0), End: Clock(13, 0), Kind: KindStudy},
			{Start: Clock(13, 0), End: Clock(14, 0), Kind: KindBreak, Fixed: lunch},
			{Start: Clock(14, 0), End: Clock(17, 0), Kind: KindStudy},
			{Start: Clock(17, 0), End: Clock(18, 0), Kind: KindBreak, Fixed: evening},
			{Start: Clock(18, 0), End: Clock(20, 0), Kind: KindStudy},
		},
		WeekdayWithClass: Template{
			{Start: Clock(6, 30), End: Clock(7, 30), Kind: KindStudy},
			{Start: Clock(9, 0), End: Clock(17, 0), Kind: KindBreak, Fixed: &Assignment{Subject: "School", Topic: "Classes"}},
			{Start: Clock(17, 0), End: Clock(18, 0), Kind: KindBreak, Fixed: evening},
			{Start: Clock(18, 0), End: Clock(20, 0), Kind: KindStudy},
			{Start: Clock(21, 0), End: Clock(22, 0), Kind: KindStudy},
		},
	}
}

// TemplateFor selects the template for date. Saturdays and Sundays always use
// the weekend pattern.
func (c *Catalog) TemplateFor(date time.Time, hasClasses bool) Template {
	switch {
	case isWeekend(date):
		return c.Weekend
	case hasClasses:
		return c.WeekdayWithClass
	default:
		return c.WeekdayNoClass
	}
}

// instantiate deep-copies the template into calendar slots.
func (t Template) instantiate() []Slot {
	slots := make([]Slot, len(t))
	for i, ts := range t {
		slots[i] = Slot{Start: ts.Start, End: ts.End, Kind: ts.Kind}
		if ts.Fixed != nil {
			a := *ts.Fixed
			slots[i].Assignment = &a
		}
	}
	return slots
}
