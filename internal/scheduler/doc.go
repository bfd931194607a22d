// Package scheduler builds study calendars.
//
// A plan is produced by four passes over a calendar that covers every date
// from today through the latest exam:
//
//	Build        expand the weekly templates into per-day slots
//	PlaceExams   blank each exam day and reserve a final revision slot
//	AllocateTopics  first-fit every topic before its exam
//	FillGaps     give every remaining study slot a revision task
//
// Each pass takes ownership of the calendar it is given and returns it; the
// caller must not keep using the previous value. Rebalance is independent of
// the pipeline and redistributes overdue tasks over future days.
//
// Dates are civil dates represented as time.Time at midnight UTC; use DateOf
// to normalize.
package scheduler
