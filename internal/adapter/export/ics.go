// Package export renders a user's plan into downloadable calendar and
// spreadsheet formats.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
)

const (
	icsDateLayout  = "20060102"
	icsStampLayout = "20060102T150405Z"
)

// ICSContentType is the media type of BuildICS output
const ICSContentType = "text/calendar; charset=utf-8"

// BuildICS renders tasks as an iCalendar feed with one VEVENT per task.
// Timed tasks start and end at their slot times in loc; tasks without times
// become all-day events.
func BuildICS(tasks []*entity.Task, loc *time.Location, now time.Time) string {
	if loc == nil {
		loc = time.UTC
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//AI Syllabus Planner//Study Plan//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Study Plan",
	}

	stamp := now.UTC().Format(icsStampLayout)
	for _, t := range tasks {
		lines = append(lines, taskEvent(t, loc, stamp)...)
	}
	lines = append(lines, "END:VCALENDAR", "")

	return strings.Join(lines, "\r\n")
}

func taskEvent(t *entity.Task, loc *time.Location, stamp string) []string {
	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + escapeICSText(fmt.Sprintf("task-%d@ai-syllabus-planner", t.ID)),
		"DTSTAMP:" + stamp,
		"SUMMARY:" + escapeICSText(eventTitle(t)),
	}

	if t.IsTimed() {
		start := t.StartTime.On(t.DueDate, loc).UTC()
		end := t.EndTime.On(t.DueDate, loc).UTC()
		lines = append(lines,
			"DTSTART:"+start.Format(icsStampLayout),
			"DTEND:"+end.Format(icsStampLayout),
		)
	} else {
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+t.DueDate.Format(icsDateLayout),
			"DTEND;VALUE=DATE:"+t.DueDate.AddDate(0, 0, 1).Format(icsDateLayout),
		)
	}

	if t.TaskType == entity.TaskTypeBreak {
		lines = append(lines, "TRANSP:TRANSPARENT")
	}
	if notes := strings.TrimSpace(t.Notes); notes != "" {
		lines = append(lines, "DESCRIPTION:"+escapeICSText(notes))
	}
	if t.IsComplete {
		lines = append(lines, "STATUS:CONFIRMED")
	}

	return append(lines, "END:VEVENT")
}

func eventTitle(t *entity.Task) string {
	subject := strings.TrimSpace(t.Subject)
	topic := strings.TrimSpace(t.Topic)
	switch {
	case subject == "":
		return topic
	case topic == "":
		return subject
	default:
		return subject + ": " + topic
	}
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
