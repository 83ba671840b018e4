package utils

import (
	"docplanner-gateway/internal/pkg/constvars"
	"regexp"
	"time"
)

var compactDateRegex = regexp.MustCompile(constvars.RegexDateCompactDays)

// ParseCompactDate accepts exactly eight digits forming a real yyyyMMdd
// calendar date from year 1 on. Nothing looser is accepted.
func ParseCompactDate(value string) (time.Time, bool) {
	if !compactDateRegex.MatchString(value) {
		return time.Time{}, false
	}
	parsed, err := time.Parse(constvars.LayoutCompactDate, value)
	if err != nil || parsed.Year() < 1 {
		return time.Time{}, false
	}
	return parsed, true
}

func FormatCompactDate(date time.Time) string {
	return date.Format(constvars.LayoutCompactDate)
}

func FormatBookingTimestamp(t time.Time) string {
	return t.Format(constvars.LayoutBookingTimestamp)
}

// WeekStart returns midnight of the Monday of the week containing date.
func WeekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	y, m, d := date.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}
