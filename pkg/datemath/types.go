package datemath

import (
	"errors"
	"regexp"
	"time"
)

// ParseResult holds a resolved appointment time.
type ParseResult struct {
	AbsoluteTime time.Time
	// ExplicitDay is false when the text only named a clock time.
	ExplicitDay bool
}

var (
	ErrNoClockTime  = errors.New("datemath: no clock time in expression")
	ErrInvalidClock = errors.New("datemath: clock time out of range")
)

var (
	// 8am, 8 am, 8:30pm, 08:30 p.m.
	reMeridiem = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m\.?\b`)
	// 15:00, 9:45
	re24Hour = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	// in 3 days, in 2 weeks
	reInDuration = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	// whole words only; "afternoon" is not noon
	reNoon     = regexp.MustCompile(`\b(?:noon|midday)\b`)
	reMidnight = regexp.MustCompile(`\bmidnight\b`)
	// today, tomorrow, in 2 weeks, next friday, monday
	reDayPhrase = regexp.MustCompile(`\b(?:today|tonight|tomorrow|in \d+ (?:days?|weeks?|months?)|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}
