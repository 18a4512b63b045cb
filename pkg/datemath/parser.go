package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date and time expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Los_Angeles"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to the start of that day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// ParseDateTime resolves a spoken appointment time such as "8am", "3:30 pm",
// "tomorrow at 9am" or "next friday 10:15". Without a day, a clock time that
// has already passed today rolls over to tomorrow.
func (p *Parser) ParseDateTime(text string, baseTime time.Time) (ParseResult, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	hour, minute, rest, err := extractClock(text)
	if err != nil {
		return ParseResult{}, err
	}

	day, explicit, err := p.resolveDay(rest, baseTime)
	if err != nil {
		return ParseResult{}, err
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
	if !explicit && !at.After(baseTime) {
		at = at.AddDate(0, 0, 1)
	}
	return ParseResult{AbsoluteTime: at, ExplicitDay: explicit}, nil
}

// resolveDay finds the day part of an expression once the clock time is removed.
// The leftmost day phrase wins, so "monday or tuesday" always means monday.
func (p *Parser) resolveDay(text string, baseTime time.Time) (time.Time, bool, error) {
	phrase := reDayPhrase.FindString(text)
	if phrase == "" {
		return p.startOfDay(baseTime), false, nil
	}

	switch {
	case phrase == "tonight":
		phrase = "today"
	case weekdayName(phrase):
		phrase = "next " + phrase
	}

	day, err := p.Parse(phrase, baseTime)
	return day, true, err
}

func weekdayName(s string) bool {
	_, ok := weekdays[s]
	return ok
}

// extractClock pulls the first clock time out of text and returns the remainder.
// Digits take precedence over words, so "3pm this afternoon" is 15:00.
func extractClock(text string) (int, int, string, error) {
	if loc := reMeridiem.FindStringSubmatchIndex(text); loc != nil {
		hour, _ := strconv.Atoi(text[loc[2]:loc[3]])
		minute := 0
		if loc[4] >= 0 {
			minute, _ = strconv.Atoi(text[loc[4]:loc[5]])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, "", fmt.Errorf("%w: %q", ErrInvalidClock, text[loc[0]:loc[1]])
		}
		pm := text[loc[6]:loc[7]] == "p"
		hour %= 12
		if pm {
			hour += 12
		}
		return hour, minute, text[:loc[0]] + text[loc[1]:], nil
	}

	if loc := re24Hour.FindStringSubmatchIndex(text); loc != nil {
		hour, _ := strconv.Atoi(text[loc[2]:loc[3]])
		minute, _ := strconv.Atoi(text[loc[4]:loc[5]])
		if hour > 23 || minute > 59 {
			return 0, 0, "", fmt.Errorf("%w: %q", ErrInvalidClock, text[loc[0]:loc[1]])
		}
		return hour, minute, text[:loc[0]] + text[loc[1]:], nil
	}

	if loc := reNoon.FindStringIndex(text); loc != nil {
		return 12, 0, text[:loc[0]] + text[loc[1]:], nil
	}
	if loc := reMidnight.FindStringIndex(text); loc != nil {
		return 0, 0, text[:loc[0]] + text[loc[1]:], nil
	}

	return 0, 0, "", fmt.Errorf("%w: %q", ErrNoClockTime, text)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := reInDuration.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday returns the next occurrence of dayName strictly after baseTime's day.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[strings.TrimSpace(dayName)]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
