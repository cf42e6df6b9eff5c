package dateparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Parser validates and normalizes the consultation date/time strings coming
// in from the booking form.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// DateLayout is the wire format for consultation dates.
const DateLayout = "2006-01-02"

var timeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ParseDate parses a consultation date and reports whether it is in the past
// relative to now (past dates are rejected by the booking usecase).
func (p *Parser) ParseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.ParseInLocation(DateLayout, value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	if t.Before(p.startOfDay(now)) {
		return time.Time{}, fmt.Errorf("date %q is in the past", value)
	}
	return t, nil
}

// NormalizeTime validates an HH:MM consultation time and returns it
// zero-padded ("9:30" → "09:30").
func (p *Parser) NormalizeTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	m := timeRe.FindStringSubmatch(value)
	if m == nil {
		return "", fmt.Errorf("invalid time %q (want HH:MM)", value)
	}
	if len(m[1]) == 1 {
		m[1] = "0" + m[1]
	}
	return m[1] + ":" + m[2], nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
