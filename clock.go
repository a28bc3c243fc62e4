package toll

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are tried in order by ParseTimestamp
var timestampLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// maxDays is the longest length of each month over all years
var maxDays = [...]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ClockTime is a minute of the day
type ClockTime struct {
	Hour, Minute int
}

// NewClockTime creates a ClockTime and rejects out of range components
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, InvalidTimestamp.New("clock time %02d:%02d is out of range", hour, minute)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ClockTimeOf returns the wall-clock time of t, dropping seconds
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// Before reports whether c is earlier in the day than other
func (c ClockTime) Before(other ClockTime) bool {
	return c.minutes() < other.minutes()
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) minutes() int {
	return c.Hour*60 + c.Minute
}

// MonthDay is a day of the year without the year, used to match recurring holidays
type MonthDay struct {
	Month time.Month
	Day   int
}

// NewMonthDay creates a MonthDay. February 29 is accepted since the year is unknown.
func NewMonthDay(month time.Month, day int) (MonthDay, error) {
	if month < time.January || month > time.December {
		return MonthDay{}, InvalidTimestamp.New("month %d is out of range", month)
	}
	if day < 1 || day > maxDays[month-1] {
		return MonthDay{}, InvalidTimestamp.New("day %d is out of range for %s", day, month)
	}
	return MonthDay{Month: month, Day: day}, nil
}

// MonthDayOf returns the month and day of t
func MonthDayOf(t time.Time) MonthDay {
	_, m, d := t.Date()
	return MonthDay{Month: m, Day: d}
}

// Before reports whether m is earlier in the year than other
func (m MonthDay) Before(other MonthDay) bool {
	if m.Month != other.Month {
		return m.Month < other.Month
	}
	return m.Day < other.Day
}

func (m MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(m.Month), m.Day)
}

// NewTimestamp creates the timestamp of a pass in UTC wall-clock time.
// Unlike time.Date it fails on out of range components instead of normalising them.
func NewTimestamp(year int, month time.Month, day, hour, minute int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, InvalidTimestamp.New("month %d is out of range", month)
	}
	if day < 1 || day > daysIn(year, month) {
		return time.Time{}, InvalidTimestamp.New("%d-%02d-%02d does not exist", year, int(month), day)
	}
	if _, err := NewClockTime(hour, minute); err != nil {
		return time.Time{}, err
	}

	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC), nil
}

// ParseTimestamp parses the timestamp of a pass
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, InvalidTimestamp.Wrap(lastErr)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
