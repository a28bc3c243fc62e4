package toll

import (
	"time"

	"github.com/rickar/cal/v2"

	"github.com/cubny/toll/internal/interval"
)

// Holiday is a toll-free range of days, repeated every year
type Holiday struct {
	interval.Rule[MonthDay]
}

// HolidayRange creates a Holiday from startMonth/startDay to endMonth/endDay inclusive.
// It panics on an invalid day, so it is meant for compiled-in tables only.
func HolidayRange(startMonth time.Month, startDay int, endMonth time.Month, endDay int) Holiday {
	return Holiday{interval.New(mustMonthDay(startMonth, startDay), mustMonthDay(endMonth, endDay))}
}

// HolidayOn creates a single-day Holiday
func HolidayOn(month time.Month, day int) Holiday {
	return HolidayRange(month, day, month, day)
}

// ExemptionCalendar decides which dates are toll-free
type ExemptionCalendar struct {
	// Weekends makes every Saturday and Sunday toll-free
	Weekends bool
	Holidays []Holiday
}

// DefaultCalendar holds the toll-free dates of the toll gates
var DefaultCalendar = ExemptionCalendar{
	Weekends: true,
	Holidays: []Holiday{
		HolidayOn(time.January, 1),
		HolidayRange(time.March, 28, time.March, 29),
		HolidayOn(time.April, 1),
		HolidayOn(time.April, 30),
		HolidayOn(time.May, 1),
		HolidayRange(time.May, 8, time.May, 9),
		HolidayRange(time.June, 5, time.June, 6),
		HolidayOn(time.June, 21),
		HolidayRange(time.July, 1, time.July, 31),
		HolidayOn(time.November, 1),
		HolidayRange(time.December, 24, time.December, 26),
		HolidayOn(time.December, 31),
	},
}

// IsExempt reports whether no toll is charged on the date of t
func (c ExemptionCalendar) IsExempt(t time.Time) bool {
	if c.Weekends && cal.IsWeekend(t) {
		return true
	}
	return c.IsHoliday(MonthDayOf(t))
}

// IsHoliday reports whether d lies in any of the calendar's holidays
func (c ExemptionCalendar) IsHoliday(d MonthDay) bool {
	for _, h := range c.Holidays {
		if h.Contains(d) {
			return true
		}
	}
	return false
}

func mustMonthDay(month time.Month, day int) MonthDay {
	d, err := NewMonthDay(month, day)
	if err != nil {
		panic(err)
	}
	return d
}
