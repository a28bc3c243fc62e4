package toll

import "github.com/cubny/toll/internal/interval"

// FeeBand charges Fee for every pass whose clock time lies within the band
type FeeBand struct {
	interval.Rule[ClockTime]
	Fee Fee
}

// Band creates a FeeBand from startHour:startMinute to endHour:endMinute inclusive.
// It panics on an invalid clock time, so it is meant for compiled-in tables only.
func Band(startHour, startMinute, endHour, endMinute int, fee Fee) FeeBand {
	return FeeBand{
		Rule: interval.New(mustClockTime(startHour, startMinute), mustClockTime(endHour, endMinute)),
		Fee:  fee,
	}
}

// FeeSchedule is an ordered table of fee bands. The first band containing a time wins.
type FeeSchedule []FeeBand

// DefaultSchedule is the fee table of the toll gates
var DefaultSchedule = FeeSchedule{
	Band(6, 0, 6, 29, 8),
	Band(6, 30, 6, 59, 13),
	Band(7, 0, 7, 59, 18),
	Band(8, 0, 8, 29, 13),
	Band(8, 30, 8, 59, 8),
	Band(9, 30, 9, 59, 8),
	Band(10, 30, 10, 59, 8),
	Band(11, 30, 11, 59, 8),
	Band(12, 30, 12, 59, 8),
	Band(13, 30, 13, 59, 8),
	Band(14, 30, 14, 59, 8),
	Band(15, 0, 15, 29, 13),
	Band(15, 30, 16, 59, 18),
	Band(17, 0, 17, 59, 13),
	Band(18, 0, 18, 30, 8),
}

// FeeAt returns the fee of the first band containing c, or 0 when no band does
func (s FeeSchedule) FeeAt(c ClockTime) Fee {
	for _, band := range s {
		if band.Contains(c) {
			return band.Fee
		}
	}
	return 0
}

func mustClockTime(hour, minute int) ClockTime {
	c, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}
