package toll

import (
	"context"
	"time"
)

var ErrPassesEmpty = MalformedRecord.New("pass set is empty")

// passRecord is a single pass read from the estimator input
type passRecord struct {
	vehicleID string
	vehicle   VehicleType
	at        time.Time
}

// sameDay reports whether r is a pass of the same vehicle on the same day as other
func (r passRecord) sameDay(other passRecord) bool {
	y1, m1, d1 := r.at.Date()
	y2, m2, d2 := other.at.Date()
	return r.vehicleID == other.vehicleID && y1 == y2 && m1 == m2 && d1 == d2
}

// passSet holds the passes of one vehicle in one day which can run against the engine
// to find the daily fee
type passSet struct {
	vehicleID string
	vehicle   VehicleType
	passes    []time.Time
}

// vehicleDayFee is the result of pricing a passSet
type vehicleDayFee struct {
	vehicleID string
	date      string
	fee       Fee
}

// newPassSet creates a passSet out of records of the same vehicle and day
func newPassSet(records []passRecord) (*passSet, error) {
	if len(records) == 0 {
		return nil, ErrPassesEmpty
	}

	passes := make([]time.Time, 0, len(records))
	for _, r := range records {
		passes = append(passes, r.at)
	}

	return &passSet{
		vehicleID: records[0].vehicleID,
		vehicle:   records[0].vehicle,
		passes:    passes,
	}, nil
}

// run prices the pass set and publishes the result to outc
func (s *passSet) run(ctx context.Context, engine *Engine, outc chan<- vehicleDayFee) error {
	result := vehicleDayFee{
		vehicleID: s.vehicleID,
		date:      s.passes[0].Format(time.DateOnly),
		fee:       engine.DailyFee(s.vehicle, s.passes...),
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case outc <- result:
	}

	return nil
}
