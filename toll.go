/*
	Package toll computes the daily road-toll fee of a vehicle from the timestamped passes it made
	through the toll gates in one calendar day. Each pass is priced by the time-of-day fee schedule
	unless its date is toll-free, passes within an hour of a charge window's opening pass are billed
	once at their highest fee, and the total of one day is capped.
*/
package toll

import (
	"time"

	"github.com/zeebo/errs"
)

// Fee is an amount of toll in the currency unit configured by the caller
type Fee int

const (
	// DailyCap is the maximum fee chargeable to one vehicle in one day
	DailyCap Fee = 60
	// ChargeWindow is the span after a window's opening pass in which further passes are billed once
	ChargeWindow = 60 * time.Minute
)

var (
	// InvalidTimestamp is the error class of malformed clock times, dates and timestamps
	InvalidTimestamp = errs.Class("invalid timestamp")
	// UnknownVehicle is the error class of vehicle types that are not recognised
	UnknownVehicle = errs.Class("unknown vehicle")
	// MalformedRecord is the error class of estimator input records that cannot be priced
	MalformedRecord = errs.Class("malformed record")
	// ConfigError is the error class of invalid estimator settings
	ConfigError = errs.Class("config")
)

// Config holds the settings of the batch estimator
type Config struct {
	Concurrency int
}

func (c Config) Validate() error {
	switch {
	case c.Concurrency <= 0:
		return ConfigError.New("concurrency should be greater than 0")
	}

	return nil
}
