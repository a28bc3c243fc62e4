package toll

import (
	"slices"
	"time"

	"go.uber.org/zap"
)

// Engine prices the passes of a vehicle. It holds no mutable state, so it is safe
// for concurrent use.
type Engine struct {
	schedule FeeSchedule
	calendar ExemptionCalendar
	logger   *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithSchedule replaces the default fee schedule
func WithSchedule(s FeeSchedule) Option {
	return func(e *Engine) {
		e.schedule = s
	}
}

// WithCalendar replaces the default exemption calendar
func WithCalendar(c ExemptionCalendar) Option {
	return func(e *Engine) {
		e.calendar = c
	}
}

// WithLogger sets the logger which receives the charge window decisions
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an Engine using the default schedule and calendar unless overridden
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		schedule: DefaultSchedule,
		calendar: DefaultCalendar,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PassFee returns the fee of a single pass at t
func (e *Engine) PassFee(t time.Time, v Vehicle) Fee {
	if v.IsTollFree() || e.calendar.IsExempt(t) {
		return 0
	}
	return e.schedule.FeeAt(ClockTimeOf(t))
}

// DailyFee returns the total fee of a vehicle for the passes it made in one day.
// Passes are split into charge windows, each opened by the first pass more than
// ChargeWindow after the previous window's opening pass. A window is billed at
// the highest fee among its passes and the sum is capped at DailyCap.
// Passes are ordered and compared by their wall-clock fields, ignoring zone offsets.
// All passes are expected to fall on the same day.
func (e *Engine) DailyFee(v Vehicle, passes ...time.Time) Fee {
	if v.IsTollFree() || len(passes) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(passes))
	for _, pass := range passes {
		sorted = append(sorted, wallClock(pass))
	}
	slices.SortStableFunc(sorted, func(a, b time.Time) int {
		return a.Compare(b)
	})

	windowStart := sorted[0]
	windowFee := e.PassFee(windowStart, v)
	var total Fee

	for _, pass := range sorted[1:] {
		fee := e.PassFee(pass, v)
		if pass.Sub(windowStart).Truncate(time.Minute) <= ChargeWindow {
			windowFee = max(windowFee, fee)
			continue
		}

		e.logger.Debug("charge window closed",
			zap.Time("opened_at", windowStart),
			zap.Int("fee", int(windowFee)),
		)
		total += windowFee
		windowStart = pass
		windowFee = fee
	}
	total += windowFee

	if total > DailyCap {
		e.logger.Debug("daily cap reached", zap.Int("uncapped", int(total)))
		total = DailyCap
	}
	return total
}

// wallClock returns t's wall-clock reading as a UTC time, so that two passes
// compare by what the gate clock showed rather than by instant
func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
