package toll

import (
	"math/rand"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// at returns a time on Thursday 2013-02-07, an ordinary working day
func at(hour, minute int) time.Time {
	return time.Date(2013, time.February, 7, hour, minute, 0, 0, time.UTC)
}

func TestEngine_PassFee(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name    string
		at      time.Time
		vehicle Vehicle
		fee     Fee
	}{
		{name: "morning rush", at: at(7, 30), vehicle: Car, fee: 18},
		{name: "first band", at: at(6, 0), vehicle: Car, fee: 8},
		{name: "early morning", at: at(5, 0), vehicle: Car, fee: 0},
		{name: "night", at: at(20, 0), vehicle: Car, fee: 0},
		{name: "toll-free vehicle", at: at(7, 30), vehicle: Motorbike, fee: 0},
		{name: "saturday", at: time.Date(2013, time.February, 9, 7, 30, 0, 0, time.UTC), vehicle: Car, fee: 0},
		{name: "july", at: time.Date(2013, time.July, 15, 7, 30, 0, 0, time.UTC), vehicle: Car, fee: 0},
		{name: "april 1", at: time.Date(2013, time.April, 1, 16, 0, 0, 0, time.UTC), vehicle: Car, fee: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.fee, engine.PassFee(test.at, test.vehicle))
			// same inputs, same fee
			assert.Equal(t, test.fee, engine.PassFee(test.at, test.vehicle))
		})
	}
}

func TestEngine_DailyFee(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name    string
		vehicle Vehicle
		passes  []time.Time
		fee     Fee
	}{
		{
			name:    "no passes",
			vehicle: Car,
			fee:     0,
		},
		{
			name:    "toll-free vehicle",
			vehicle: Emergency,
			passes:  []time.Time{at(7, 0), at(16, 0)},
			fee:     0,
		},
		{
			name:    "single pass",
			vehicle: Car,
			passes:  []time.Time{at(7, 30)},
			fee:     18,
		},
		{
			name:    "two passes in one window are charged once",
			vehicle: Car,
			passes:  []time.Time{at(7, 0), at(7, 45)},
			fee:     18,
		},
		{
			name:    "window is billed at its highest fee",
			vehicle: Car,
			passes:  []time.Time{at(6, 0), at(6, 35)},
			fee:     13,
		},
		{
			name:    "exactly an hour apart share a window",
			vehicle: Car,
			passes:  []time.Time{at(6, 0), at(7, 0)},
			fee:     18,
		},
		{
			name:    "more than an hour apart open a new window",
			vehicle: Car,
			passes:  []time.Time{at(6, 0), at(7, 10)},
			fee:     26,
		},
		{
			name:    "61 minutes apart open a new window",
			vehicle: Car,
			passes:  []time.Time{at(6, 0), at(7, 1)},
			fee:     26,
		},
		{
			name:    "seconds are not counted towards the window",
			vehicle: Car,
			passes:  []time.Time{at(6, 0), at(7, 0).Add(59 * time.Second)},
			fee:     18,
		},
		{
			name:    "window is anchored at its opening pass",
			vehicle: Car,
			passes:  []time.Time{at(6, 0), at(6, 50), at(7, 40)},
			fee:     31,
		},
		{
			name:    "unsorted passes",
			vehicle: Car,
			passes:  []time.Time{at(7, 10), at(6, 0)},
			fee:     26,
		},
		{
			name:    "off-band window followed by a charged one",
			vehicle: Car,
			passes:  []time.Time{at(5, 0), at(5, 30), at(6, 10)},
			fee:     8,
		},
		{
			name:    "off-band pass opens a charged window",
			vehicle: Car,
			passes:  []time.Time{at(5, 30), at(6, 20)},
			fee:     8,
		},
		{
			name:    "capped at the daily maximum",
			vehicle: Car,
			passes:  []time.Time{at(6, 30), at(7, 35), at(8, 40), at(15, 30), at(16, 35), at(17, 40)},
			fee:     DailyCap,
		},
		{
			name:    "toll-free date",
			vehicle: Car,
			passes: []time.Time{
				time.Date(2013, time.July, 15, 7, 0, 0, 0, time.UTC),
				time.Date(2013, time.July, 15, 16, 0, 0, 0, time.UTC),
			},
			fee: 0,
		},
		{
			name:    "saturday",
			vehicle: Car,
			passes:  []time.Time{time.Date(2013, time.February, 9, 7, 30, 0, 0, time.UTC)},
			fee:     0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.fee, engine.DailyFee(test.vehicle, test.passes...))
		})
	}
}

func TestEngine_DailyFee_doesNotReorderInput(t *testing.T) {
	passes := []time.Time{at(7, 10), at(6, 0), at(6, 30)}
	want := []time.Time{at(7, 10), at(6, 0), at(6, 30)}

	NewEngine().DailyFee(Car, passes...)
	assert.Equal(t, want, passes)
}

func TestEngine_DailyFee_isBounded(t *testing.T) {
	engine := NewEngine()
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		passes := make([]time.Time, r.Intn(30))
		for j := range passes {
			passes[j] = at(0, 0).Add(time.Duration(r.Intn(24*60)) * time.Minute)
		}
		fee := engine.DailyFee(Car, passes...)
		assert.GreaterOrEqual(t, int(fee), 0)
		assert.LessOrEqual(t, int(fee), int(DailyCap))
	}
}

func TestEngine_DailyFee_manyWindowsAreCapped(t *testing.T) {
	var passes []time.Time
	for h := 6; h <= 18; h++ {
		passes = append(passes, at(h, 0).Add(time.Duration(h)*time.Minute))
	}
	assert.Equal(t, DailyCap, NewEngine().DailyFee(Car, passes...))
}

func TestEngine_DailyFee_wallClock(t *testing.T) {
	t.Run("mixed offsets", func(t *testing.T) {
		// 08:30+02:00 is 06:30Z, yet on the gate clock it comes 90 minutes after 07:00
		plus2 := time.FixedZone("UTC+2", 2*60*60)
		passes := []time.Time{
			at(7, 0),
			time.Date(2013, time.February, 7, 8, 30, 0, 0, plus2),
		}
		assert.Equal(t, Fee(26), NewEngine().DailyFee(Car, passes...))
	})

	t.Run("daylight saving day", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		engine := NewEngine(
			WithSchedule(FeeSchedule{Band(1, 0, 1, 59, 5), Band(3, 0, 3, 59, 7)}),
			WithCalendar(ExemptionCalendar{}),
		)
		// clocks jump from 02:00 to 03:00, so the passes are 40 minutes apart but 100 minutes on the clock
		passes := []time.Time{
			time.Date(2024, time.March, 10, 1, 30, 0, 0, ny),
			time.Date(2024, time.March, 10, 3, 10, 0, 0, ny),
		}
		assert.Equal(t, Fee(12), engine.DailyFee(Car, passes...))
	})
}

func TestEngine_options(t *testing.T) {
	engine := NewEngine(
		WithSchedule(FeeSchedule{Band(22, 0, 2, 0, 5)}),
		WithCalendar(ExemptionCalendar{}),
	)

	saturdayNight := time.Date(2013, time.February, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, Fee(5), engine.PassFee(saturdayNight, Car))
	assert.Equal(t, Fee(0), engine.PassFee(at(12, 0), Car))
}

func TestEngine_logsWindows(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	engine := NewEngine(WithLogger(zap.New(core)))

	fee := engine.DailyFee(Car, at(6, 30), at(7, 35), at(8, 40), at(15, 30), at(16, 35), at(17, 40))
	assert.Equal(t, DailyCap, fee)
	assert.Equal(t, 5, logs.FilterMessage("charge window closed").Len())
	assert.Equal(t, 1, logs.FilterMessage("daily cap reached").Len())
}

func BenchmarkEngine_DailyFee(b *testing.B) {
	engine := NewEngine()
	passes := []time.Time{at(6, 30), at(7, 35), at(8, 40), at(15, 30), at(16, 35), at(17, 40)}
	for n := 0; n < b.N; n++ {
		engine.DailyFee(Car, passes...)
	}
}
