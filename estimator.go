package toll

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cubny/toll/internal/pipeline"
)

// header is the optional first record of the input
var header = []string{"vehicle_id", "vehicle_type", "timestamp"}

// Estimator takes a reader stream of passes in the form (vehicle_id, vehicle_type, timestamp)
// and streams out the daily fee of each vehicle as (vehicle_id, date, fee) into the writer stream.
// Passes of the same vehicle and day are expected to be consecutive in the input.
type Estimator struct {
	reader io.Reader
	writer io.Writer
	engine *Engine
	conf   *Config
	logger *zap.Logger
}

// NewEstimator creates an Estimator
func NewEstimator(in io.Reader, out io.Writer, engine *Engine, config *Config, logger *zap.Logger) (*Estimator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Estimator{
		reader: in,
		writer: out,
		engine: engine,
		conf:   config,
		logger: logger,
	}, nil
}

// Run runs the estimator pipeline
func (e *Estimator) Run(ctx context.Context) error {
	in := csv.NewReader(e.reader)
	in.FieldsPerRecord = -1
	in.TrimLeadingSpace = true

	passc, errc1 := pipeline.Generate(ctx, e.streamFromCSV(in))
	setc, errc2 := pipeline.Group(ctx, passc, e.groupByVehicleDay)
	outc, errc3 := pipeline.WorkerPool(ctx, e.conf.Concurrency, setc, e.estimateDay)
	if err := e.sinkCSV(ctx, outc); err != nil {
		return err
	}

	errm := pipeline.MergeErrors(ctx, errc1, errc2, errc3)
	for err := range errm {
		switch {
		case errors.Is(err, io.EOF):
		case err != nil:
			return err
		}
	}

	return nil
}

// groupByVehicleDay groups consecutive passes of the same vehicle on the same day
func (e *Estimator) groupByVehicleDay(item passRecord, group []passRecord) (bool, error) {
	return item.sameDay(group[0]), nil
}

// streamFromCSV returns a generator which reads one pass at a time from a csv.Reader.
// Malformed records are logged and skipped.
func (e *Estimator) streamFromCSV(in *csv.Reader) func() (passRecord, bool, error) {
	return func() (passRecord, bool, error) {
		record, err := in.Read()
		if err != nil {
			return passRecord{}, false, err
		}

		line, _ := in.FieldPos(0)
		pass, err := parsePassRecord(record)
		switch {
		case isHeader(record):
			return passRecord{}, false, nil
		case err != nil:
			e.logger.Warn("skipping pass", zap.Int("line", line), zap.Error(err))
			return passRecord{}, false, nil
		}
		return pass, true, nil
	}
}

// sinkCSVRecord writes a vehicleDayFee record to csv.Writer
func (e *Estimator) sinkCSVRecord(w *csv.Writer) func(vehicleDayFee) error {
	return func(val vehicleDayFee) error {
		return w.Write([]string{val.vehicleID, val.date, strconv.Itoa(int(val.fee))})
	}
}

// sinkCSV writes all vehicleDayFee records to estimator writer in CSV format
func (e *Estimator) sinkCSV(ctx context.Context, outc <-chan vehicleDayFee) error {
	output := csv.NewWriter(e.writer)
	err := pipeline.Sink(ctx, outc, e.sinkCSVRecord(output))
	if err != nil {
		return err
	}

	output.Flush()
	if err := output.Error(); err != nil {
		return err
	}

	return nil
}

// estimateDay is a pipeline worker that prices the passes of one vehicle in one day
func (e *Estimator) estimateDay(ctx context.Context, records []passRecord, outc chan<- vehicleDayFee) error {
	set, err := newPassSet(records)
	if err != nil {
		return err
	}
	return set.run(ctx, e.engine, outc)
}

// parsePassRecord creates a passRecord out of a tuple of strings
func parsePassRecord(record []string) (passRecord, error) {
	if len(record) != len(header) {
		return passRecord{}, MalformedRecord.New("expected %d fields, got %d", len(header), len(record))
	}

	vehicleID := strings.TrimSpace(record[0])
	if vehicleID == "" {
		return passRecord{}, MalformedRecord.New("vehicle id is empty")
	}

	vehicle, err := ParseVehicleType(record[1])
	if err != nil {
		return passRecord{}, MalformedRecord.Wrap(err)
	}

	ts, err := ParseTimestamp(record[2])
	if err != nil {
		return passRecord{}, MalformedRecord.Wrap(err)
	}

	return passRecord{
		vehicleID: vehicleID,
		vehicle:   vehicle,
		at:        ts,
	}, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), header[0])
}
