package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/cubny/toll"
	"github.com/cubny/toll/internal/config"
	"github.com/cubny/toll/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "optional config file (.env, yaml, json or toml)")
	input := flag.String("input", "", "input csv file path, stdin when empty")
	output := flag.String("output", "fees.csv", "output csv file path, stdout when -")
	concurrency := flag.Int("c", 4, "concurrent workers")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	conf, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("load config: %s\n", err)
	}

	// flags given on the command line win over the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			conf.Input = *input
		case "output":
			conf.Output = *output
		case "c":
			conf.Concurrency = *concurrency
		case "log-level":
			conf.LogLevel = *logLevel
		}
	})

	l, err := logger.New(conf.LogLevel)
	if err != nil {
		log.Fatalf("logger: %s\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, conf, l)
	stop()
	_ = l.Sync()
	if err != nil {
		log.Fatalf("estimator: %s\n", err)
	}

	if conf.Output != "-" {
		fmt.Printf("output is written to %s\n", conf.Output)
		fmt.Println("exit.")
	}
}

func run(ctx context.Context, conf config.Config, l *zap.Logger) error {
	in, err := openInput(conf.Input)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}

	out, err := openOutput(conf.Output)
	if err != nil {
		in.Close()
		return fmt.Errorf("open output file: %w", err)
	}

	defer func() {
		if err := in.Close(); err != nil {
			l.Error("close input file", zap.Error(err))
		}
		if err := out.Close(); err != nil {
			l.Error("close output file", zap.Error(err))
		}
	}()

	engine := toll.NewEngine(toll.WithLogger(l))
	estimator, err := toll.NewEstimator(in, out, engine, &toll.Config{Concurrency: conf.Concurrency}, l)
	if err != nil {
		return err
	}

	return estimator.Run(ctx)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
