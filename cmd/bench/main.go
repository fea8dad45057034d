package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/boxbench/pkg/collision"
	"github.com/cbodonnell/boxbench/pkg/config"
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/grid"
	"github.com/cbodonnell/boxbench/pkg/log"
	"github.com/cbodonnell/boxbench/pkg/session"
	"github.com/cbodonnell/boxbench/pkg/version"
	"github.com/google/uuid"
)

func main() {
	cfg := config.Default()
	config.BindFlags(flag.CommandLine, &cfg)
	frames := flag.Int("frames", 600, "Number of frames to run")
	step := flag.Int("step", 3, "Pointer movement per frame in pixels")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	runID := uuid.New()
	log.Info("Starting bench %s version %s", runID, version.Get())

	if err := cfg.Validate(); err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			log.Error("Invalid -%s flag: %v", configErr.Param, err)
		} else {
			log.Error("Invalid configuration: %v", err)
		}
		os.Exit(1)
	}
	if *frames < 0 {
		log.Error("Invalid -frames flag: %d must not be negative", *frames)
		os.Exit(1)
	}

	boxes, err := grid.Generate(cfg.Layout())
	if err != nil {
		log.Error("Failed to generate bounding boxes: %v", err)
		os.Exit(1)
	}

	driver := frame.NewDriver(frame.NewDriverOptions{
		Input: frame.NewSweepSource(frame.NewSweepSourceOptions{
			Bounds: cfg.Bounds,
			Step:   geometry.IntPoint{X: *step, Y: *step},
			Frames: *frames,
		}),
		Evaluator: collision.NewEvaluator(cfg.Workers),
		State: session.NewState(session.NewStateOptions{
			Boxes:     boxes,
			QuerySize: cfg.QuerySize,
		}),
	})

	log.Info("Bench %s: %d boxes, %d workers, %d frames", runID, len(boxes), cfg.Workers, *frames)
	start := time.Now()
	for {
		if _, err := driver.Tick(); err != nil {
			if errors.Is(err, frame.ErrQuit) {
				break
			}
			log.Error("Failed to run frame: %v", err)
			os.Exit(1)
		}
	}

	stats := driver.Stats()
	log.Info("Bench %s finished in %s: %s", runID, time.Since(start), stats)
	if budget := cfg.FrameInterval(); stats.Max > budget {
		log.Warn("Bench %s: slowest scan %s exceeds the %s frame budget", runID, stats.Max, budget)
	}
}
